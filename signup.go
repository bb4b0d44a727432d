package catalyst

import (
	"context"
	"net/http"
	"time"
)

// Account creation is a short round trip, so it gets a tighter bound than
// regular API calls.
const signupTimeout = 15 * time.Second

type signupRequest struct {
	Email string `json:"email"`
	Tier  Tier   `json:"tier"`
}

// Signup creates a new Catalyst Cloud account and returns an API key.
//
// No credential is required; this is the only call that works without one.
// An empty tier defaults to [TierFree]. Paid tiers return a CheckoutURL
// that must be visited to activate the account.
//
// Options apply to this call only, e.g. [WithBaseURL] to sign up against
// a non-production endpoint:
//
//	resp, err := catalyst.Signup(ctx, "you@lab.edu", catalyst.TierResearcher)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := catalyst.NewClient(resp.APIKey)
func Signup(ctx context.Context, email string, tier Tier, opts ...Option) (*SignupResponse, error) {
	if tier == "" {
		tier = TierFree
	}

	c := newClient("", signupTimeout, opts)

	var out SignupResponse
	if err := c.do(ctx, http.MethodPost, "/v1/signup", signupRequest{Email: email, Tier: tier}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
