package catalyst

import (
	"context"
	"net/http"
)

// Usage fetches usage statistics for the current billing period.
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	var out Usage
	if err := c.do(ctx, http.MethodGet, "/v1/usage", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
