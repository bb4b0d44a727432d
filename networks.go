package catalyst

import (
	"context"
	"net/http"
)

// CreateNetwork defines a spiking neural network server-side.
//
// The network is validated and stored by the server; the returned
// [Network.NetworkID] is the handle for submitting jobs against it.
func (c *Client) CreateNetwork(ctx context.Context, req *NetworkRequest) (*Network, error) {
	// The API expects both lists present, empty rather than null.
	body := *req
	if body.Populations == nil {
		body.Populations = []Population{}
	}
	if body.Connections == nil {
		body.Connections = []Connection{}
	}

	var out Network
	if err := c.do(ctx, http.MethodPost, "/v1/networks", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
