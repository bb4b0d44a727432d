package catalyst

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production Catalyst Cloud endpoint.
const DefaultBaseURL = "https://api.catalyst-neuromorphic.com"

const defaultTimeout = 30 * time.Second

// maxErrorBodySize limits the size of error response bodies read from the
// server. 4KB is sufficient for any error message while providing a safety
// limit against misconfigured servers.
const maxErrorBodySize = 4096

// Client is the Catalyst Cloud API client.
//
// A Client holds the API key, base URL, and request timeout, and attaches
// them to every call. It is immutable after construction.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	headers    map[string]string
}

// NewClient creates a new Catalyst Cloud client.
//
// The apiKey is attached to every request via the X-API-Key header.
// Use [Signup] to obtain one.
func NewClient(apiKey string, opts ...Option) *Client {
	return newClient(apiKey, defaultTimeout, opts)
}

func newClient(apiKey string, timeout time.Duration, opts []Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: timeout,
		headers: make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Endpoint paths are concatenated onto the base URL, so a trailing
	// slash would produce double separators.
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c
}

// do performs a single API request and decodes the JSON response into out.
//
// The configured timeout applies unless the caller's context already
// carries a deadline. Transport errors are returned as-is; HTTP statuses
// of 400 and above become an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// parseError normalizes an HTTP error response into an *APIError.
//
// The server reports errors as {"detail": "..."}. Anything that is not
// valid JSON, or lacks the detail field, falls back to the raw body text.
func parseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	detail := string(raw)
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
