// Package wordpress provides the REST client for the remote WordPress site
// and its Rank Math plugin endpoints. It implements autopress.TagService,
// autopress.MediaService, autopress.PostService, and autopress.SEOMetaService.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Per-operation timeouts. Media uploads get the longest window because they
// ship the full image body; everything else is a small JSON exchange.
const (
	DefaultTagTimeout   = 10 * time.Second
	DefaultMediaTimeout = 60 * time.Second
	DefaultPostTimeout  = 30 * time.Second
	DefaultMetaTimeout  = 15 * time.Second
	DefaultAltTimeout   = 10 * time.Second
)

// Client talks to one WordPress site with basic auth (username plus
// application password). All calls are blocking, sequential, and never
// retried; a timeout surfaces as a request failure.
type Client struct {
	baseURL     string
	username    string
	appPassword string

	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Per-operation
// timeouts are applied through contexts, so the client itself carries none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit gates every outgoing call at rps requests per second with a
// burst of 1, for batch politeness. Zero or negative disables the limiter.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a Client for the site at baseURL (trailing slash
// stripped) authenticating as username with the given application password.
func NewClient(baseURL, username, appPassword string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		username:    username,
		appPassword: appPassword,
		httpClient:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends one authenticated request and returns the status code and body.
// The caller owns timeout and cancellation through ctx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, header http.Header) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	req.SetBasicAuth(c.username, c.appPassword)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

// postJSON sends a JSON payload and decodes a JSON response into out when
// out is non-nil and the response carries a body.
func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	header := http.Header{"Content-Type": {"application/json"}}
	status, data, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), header)
	if err != nil {
		return status, err
	}

	if out != nil && len(data) > 0 && is2xx(status) {
		if err := json.Unmarshal(data, out); err != nil {
			return status, fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return status, nil
}

// getJSON fetches and decodes a JSON response.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (int, error) {
	status, data, err := c.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return status, err
	}
	if out != nil && len(data) > 0 && is2xx(status) {
		if err := json.Unmarshal(data, out); err != nil {
			return status, fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return status, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

func unmarshalBody(data []byte, out any) error {
	if len(data) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(data, out)
}
