package transport

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
)

// Domain identifies which backend a client is bound to.
type Domain string

const (
	// DomainIdentity is the account/authorization backend.
	DomainIdentity Domain = "identity"
	// DomainAnalytical is the risk-analysis backend.
	DomainAnalytical Domain = "analytical"
)

// Config binds a client to one backend domain.
type Config struct {
	Domain  Domain
	BaseURL string
	// Headers are sent on every request. Content-Type defaults to
	// application/json when unset.
	Headers map[string]string
	Timeout time.Duration
}

// Client is an HTTP client bound to a single backend domain. Two instances
// built from the same TokenSource and UnauthorizedFunc share interceptor
// behavior but nothing else; a failure on one never touches the other.
type Client struct {
	domain  Domain
	baseURL string
	headers map[string]string
	http    *http.Client
}

// NewClient builds a domain-bound client. tokens and onUnauthorized are
// shared with the sibling domain's client; base overrides the underlying
// RoundTripper (nil means http.DefaultTransport).
func NewClient(cfg Config, tokens TokenSource, onUnauthorized UnauthorizedFunc, base http.RoundTripper) (*Client, error) {
	if cfg.Domain == "" {
		return nil, fmt.Errorf("transport: domain required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("transport: %s base URL required", cfg.Domain)
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("transport: %s base URL %q invalid", cfg.Domain, cfg.BaseURL)
	}

	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range cfg.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}

	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		domain:  cfg.Domain,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: headers,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &interceptor{
				domain:         cfg.Domain,
				tokens:         tokens,
				onUnauthorized: onUnauthorized,
				next:           base,
			},
		},
	}, nil
}

// Domain returns the backend domain this client is bound to.
func (c *Client) Domain() Domain { return c.domain }

// BaseURL returns the resolved base address.
func (c *Client) BaseURL() string { return c.baseURL }

// PostJSON issues a POST with a JSON body and decodes a 2xx response into
// out (skipped when out is nil).
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// GetJSON issues a GET and decodes a 2xx response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("transport: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("transport: build %s %s: %w", method, path, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Network failure: no response was received, nothing to normalize.
		return fmt.Errorf("transport: %s %s %s: %w", c.domain, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(c.domain, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("transport: decode %s %s: %w", method, path, err)
	}
	return nil
}
