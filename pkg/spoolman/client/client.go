// Package client talks to the Spoolman REST API. It performs exactly one
// HTTP round-trip per call and hands the JSON body back untouched; it does
// not retry and applies no timeout of its own beyond what the caller's
// context and *http.Client carry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request describes one call against the API, relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON encoded when non-nil.
	Body any
}

// StatusError is returned when the backend answers with a non-2xx status.
// The response body is not parsed.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("spoolman: %s %s: %s", e.Method, e.Path, e.Status)
}

// Client is a Spoolman API client. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a Client for the API rooted at baseURL, e.g.
// http://localhost:7912/api/v1.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("spoolman: invalid base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("spoolman: invalid base url %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes req and returns the compacted JSON response body. An empty
// body is returned as JSON null.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("spoolman: encode body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("spoolman: create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq) //nolint:gosec // base URL comes from operator configuration
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on read

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, &StatusError{
			Method:     method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("spoolman: read body: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null"), nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("spoolman: decode response: %w", err)
	}

	return buf.Bytes(), nil
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}

	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
