// Package network provides the blocking HTTP GET used for every catalog request.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/log"
	"golang.org/x/net/http2"
)

// Client fetches raw response bodies with a fixed set of identification headers.
type Client struct {
	http      *http.Client
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithUserAgent overrides the browser-like User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying http.Client (tests use httptest servers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a Client whose requests give up after timeout. A zero timeout disables the bound.
func New(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(),
		},
		userAgent: constant.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	// Uncompressed bodies are requested explicitly below.
	t.DisableCompression = true

	if err := http2.ConfigureTransport(t); err != nil {
		log.Debugf("http2 not configured: %v", err)
	}
	return t
}

// Get performs a GET and returns the full body. Non-2xx statuses are errors.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Accept-Charset", "utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}
