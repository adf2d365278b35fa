package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imarchenko/stockroom/internal/logging"
)

// Client is a base-URL-rooted JSON client over net/http. All calls run
// through the request authenticator and the response fault handler.
type Client struct {
	baseURL string
	http    *http.Client
	faults  *Handler
	log     logging.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the scheme://host:port of the backend.
	BaseURL string
	// AuthBase is the path prefix of the credential-issuing endpoints,
	// e.g. "/api/auth". Calls under it skip the bearer header and the
	// global fault side effects.
	AuthBase string
	// Timeout bounds each call end to end.
	Timeout time.Duration
}

// New builds a Client whose transport reads tokens from tokens and whose
// failures are routed through faults.
func New(opts Options, tokens TokenSource, faults *Handler, log logging.Logger) *Client {
	faults.AuthBase = opts.AuthBase

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &authTransport{
				base:     http.DefaultTransport,
				tokens:   tokens,
				authBase: opts.AuthBase,
			},
		},
		faults: faults,
		log:    log.With("component", "api"),
	}
}

// Get issues a GET and decodes the JSON response into out (skipped when out
// is nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with in as the JSON body and decodes the response into
// out (either may be nil).
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put issues a PUT with in as the JSON body and decodes the response into
// out (either may be nil).
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		f := Classify(path, 0, nil, err)
		c.log.Warn(ctx, "call failed", "method", method, "path", path, "kind", f.Kind.String())
		c.faults.Handle(ctx, f)
		return f
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		f := Classify(path, 0, nil, err)
		c.faults.Handle(ctx, f)
		return f
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f := Classify(path, resp.StatusCode, data, nil)
		c.log.Warn(ctx, "call failed", "method", method, "path", path,
			"status", resp.StatusCode, "kind", f.Kind.String())
		c.faults.Handle(ctx, f)
		return f
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}

	return nil
}
