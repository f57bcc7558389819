// Package inkdrop is an HTTP client for the Inkdrop local server API.
//
// The client is stateless and safe for concurrent use. Every request carries
// the same Basic-Authentication header and is attempted exactly once.
package inkdrop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/inkdropapp/mcp-server/internal/apperr"
)

// Config holds the connection parameters for the Inkdrop server.
type Config struct {
	BaseURL  string
	Username string
	Password string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
}

// Params are query parameters. Nil values are omitted from the request.
type Params map[string]any

// Client talks to the Inkdrop local server.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server described by cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues GET /<path>?<params> and decodes the JSON response into out.
func (c *Client) Fetch(ctx context.Context, path string, params Params, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// Submit issues POST /<path> with body encoded as JSON and decodes the response into out.
func (c *Client) Submit(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &apperr.TransportError{Method: http.MethodPost, URL: path, Err: fmt.Errorf("encode request body: %w", err)}
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

// BuildURL resolves path against the base URL and appends the non-nil params.
func (c *Client) BuildURL(path string, params Params) (string, error) {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u := base.JoinPath(url.PathEscape(strings.TrimPrefix(path, "/")))

	q := u.Query()
	for k, v := range params {
		if v == nil {
			continue
		}
		q.Set(k, fmt.Sprint(v))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, path string, params Params, payload []byte, out any) error {
	target, err := c.BuildURL(path, params)
	if err != nil {
		return &apperr.TransportError{Method: method, URL: c.cfg.BaseURL, Err: err}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &apperr.TransportError{Method: method, URL: target, Err: err}
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperr.TransportError{Method: method, URL: target, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &apperr.BackendError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return &apperr.DecodeError{Err: err}
	}
	return nil
}

// statusText returns the reason phrase sent by the server, falling back to the
// standard text for the code.
func statusText(resp *http.Response) string {
	if text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
