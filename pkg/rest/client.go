package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/firetree/pkg/logger"
	"github.com/dmitrymomot/firetree/pkg/treepath"
)

// methodOverrideHeader signals PATCH semantics on a POST request; the
// server's HTTP stack does not accept PATCH directly.
const methodOverrideHeader = "X-HTTP-Method-Override"

// Client issues authenticated request/response calls against the database.
// A Client is intended for single-owner use; share results, not handles.
type Client struct {
	baseURL   *url.URL
	authToken string
	client    *http.Client
	log       *slog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. for custom
// transports or testing. Nil clients are ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.client = c
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.client.Timeout = d }
}

// WithLogger attaches a logger; the client emits debug-level records for
// each round-trip and is silent otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(cl *Client) {
		if log != nil {
			cl.log = log
		}
	}
}

// New creates a client rooted at databaseURL. The authToken is attached
// to every request as the auth query parameter; pass an empty token for
// databases with open security rules.
func New(databaseURL, authToken string, opts ...Option) (*Client, error) {
	if databaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatabaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https", ErrInvalidDatabaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidDatabaseURL)
	}

	c := &Client{
		baseURL:   u,
		authToken: authToken,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get reads the document at path.
func (c *Client) Get(ctx context.Context, path treepath.Path) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// Set writes value at path, replacing the entire subtree. The server
// echoes the written value back. A nil value deletes the subtree; the
// encoder emits JSON null and the server treats null writes as removal.
func (c *Client) Set(ctx context.Context, path treepath.Path, value any) (any, error) {
	return c.do(ctx, http.MethodPut, path, &value, nil)
}

// Push appends value under a server-generated child key at path and
// returns the server's confirmation, a document of the form
// {"name": "<generated-key>"}.
func (c *Client) Push(ctx context.Context, path treepath.Path, value any) (any, error) {
	return c.do(ctx, http.MethodPost, path, &value, nil)
}

// Update shallow-merges value into the document at path: named children
// are replaced, siblings are left untouched. Sent as POST with the PATCH
// method-override header.
func (c *Client) Update(ctx context.Context, path treepath.Path, value any) (any, error) {
	return c.do(ctx, http.MethodPost, path, &value, http.Header{
		methodOverrideHeader: []string{"PATCH"},
	})
}

// Delete removes the subtree at path. Equivalent to Set with a nil value.
func (c *Client) Delete(ctx context.Context, path treepath.Path) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// endpoint builds the request URL for path with the auth query parameter.
func (c *Client) endpoint(path treepath.Path) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + path.Encode()
	if c.authToken != "" {
		q := u.Query()
		q.Set("auth", c.authToken)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// do performs one round-trip and decodes the JSON response. body is a
// pointer so that a nil document still serializes as JSON null.
func (c *Client) do(ctx context.Context, method string, path treepath.Path, body *any, header http.Header) (any, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(*body)
		if err != nil {
			return nil, fmt.Errorf("rest: encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrRequestFailed, err)
	}

	c.log.DebugContext(ctx, "request completed",
		slog.String("method", method),
		slog.String("path", path.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: raw}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return doc, nil
}
