package firetree

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/firetree/pkg/config"
	"github.com/dmitrymomot/firetree/pkg/logger"
	"github.com/dmitrymomot/firetree/pkg/rest"
	"github.com/dmitrymomot/firetree/pkg/stream"
	"github.com/dmitrymomot/firetree/pkg/token"
	"github.com/dmitrymomot/firetree/pkg/treepath"
)

// Config holds everything the SDK needs to talk to one database.
type Config struct {
	// DatabaseURL is the root URL of the database, e.g.
	// https://example.firetree.dev.
	DatabaseURL string `env:"FIRETREE_DATABASE_URL,required"`

	// Secret is the database's shared signing secret, used to mint auth
	// tokens with Token. Optional when AuthToken is provided directly.
	Secret string `env:"FIRETREE_SECRET"`

	// AuthToken is attached to every request as the auth query
	// parameter. Leave empty for databases with open rules.
	AuthToken string `env:"FIRETREE_AUTH_TOKEN"`

	// Timeout bounds each REST round-trip. Stream connections are not
	// subject to it.
	Timeout time.Duration `env:"FIRETREE_TIMEOUT" envDefault:"30s"`

	// LogLevel sets the minimum level of the client's default logger.
	// The SDK logs at debug level only, so anything above debug keeps it
	// silent. Ignored when a logger is supplied with WithLogger.
	LogLevel slog.Level `env:"FIRETREE_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads Config from the environment (and ./.env when present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Client is the composed SDK entry point. REST calls go through the
// embedded rest.Client; Stream hands out independent subscriptions that
// share the client's URL and auth token.
type Client struct {
	cfg        Config
	rest       *rest.Client
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client used for REST calls
// and stream connections.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithLogger attaches a logger passed through to the underlying clients.
func WithLogger(log *slog.Logger) Option {
	return func(cl *Client) {
		if log != nil {
			cl.log = log
		}
	}
}

// New builds a Client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.New(logger.WithLevel(cfg.LogLevel))
	}

	restOpts := []rest.Option{rest.WithLogger(c.log)}
	if c.httpClient != nil {
		restOpts = append(restOpts, rest.WithHTTPClient(c.httpClient))
	} else if cfg.Timeout > 0 {
		restOpts = append(restOpts, rest.WithTimeout(cfg.Timeout))
	}

	rc, err := rest.New(cfg.DatabaseURL, cfg.AuthToken, restOpts...)
	if err != nil {
		return nil, err
	}
	c.rest = rc

	return c, nil
}

// Token mints a signed auth token for uid using the configured database
// secret. The result can be handed to end-user clients or used as the
// AuthToken of a new Client.
func (c *Client) Token(uid string, data map[string]any, opts ...token.Option) (string, error) {
	return token.Generate(uid, data, c.cfg.Secret, opts...)
}

// REST exposes the underlying request/response client.
func (c *Client) REST() *rest.Client {
	return c.rest
}

// Stream creates a closed change-stream subscription for path, sharing
// the client's database URL and auth token. Register handlers with
// OnEvent, then Open it.
func (c *Client) Stream(path treepath.Path, opts ...stream.Option) (*stream.Stream, error) {
	streamOpts := []stream.Option{stream.WithLogger(c.log)}
	if c.httpClient != nil {
		streamOpts = append(streamOpts, stream.WithHTTPClient(c.httpClient))
	}
	return stream.New(c.cfg.DatabaseURL, path, c.cfg.AuthToken, append(streamOpts, opts...)...)
}

// Get reads the document at path.
func (c *Client) Get(ctx context.Context, path treepath.Path) (any, error) {
	return c.rest.Get(ctx, path)
}

// Set replaces the subtree at path with value.
func (c *Client) Set(ctx context.Context, path treepath.Path, value any) (any, error) {
	return c.rest.Set(ctx, path, value)
}

// Push appends value under a generated key at path.
func (c *Client) Push(ctx context.Context, path treepath.Path, value any) (any, error) {
	return c.rest.Push(ctx, path, value)
}

// Update shallow-merges value into the document at path.
func (c *Client) Update(ctx context.Context, path treepath.Path, value any) (any, error) {
	return c.rest.Update(ctx, path, value)
}

// Delete removes the subtree at path.
func (c *Client) Delete(ctx context.Context, path treepath.Path) (any, error) {
	return c.rest.Delete(ctx, path)
}
