package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrymomot/firetree/pkg/logger"
	"github.com/dmitrymomot/firetree/pkg/treepath"
)

// Stream is a subscription to the change feed of one path. The zero value
// is not usable; construct with New. A Stream moves from closed to open
// exactly once and back; it is not reopened after Close.
type Stream struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger

	mu       sync.Mutex
	handlers []Handler
	open     bool
	closed   bool
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
}

// Option configures a Stream at construction time.
type Option func(*Stream)

// WithHTTPClient replaces the default HTTP client. The client must not
// enforce an overall request timeout; the connection is held open for the
// lifetime of the subscription.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Stream) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger attaches a logger; the stream emits debug-level records on
// connect, disconnect, and per event, and is silent otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(s *Stream) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a closed subscription to path on the database at
// databaseURL. The authToken is attached as the auth query parameter.
func New(databaseURL string, path treepath.Path, authToken string, opts ...Option) (*Stream, error) {
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

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + path.Encode()
	if authToken != "" {
		q := u.Query()
		q.Set("auth", authToken)
		u.RawQuery = q.Encode()
	}

	s := &Stream{
		endpoint: u.String(),
		// No overall timeout: the response body stays open for the life
		// of the subscription.
		client: &http.Client{},
		log:    logger.Noop(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// OnEvent registers fn to receive every event on this connection, in
// arrival order. Must be called before Open; once the stream is open,
// registration fails with ErrAlreadyOpen. Multiple handlers are invoked
// in registration order.
func (s *Stream) OnEvent(fn Handler) error {
	if fn == nil {
		return ErrMissingHandler
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrAlreadyClosed
	}
	if s.open {
		return ErrAlreadyOpen
	}
	s.handlers = append(s.handlers, fn)
	return nil
}

// Open establishes the connection and starts delivering events to the
// registered handlers on a background goroutine. The provided context
// bounds the whole subscription: cancelling it has the same effect as
// Close.
func (s *Stream) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrAlreadyClosed
	}
	if s.open {
		s.mu.Unlock()
		return ErrAlreadyOpen
	}
	if len(s.handlers) == 0 {
		s.mu.Unlock()
		return ErrMissingHandler
	}
	handlers := s.handlers
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		cancel()
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		cancel()
		return fmt.Errorf("%w: server returned %d: %s", ErrConnectFailed, resp.StatusCode, body)
	}

	s.mu.Lock()
	s.open = true
	s.cancel = cancel
	s.mu.Unlock()

	s.log.Debug("stream opened", slog.String("endpoint", req.URL.Path))
	go s.readLoop(ctx, resp.Body, handlers)

	return nil
}

// Close terminates the subscription and releases the connection. It is
// idempotent and safe to call whether or not the stream was ever opened.
// Close waits for the reader goroutine to exit, so no handler runs after
// Close returns.
func (s *Stream) Close() error {
	s.mu.Lock()
	wasOpen := s.open
	s.closed = true
	s.open = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wasOpen {
		<-s.done
	}
	return nil
}

// Err reports why delivery stopped. It is nil while the stream is open or
// after a clean Close, and carries the terminal transport error after a
// server-side drop.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// readLoop parses SSE frames off the wire and dispatches them inline.
// Frame format per the SSE spec: "event:" and "data:" field lines,
// dispatch on blank line, ":" lines are comments.
func (s *Stream) readLoop(ctx context.Context, body io.ReadCloser, handlers []Handler) {
	defer close(s.done)
	defer func() { _ = body.Close() }()

	var eventName string
	var data []string

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if eventName != "" || len(data) > 0 {
				if eventName == "" {
					eventName = "message" // SSE default event name
				}
				s.dispatch(eventName, strings.Join(data, "\n"), handlers)
			}
			eventName = ""
			data = nil
		case strings.HasPrefix(line, ":"):
			// comment / keepalive padding
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	err := scanner.Err()

	s.mu.Lock()
	intentional := s.closed || ctx.Err() != nil
	if !intentional {
		if err == nil {
			err = ErrStreamEnded
		}
		s.err = err
	}
	s.open = false
	// Reader exit is terminal either way: the handle cannot be reopened
	// after a drop, only replaced.
	s.closed = true
	s.mu.Unlock()

	if intentional {
		s.log.Debug("stream closed")
		return
	}
	s.log.Debug("stream dropped", slog.Any("error", err))
}

func (s *Stream) dispatch(name, data string, handlers []Handler) {
	ev, err := parseEvent(name, data)
	if err != nil {
		s.log.Debug("discarding undecodable event",
			slog.String("event", name),
			slog.Any("error", err),
		)
		return
	}

	s.log.Debug("event received", slog.String("event", name))
	for _, fn := range handlers {
		fn(ev)
	}
}
