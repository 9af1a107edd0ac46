package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Version is the claims schema version embedded in every token under the
// "v" claim. The server rejects tokens carrying a version it does not know.
const Version = 0

// Size limits enforced by the server. Generate rejects anything at or above
// them rather than emitting a credential the server would ignore.
const (
	maxUIDLength   = 256
	maxTokenLength = 1024
)

// Option configures optional claims on a generated token.
type Option func(*options)

type options struct {
	expiresIn time.Duration
	notBefore time.Duration
	admin     bool
	debug     bool
}

// WithExpiresIn embeds an exp claim at now + d. Without it the token never
// expires.
func WithExpiresIn(d time.Duration) Option {
	return func(o *options) { o.expiresIn = d }
}

// WithNotBefore embeds an nbf claim at now + d, making the token invalid
// until then.
func WithNotBefore(d time.Duration) Option {
	return func(o *options) { o.notBefore = d }
}

// WithAdmin marks the token as an admin credential, bypassing the server's
// security rules entirely.
func WithAdmin() Option {
	return func(o *options) { o.admin = true }
}

// WithDebug asks the server to return verbose security-rule errors for
// requests made with this token.
func WithDebug() Option {
	return func(o *options) { o.debug = true }
}

// Generate signs an auth token for uid with the database secret. The data
// map is merged into the token's "d" claim with uid stored under the "uid"
// key; a caller-supplied "uid" entry in data is overwritten. All temporal
// claims are computed from a single wall-clock capture.
func Generate(uid string, data map[string]any, secret string, opts ...Option) (string, error) {
	if uid == "" {
		return "", ErrMissingUID
	}
	if secret == "" {
		return "", ErrMissingSecret
	}
	if len(uid) >= maxUIDLength {
		return "", ErrUIDTooLong
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	d := make(map[string]any, len(data)+1)
	for k, v := range data {
		d[k] = v
	}
	d["uid"] = uid

	now := time.Now()
	claims := jwt.MapClaims{
		"v":   Version,
		"d":   d,
		"iat": now.Unix(),
	}
	if o.expiresIn != 0 {
		claims["exp"] = now.Add(o.expiresIn).Unix()
	}
	if o.notBefore != 0 {
		claims["nbf"] = now.Add(o.notBefore).Unix()
	}
	if o.admin {
		claims["admin"] = true
	}
	if o.debug {
		claims["debug"] = true
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("token: signing failed: %w", err)
	}

	if len(signed) >= maxTokenLength {
		return "", ErrTokenTooLarge
	}

	return signed, nil
}
