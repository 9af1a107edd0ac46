// Package token generates the signed auth tokens the database accepts as
// the auth query parameter on REST and stream requests.
//
// Tokens are compact HS256 JWS strings carrying a versioned claims payload:
// a caller-supplied data map merged with the uid, an issued-at timestamp,
// and optional expiry, not-before, admin, and debug claims. The shared
// secret used for signing is the database secret; the server verifies the
// signature and exposes the embedded data map to its security rules.
//
// # Usage
//
//	tok, err := token.Generate("user-1", map[string]any{"role": "editor"}, secret,
//		token.WithExpiresIn(24*time.Hour))
//	if err != nil {
//		// handle error
//	}
//
// # Size limits
//
// The server silently ignores oversized credentials, so Generate refuses to
// produce them: a uid of 256 characters or more yields ErrUIDTooLong, and a
// signed token of 1024 characters or more yields ErrTokenTooLarge. Both are
// soft rejections carried as sentinel errors; the returned token string is
// always empty when the error is non-nil.
package token
