package token

import "errors"

var (
	ErrMissingUID    = errors.New("token: missing uid")
	ErrMissingSecret = errors.New("token: missing secret")
	ErrUIDTooLong    = errors.New("token: uid exceeds 255 characters")
	ErrTokenTooLarge = errors.New("token: signed token exceeds 1023 characters")
)
