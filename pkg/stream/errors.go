package stream

import "errors"

var (
	ErrMissingDatabaseURL = errors.New("stream: missing database URL")
	ErrInvalidDatabaseURL = errors.New("stream: invalid database URL")
	ErrMissingHandler     = errors.New("stream: no event handler registered")
	ErrAlreadyOpen        = errors.New("stream: already open")
	ErrAlreadyClosed      = errors.New("stream: already closed")
	ErrConnectFailed      = errors.New("stream: connection failed")
	ErrStreamEnded        = errors.New("stream: connection ended by server")
)
