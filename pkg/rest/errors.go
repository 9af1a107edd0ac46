package rest

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDatabaseURL = errors.New("rest: missing database URL")
	ErrInvalidDatabaseURL = errors.New("rest: invalid database URL")
	ErrRequestFailed      = errors.New("rest: request failed")
	ErrDecodeResponse     = errors.New("rest: response body is not valid JSON")
)

// RequestError is returned for any response outside the 2xx range. The
// body is kept verbatim so callers can inspect the server's error payload
// (with debug tokens the server returns rule-evaluation detail there).
type RequestError struct {
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("rest: server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("rest: server returned %d: %s", e.StatusCode, e.Body)
}
