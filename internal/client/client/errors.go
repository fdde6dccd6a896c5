package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the service rejected the credentials or the caller.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable means the service could not be reached.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUpstream means the service answered with a server error.
	ErrUpstream = errors.New("upstream error")
	ErrNotFound = errors.New("not found")
	// ErrBadRequest means the service refused the request as malformed.
	ErrBadRequest = errors.New("bad request")
	// ErrInvalidPublicID is returned before any request is made when a
	// publicId is not a UUID.
	ErrInvalidPublicID = errors.New("invalid public id")
)

// StatusError is a non-2xx response. It unwraps to one of the sentinels above.
type StatusError struct {
	Code    int
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d): %s", e.kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s (status %d)", e.kind, e.Code)
}

func (e *StatusError) Unwrap() error { return e.kind }
