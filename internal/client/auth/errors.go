package auth

import "errors"

var (
	// ErrLoginSuperseded is returned by Login when a logout or a newer login
	// happened while the request was in flight. The response is discarded.
	ErrLoginSuperseded = errors.New("login superseded")

	// ErrInvalidIdentity is returned by Login when the identity service
	// answered with a record lacking publicId, login, or roles.
	ErrInvalidIdentity = errors.New("identity service returned an invalid identity")
)
