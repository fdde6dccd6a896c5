package common

import "errors"

var (
	// ErrInvalidInput is returned by prompts and command parsers for
	// missing or malformed operator input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotPermitted is returned when a command's destination was refused
	// by admission control.
	ErrNotPermitted = errors.New("not permitted")
)
