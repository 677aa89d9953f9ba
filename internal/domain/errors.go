package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrNoToken indicates a checkout was attempted without a bearer
	// credential; callers redirect to login instead of calling upstream.
	ErrNoToken = errors.New("missing auth token")

	// ErrUnauthorized indicates upstream rejected the bearer credential.
	ErrUnauthorized = errors.New("unauthorized")
)
