package errs

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when input data is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when access is not authorized
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is returned when an operation conflicts with the current
	// relationship state (duplicate request, already friends)
	ErrConflict = errors.New("conflict with current state")
)
