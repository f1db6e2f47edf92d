// Package apperrors defines the typed failures surfaced by the service.
package apperrors

import "errors"

var (
	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken indicates a registration conflict on username.
	ErrUsernameTaken = errors.New("username taken")
	// ErrUnauthorized indicates a missing or unusable session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound indicates the target record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTransport indicates a storage or network call failed.
	ErrTransport = errors.New("transport failure")
)
