// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repository/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist
	// (including operations on a stale or deleted identifier).
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername indicates a case-sensitive exact username collision.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials indicates a failed login. Callers cannot
	// distinguish an unknown user from a wrong secret.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyContent indicates blank post or comment content after trimming.
	ErrEmptyContent = errors.New("empty content")

	// ErrEmptyField indicates a required field was left blank.
	ErrEmptyField = errors.New("empty field")

	// ErrPersistenceUnavailable indicates the storage layer failed; the
	// affected mutation is aborted without being partially applied.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrNoSession indicates no user is currently authenticated.
	ErrNoSession = errors.New("no active session")
)
