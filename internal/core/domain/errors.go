package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested form does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSpec indicates the form spec failed validation.
	ErrInvalidSpec = errors.New("invalid form spec")

	// ErrAuthRequired indicates no stored credentials were found.
	// Run `formery auth login` to obtain them.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the stored credentials have expired and
	// refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
