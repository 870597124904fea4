package repositories

import "errors"

// Sentinel errors shared by all repositories. Handlers translate them into
// HTTP status codes with errors.Is.
var (
	// ErrNotFound marks a lookup for a row that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks a uniqueness or double-booking violation.
	ErrConflict = errors.New("record already exists")
	// ErrInvalid marks a domain rule violation in an otherwise well-formed request.
	ErrInvalid = errors.New("invalid operation")
)
