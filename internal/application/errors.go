package application

import "errors"

// Error taxonomy surfaced to the HTTP boundary. Handlers translate these to
// status codes; anything unwrapped to none of them is a server error.
var (
	// ErrInvalidCredentials covers failed logins (401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden: authenticated but the policy denies the operation (403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound: a resource id does not resolve (404). Always distinct
	// from ErrForbidden so callers can tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrValidation: malformed input against the schema (400).
	ErrValidation = errors.New("validation failed")
	// ErrConflict: duplicate username or admin-already-exists (400).
	ErrConflict = errors.New("conflict")
)
