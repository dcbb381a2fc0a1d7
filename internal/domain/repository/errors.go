package repository

import "errors"

var (
	// ErrNotFound is returned when an id does not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername maps the case-insensitive unique index on
	// users.username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrAdminExists maps the partial unique index that allows at most one
	// row with role admin. Enforcing this in storage closes the concurrent
	// check-then-insert window.
	ErrAdminExists = errors.New("an admin already exists")
)
