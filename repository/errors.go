package repository

import "errors"

var (
	// ErrNotFound reports an edit or delete whose target id is missing.
	// The original site ignored these silently; here they surface.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUser reports a registration against an email that
	// already exists.
	ErrDuplicateUser = errors.New("user with this email already exists")

	// ErrInvalidCredentials reports a login without an exact
	// (email, password) match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation wraps entity validation failures at the repository
	// boundary.
	ErrValidation = errors.New("validation failed")
)
