package domain

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidEmail is returned when an email address fails validation.
	ErrInvalidEmail = errors.New("invalid_email")
	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("missing_fields")
	// ErrInvalidToken is returned when an unsubscribe token fails verification.
	ErrInvalidToken = errors.New("invalid_token")
)
