package contact

import "errors"

// Contact-related errors
var (
	// Validation errors
	ErrEmptyName = errors.New("name cannot be empty")

	// Business logic errors
	ErrDuplicateName   = errors.New("contact name already exists")
	ErrContactNotFound = errors.New("contact not found")

	// Storage errors
	ErrMalformedSnapshot = errors.New("malformed contacts snapshot")
)
