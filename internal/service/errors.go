package service

import "errors"

// Common service errors used across task and stats operations.
var (
	// ErrForbidden is returned when the authenticated identity does not
	// match the resource owner claimed in the request. No data access is
	// performed in that case.
	ErrForbidden = errors.New("caller does not own the requested resource")

	// ErrInvalidPage is returned when a negative page number is requested.
	ErrInvalidPage = errors.New("page number must not be negative")

	// ErrInvalidPageSize is returned when a non-positive page size is
	// requested.
	ErrInvalidPageSize = errors.New("page size must be positive")
)
