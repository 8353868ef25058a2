package api

import (
	"errors"
	"net/http"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service"
	"github.com/taskward/taskward-api/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	// Bad request errors. A malformed task ID is not among these: the store
	// treats it as data absence, so it never crosses this boundary.
	case errors.Is(err, service.ErrInvalidPage),
		errors.Is(err, service.ErrInvalidPageSize),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrForbidden):
		return "Forbidden"

	case errors.Is(err, service.ErrInvalidPage):
		return "Page number must not be negative"

	case errors.Is(err, service.ErrInvalidPageSize):
		return "Page size must be positive"

	case errors.Is(err, domain.ErrInvalidStatus):
		return "Invalid task status"

	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email"

	default:
		return "An unexpected error occurred"
	}
}
