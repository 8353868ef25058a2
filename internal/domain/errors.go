package domain

import (
	"errors"
	"net/mail"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrEmptyEmail is returned when a required email field is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidStatus is returned when a task status is not one of the
	// known values.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidID is returned when a document ID is malformed.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidateEmail performs a basic shape check on an email address.
// It is intentionally lenient: ownership scoping treats emails as opaque,
// case-sensitive keys, so only the gross structure is verified here.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	// The bare address only; display-name forms are not ownership keys.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	// RFC 5322 allows a dotless domain; ownership keys require one.
	host := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(host, ".") {
		return ErrInvalidEmail
	}

	return nil
}
