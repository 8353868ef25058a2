// Package auth provides the token service: issuing and verifying the
// signed, time-limited session credential that encodes a user's email
// identity.
//
// Verification is stateless; no credential is ever stored server-side.
// Revocation is therefore client-side discard only (the logout endpoint
// instructs the browser to delete the cookie).
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing session credentials.
type JWTService interface {
	// GenerateToken creates a signed credential encoding the given email
	// identity with the configured expiry (24 hours by default).
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken verifies the credential's signature and expiry and
	// extracts its claims. Returns ErrExpiredToken, ErrTokenNotYetValid,
	// or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a session credential.
type Claims struct {
	// Email is the identity the credential was issued for. It is the sole
	// ownership key for all task and stats operations.
	Email string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
