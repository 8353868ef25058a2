package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

const (
	// UserEmailContextKey is the context key under which the auth
	// middleware stores the verified caller email.
	UserEmailContextKey ContextKey = "userEmail"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID
	// (32 hex characters).
	traceIDLength = 16
)

// SetTraceID adds a fresh trace ID to the context.
// This is used to correlate logs and error responses for one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// UserEmail extracts the verified caller email attached by the auth
// middleware. The boolean reports whether it was present.
func UserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailContextKey).(string)
	return email, ok && email != ""
}

func generateTraceID() string {
	b := make([]byte, traceIDLength)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
