// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
//	userID := requestcontext.UserID(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithUserID(ctx, 7)
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "tpb/pkg/domain"
)

type (
	userIDKey      struct{}
	sessionIDKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// -----------------------------------------------------------------------------
// Auth context
// -----------------------------------------------------------------------------

// UserID retrieves the authenticated user ID from the context.
// Returns zero when the caller is anonymous.
func UserID(ctx context.Context) id.UserID {
	if userID, ok := ctx.Value(userIDKey{}).(id.UserID); ok {
		return userID
	}
	return 0
}

// WithUserID injects a user ID into the context.
func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// SessionID retrieves the browser session identifier from the context.
func SessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return sessionID
	}
	return ""
}

// WithSessionID injects a session identifier into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() outside HTTP requests.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
