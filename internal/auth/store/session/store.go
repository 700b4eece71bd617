// Package session maps browser session ids (the tpb_session cookie) to users.
package session

import (
	"context"
	"time"

	id "tpb/pkg/domain"
)

// CookieName is the browser cookie carrying the session id.
const CookieName = "tpb_session"

// Store is implemented by every session backend. Lookup returns
// sentinel.ErrNotFound for unknown or expired sessions.
type Store interface {
	Create(ctx context.Context, userID id.UserID, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, sessionID string) (id.UserID, error)
	Delete(ctx context.Context, sessionID string) error
}
