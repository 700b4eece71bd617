package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tpb/internal/auth/store/session"
	id "tpb/pkg/domain"
	"tpb/pkg/platform/httputil"
	"tpb/pkg/platform/sentinel"
	"tpb/pkg/requestcontext"
)

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	Validate(tokenString string) (id.UserID, error)
}

// SessionLookup resolves browser sessions.
type SessionLookup interface {
	Lookup(ctx context.Context, sessionID string) (id.UserID, error)
}

// OptionalAuth identifies the caller by bearer token or session cookie and
// lets anonymous requests through. A bearer token that fails validation is
// rejected; a stale session cookie is treated as anonymous.
func OptionalAuth(tokens TokenValidator, sessions SessionLookup, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && tokens != nil {
				userID, err := tokens.Validate(strings.TrimSpace(bearer))
				if err != nil {
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					httputil.WriteError(w, err)
					return
				}
				next.ServeHTTP(w, r.WithContext(requestcontext.WithUserID(ctx, userID)))
				return
			}

			if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" && sessions != nil {
				userID, err := sessions.Lookup(ctx, cookie.Value)
				switch {
				case err == nil:
					ctx = requestcontext.WithUserID(ctx, userID)
					ctx = requestcontext.WithSessionID(ctx, cookie.Value)
				case errors.Is(err, sentinel.ErrNotFound):
					// anonymous
				default:
					logger.WarnContext(ctx, "session lookup failed, continuing anonymously",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
