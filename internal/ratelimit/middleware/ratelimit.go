package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"tpb/internal/ratelimit/models"
	"tpb/pkg/platform/httputil"
	"tpb/pkg/requestcontext"
)

// BucketStore counts requests per key over a sliding window.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
}

type Middleware struct {
	store    BucketStore
	limit    int
	window   time.Duration
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled turns the limiter into a pass-through.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func New(store BucketStore, limit int, window time.Duration, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.limit <= 0 {
		m.disabled = true
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// Handler limits signed-in callers by user id and anonymous callers by IP.
// Store failures let the request through.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := callerKey(r)
		result, err := m.store.Allow(ctx, key, m.limit, m.window)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to check rate limit", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)
		if !result.Allowed {
			writeRateLimitExceeded(w, result)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func callerKey(r *http.Request) string {
	if userID := requestcontext.UserID(r.Context()); !userID.IsZero() {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.ExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many messages. Please wait a moment and try again.",
		RetryAfter: result.RetryAfter,
	})
}
