package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"tpb/pkg/requestcontext"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// RequestContext stamps the request with an id and a single "now" used by
// everything downstream. A caller-supplied X-Request-ID is kept.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
