package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tpb/internal/platform/metrics"
	"tpb/internal/platform/middleware"
	"tpb/pkg/platform/httputil"
)

// Registrar mounts a module's endpoints.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

// Deps is everything the router wires together.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Tokens   middleware.TokenValidator
	Sessions middleware.SessionLookup
	Throttle func(http.Handler) http.Handler
	Health   map[string]HealthCheck
	Modules  []Registrar
}

// NewRouter wires the public endpoints. Module routes see the caller's
// identity when one is present; /healthz and /metrics never do.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestContext)
	r.Use(chimw.Recoverer)
	r.Use(d.Metrics.Middleware)

	r.Get("/healthz", healthz(d.Health))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(d.Tokens, d.Sessions, d.Logger))
		if d.Throttle != nil {
			r.Use(d.Throttle)
		}
		for _, m := range d.Modules {
			m.Register(r)
		}
	})
	return r
}

func healthz(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		healthy := true
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}
		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, code, map[string]any{"healthy": healthy, "checks": status})
	}
}
