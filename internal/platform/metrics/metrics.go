package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus metrics.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// New creates and registers the HTTP metrics.
func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tpb_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		Latency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tpb_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"route"}),
	}
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m != nil {
		m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
		m.Latency.WithLabelValues(route).Observe(d.Seconds())
	}
}

// Middleware labels requests by their chi route pattern, never the raw path.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.ObserveRequest(route, r.Method, status, time.Since(start))
	})
}
