package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the clerk pipeline.
type Metrics struct {
	// Model call latency by outcome
	ModelLatency *prometheus.HistogramVec

	// Directive results by type and status
	DirectiveResults *prometheus.CounterVec

	// Token usage by direction
	Tokens *prometheus.CounterVec

	// Chats served by persona
	Chats *prometheus.CounterVec
}

// New creates a Metrics instance with all clerk metrics registered.
func New() *Metrics {
	return &Metrics{
		ModelLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tpb_clerk_model_duration_seconds",
			Help:    "Duration of model calls by outcome",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"outcome"}), // outcome: "ok", "error", "timeout"

		DirectiveResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tpb_clerk_directive_results_total",
			Help: "Directive results by type and status",
		}, []string{"type", "status"}),

		Tokens: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tpb_clerk_tokens_total",
			Help: "Model tokens consumed by direction",
		}, []string{"direction"}),

		Chats: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tpb_clerk_chats_total",
			Help: "Chat requests answered by persona",
		}, []string{"clerk"}),
	}
}

func (m *Metrics) ObserveModelLatency(outcome string, d time.Duration) {
	if m != nil {
		m.ModelLatency.WithLabelValues(outcome).Observe(d.Seconds())
	}
}

// IncrementDirective records one directive result.
func (m *Metrics) IncrementDirective(directiveType, status string) {
	if m != nil {
		m.DirectiveResults.WithLabelValues(directiveType, status).Inc()
	}
}

func (m *Metrics) AddTokens(input, output int) {
	if m != nil {
		m.Tokens.WithLabelValues("input").Add(float64(input))
		m.Tokens.WithLabelValues("output").Add(float64(output))
	}
}

func (m *Metrics) IncrementChat(clerkKey string) {
	if m != nil {
		m.Chats.WithLabelValues(clerkKey).Inc()
	}
}
