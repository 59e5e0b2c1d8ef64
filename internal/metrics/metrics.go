// Package metrics exposes Prometheus collectors for the filter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vrfilter/internal/diagnostic"
	"vrfilter/internal/message"
)

// Metrics provides observability for envelope filtering.
type Metrics struct {
	// Envelopes by kind and outcome ("filtered" or "passthrough")
	Envelopes *prometheus.CounterVec

	// Paths skipped during projection, by diagnostic code
	SkippedPaths *prometheus.CounterVec

	// Projection latency
	ProjectLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Envelopes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vrfilter_envelopes_total",
			Help: "Total envelopes handled by kind and outcome",
		}, []string{"kind", "outcome"}),

		SkippedPaths: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vrfilter_skipped_paths_total",
			Help: "Allowed property paths skipped during projection by diagnostic code",
		}, []string{"code"}),

		ProjectLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "vrfilter_project_duration_seconds",
			Help:    "Duration of record projection",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// ObserveFiltered records a projected envelope.
func (m *Metrics) ObserveFiltered(kind message.Kind, diags diagnostic.Diagnostics, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.Envelopes.WithLabelValues(kindLabel(kind), "filtered").Inc()
	m.ProjectLatency.Observe(elapsed.Seconds())

	for _, d := range diags.All() {
		m.SkippedPaths.WithLabelValues(d.Code).Inc()
	}
}

// ObservePassThrough records an envelope returned unchanged.
func (m *Metrics) ObservePassThrough(kind message.Kind) {
	if m != nil {
		m.Envelopes.WithLabelValues(kindLabel(kind), "passthrough").Inc()
	}
}

func kindLabel(kind message.Kind) string {
	text, err := kind.MarshalText()
	if err != nil {
		return "invalid"
	}

	return string(text)
}
