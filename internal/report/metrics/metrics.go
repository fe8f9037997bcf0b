package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the report module.
type Metrics struct {
	// Analysis requests by outcome
	ReportOutcome *prometheus.CounterVec

	// End-to-end composition latency
	ComposeLatency prometheus.Histogram

	// Synopsis length after clamping, in runes
	SynopsisLength prometheus.Histogram
}

// New creates a Metrics instance with all report module metrics registered.
func New() *Metrics {
	return &Metrics{
		ReportOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hairnote_report_total",
			Help: "Analysis requests by outcome",
		}, []string{"outcome"}), // outcome: "ok", "validation_failed", "error"

		ComposeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hairnote_report_compose_duration_seconds",
			Help:    "Duration of full report composition",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),

		SynopsisLength: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hairnote_synopsis_length_chars",
			Help:    "Synopsis character counts after length clamping",
			Buckets: []float64{850, 900, 950, 975, 1000, 1025},
		}),
	}
}

// ObserveCompose records one successful composition.
func (m *Metrics) ObserveCompose(d time.Duration, synopsisLen int) {
	if m == nil {
		return
	}
	m.ReportOutcome.WithLabelValues("ok").Inc()
	m.ComposeLatency.Observe(d.Seconds())
	m.SynopsisLength.Observe(float64(synopsisLen))
}

// ObserveFailure records one failed analysis request.
func (m *Metrics) ObserveFailure(outcome string) {
	if m == nil {
		return
	}
	m.ReportOutcome.WithLabelValues(outcome).Inc()
}
