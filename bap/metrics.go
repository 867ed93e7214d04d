package bap

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the state manager collectors. A nil *Metrics records nothing.
type Metrics struct {
	applied     prometheus.Counter
	reverted    prometheus.Counter
	failures    *prometheus.CounterVec
	transitions prometheus.Histogram
}

// NewMetrics registers the state manager collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		applied: f.NewCounter(prometheus.CounterOpts{
			Name: "lvbap_bap_decisions_applied_total",
			Help: "Total branching decisions applied",
		}),
		reverted: f.NewCounter(prometheus.CounterOpts{
			Name: "lvbap_bap_decisions_reverted_total",
			Help: "Total branching decisions reverted",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvbap_bap_decision_failures_total",
			Help: "Total decision failures by operation",
		}, []string{"operation"}),
		transitions: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvbap_bap_transition_duration_seconds",
			Help:    "State transition duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~260ms
		}),
	}
}

func (m *Metrics) decision(op string) {
	if m == nil {
		return
	}
	if op == OpApply {
		m.applied.Inc()
	} else {
		m.reverted.Inc()
	}
}

func (m *Metrics) failure(op string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(op).Inc()
}

func (m *Metrics) transition(start time.Time) {
	if m == nil {
		return
	}
	m.transitions.Observe(time.Since(start).Seconds())
}
