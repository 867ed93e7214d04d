package separation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	methodSingle       = "single"
	methodSubtours     = "subtours"
	methodMostViolated = "most_violated"
)

// Metrics holds the separator collectors. A nil *Metrics records nothing.
type Metrics struct {
	calls    *prometheus.CounterVec
	cuts     *prometheus.CounterVec
	minCuts  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the separator collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvbap_separation_calls_total",
			Help: "Total separation calls by method",
		}, []string{"method"}),
		cuts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvbap_separation_cuts_total",
			Help: "Total violated subtour cuts returned by method",
		}, []string{"method"}),
		minCuts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvbap_separation_min_cuts_total",
			Help: "Total min-cut computations by algorithm",
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvbap_separation_duration_seconds",
			Help:    "Separation call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"method"}),
	}
}

func (m *Metrics) observe(method string, start time.Time, cuts int) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(method).Inc()
	m.cuts.WithLabelValues(method).Add(float64(cuts))
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func (m *Metrics) minCut(algorithm string) {
	if m == nil {
		return
	}
	m.minCuts.WithLabelValues(algorithm).Inc()
}
