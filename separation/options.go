package separation

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvbap/flow"
)

// Option configures a Separator.
type Option func(*Separator)

// WithMaxFlow selects the max-flow strategy behind SeparateSubtours and
// SeparateMostViolatedSubtours. Default: flow.AlgoDinic.
func WithMaxFlow(alg flow.Algorithm) Option {
	return func(s *Separator) { s.alg = alg }
}

// WithLogger sets the logger used for debug traces.
// Default: logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Separator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Separator) { s.metrics = m }
}
