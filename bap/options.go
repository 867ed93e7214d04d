package bap

import "github.com/sirupsen/logrus"

type options struct {
	log     logrus.FieldLogger
	metrics *Metrics
}

// Option configures a StateManager.
type Option func(*options)

// WithLogger sets the logger used for transition traces.
// Default: logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
