package relative

import (
	"github.com/AntonStoeckl/datetool-go/datetool"
)

// Option defines a functional option for configuring Describer.
type Option func(*Describer) error

// WithMetrics sets the metrics collector for the Describer.
// It receives one datetool_relative_descriptions_total increment per description, labelled by bucket.
func WithMetrics(collector datetool.MetricsCollector) Option {
	return func(d *Describer) error {
		d.metricsCollector = collector
		return nil
	}
}

// WithFallbackPattern replaces the pattern used for instants ten days or more in the past.
// The pattern is resolved from the FormatterSource when the Describer is built.
func WithFallbackPattern(pattern string) Option {
	return func(d *Describer) error {
		d.fallbackPattern = pattern
		return nil
	}
}
