package formatcache

import (
	"github.com/AntonStoeckl/datetool-go/datetool"
)

// Option defines a functional option for configuring Cache.
type Option func(*Cache) error

// WithLogger sets the logger for the Cache.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: formatter constructions with pattern, formatter id and timing
// Error level: patterns the formatter engine rejected.
func WithLogger(logger datetool.Logger) Option {
	return func(c *Cache) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Cache.
// The collector will receive cache hits, constructions, construction failures and durations,
// and the number of cached formatters.
func WithMetrics(collector datetool.MetricsCollector) Option {
	return func(c *Cache) error {
		c.metricsCollector = collector
		return nil
	}
}
