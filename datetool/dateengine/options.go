package dateengine

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/datetool-go/datetool"
)

// Option defines a functional option for configuring Engine.
type Option func(*Engine) error

// WithClock replaces the system wall clock, e.g. with a fixed clock in tests.
func WithClock(clock datetool.Clock) Option {
	return func(e *Engine) error {
		if clock == nil {
			return datetool.ErrNilClock
		}

		e.clock = clock

		return nil
	}
}

// WithLocation sets the location used to interpret date strings, render dates and compute weekdays.
// The default is time.Local.
func WithLocation(location *time.Location) Option {
	return func(e *Engine) error {
		if location == nil {
			return datetool.ErrNilLocation
		}

		e.location = location

		return nil
	}
}

// WithLocationName loads the location from the IANA time zone database, e.g. "Asia/Shanghai".
func WithLocationName(name string) Option {
	return func(e *Engine) error {
		location, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: %q: %s", datetool.ErrInvalidLocation, name, err.Error())
		}

		e.location = location

		return nil
	}
}

// WithLogger sets the logger for the Engine.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Warn level: rejected input like malformed timestamps and date strings not matching their pattern.
func WithLogger(logger datetool.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Engine.
// The collector is handed on to the relative.Describer the Engine builds.
func WithMetrics(collector datetool.MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}
