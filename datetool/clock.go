package datetool

import "time"

// Clock is the source of the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
