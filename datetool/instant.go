package datetool

import (
	"fmt"
	"strconv"
	"time"
)

const millisPerSecond = 1000

// Instant is an immutable point in time with millisecond resolution.
//
// It wraps time.Time and drops everything below the millisecond on construction, so that an Instant
// always round-trips losslessly through a millisecond timestamp.
// The zero value is the zero time.Time, not the Unix epoch.
type Instant struct {
	t time.Time
}

// InstantOf builds an Instant from t, truncated to millisecond resolution.
// The location of t is kept, it only matters for Time and PostgresText.
func InstantOf(t time.Time) Instant {
	return Instant{t: t.Truncate(time.Millisecond)}
}

// InstantFromUnixMilli builds an Instant from milliseconds since the Unix epoch.
func InstantFromUnixMilli(ms int64) Instant {
	return Instant{t: time.UnixMilli(ms)}
}

// ParseTimestamp parses a decimal timestamp string as milliseconds since the Unix epoch.
//
// The input must be a plain decimal integer with an optional leading minus sign.
// Whitespace, fractions, exponents and second-accuracy detection are not supported:
// callers holding second timestamps must scale them themselves.
func ParseTimestamp(timestamp string) (Instant, error) {
	ms, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return Instant{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, timestamp)
	}

	return InstantFromUnixMilli(ms), nil
}

// Time returns the wrapped time.Time.
func (i Instant) Time() time.Time {
	return i.t
}

// In returns the wrapped time in loc.
func (i Instant) In(loc *time.Location) time.Time {
	return i.t.In(loc)
}

// UnixMilli returns the number of milliseconds since the Unix epoch.
func (i Instant) UnixMilli() int64 {
	return i.t.UnixMilli()
}

// IsZero reports whether i wraps the zero time.Time.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

// Equal reports whether i and other represent the same point in time.
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

// Before reports whether i is before other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// After reports whether i is after other.
func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

// Sub returns the duration i-other.
func (i Instant) Sub(other Instant) time.Duration {
	return i.t.Sub(other.t)
}

// Timestamp returns the millisecond timestamp string of i.
func (i Instant) Timestamp() string {
	return i.TimestampWithAccuracy(AccuracyMillisecond)
}

// TimestampWithAccuracy returns the timestamp string of i in the given accuracy.
//
// AccuracySecond truncates toward zero. Every other value renders milliseconds.
func (i Instant) TimestampWithAccuracy(accuracy TimestampAccuracy) string {
	ms := i.UnixMilli()
	if accuracy == AccuracySecond {
		return strconv.FormatInt(ms/millisPerSecond, 10)
	}

	return strconv.FormatInt(ms, 10)
}

// String implements fmt.Stringer with the millisecond timestamp.
func (i Instant) String() string {
	return i.Timestamp()
}
