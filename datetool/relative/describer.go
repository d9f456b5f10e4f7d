package relative

import (
	"strconv"
	"time"

	"github.com/AntonStoeckl/datetool-go/datetool"
	"github.com/AntonStoeckl/datetool-go/datetool/layout"
)

// DefaultFallbackPattern renders the absolute date without zero padding, e.g. "2019-7-5".
const DefaultFallbackPattern = "yyyy-M-d"

const (
	metricDescriptions = "datetool_relative_descriptions_total"
	labelBucket        = "bucket"
	phraseJustNow      = "just now"
	suffixMinutesAgo   = " minutes ago"
	suffixHoursAgo     = " hours ago"
	suffixDaysAgo      = " days ago"
)

// FormatterSource hands out compiled formatters by pattern; *formatcache.Cache implements it.
type FormatterSource interface {
	Get(pattern string) (*layout.Formatter, error)
}

// Describer produces relative time phrases. It is immutable and safe for concurrent use.
type Describer struct {
	location         *time.Location
	fallbackPattern  string
	fallback         *layout.Formatter
	metricsCollector datetool.MetricsCollector
}

// NewDescriber creates a Describer that renders absolute dates in location.
//
// The fallback formatter is taken from source right away, so a pattern the formatter engine rejects
// fails here with an error wrapping datetool.ErrConstruction and Describe itself can not fail.
func NewDescriber(source FormatterSource, location *time.Location, options ...Option) (*Describer, error) {
	if source == nil {
		return nil, datetool.ErrNilFormatterSource
	}

	if location == nil {
		return nil, datetool.ErrNilLocation
	}

	d := &Describer{
		location:        location,
		fallbackPattern: DefaultFallbackPattern,
	}

	for _, option := range options {
		if err := option(d); err != nil {
			return nil, err
		}
	}

	fallback, err := source.Get(d.fallbackPattern)
	if err != nil {
		return nil, err
	}

	d.fallback = fallback

	return d, nil
}

// Describe returns how long before now past happened.
func (d *Describer) Describe(past, now datetool.Instant) string {
	delta := elapsedSeconds(past, now)
	bucket := bucketOf(delta)
	d.recordDescription(bucket)

	switch bucket {
	case BucketJustNow:
		return phraseJustNow
	case BucketMinutes:
		return strconv.FormatInt(delta/secondsPerMinute, 10) + suffixMinutesAgo
	case BucketHours:
		return strconv.FormatInt(delta/secondsPerHour, 10) + suffixHoursAgo
	case BucketDays:
		return strconv.FormatInt(delta/secondsPerDay, 10) + suffixDaysAgo
	default:
		return d.fallback.Format(past.In(d.location))
	}
}

// Bucket returns the classification Describe uses for past relative to now.
func (d *Describer) Bucket(past, now datetool.Instant) Bucket {
	return bucketOf(elapsedSeconds(past, now))
}

// FallbackPattern returns the pattern used for the absolute bucket.
func (d *Describer) FallbackPattern() string {
	return d.fallbackPattern
}

// Location returns the location absolute dates are rendered in.
func (d *Describer) Location() *time.Location {
	return d.location
}

func (d *Describer) recordDescription(bucket Bucket) {
	if d.metricsCollector != nil {
		d.metricsCollector.IncrementCounter(metricDescriptions, map[string]string{labelBucket: bucket.String()})
	}
}

func elapsedSeconds(past, now datetool.Instant) int64 {
	return int64(now.Sub(past) / time.Second)
}
