package dateengine

import (
	"time"

	"github.com/AntonStoeckl/datetool-go/datetool"
	"github.com/AntonStoeckl/datetool-go/datetool/formatcache"
	"github.com/AntonStoeckl/datetool-go/datetool/layout"
	"github.com/AntonStoeckl/datetool-go/datetool/relative"
)

const (
	logMsgInputRejected                = "input rejected"
	logAttrOperation                   = "operation"
	logAttrInput                       = "input"
	logAttrPattern                     = "pattern"
	logAttrError                       = "error"
	metricParseErrors                  = "datetool_parse_errors_total"
	labelOperation                     = "operation"
	opDateFromTimestamp                = "date_from_timestamp"
	opRelativeDescriptionFromTimestamp = "relative_description_from_timestamp"
	opWeekdayFromTimestamp             = "weekday_from_timestamp"
	opDateString                       = "date_string"
	opTimestampFromDateString          = "timestamp_from_date_string"
)

// Engine exposes the datetool operations on top of a shared formatter cache.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	formatters       *formatcache.Cache
	clock            datetool.Clock
	location         *time.Location
	describer        *relative.Describer
	logger           datetool.Logger
	metricsCollector datetool.MetricsCollector
}

// NewEngine creates an Engine on top of formatters with optional configuration.
//
// Defaults: the system clock and time.Local.
func NewEngine(formatters *formatcache.Cache, options ...Option) (*Engine, error) {
	if formatters == nil {
		return nil, datetool.ErrNilFormatterCache
	}

	e := &Engine{
		formatters: formatters,
		clock:      datetool.SystemClock{},
		location:   time.Local,
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	describer, err := relative.NewDescriber(formatters, e.location, relative.WithMetrics(e.metricsCollector))
	if err != nil {
		return nil, err
	}

	e.describer = describer

	return e, nil
}

// SharedFormatter returns the cached formatter for pattern, compiling it on first use.
func (e *Engine) SharedFormatter(pattern string) (*layout.Formatter, error) {
	return e.formatters.Get(pattern)
}

// DateFromTimestamp converts a millisecond timestamp string into an Instant.
func (e *Engine) DateFromTimestamp(timestamp string) (datetool.Instant, error) {
	instant, err := datetool.ParseTimestamp(timestamp)
	if err != nil {
		e.rejectInput(opDateFromTimestamp, timestamp, "", err)
		return datetool.Instant{}, err
	}

	return instant, nil
}

// RelativeDescriptionFromTimestamp describes the millisecond timestamp relative to the current time.
func (e *Engine) RelativeDescriptionFromTimestamp(timestamp string) (string, error) {
	instant, err := datetool.ParseTimestamp(timestamp)
	if err != nil {
		e.rejectInput(opRelativeDescriptionFromTimestamp, timestamp, "", err)
		return "", err
	}

	return e.RelativeDescription(instant), nil
}

// RelativeDescription describes instant relative to the current time.
func (e *Engine) RelativeDescription(instant datetool.Instant) string {
	return e.describer.Describe(instant, e.Now())
}

// RelativeDescriptionTo describes instant relative to reference instead of the current time.
func (e *Engine) RelativeDescriptionTo(instant, reference datetool.Instant) string {
	return e.describer.Describe(instant, reference)
}

// FormattedString renders instant with pattern in the engine location.
func (e *Engine) FormattedString(instant datetool.Instant, pattern string) (string, error) {
	formatter, err := e.formatters.Get(pattern)
	if err != nil {
		return "", err
	}

	return formatter.Format(instant.In(e.location)), nil
}

// CurrentTimestamp returns the current time as a millisecond timestamp string.
func (e *Engine) CurrentTimestamp() string {
	return e.Now().Timestamp()
}

// CurrentTimestampWithAccuracy returns the current time as a timestamp string in accuracy.
// Any accuracy other than datetool.AccuracySecond renders milliseconds.
func (e *Engine) CurrentTimestampWithAccuracy(accuracy datetool.TimestampAccuracy) string {
	return e.Now().TimestampWithAccuracy(accuracy)
}

// Weekday returns the day of the week of instant in the engine location, 1 for Sunday up to 7 for Saturday.
func (e *Engine) Weekday(instant datetool.Instant) int {
	return int(instant.In(e.location).Weekday()) + 1
}

// WeekdayFromTimestamp returns the weekday of a millisecond timestamp string, see Weekday.
func (e *Engine) WeekdayFromTimestamp(timestamp string) (int, error) {
	instant, err := datetool.ParseTimestamp(timestamp)
	if err != nil {
		e.rejectInput(opWeekdayFromTimestamp, timestamp, "", err)
		return 0, err
	}

	return e.Weekday(instant), nil
}

// DateString renders a millisecond timestamp string with pattern in the engine location.
func (e *Engine) DateString(timestamp, pattern string) (string, error) {
	formatter, err := e.formatters.Get(pattern)
	if err != nil {
		return "", err
	}

	instant, err := datetool.ParseTimestamp(timestamp)
	if err != nil {
		e.rejectInput(opDateString, timestamp, pattern, err)
		return "", err
	}

	return formatter.Format(instant.In(e.location)), nil
}

// TimestampFromDateString parses dateString with pattern in the engine location
// and returns it as a millisecond timestamp string.
func (e *Engine) TimestampFromDateString(dateString, pattern string) (string, error) {
	return e.TimestampFromDateStringWithAccuracy(dateString, pattern, datetool.AccuracyMillisecond)
}

// TimestampFromDateStringWithAccuracy parses dateString with pattern in the engine location
// and returns it as a timestamp string in accuracy.
//
// An accuracy other than the defined ones fails with datetool.ErrUnknownAccuracy.
func (e *Engine) TimestampFromDateStringWithAccuracy(
	dateString string,
	pattern string,
	accuracy datetool.TimestampAccuracy,
) (string, error) {
	if !accuracy.Valid() {
		return "", datetool.ErrUnknownAccuracy
	}

	formatter, err := e.formatters.Get(pattern)
	if err != nil {
		return "", err
	}

	parsed, err := formatter.Parse(dateString, e.location)
	if err != nil {
		e.rejectInput(opTimestampFromDateString, dateString, pattern, err)
		return "", err
	}

	return datetool.InstantOf(parsed).TimestampWithAccuracy(accuracy), nil
}

// Now returns the current time of the engine clock.
func (e *Engine) Now() datetool.Instant {
	return datetool.InstantOf(e.clock.Now())
}

// Location returns the location the engine renders and parses in.
func (e *Engine) Location() *time.Location {
	return e.location
}

// Formatters returns the formatter cache the engine was built with.
func (e *Engine) Formatters() *formatcache.Cache {
	return e.formatters
}
