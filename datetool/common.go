package datetool

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the root of every failure caused by input that could not be parsed:
	// malformed timestamps, date strings that do not match their pattern, unusable scan sources.
	ErrParse = errors.New("parse failed")

	// ErrConstruction is the root of every failure caused by a format pattern the formatter engine rejects.
	ErrConstruction = errors.New("formatter construction failed")
)

var (
	// ErrMalformedTimestamp is returned when a timestamp string is not a decimal integer.
	ErrMalformedTimestamp = fmt.Errorf("%w: malformed timestamp", ErrParse)

	// ErrDateStringMismatch is returned when a date string does not match the supplied pattern.
	ErrDateStringMismatch = fmt.Errorf("%w: date string does not match pattern", ErrParse)

	// ErrInfiniteTimestamp is returned when an infinite database timestamp is scanned into an Instant.
	ErrInfiniteTimestamp = fmt.Errorf("%w: infinite timestamp can not be represented", ErrParse)

	// ErrUnsupportedScanSource is returned when Instant.Scan receives a value of an unsupported type.
	ErrUnsupportedScanSource = fmt.Errorf("%w: unsupported scan source", ErrParse)
)

var (
	// ErrEmptyPattern is returned when an empty format pattern is supplied.
	ErrEmptyPattern = fmt.Errorf("%w: empty pattern supplied", ErrConstruction)

	// ErrInvalidPattern is returned when a format pattern contains unsupported fields or unbalanced quotes.
	ErrInvalidPattern = fmt.Errorf("%w: invalid pattern", ErrConstruction)
)

var ErrNilFormatterCache = errors.New("nil formatter cache supplied")
var ErrNilFormatterSource = errors.New("nil formatter source supplied")
var ErrNilClock = errors.New("nil clock supplied")
var ErrNilLocation = errors.New("nil location supplied")
var ErrInvalidLocation = errors.New("invalid location name supplied")
var ErrUnknownAccuracy = errors.New("unknown timestamp accuracy")
