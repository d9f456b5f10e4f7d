package datetool

// TimestampAccuracy selects the unit of a timestamp string.
type TimestampAccuracy int

const (
	// AccuracyMillisecond renders and reads timestamps as milliseconds since the Unix epoch,
	// which gives 13 digits for contemporary dates. This is the default accuracy.
	AccuracyMillisecond TimestampAccuracy = iota

	// AccuracySecond renders timestamps as whole seconds since the Unix epoch (10 digits for
	// contemporary dates). The sub-second part is truncated, never rounded.
	AccuracySecond
)

// Valid reports whether the accuracy is one of the defined accuracies.
func (a TimestampAccuracy) Valid() bool {
	return a == AccuracyMillisecond || a == AccuracySecond
}

// String provides a string representation of TimestampAccuracy for logging and debugging.
func (a TimestampAccuracy) String() string {
	switch a {
	case AccuracyMillisecond:
		return "millisecond"
	case AccuracySecond:
		return "second"
	default:
		return "unknown"
	}
}
