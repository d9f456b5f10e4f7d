package relative

// Bucket classifies an elapsed duration for description.
type Bucket int

const (
	// BucketJustNow covers less than one minute, including instants in the future.
	BucketJustNow Bucket = iota

	// BucketMinutes covers one minute up to less than an hour.
	BucketMinutes

	// BucketHours covers one hour up to less than a day.
	BucketHours

	// BucketDays covers one day up to less than ten days.
	BucketDays

	// BucketAbsolute covers ten days and more, described by the absolute date.
	BucketAbsolute
)

const (
	secondsPerMinute  = 60
	secondsPerHour    = 60 * secondsPerMinute
	secondsPerDay     = 24 * secondsPerHour
	absoluteThreshold = 10 * secondsPerDay
)

// String returns the metric label of the bucket.
func (b Bucket) String() string {
	switch b {
	case BucketJustNow:
		return "just_now"
	case BucketMinutes:
		return "minutes"
	case BucketHours:
		return "hours"
	case BucketDays:
		return "days"
	case BucketAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

func bucketOf(deltaSeconds int64) Bucket {
	switch {
	case deltaSeconds < secondsPerMinute:
		return BucketJustNow
	case deltaSeconds < secondsPerHour:
		return BucketMinutes
	case deltaSeconds < secondsPerDay:
		return BucketHours
	case deltaSeconds < absoluteThreshold:
		return BucketDays
	default:
		return BucketAbsolute
	}
}
