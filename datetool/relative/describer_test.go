package relative_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/datetool-go/datetool"
	"github.com/AntonStoeckl/datetool-go/datetool/formatcache"
	"github.com/AntonStoeckl/datetool-go/datetool/layout"
	"github.com/AntonStoeckl/datetool-go/datetool/relative"
	"github.com/AntonStoeckl/datetool-go/testutil/observability/testdoubles"
)

var cst = time.FixedZone("CST", 8*3600)

// 2019-07-05 10:00:00 +08:00
var past = datetool.InstantFromUnixMilli(1562292000000)

type failingSource struct {
	err error
}

func (s failingSource) Get(_ string) (*layout.Formatter, error) {
	return nil, s.err
}

func newDescriber(t *testing.T, options ...relative.Option) *relative.Describer {
	t.Helper()

	cache, err := formatcache.NewCache()
	require.NoError(t, err)

	describer, err := relative.NewDescriber(cache, cst, options...)
	require.NoError(t, err)

	return describer
}

func secondsAfterPast(seconds int64) datetool.Instant {
	return datetool.InstantFromUnixMilli(past.UnixMilli() + seconds*1000)
}

func Test_Describer_Describe_Boundaries(t *testing.T) {
	testCases := []struct {
		name     string
		delta    int64
		expected string
		bucket   relative.Bucket
	}{
		{name: "same instant", delta: 0, expected: "just now", bucket: relative.BucketJustNow},
		{name: "59 seconds", delta: 59, expected: "just now", bucket: relative.BucketJustNow},
		{name: "60 seconds", delta: 60, expected: "1 minutes ago", bucket: relative.BucketMinutes},
		{name: "119 seconds", delta: 119, expected: "1 minutes ago", bucket: relative.BucketMinutes},
		{name: "3599 seconds", delta: 3599, expected: "59 minutes ago", bucket: relative.BucketMinutes},
		{name: "3600 seconds", delta: 3600, expected: "1 hours ago", bucket: relative.BucketHours},
		{name: "86399 seconds", delta: 86399, expected: "23 hours ago", bucket: relative.BucketHours},
		{name: "86400 seconds", delta: 86400, expected: "1 days ago", bucket: relative.BucketDays},
		{name: "863999 seconds", delta: 863999, expected: "9 days ago", bucket: relative.BucketDays},
		{name: "864000 seconds", delta: 864000, expected: "2019-7-5", bucket: relative.BucketAbsolute},
		{name: "one year", delta: 365 * 86400, expected: "2019-7-5", bucket: relative.BucketAbsolute},
	}

	describer := newDescriber(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			now := secondsAfterPast(tc.delta)

			// act
			description := describer.Describe(past, now)
			bucket := describer.Bucket(past, now)

			// assert
			assert.Equal(t, tc.expected, description)
			assert.Equal(t, tc.bucket, bucket)
		})
	}
}

func Test_Describer_Describe_ShouldTruncateSubSecondDeltas(t *testing.T) {
	// arrange
	describer := newDescriber(t)
	now := datetool.InstantFromUnixMilli(past.UnixMilli() + 59_999)

	// act
	description := describer.Describe(past, now)

	// assert
	assert.Equal(t, "just now", description)
}

func Test_Describer_Describe_ShouldReturnJustNow_ForFutureInstants(t *testing.T) {
	// arrange
	describer := newDescriber(t)

	// act
	description := describer.Describe(past, secondsAfterPast(-30*86400))

	// assert
	assert.Equal(t, "just now", description)
	assert.Equal(t, relative.BucketJustNow, describer.Bucket(past, secondsAfterPast(-1)))
}

func Test_Describer_Describe_ShouldRenderAbsoluteDateInLocation(t *testing.T) {
	// arrange
	cache, err := formatcache.NewCache()
	require.NoError(t, err)
	// 2019-07-04 20:00:00 UTC is already July 5th in +08:00
	lateEvening := datetool.InstantOf(time.Date(2019, time.July, 4, 20, 0, 0, 0, time.UTC))
	now := datetool.InstantOf(time.Date(2019, time.August, 1, 0, 0, 0, 0, time.UTC))

	utcDescriber, err := relative.NewDescriber(cache, time.UTC)
	require.NoError(t, err)
	cstDescriber, err := relative.NewDescriber(cache, cst)
	require.NoError(t, err)

	// act
	inUTC := utcDescriber.Describe(lateEvening, now)
	inCST := cstDescriber.Describe(lateEvening, now)

	// assert
	assert.Equal(t, "2019-7-4", inUTC)
	assert.Equal(t, "2019-7-5", inCST)
}

func Test_Describer_WithFallbackPattern(t *testing.T) {
	// arrange
	describer := newDescriber(t, relative.WithFallbackPattern("dd.MM.yyyy"))

	// act
	description := describer.Describe(past, secondsAfterPast(864000))

	// assert
	assert.Equal(t, "05.07.2019", description)
	assert.Equal(t, "dd.MM.yyyy", describer.FallbackPattern())
	assert.Equal(t, cst, describer.Location())
}

func Test_Describer_ShouldShareFallbackFormatter_WithCache(t *testing.T) {
	// arrange
	cache, err := formatcache.NewCache()
	require.NoError(t, err)

	// act
	_, err = relative.NewDescriber(cache, cst)
	require.NoError(t, err)
	formatter, err := cache.Get(relative.DefaultFallbackPattern)

	// assert
	require.NoError(t, err)
	assert.Equal(t, relative.DefaultFallbackPattern, formatter.Pattern())
	assert.Equal(t, 1, cache.Len())
}

func Test_NewDescriber_ShouldFail_WithInvalidArguments(t *testing.T) {
	cache, err := formatcache.NewCache()
	require.NoError(t, err)
	sourceErr := errors.New("source unavailable")

	testCases := []struct {
		name     string
		source   relative.FormatterSource
		location *time.Location
		options  []relative.Option
		target   error
	}{
		{name: "nil source", source: nil, location: cst, target: datetool.ErrNilFormatterSource},
		{name: "nil location", source: cache, location: nil, target: datetool.ErrNilLocation},
		{
			name:     "invalid fallback pattern",
			source:   cache,
			location: cst,
			options:  []relative.Option{relative.WithFallbackPattern("yyyy-M-d '")},
			target:   datetool.ErrConstruction,
		},
		{name: "failing source", source: failingSource{err: sourceErr}, location: cst, target: sourceErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			describer, err := relative.NewDescriber(tc.source, tc.location, tc.options...)

			// assert
			assert.Nil(t, describer)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func Test_Describer_ShouldCountDescriptionsPerBucket(t *testing.T) {
	// arrange
	metrics := testdoubles.NewMetricsCollectorSpy()
	describer := newDescriber(t, relative.WithMetrics(metrics))

	// act
	for _, delta := range []int64{0, 10, 120, 7200, 172800, 864000} {
		describer.Describe(past, secondsAfterPast(delta))
	}

	// assert
	const metric = "datetool_relative_descriptions_total"
	assert.Equal(t, 2, metrics.CountCounterRecordsWithLabel(metric, "bucket", "just_now"))
	assert.Equal(t, 1, metrics.CountCounterRecordsWithLabel(metric, "bucket", "minutes"))
	assert.Equal(t, 1, metrics.CountCounterRecordsWithLabel(metric, "bucket", "hours"))
	assert.Equal(t, 1, metrics.CountCounterRecordsWithLabel(metric, "bucket", "days"))
	assert.Equal(t, 1, metrics.CountCounterRecordsWithLabel(metric, "bucket", "absolute"))
}

func Test_Bucket_String(t *testing.T) {
	assert.Equal(t, "just_now", relative.BucketJustNow.String())
	assert.Equal(t, "absolute", relative.BucketAbsolute.String())
	assert.Equal(t, "unknown", relative.Bucket(42).String())
}
