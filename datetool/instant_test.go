package datetool_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/datetool-go/datetool"
)

var cst = time.FixedZone("CST", 8*3600)

func Test_ParseTimestamp(t *testing.T) {
	testCases := []struct {
		name      string
		timestamp string
		expected  int64
	}{
		{name: "contemporary milliseconds", timestamp: "1562292000000", expected: 1562292000000},
		{name: "epoch", timestamp: "0", expected: 0},
		{name: "before epoch", timestamp: "-1000", expected: -1000},
		{name: "leading plus", timestamp: "+1562292000123", expected: 1562292000123},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			instant, err := datetool.ParseTimestamp(tc.timestamp)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, instant.UnixMilli())
		})
	}
}

func Test_ParseTimestamp_ShouldFail_WithMalformedInput(t *testing.T) {
	testCases := []string{"", "abc", "1562292000000x", " 1562292000000", "1.5", "1e3", "99999999999999999999"}

	for _, timestamp := range testCases {
		t.Run(strconv.Quote(timestamp), func(t *testing.T) {
			// act
			_, err := datetool.ParseTimestamp(timestamp)

			// assert
			assert.ErrorIs(t, err, datetool.ErrMalformedTimestamp)
			assert.ErrorIs(t, err, datetool.ErrParse)
		})
	}
}

func Test_Instant_Timestamp_ShouldRoundTripThroughParseTimestamp(t *testing.T) {
	for _, ms := range []int64{0, 1, -1, 999, 1562292000123, -62135596800000, 253402300799999} {
		// arrange
		instant := datetool.InstantFromUnixMilli(ms)

		// act
		parsed, err := datetool.ParseTimestamp(instant.Timestamp())

		// assert
		require.NoError(t, err)
		assert.True(t, parsed.Equal(instant), "timestamp %d", ms)
	}
}

func Test_Instant_TimestampWithAccuracy(t *testing.T) {
	// arrange
	instant := datetool.InstantOf(time.Date(2019, time.July, 5, 10, 0, 0, 123_456_789, cst))

	// act
	millis := instant.TimestampWithAccuracy(datetool.AccuracyMillisecond)
	seconds := instant.TimestampWithAccuracy(datetool.AccuracySecond)
	unknown := instant.TimestampWithAccuracy(datetool.TimestampAccuracy(9))

	// assert
	assert.Equal(t, "1562292000123", millis)
	assert.Len(t, millis, 13)
	assert.Equal(t, "1562292000", seconds)
	assert.Len(t, seconds, 10)
	assert.Equal(t, millis, unknown)
	assert.Equal(t, millis, instant.Timestamp())
	assert.Equal(t, millis, instant.String())
}

func Test_Instant_TimestampWithAccuracy_ShouldTruncateSecondsTowardZero(t *testing.T) {
	assert.Equal(t, "1", datetool.InstantFromUnixMilli(1999).TimestampWithAccuracy(datetool.AccuracySecond))
	assert.Equal(t, "-1", datetool.InstantFromUnixMilli(-1999).TimestampWithAccuracy(datetool.AccuracySecond))
	assert.Equal(t, "0", datetool.InstantFromUnixMilli(-999).TimestampWithAccuracy(datetool.AccuracySecond))
}

func Test_InstantOf_ShouldTruncateToMilliseconds(t *testing.T) {
	// arrange
	wallTime := time.Date(2019, time.July, 5, 10, 0, 0, 999_999_999, time.UTC)

	// act
	instant := datetool.InstantOf(wallTime)

	// assert
	assert.Equal(t, 999_000_000, instant.Time().Nanosecond())
	assert.Equal(t, int64(1562320800999), instant.UnixMilli())
}

func Test_Instant_Comparisons(t *testing.T) {
	// arrange
	earlier := datetool.InstantFromUnixMilli(1000)
	later := datetool.InstantFromUnixMilli(61000)
	sameAsEarlier := datetool.InstantOf(time.UnixMilli(1000).In(cst))

	// assert
	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(sameAsEarlier))
	assert.Equal(t, time.Minute, later.Sub(earlier))
	assert.Equal(t, 8, earlier.In(cst).Hour()-earlier.In(time.UTC).Hour())
	assert.True(t, datetool.Instant{}.IsZero())
	assert.False(t, datetool.InstantFromUnixMilli(0).IsZero())
}
