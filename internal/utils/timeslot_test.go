package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPackedTimeRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			packed := hour*100 + minute
			h, m := SplitPacked(packed)
			assert.Equal(t, hour, h)
			assert.Equal(t, minute, m)

			clock := time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
			assert.Equal(t, packed, PackClock(clock))
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2024-01-01", 930)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), got)
	assert.Equal(t, 930, PackClock(got))
	assert.Equal(t, "2024-01-01", FormatDate(got))
}

func TestCombineDateTimeRejectsBadDate(t *testing.T) {
	_, err := CombineDateTime("01/01/2024", 930)
	assert.Error(t, err)
}
