package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// SplitPacked decomposes a packed HHMM integer (930 = 09:30) into hour and minute.
func SplitPacked(packed int) (hour, minute int) {
	return packed / 100, packed % 100
}

// PackClock packs a timestamp's wall-clock time back into an HHMM integer,
// the inverse of SplitPacked.
func PackClock(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// CombineDateTime builds the slot timestamp from a "2006-01-02" date string
// and a packed HHMM time. Callers are expected to supply valid 0-2359 values.
func CombineDateTime(date string, packed int) (time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	hour, minute := SplitPacked(packed)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

// FormatDate renders the date part of a slot timestamp.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
