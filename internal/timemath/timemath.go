// Package timemath provides the day arithmetic shared by every pressure engine.
package timemath

import (
	"math"
	"time"
)

// Day is the length of one calendar day used by all day counts.
const Day = 24 * time.Hour

// DayLayout is the calendar-day key format used for history snapshots.
const DayLayout = "2006-01-02"

// DaysUntil returns the whole days from now until deadline, rounded up.
// Positive values are in the future; zero or negative means due or overdue.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(float64(deadline.Sub(now)) / float64(Day)))
}

// DaysSince returns the whole days elapsed from t to now, rounded down.
// It is negative when t is in the future and always equals -DaysUntil(t, now).
func DaysSince(t, now time.Time) int {
	return -DaysUntil(t, now)
}

// CalendarDay returns the local-time calendar day of now as YYYY-MM-DD.
func CalendarDay(now time.Time) string {
	return now.In(time.Local).Format(DayLayout)
}
