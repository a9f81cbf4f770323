package services

import (
	"math"
	"time"
)

// Day and week boundaries are computed in the server's local calendar; there
// is no per-user timezone column.

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday counts as six days past Monday
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}

// weekWindow returns the half-open [start, end) week containing now, shifted
// back weekOffset whole weeks.
func weekWindow(now time.Time, weekOffset int) (time.Time, time.Time) {
	start := startOfWeek(now).AddDate(0, 0, -7*weekOffset)
	return start, start.AddDate(0, 0, 7)
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
