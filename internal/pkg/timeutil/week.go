package timeutil

import "time"

const DateLayout = "2006-01-02"

// MondayOf returns the Monday of the calendar week containing d, at midnight
// in d's location. Sunday counts as the last day of the week, so it maps to
// the previous Monday, not the next one.
func MondayOf(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeekWindow returns the Monday-to-Sunday window containing d.
func WeekWindow(d time.Time) (time.Time, time.Time) {
	monday := MondayOf(d)
	return monday, monday.AddDate(0, 0, 6)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
