package timesheet

import "time"

// Entry is one raw logged time record for a worker on a date, as stored. The
// derivable hours come either from a clock pair or a pre-computed total; the
// Source union captures which shape this entry carries. A nil Source
// contributes zero hours.
type Entry struct {
	ID         string
	WorkerID   string
	WorkerName string
	WorkDate   time.Time
	Source     HoursSource
	JobID      *string
	JobTitle   *string
	HourlyRate float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HoursSource is the tagged union of the two entry shapes.
type HoursSource interface {
	hoursSource()
}

// ClockRange is a start/end clock pair on the entry's work date.
type ClockRange struct {
	Start time.Time
	End   time.Time
}

// PrecomputedHours is a pre-computed decimal hour total logged without clock
// times.
type PrecomputedHours struct {
	Hours float64
}

func (ClockRange) hoursSource()       {}
func (PrecomputedHours) hoursSource() {}

// DailyBreakdownEntry is one worker's merged hours for a single date.
// Multiple raw entries on the same day are summed into one of these before it
// is built; Hours is kept as a zero-padded "HH:MM:SS" string.
type DailyBreakdownEntry struct {
	Date     time.Time
	Hours    string
	JobID    *string
	JobTitle string
}

// WeeklySummary is the per-worker aggregate for one Monday-anchored week.
// DailyBreakdown is keyed by date ("2006-01-02") and holds only days that
// have entries; absent days render as "0h" at the dashboard level.
type WeeklySummary struct {
	WorkerID       string
	WorkerName     string
	WeekStart      time.Time
	WeekEnd        time.Time
	DailyBreakdown map[string]*DailyBreakdownEntry
	TotalHours     float64
	HourlyRate     float64
}
