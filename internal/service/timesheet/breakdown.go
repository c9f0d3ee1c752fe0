package timesheet

import (
	"fmt"
	"math"
	"time"

	"github.com/crewops/crewops-backend-go/internal/domain/timesheet"
	"github.com/crewops/crewops-backend-go/internal/pkg/timeutil"
)

// entryHours derives the decimal hours of one entry from whichever shape it
// carries. An entry with no source at all contributes zero hours.
func (s *TimesheetServiceImpl) entryHours(e timesheet.Entry) (float64, error) {
	switch src := e.Source.(type) {
	case timesheet.ClockRange:
		return timeutil.HoursFromClock(src.Start, src.End, s.clockPolicy)
	case timesheet.PrecomputedHours:
		if src.Hours < 0 {
			return 0, fmt.Errorf("%w: entry %s has negative total hours", timeutil.ErrInvalidDuration, e.ID)
		}
		return src.Hours, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported hours source %T on entry %s", src, e.ID)
	}
}

// buildDailyBreakdown merges one worker's entries into per-date buckets.
// Multiple entries on the same day sum into one bucket; the first non-empty
// job title seen for a day wins. An entry with zero derivable hours still
// creates its bucket, so a logged-but-empty day stays distinguishable from a
// day with no entries at all. The returned total keeps full precision; only
// the bucket strings are truncated to the second.
func (s *TimesheetServiceImpl) buildDailyBreakdown(entries []timesheet.Entry) (map[string]*timesheet.DailyBreakdownEntry, float64, error) {
	buckets := make(map[string]*timesheet.DailyBreakdownEntry)
	var total float64

	for _, e := range entries {
		hours, err := s.entryHours(e)
		if err != nil {
			return nil, 0, err
		}
		total += hours

		key := e.WorkDate.Format(timeutil.DateLayout)
		bucket, ok := buckets[key]
		if !ok {
			formatted, err := timeutil.HoursToDuration(hours)
			if err != nil {
				return nil, 0, err
			}
			buckets[key] = &timesheet.DailyBreakdownEntry{
				Date:     e.WorkDate,
				Hours:    formatted,
				JobID:    e.JobID,
				JobTitle: jobTitleOf(e),
			}
			continue
		}

		// Add onto the existing day, never overwrite it.
		existing, err := timeutil.DurationToHours(bucket.Hours)
		if err != nil {
			return nil, 0, err
		}
		formatted, err := timeutil.HoursToDuration(existing + hours)
		if err != nil {
			return nil, 0, err
		}
		bucket.Hours = formatted
		if bucket.JobTitle == "" && jobTitleOf(e) != "" {
			bucket.JobID = e.JobID
			bucket.JobTitle = jobTitleOf(e)
		}
	}

	return buckets, total, nil
}

// summarize groups entries by worker, then by calendar week, and builds one
// Monday-anchored weekly summary per worker per week. Each summary's
// displayed week anchors on the earliest date actually present in that
// worker's data, not on the caller's window. Worker order follows first
// appearance in the (date-ordered) entry list.
func (s *TimesheetServiceImpl) summarize(entries []timesheet.Entry) ([]timesheet.WeeklySummary, error) {
	var order []string
	grouped := make(map[string][]timesheet.Entry)
	for _, e := range entries {
		if _, ok := grouped[e.WorkerID]; !ok {
			order = append(order, e.WorkerID)
		}
		grouped[e.WorkerID] = append(grouped[e.WorkerID], e)
	}

	var summaries []timesheet.WeeklySummary
	for _, workerID := range order {
		workerEntries := grouped[workerID]

		// Split by calendar week. Entries arrive ordered by date, so weeks
		// come out oldest first.
		var weekOrder []string
		weeks := make(map[string][]timesheet.Entry)
		for _, e := range workerEntries {
			wk := timeutil.MondayOf(e.WorkDate).Format(timeutil.DateLayout)
			if _, ok := weeks[wk]; !ok {
				weekOrder = append(weekOrder, wk)
			}
			weeks[wk] = append(weeks[wk], e)
		}

		for _, wk := range weekOrder {
			weekEntries := weeks[wk]

			buckets, total, err := s.buildDailyBreakdown(weekEntries)
			if err != nil {
				return nil, err
			}

			weekStart, weekEnd := timeutil.WeekWindow(weekEntries[0].WorkDate)

			summaries = append(summaries, timesheet.WeeklySummary{
				WorkerID:       workerID,
				WorkerName:     weekEntries[0].WorkerName,
				WeekStart:      weekStart,
				WeekEnd:        weekEnd,
				DailyBreakdown: buckets,
				TotalHours:     total,
				HourlyRate:     weekEntries[0].HourlyRate,
			})
		}
	}

	return summaries, nil
}

// dashboardRow renders one weekly summary into its dashboard row. Days
// without a bucket show "0h"; the "Leave" label belongs to the detailed view
// only.
func dashboardRow(sum timesheet.WeeklySummary) (timesheet.WeeklyDashboardRow, error) {
	var days [7]string
	job := ""
	for i := 0; i < 7; i++ {
		date := sum.WeekStart.AddDate(0, 0, i)
		bucket, ok := sum.DailyBreakdown[date.Format(timeutil.DateLayout)]
		if !ok {
			days[i] = zeroHoursLabel
			continue
		}
		hours, err := timeutil.DurationToHours(bucket.Hours)
		if err != nil {
			return timesheet.WeeklyDashboardRow{}, err
		}
		display, err := timeutil.FormatHours(hours)
		if err != nil {
			return timesheet.WeeklyDashboardRow{}, err
		}
		days[i] = display
		if job == "" && bucket.JobTitle != "" {
			job = bucket.JobTitle
		}
	}
	if job == "" {
		job = timesheet.GeneralWorkTitle
	}

	totalDisplay, err := timeutil.FormatHours(sum.TotalHours)
	if err != nil {
		return timesheet.WeeklyDashboardRow{}, err
	}

	status := statusLogged
	if sum.TotalHours == 0 {
		status = statusNoActivity
	}

	return timesheet.WeeklyDashboardRow{
		WorkerID: sum.WorkerID,
		Employee: sum.WorkerName,
		Job:      job,
		Week:     formatRange(sum.WeekStart, sum.WeekEnd),
		Mon:      days[0],
		Tue:      days[1],
		Wed:      days[2],
		Thu:      days[3],
		Fri:      days[4],
		Sat:      days[5],
		Sun:      days[6],
		Total:    totalDisplay,
		// Billable tracks total for now; kept separate so the two can
		// diverge without an API change.
		Billable:      totalDisplay,
		HourlyRate:    sum.HourlyRate,
		WeeklyPayment: pay(sum.TotalHours, sum.HourlyRate),
		Status:        status,
	}, nil
}

// pay multiplies hours by the hourly rate, rounded to cents. A zero rate
// (salaried staff) simply yields zero, never an error.
func pay(hours, hourlyRate float64) float64 {
	return math.Round(hours*hourlyRate*100) / 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func jobTitleOf(e timesheet.Entry) string {
	if e.JobTitle != nil {
		return *e.JobTitle
	}
	return ""
}

func formatRange(start, end time.Time) string {
	return start.Format(rangeLayout) + " - " + end.Format(rangeLayout)
}

const (
	rangeLayout      = "02 Jan 2006"
	zeroHoursLabel   = "0h"
	statusLogged     = "logged"
	statusNoActivity = "no_activity"
)
