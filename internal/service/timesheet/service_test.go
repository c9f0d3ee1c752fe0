package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewops/crewops-backend-go/internal/domain/timesheet"
	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/pkg/timeutil"
)

// ===== IN-MEMORY FAKES =====

type fakeTimesheetRepo struct {
	entries []timesheet.Entry
	failing bool
}

var errStoreDown = errors.New("store unavailable")

func (f *fakeTimesheetRepo) Create(_ context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	if f.failing {
		return timesheet.Entry{}, errStoreDown
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeTimesheetRepo) ListEntries(_ context.Context, workerID *string, window *timesheet.DateRange) ([]timesheet.Entry, error) {
	if f.failing {
		return nil, errStoreDown
	}
	var matched []timesheet.Entry
	for _, e := range f.entries {
		if workerID != nil && e.WorkerID != *workerID {
			continue
		}
		if window != nil && (e.WorkDate.Before(window.Start) || e.WorkDate.After(window.End)) {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].WorkDate.Before(matched[j].WorkDate)
	})
	return matched, nil
}

func (f *fakeTimesheetRepo) ListEntriesPaged(ctx context.Context, filter timesheet.EntryFilter) ([]timesheet.Entry, int64, error) {
	matched, err := f.ListEntries(ctx, filter.WorkerID, nil)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeTimesheetRepo) EntryDateBounds(_ context.Context, workerID *string) (*timesheet.DateBounds, error) {
	if f.failing {
		return nil, errStoreDown
	}
	var bounds *timesheet.DateBounds
	for _, e := range f.entries {
		if workerID != nil && e.WorkerID != *workerID {
			continue
		}
		if bounds == nil {
			bounds = &timesheet.DateBounds{Earliest: e.WorkDate, Latest: e.WorkDate}
			continue
		}
		if e.WorkDate.Before(bounds.Earliest) {
			bounds.Earliest = e.WorkDate
		}
		if e.WorkDate.After(bounds.Latest) {
			bounds.Latest = e.WorkDate
		}
	}
	return bounds, nil
}

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(_ context.Context, _ worker.WorkerFilter) ([]worker.Worker, int64, error) {
	var all []worker.Worker
	for _, w := range f.workers {
		all = append(all, w)
	}
	return all, int64(len(all)), nil
}

// ===== TEST HELPERS =====

// Monday 2025-03-10 anchors most scenarios.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, entries []timesheet.Entry, workers ...worker.Worker) (timesheet.TimesheetService, *fakeTimesheetRepo, *fakeWorkerRepo) {
	t.Helper()
	tsRepo := &fakeTimesheetRepo{entries: entries}
	wRepo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	for _, w := range workers {
		wRepo.workers[w.ID] = w
	}
	svc := NewTimesheetService(tsRepo, wRepo, timeutil.ClockRejectNegative)
	return svc, tsRepo, wRepo
}

func laborWorker(id, name string, rate float64) worker.Worker {
	return worker.Worker{ID: id, Name: name, Category: worker.CategoryLabor, HourlyRate: rate}
}

func clockEntry(id, workerID, name string, date time.Time, startHour, startMin, endHour, endMin int, rate float64) timesheet.Entry {
	return timesheet.Entry{
		ID:         id,
		WorkerID:   workerID,
		WorkerName: name,
		WorkDate:   date,
		Source: timesheet.ClockRange{
			Start: time.Date(date.Year(), date.Month(), date.Day(), startHour, startMin, 0, 0, time.UTC),
			End:   time.Date(date.Year(), date.Month(), date.Day(), endHour, endMin, 0, 0, time.UTC),
		},
		HourlyRate: rate,
	}
}

func hoursEntry(id, workerID, name string, date time.Time, hours float64, rate float64) timesheet.Entry {
	return timesheet.Entry{
		ID:         id,
		WorkerID:   workerID,
		WorkerName: name,
		WorkDate:   date,
		Source:     timesheet.PrecomputedHours{Hours: hours},
		HourlyRate: rate,
	}
}

func strPtr(s string) *string { return &s }

// ===== CREATE ENTRY =====

func TestCreateEntry_ClockPair(t *testing.T) {
	w := laborWorker("w1", "Ana Flores", 15)
	svc, tsRepo, _ := newTestService(t, nil, w)

	req := timesheet.CreateEntryRequest{
		WorkerID:  "w1",
		WorkDate:  "2025-03-10",
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("17:30"),
	}

	resp, err := svc.CreateEntry(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "8h 30m", resp.Hours)
	assert.Equal(t, "Ana Flores", resp.WorkerName)
	assert.Equal(t, "2025-03-10", resp.WorkDate)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "09:00", *resp.StartTime)
	assert.Len(t, tsRepo.entries, 1)
}

func TestCreateEntry_PrecomputedHours(t *testing.T) {
	w := laborWorker("w1", "Ana Flores", 15)
	svc, _, _ := newTestService(t, nil, w)

	hours := 6.25
	resp, err := svc.CreateEntry(context.Background(), timesheet.CreateEntryRequest{
		WorkerID:   "w1",
		WorkDate:   "2025-03-10",
		TotalHours: &hours,
	})

	require.NoError(t, err)
	assert.Equal(t, "6h 15m", resp.Hours)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 6.25, *resp.TotalHours)
}

func TestCreateEntry_MissingShape(t *testing.T) {
	w := laborWorker("w1", "Ana Flores", 15)
	svc, _, _ := newTestService(t, nil, w)

	_, err := svc.CreateEntry(context.Background(), timesheet.CreateEntryRequest{
		WorkerID: "w1",
		WorkDate: "2025-03-10",
	})

	assert.Error(t, err)
}

func TestCreateEntry_NegativeClockRejected(t *testing.T) {
	w := laborWorker("w1", "Ana Flores", 15)
	svc, _, _ := newTestService(t, nil, w)

	_, err := svc.CreateEntry(context.Background(), timesheet.CreateEntryRequest{
		WorkerID:  "w1",
		WorkDate:  "2025-03-10",
		StartTime: strPtr("17:00"),
		EndTime:   strPtr("09:00"),
	})

	assert.ErrorIs(t, err, timeutil.ErrInvalidDuration)
}

func TestCreateEntry_CrossMidnightPolicy(t *testing.T) {
	tsRepo := &fakeTimesheetRepo{}
	wRepo := &fakeWorkerRepo{workers: map[string]worker.Worker{
		"w1": laborWorker("w1", "Ana Flores", 15),
	}}
	svc := NewTimesheetService(tsRepo, wRepo, timeutil.ClockCrossMidnight)

	resp, err := svc.CreateEntry(context.Background(), timesheet.CreateEntryRequest{
		WorkerID:  "w1",
		WorkDate:  "2025-03-10",
		StartTime: strPtr("22:00"),
		EndTime:   strPtr("02:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "4h", resp.Hours)
}

func TestCreateEntry_UnknownWorker(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	hours := 8.0
	_, err := svc.CreateEntry(context.Background(), timesheet.CreateEntryRequest{
		WorkerID:   "ghost",
		WorkDate:   "2025-03-10",
		TotalHours: &hours,
	})

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

// ===== WEEKLY DASHBOARD =====

// Two entries on the same day merge into a single 5 hour column, not two
// rows or two buckets.
func TestGetWeeklyDashboard_SameDayMerge(t *testing.T) {
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Ana Flores", monday, 3, 20),
		hoursEntry("e2", "w1", "Ana Flores", monday, 2, 20),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-10"),
		EndDate:   strPtr("2025-03-16"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, "5h", row.Mon)
	assert.Equal(t, "0h", row.Tue)
	assert.Equal(t, "5h", row.Total)
	assert.Equal(t, "5h", row.Billable)
	assert.Equal(t, 100.0, row.WeeklyPayment)
}

// A filtered worker with no entries in an explicit range still gets a row of
// zeroes covering the requested week.
func TestGetWeeklyDashboard_ExplicitRangeNoEntries(t *testing.T) {
	svc, _, _ := newTestService(t, nil, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-10"),
		EndDate:   strPtr("2025-03-16"),
		WorkerID:  strPtr("w1"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	for _, day := range []string{row.Mon, row.Tue, row.Wed, row.Thu, row.Fri, row.Sat, row.Sun} {
		assert.Equal(t, "0h", day)
	}
	assert.Equal(t, "0h", row.Total)
	assert.Equal(t, 0.0, row.WeeklyPayment)
	assert.Equal(t, "no_activity", row.Status)
}

// A supplied range is capped at the Monday-anchored week of start_date, no
// matter how far end_date reaches.
func TestGetWeeklyDashboard_RangeSnapsToOneWeek(t *testing.T) {
	nextWeek := monday.AddDate(0, 0, 9) // Wednesday of the following week
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Ana Flores", monday.AddDate(0, 0, 2), 8, 20),
		hoursEntry("e2", "w1", "Ana Flores", nextWeek, 8, 20),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	// Wednesday start, end a month out: still just the one week.
	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-12"),
		EndDate:   strPtr("2025-04-12"),
	})

	require.NoError(t, err)
	assert.Equal(t, "10 Mar 2025 - 16 Mar 2025", resp.Period)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "8h", resp.Rows[0].Wed)
	assert.Equal(t, "8h", resp.Rows[0].Total)
}

// With no range supplied the window grows to full weeks around the earliest
// and latest entries on record, and each worker gets one row per week.
func TestGetWeeklyDashboard_AutoWindowSpansAllWeeks(t *testing.T) {
	week3 := monday.AddDate(0, 0, 14)
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Ana Flores", monday.AddDate(0, 0, 1), 8, 20),
		hoursEntry("e2", "w1", "Ana Flores", week3.AddDate(0, 0, 4), 6, 20),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{})

	require.NoError(t, err)
	// Monday of the earliest week through Sunday of the latest.
	assert.Equal(t, "10 Mar 2025 - 30 Mar 2025", resp.Period)
	require.Len(t, resp.Rows, 2)
	// Most recent week sorts first.
	assert.Equal(t, "24 Mar 2025 - 30 Mar 2025", resp.Rows[0].Week)
	assert.Equal(t, "6h", resp.Rows[0].Fri)
	assert.Equal(t, "10 Mar 2025 - 16 Mar 2025", resp.Rows[1].Week)
	assert.Equal(t, "8h", resp.Rows[1].Tue)
}

// Each worker's displayed week anchors on their own data, always on a
// Monday, even when the entries start mid-week.
func TestGetWeeklyDashboard_WeekAnchorsPerWorker(t *testing.T) {
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Ana Flores", monday.AddDate(0, 0, 3), 8, 20),  // Thursday
		hoursEntry("e2", "w2", "Bela Costa", monday.AddDate(0, 0, 5), 4, 18), // Saturday
	}
	svc, _, _ := newTestService(t, entries,
		laborWorker("w1", "Ana Flores", 20), laborWorker("w2", "Bela Costa", 18))

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	for _, row := range resp.Rows {
		assert.Equal(t, "10 Mar 2025 - 16 Mar 2025", row.Week)
	}
}

func TestGetWeeklyDashboard_SalariedStaffZeroPay(t *testing.T) {
	staff := worker.Worker{ID: "w1", Name: "Sam Ortiz", Category: worker.CategoryStaff, HourlyRate: 0}
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Sam Ortiz", monday, 9, 0),
	}
	svc, _, _ := newTestService(t, entries, staff)

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-10"),
		EndDate:   strPtr("2025-03-16"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "9h", resp.Rows[0].Total)
	assert.Equal(t, 0.0, resp.Rows[0].WeeklyPayment)
}

func TestGetWeeklyDashboard_PayRounding(t *testing.T) {
	// 7h 20m at 17.35/h = 127.23333..., rounded to cents at the edge only.
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Ana Flores", monday, 22.0 / 3, 17.35),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 17.35))

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-10"),
		EndDate:   strPtr("2025-03-16"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 127.23, resp.Rows[0].WeeklyPayment)
}

func TestGetWeeklyDashboard_Pagination(t *testing.T) {
	var entries []timesheet.Entry
	var workers []worker.Worker
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("w%d", i)
		name := fmt.Sprintf("Worker %d", i)
		entries = append(entries, hoursEntry(fmt.Sprintf("e%d", i), id, name, monday, 8, 10))
		workers = append(workers, laborWorker(id, name, 10))
	}
	svc, _, _ := newTestService(t, entries, workers...)

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-10"),
		EndDate:   strPtr("2025-03-16"),
		Page:      2,
		Limit:     2,
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, len(resp.Rows), 2)
	assert.Equal(t, int64(5), resp.Pagination.TotalItems)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
	assert.Equal(t, resp.Pagination.HasNext, resp.Pagination.Page < resp.Pagination.TotalPages)

	// Last page has no next.
	resp, err = svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{
		StartDate: strPtr("2025-03-10"),
		EndDate:   strPtr("2025-03-16"),
		Page:      3,
		Limit:     2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 1)
	assert.False(t, resp.Pagination.HasNext)
}

func TestGetWeeklyDashboard_EmptyStoreFallsBackToCurrentWeek(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	resp, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{})

	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	wantStart, wantEnd := timeutil.WeekWindow(time.Now())
	assert.Equal(t, wantStart.Format("02 Jan 2006")+" - "+wantEnd.Format("02 Jan 2006"), resp.Period)
}

func TestGetWeeklyDashboard_StoreFailure(t *testing.T) {
	tsRepo := &fakeTimesheetRepo{failing: true}
	wRepo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	svc := NewTimesheetService(tsRepo, wRepo, timeutil.ClockRejectNegative)

	_, err := svc.GetWeeklyDashboard(context.Background(), timesheet.DashboardFilter{})

	assert.ErrorIs(t, err, errStoreDown)
}

// ===== DETAILED WEEKLY VIEW =====

// Entries on Monday and Wednesday over a Mon-Sun range: one job row each,
// five Leave rows, totals covering only the worked days.
func TestGetWorkerWeeklyView_LeaveRows(t *testing.T) {
	job := "j1"
	title := "Harbor Fence"
	entries := []timesheet.Entry{
		{
			ID: "e1", WorkerID: "w1", WorkerName: "Ana Flores",
			WorkDate: monday, Source: timesheet.PrecomputedHours{Hours: 8},
			JobID: &job, JobTitle: &title, HourlyRate: 20,
		},
		hoursEntry("e2", "w1", "Ana Flores", monday.AddDate(0, 0, 2), 4, 20),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID:  "w1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-16",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Flores", resp.EmployeeName)
	require.Len(t, resp.DailyBreakdown, 7)

	mondayRow := resp.DailyBreakdown[0]
	assert.Equal(t, "Harbor Fence", mondayRow.JobTitle)
	assert.Equal(t, 8.0, mondayRow.HoursWorked)
	assert.Equal(t, 160.0, mondayRow.PayAmount)

	tuesdayRow := resp.DailyBreakdown[1]
	assert.Equal(t, "Leave", tuesdayRow.JobTitle)
	assert.Equal(t, 0.0, tuesdayRow.HoursWorked)
	assert.Equal(t, 0.0, tuesdayRow.PayAmount)
	assert.Nil(t, tuesdayRow.JobID)

	wednesdayRow := resp.DailyBreakdown[2]
	assert.Equal(t, 4.0, wednesdayRow.HoursWorked)

	for _, i := range []int{3, 4, 5, 6} {
		assert.Equal(t, "Leave", resp.DailyBreakdown[i].JobTitle)
	}

	assert.Equal(t, 12.0, resp.WeekTotal.TotalHours)
	assert.Equal(t, "12h", resp.WeekTotal.TotalDisplay)
	assert.Equal(t, 240.0, resp.WeekTotal.TotalPay)
}

// A day spent on two jobs emits one row per job; entries without a job pool
// into the synthetic general-work bucket.
func TestGetWorkerWeeklyView_JobGrouping(t *testing.T) {
	jobA, titleA := "j1", "Harbor Fence"
	jobB, titleB := "j2", "Mill Roof"
	entries := []timesheet.Entry{
		{
			ID: "e1", WorkerID: "w1", WorkerName: "Ana Flores",
			WorkDate: monday, Source: timesheet.PrecomputedHours{Hours: 3},
			JobID: &jobA, JobTitle: &titleA, HourlyRate: 20,
		},
		{
			ID: "e2", WorkerID: "w1", WorkerName: "Ana Flores",
			WorkDate: monday, Source: timesheet.PrecomputedHours{Hours: 2},
			JobID: &jobB, JobTitle: &titleB, HourlyRate: 20,
		},
		{
			ID: "e3", WorkerID: "w1", WorkerName: "Ana Flores",
			WorkDate: monday, Source: timesheet.PrecomputedHours{Hours: 1.5},
			JobID: &jobA, JobTitle: &titleA, HourlyRate: 20,
		},
		hoursEntry("e4", "w1", "Ana Flores", monday, 1, 20),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID:  "w1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
	})

	require.NoError(t, err)
	require.Len(t, resp.DailyBreakdown, 3)

	assert.Equal(t, "Harbor Fence", resp.DailyBreakdown[0].JobTitle)
	assert.Equal(t, 4.5, resp.DailyBreakdown[0].HoursWorked)
	assert.Equal(t, "Mill Roof", resp.DailyBreakdown[1].JobTitle)
	assert.Equal(t, 2.0, resp.DailyBreakdown[1].HoursWorked)
	assert.Equal(t, "General work", resp.DailyBreakdown[2].JobTitle)
	assert.Nil(t, resp.DailyBreakdown[2].JobID)

	assert.Equal(t, 7.5, resp.WeekTotal.TotalHours)
	assert.Equal(t, 150.0, resp.WeekTotal.TotalPay)
}

// The detailed view honors the literal range: no snapping, partial weeks are
// fine.
func TestGetWorkerWeeklyView_LiteralRange(t *testing.T) {
	entries := []timesheet.Entry{
		hoursEntry("e1", "w1", "Ana Flores", monday.AddDate(0, 0, 2), 8, 20),
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID:  "w1",
		StartDate: "2025-03-11", // Tuesday
		EndDate:   "2025-03-13", // Thursday
	})

	require.NoError(t, err)
	require.Len(t, resp.DailyBreakdown, 3)
	assert.Equal(t, "Tuesday", resp.DailyBreakdown[0].Day)
	assert.Equal(t, "Leave", resp.DailyBreakdown[0].JobTitle)
	assert.Equal(t, 8.0, resp.DailyBreakdown[1].HoursWorked)
	assert.Equal(t, "Thursday", resp.DailyBreakdown[2].Day)
}

// Zero entries for an existing worker is a well-formed all-Leave response,
// not an error.
func TestGetWorkerWeeklyView_NoEntries(t *testing.T) {
	svc, _, _ := newTestService(t, nil, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID:  "w1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-16",
	})

	require.NoError(t, err)
	require.Len(t, resp.DailyBreakdown, 7)
	for _, row := range resp.DailyBreakdown {
		assert.Equal(t, "Leave", row.JobTitle)
	}
	assert.Equal(t, 0.0, resp.WeekTotal.TotalHours)
}

func TestGetWorkerWeeklyView_UnknownWorker(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID:  "ghost",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-16",
	})

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestGetWorkerWeeklyView_InvalidRange(t *testing.T) {
	svc, _, _ := newTestService(t, nil, laborWorker("w1", "Ana Flores", 20))

	_, err := svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID:  "w1",
		StartDate: "2025-03-16",
		EndDate:   "2025-03-10",
	})
	assert.Error(t, err)

	_, err = svc.GetWorkerWeeklyView(context.Background(), timesheet.WeeklyViewRequest{
		WorkerID: "w1",
	})
	assert.Error(t, err)
}

// ===== LIST ENTRIES =====

func TestListEntries_Paged(t *testing.T) {
	var entries []timesheet.Entry
	for i := 0; i < 25; i++ {
		entries = append(entries, hoursEntry(fmt.Sprintf("e%d", i), "w1", "Ana Flores", monday.AddDate(0, 0, i%5), 2, 20))
	}
	svc, _, _ := newTestService(t, entries, laborWorker("w1", "Ana Flores", 20))

	resp, err := svc.ListEntries(context.Background(), timesheet.EntryFilter{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Entries, 10)
	assert.Equal(t, "2h", resp.Entries[0].Hours)
}
