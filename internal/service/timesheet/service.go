package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/crewops/crewops-backend-go/internal/domain/timesheet"
	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/pkg/timeutil"
)

type TimesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	workerRepo    worker.WorkerRepository
	clockPolicy   timeutil.ClockPolicy
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	workerRepo worker.WorkerRepository,
	clockPolicy timeutil.ClockPolicy,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timesheetRepo: timesheetRepo,
		workerRepo:    workerRepo,
		clockPolicy:   clockPolicy,
	}
}

// CreateEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateEntry(ctx context.Context, req timesheet.CreateEntryRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return timesheet.EntryResponse{}, err
		}
		return timesheet.EntryResponse{}, fmt.Errorf("failed to look up worker: %w", err)
	}

	workDate, err := timesheet.ParseDate(req.WorkDate)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	source, err := buildSource(workDate, req)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry := timesheet.Entry{
		ID:         uuid.NewString(),
		WorkerID:   w.ID,
		WorkerName: w.Name,
		WorkDate:   workDate,
		Source:     source,
		JobID:      req.JobID,
		HourlyRate: w.HourlyRate,
	}

	// Surface a bad clock pair at capture time instead of at aggregation
	// time.
	if _, err := s.entryHours(entry); err != nil {
		return timesheet.EntryResponse{}, err
	}

	created, err := s.timesheetRepo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, timesheet.ErrJobNotFound) {
			return timesheet.EntryResponse{}, err
		}
		return timesheet.EntryResponse{}, fmt.Errorf("failed to create timesheet entry: %w", err)
	}

	return s.entryResponse(created)
}

// ListEntries implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListEntries(ctx context.Context, filter timesheet.EntryFilter) (timesheet.ListEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListEntriesResponse{}, err
	}

	entries, totalCount, err := s.timesheetRepo.ListEntriesPaged(ctx, filter)
	if err != nil {
		return timesheet.ListEntriesResponse{}, fmt.Errorf("failed to list timesheet entries: %w", err)
	}

	responses := make([]timesheet.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp, err := s.entryResponse(e)
		if err != nil {
			return timesheet.ListEntriesResponse{}, err
		}
		responses = append(responses, resp)
	}

	return timesheet.ListEntriesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(totalCount, filter.Limit),
		Entries:    responses,
	}, nil
}

// GetWeeklyDashboard implements timesheet.TimesheetService.
//
// A supplied range is snapped to exactly one Monday-anchored week: start_date
// picks the week, end_date only has to be present and well-formed. This is
// the "week at a glance" contract; the detailed view (GetWorkerWeeklyView)
// honors literal ranges instead.
func (s *TimesheetServiceImpl) GetWeeklyDashboard(ctx context.Context, filter timesheet.DashboardFilter) (timesheet.WeeklyDashboardResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.WeeklyDashboardResponse{}, err
	}

	window, err := s.resolveDashboardWindow(ctx, filter)
	if err != nil {
		return timesheet.WeeklyDashboardResponse{}, err
	}

	entries, err := s.timesheetRepo.ListEntries(ctx, filter.WorkerID, &window)
	if err != nil {
		return timesheet.WeeklyDashboardResponse{}, fmt.Errorf("failed to fetch entries: %w", err)
	}

	summaries, err := s.summarize(entries)
	if err != nil {
		return timesheet.WeeklyDashboardResponse{}, err
	}

	// A filtered worker with nothing logged still gets a row of zeroes over
	// the resolved window.
	if filter.WorkerID != nil && len(summaries) == 0 {
		w, err := s.workerRepo.GetByID(ctx, *filter.WorkerID)
		if err != nil {
			if errors.Is(err, worker.ErrWorkerNotFound) {
				return timesheet.WeeklyDashboardResponse{}, err
			}
			return timesheet.WeeklyDashboardResponse{}, fmt.Errorf("failed to look up worker: %w", err)
		}
		summaries = append(summaries, timesheet.WeeklySummary{
			WorkerID:       w.ID,
			WorkerName:     w.Name,
			WeekStart:      window.Start,
			WeekEnd:        window.Start.AddDate(0, 0, 6),
			DailyBreakdown: map[string]*timesheet.DailyBreakdownEntry{},
			HourlyRate:     w.HourlyRate,
		})
	}

	// Total order: most recent week first, then employee name, then worker
	// id as the final tiebreak.
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if !a.WeekStart.Equal(b.WeekStart) {
			return a.WeekStart.After(b.WeekStart)
		}
		if a.WorkerName != b.WorkerName {
			return a.WorkerName < b.WorkerName
		}
		return a.WorkerID < b.WorkerID
	})

	rows := make([]timesheet.WeeklyDashboardRow, 0, len(summaries))
	for _, sum := range summaries {
		row, err := dashboardRow(sum)
		if err != nil {
			return timesheet.WeeklyDashboardResponse{}, err
		}
		rows = append(rows, row)
	}

	paged, pagination := paginateRows(rows, filter.Page, filter.Limit)

	return timesheet.WeeklyDashboardResponse{
		Period:     formatRange(window.Start, window.End),
		Rows:       paged,
		Pagination: pagination,
	}, nil
}

// GetWorkerWeeklyView implements timesheet.TimesheetService.
//
// The supplied range is honored literally: every calendar day from start to
// end gets at least one row, days without entries carry the "Leave" sentinel,
// and days with entries get one row per distinct job worked.
func (s *TimesheetServiceImpl) GetWorkerWeeklyView(ctx context.Context, req timesheet.WeeklyViewRequest) (timesheet.WeeklyViewResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.WeeklyViewResponse{}, err
	}

	start, err := timesheet.ParseDate(req.StartDate)
	if err != nil {
		return timesheet.WeeklyViewResponse{}, err
	}
	end, err := timesheet.ParseDate(req.EndDate)
	if err != nil {
		return timesheet.WeeklyViewResponse{}, err
	}

	window := timesheet.DateRange{Start: start, End: end}

	var (
		w       worker.Worker
		entries []timesheet.Entry
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		w, err = s.workerRepo.GetByID(gCtx, req.WorkerID)
		if err != nil && !errors.Is(err, worker.ErrWorkerNotFound) {
			return fmt.Errorf("failed to look up worker: %w", err)
		}
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.timesheetRepo.ListEntries(gCtx, &req.WorkerID, &window)
		if err != nil {
			return fmt.Errorf("failed to fetch entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return timesheet.WeeklyViewResponse{}, err
	}

	rows, weekTotal, err := s.buildDetailedRows(entries, start, end, w.HourlyRate)
	if err != nil {
		return timesheet.WeeklyViewResponse{}, err
	}

	return timesheet.WeeklyViewResponse{
		WorkerID:       w.ID,
		EmployeeName:   w.Name,
		HourlyRate:     w.HourlyRate,
		DailyBreakdown: rows,
		WeekTotal:      weekTotal,
	}, nil
}

// resolveDashboardWindow normalizes the requested range. Explicit dates snap
// to the Monday week of start_date; with no dates the window expands to full
// weeks around the earliest and latest entries on record, falling back to the
// current week when the store is empty.
func (s *TimesheetServiceImpl) resolveDashboardWindow(ctx context.Context, filter timesheet.DashboardFilter) (timesheet.DateRange, error) {
	if filter.StartDate != nil && *filter.StartDate != "" {
		start, err := timesheet.ParseDate(*filter.StartDate)
		if err != nil {
			return timesheet.DateRange{}, err
		}
		monday := timeutil.MondayOf(start)
		return timesheet.DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}, nil
	}

	bounds, err := s.timesheetRepo.EntryDateBounds(ctx, filter.WorkerID)
	if err != nil {
		return timesheet.DateRange{}, fmt.Errorf("failed to resolve entry date bounds: %w", err)
	}
	if bounds == nil {
		monday, sunday := timeutil.WeekWindow(time.Now())
		return timesheet.DateRange{Start: monday, End: sunday}, nil
	}

	return timesheet.DateRange{
		Start: timeutil.MondayOf(bounds.Earliest),
		End:   timeutil.MondayOf(bounds.Latest).AddDate(0, 0, 6),
	}, nil
}

// buildDetailedRows walks every calendar day of the literal range. Entries
// group by job within a day; a day with no entries emits exactly one "Leave"
// row. Totals accumulate in full precision and round only at the edges.
func (s *TimesheetServiceImpl) buildDetailedRows(entries []timesheet.Entry, start, end time.Time, hourlyRate float64) ([]timesheet.DetailedDayRow, timesheet.WeekTotal, error) {
	byDay := make(map[string][]timesheet.Entry)
	for _, e := range entries {
		key := e.WorkDate.Format(timeutil.DateLayout)
		byDay[key] = append(byDay[key], e)
	}

	var rows []timesheet.DetailedDayRow
	var totalHours float64

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(timeutil.DateLayout)
		dayEntries := byDay[key]

		if len(dayEntries) == 0 {
			rows = append(rows, timesheet.DetailedDayRow{
				Date:         key,
				Day:          day.Weekday().String(),
				JobID:        nil,
				JobTitle:     timesheet.LeaveJobTitle,
				HoursWorked:  0,
				HoursDisplay: zeroHoursLabel,
				PayAmount:    0,
			})
			continue
		}

		dayRows, dayHours, err := s.jobRowsForDay(day, dayEntries, hourlyRate)
		if err != nil {
			return nil, timesheet.WeekTotal{}, err
		}
		rows = append(rows, dayRows...)
		totalHours += dayHours
	}

	totalDisplay, err := timeutil.FormatHours(totalHours)
	if err != nil {
		return nil, timesheet.WeekTotal{}, err
	}

	return rows, timesheet.WeekTotal{
		TotalHours:   round2(totalHours),
		TotalDisplay: totalDisplay,
		TotalPay:     pay(totalHours, hourlyRate),
	}, nil
}

// jobRowsForDay collapses one day's entries into one row per distinct job.
// Entries without a job reference pool into a synthetic general-work bucket
// with a nil job id.
func (s *TimesheetServiceImpl) jobRowsForDay(day time.Time, dayEntries []timesheet.Entry, hourlyRate float64) ([]timesheet.DetailedDayRow, float64, error) {
	type jobBucket struct {
		jobID *string
		title string
		hours float64
	}

	var order []string
	buckets := make(map[string]*jobBucket)

	for _, e := range dayEntries {
		hours, err := s.entryHours(e)
		if err != nil {
			return nil, 0, err
		}

		key := ""
		title := timesheet.GeneralWorkTitle
		var jobID *string
		if e.JobID != nil {
			key = *e.JobID
			jobID = e.JobID
			if e.JobTitle != nil && *e.JobTitle != "" {
				title = *e.JobTitle
			}
		}

		bucket, ok := buckets[key]
		if !ok {
			order = append(order, key)
			buckets[key] = &jobBucket{jobID: jobID, title: title, hours: hours}
			continue
		}
		bucket.hours += hours
	}

	rows := make([]timesheet.DetailedDayRow, 0, len(order))
	var dayHours float64
	for _, key := range order {
		bucket := buckets[key]
		display, err := timeutil.FormatHours(bucket.hours)
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, timesheet.DetailedDayRow{
			Date:         day.Format(timeutil.DateLayout),
			Day:          day.Weekday().String(),
			JobID:        bucket.jobID,
			JobTitle:     bucket.title,
			HoursWorked:  round2(bucket.hours),
			HoursDisplay: display,
			PayAmount:    pay(bucket.hours, hourlyRate),
		})
		dayHours += bucket.hours
	}

	return rows, dayHours, nil
}

// paginateRows applies offset/limit pagination to the assembled rows.
func paginateRows(rows []timesheet.WeeklyDashboardRow, page, limit int) ([]timesheet.WeeklyDashboardRow, timesheet.Pagination) {
	total := int64(len(rows))
	pages := totalPages(total, limit)

	offset := (page - 1) * limit
	if offset > len(rows) {
		offset = len(rows)
	}
	endIdx := offset + limit
	if endIdx > len(rows) {
		endIdx = len(rows)
	}

	return rows[offset:endIdx], timesheet.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}

func totalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((totalCount + int64(limit) - 1) / int64(limit))
}

// buildSource maps the request's entry shape onto the HoursSource union.
// Validation has already guaranteed that clock times come in pairs and that
// at least one shape is present.
func buildSource(workDate time.Time, req timesheet.CreateEntryRequest) (timesheet.HoursSource, error) {
	if req.StartTime != nil && *req.StartTime != "" {
		start, err := clockOn(workDate, *req.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := clockOn(workDate, *req.EndTime)
		if err != nil {
			return nil, err
		}
		return timesheet.ClockRange{Start: start, End: end}, nil
	}
	return timesheet.PrecomputedHours{Hours: *req.TotalHours}, nil
}

// clockOn combines a "HH:MM" clock string with a work date.
func clockOn(workDate time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed clock time %q", timeutil.ErrInvalidDuration, clock)
	}
	return time.Date(workDate.Year(), workDate.Month(), workDate.Day(),
		t.Hour(), t.Minute(), 0, 0, workDate.Location()), nil
}

// entryResponse shapes a stored entry for output, deriving the display hours
// from its source.
func (s *TimesheetServiceImpl) entryResponse(e timesheet.Entry) (timesheet.EntryResponse, error) {
	hours, err := s.entryHours(e)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}
	display, err := timeutil.FormatHours(hours)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	resp := timesheet.EntryResponse{
		ID:         e.ID,
		WorkerID:   e.WorkerID,
		WorkerName: e.WorkerName,
		WorkDate:   e.WorkDate.Format(timeutil.DateLayout),
		Hours:      display,
		JobID:      e.JobID,
		JobTitle:   e.JobTitle,
		HourlyRate: e.HourlyRate,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}

	switch src := e.Source.(type) {
	case timesheet.ClockRange:
		startStr := src.Start.Format("15:04")
		endStr := src.End.Format("15:04")
		resp.StartTime = &startStr
		resp.EndTime = &endStr
	case timesheet.PrecomputedHours:
		total := src.Hours
		resp.TotalHours = &total
	}

	return resp, nil
}
