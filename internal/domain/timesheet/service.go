package timesheet

import "context"

// TimesheetService defines business logic for timesheet capture and the
// weekly aggregation views.
type TimesheetService interface {
	// CreateEntry records a raw time entry (clock pair or precomputed hours).
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// ListEntries retrieves raw entries with filters and pagination.
	ListEntries(ctx context.Context, filter EntryFilter) (ListEntriesResponse, error)

	// GetWeeklyDashboard builds the multi-worker weekly summary. A supplied
	// range is snapped to exactly one Monday-anchored week; with no range the
	// window expands to cover every entry on record.
	GetWeeklyDashboard(ctx context.Context, filter DashboardFilter) (WeeklyDashboardResponse, error)

	// GetWorkerWeeklyView builds the per-day, per-job audit view for one
	// worker over the literal supplied range. Unlike the dashboard, the range
	// is honored as-is with no week snapping.
	GetWorkerWeeklyView(ctx context.Context, req WeeklyViewRequest) (WeeklyViewResponse, error)
}
