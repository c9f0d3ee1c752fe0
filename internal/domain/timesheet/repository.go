package timesheet

import (
	"context"
	"time"
)

// DateRange is an inclusive calendar-date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateBounds captures the earliest and latest work dates present in the
// store, used to resolve a window when the caller supplies none.
type DateBounds struct {
	Earliest time.Time
	Latest   time.Time
}

// TimesheetRepository defines data access for raw timesheet entries. Results
// are ordered by work date ascending; workerID narrows to one worker when
// non-nil, and a nil window means no date restriction.
type TimesheetRepository interface {
	// Create persists a new raw entry.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// ListEntries retrieves every entry matching the filters, unpaginated.
	// The aggregation engine consumes this.
	ListEntries(ctx context.Context, workerID *string, window *DateRange) ([]Entry, error)

	// ListEntriesPaged retrieves entries with offset pagination, plus the
	// total match count.
	ListEntriesPaged(ctx context.Context, filter EntryFilter) ([]Entry, int64, error)

	// EntryDateBounds returns the earliest and latest work dates on record,
	// or nil when there are no entries at all.
	EntryDateBounds(ctx context.Context, workerID *string) (*DateBounds, error)
}
