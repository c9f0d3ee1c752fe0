package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/crewops/crewops-backend-go/internal/domain/timesheet"
	"github.com/crewops/crewops-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

// entryRow mirrors one joined row of timesheet_entries. The nullable clock
// and hours columns are folded into the Source union after scanning.
type entryRow struct {
	id         string
	workerID   string
	workerName string
	workDate   time.Time
	startTime  *time.Time
	endTime    *time.Time
	totalHours *float64
	jobID      *string
	jobTitle   *string
	hourlyRate float64
	createdAt  time.Time
	updatedAt  time.Time
}

func (r entryRow) toEntry() timesheet.Entry {
	entry := timesheet.Entry{
		ID:         r.id,
		WorkerID:   r.workerID,
		WorkerName: r.workerName,
		WorkDate:   r.workDate,
		JobID:      r.jobID,
		JobTitle:   r.jobTitle,
		HourlyRate: r.hourlyRate,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
	}

	// Clock pair wins when both shapes are somehow present; entries with
	// neither stay sourceless and aggregate as zero hours.
	switch {
	case r.startTime != nil && r.endTime != nil:
		entry.Source = timesheet.ClockRange{Start: *r.startTime, End: *r.endTime}
	case r.totalHours != nil:
		entry.Source = timesheet.PrecomputedHours{Hours: *r.totalHours}
	}

	return entry
}

const entrySelectColumns = `
	e.id, e.worker_id, w.name, e.work_date, e.start_time, e.end_time,
	e.total_hours, e.job_id, j.title, w.hourly_rate, e.created_at, e.updated_at
`

// Create implements timesheet.TimesheetRepository. The job title lookup and
// the insert run in one transaction so the stored entry never references a
// job deleted between the two statements.
func (t *timesheetRepository) Create(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	err := WithTransaction(ctx, t.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, t.db)

		if entry.JobID != nil {
			var title string
			err := q.QueryRow(ctx, `SELECT title FROM jobs WHERE id = $1`, *entry.JobID).Scan(&title)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return timesheet.ErrJobNotFound
				}
				return fmt.Errorf("failed to look up job: %w", err)
			}
			entry.JobTitle = &title
		}

		var startTime, endTime *time.Time
		var totalHours *float64
		switch src := entry.Source.(type) {
		case timesheet.ClockRange:
			startTime, endTime = &src.Start, &src.End
		case timesheet.PrecomputedHours:
			totalHours = &src.Hours
		}

		query := `
			INSERT INTO timesheet_entries (
				id, worker_id, work_date, start_time, end_time, total_hours, job_id
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			) RETURNING created_at, updated_at
		`

		err := q.QueryRow(ctx, query,
			entry.ID,
			entry.WorkerID,
			entry.WorkDate,
			startTime,
			endTime,
			totalHours,
			entry.JobID,
		).Scan(&entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create timesheet entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return timesheet.Entry{}, err
	}

	return entry, nil
}

// ListEntries implements timesheet.TimesheetRepository.
func (t *timesheetRepository) ListEntries(ctx context.Context, workerID *string, window *timesheet.DateRange) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, t.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + entrySelectColumns + `
		FROM timesheet_entries e
		JOIN workers w ON w.id = e.worker_id
		LEFT JOIN jobs j ON j.id = e.job_id
		WHERE 1=1
	`)

	var args []interface{}
	if workerID != nil {
		args = append(args, *workerID)
		sb.WriteString(fmt.Sprintf(" AND e.worker_id = $%d", len(args)))
	}
	if window != nil {
		args = append(args, window.Start)
		sb.WriteString(fmt.Sprintf(" AND e.work_date >= $%d", len(args)))
		args = append(args, window.End)
		sb.WriteString(fmt.Sprintf(" AND e.work_date <= $%d", len(args)))
	}
	sb.WriteString(" ORDER BY e.work_date ASC, e.created_at ASC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListEntriesPaged implements timesheet.TimesheetRepository.
func (t *timesheetRepository) ListEntriesPaged(ctx context.Context, filter timesheet.EntryFilter) ([]timesheet.Entry, int64, error) {
	q := GetQuerier(ctx, t.db)

	var conditions strings.Builder
	var args []interface{}

	conditions.WriteString(" WHERE 1=1")
	if filter.WorkerID != nil && *filter.WorkerID != "" {
		args = append(args, *filter.WorkerID)
		conditions.WriteString(fmt.Sprintf(" AND e.worker_id = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions.WriteString(fmt.Sprintf(" AND e.work_date >= $%d", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions.WriteString(fmt.Sprintf(" AND e.work_date <= $%d", len(args)))
	}

	countQuery := "SELECT COUNT(*) FROM timesheet_entries e" + conditions.String()
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheet entries: %w", err)
	}

	listQuery := `
		SELECT ` + entrySelectColumns + `
		FROM timesheet_entries e
		JOIN workers w ON w.id = e.worker_id
		LEFT JOIN jobs j ON j.id = e.job_id
	` + conditions.String()

	args = append(args, filter.Limit)
	listQuery += fmt.Sprintf(" ORDER BY e.work_date DESC, e.created_at DESC LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	listQuery += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query timesheet entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, totalCount, nil
}

// EntryDateBounds implements timesheet.TimesheetRepository.
func (t *timesheetRepository) EntryDateBounds(ctx context.Context, workerID *string) (*timesheet.DateBounds, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT MIN(work_date), MAX(work_date) FROM timesheet_entries`
	var args []interface{}
	if workerID != nil {
		query += ` WHERE worker_id = $1`
		args = append(args, *workerID)
	}

	var earliest, latest *time.Time
	if err := q.QueryRow(ctx, query, args...).Scan(&earliest, &latest); err != nil {
		return nil, fmt.Errorf("failed to query entry date bounds: %w", err)
	}

	if earliest == nil || latest == nil {
		return nil, nil
	}

	return &timesheet.DateBounds{Earliest: *earliest, Latest: *latest}, nil
}

func scanEntries(rows pgx.Rows) ([]timesheet.Entry, error) {
	var entries []timesheet.Entry
	for rows.Next() {
		var r entryRow
		err := rows.Scan(
			&r.id, &r.workerID, &r.workerName, &r.workDate, &r.startTime, &r.endTime,
			&r.totalHours, &r.jobID, &r.jobTitle, &r.hourlyRate, &r.createdAt, &r.updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, r.toEntry())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet entries: %w", err)
	}
	return entries, nil
}
