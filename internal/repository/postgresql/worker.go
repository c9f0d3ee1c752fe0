package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

// Create implements worker.WorkerRepository.
func (wr *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, wr.db)

	query := `
		INSERT INTO workers (id, name, category, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, w.ID, w.Name, string(w.Category), w.HourlyRate).
		Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrNameExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (wr *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, wr.db)

	query := `
		SELECT id, name, category, hourly_rate, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	var category string
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &category, &w.HourlyRate, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	w.Category = worker.Category(category)

	return w, nil
}

// List implements worker.WorkerRepository.
func (wr *workerRepository) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, wr.db)

	var conditions strings.Builder
	var args []interface{}

	conditions.WriteString(" WHERE 1=1")
	if filter.Name != nil && *filter.Name != "" {
		args = append(args, "%"+*filter.Name+"%")
		conditions.WriteString(fmt.Sprintf(" AND name ILIKE $%d", len(args)))
	}
	if filter.Category != nil && *filter.Category != "" {
		args = append(args, *filter.Category)
		conditions.WriteString(fmt.Sprintf(" AND category = $%d", len(args)))
	}

	countQuery := "SELECT COUNT(*) FROM workers" + conditions.String()
	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	listQuery := `
		SELECT id, name, category, hourly_rate, created_at, updated_at
		FROM workers
	` + conditions.String()

	args = append(args, filter.Limit)
	listQuery += fmt.Sprintf(" ORDER BY name ASC, id ASC LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	listQuery += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		var category string
		err := rows.Scan(&w.ID, &w.Name, &category, &w.HourlyRate, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		w.Category = worker.Category(category)
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, totalCount, nil
}
