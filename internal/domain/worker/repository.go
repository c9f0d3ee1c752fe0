package worker

import "context"

// WorkerRepository defines data access for the worker directory.
type WorkerRepository interface {
	// Create persists a new worker.
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves one worker; returns ErrWorkerNotFound when the id is
	// unknown.
	GetByID(ctx context.Context, id string) (Worker, error)

	// List retrieves workers with filters and pagination, plus the total
	// match count.
	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)
}
