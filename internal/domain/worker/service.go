package worker

import "context"

// WorkerService defines business logic for the worker directory.
type WorkerService interface {
	// CreateWorker registers a new worker.
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	// GetWorker retrieves a single worker by ID.
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)

	// ListWorkers retrieves workers with filters and pagination.
	ListWorkers(ctx context.Context, filter WorkerFilter) (ListWorkersResponse, error)
}
