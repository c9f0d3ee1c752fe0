package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/pkg/rolecache"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
	roleCache  *rolecache.Cache
}

func NewWorkerService(workerRepo worker.WorkerRepository, roleCache *rolecache.Cache) worker.WorkerService {
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		roleCache:  roleCache,
	}
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Category:   worker.Category(req.Category),
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		if errors.Is(err, worker.ErrNameExists) {
			return worker.WorkerResponse{}, err
		}
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	// A stale cached role for a reused id would outlive this write.
	s.roleCache.Invalidate(created.ID)

	return workerResponse(created), nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return worker.WorkerResponse{}, err
		}
		return worker.WorkerResponse{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return workerResponse(w), nil
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) (worker.ListWorkersResponse, error) {
	if err := filter.Validate(); err != nil {
		return worker.ListWorkersResponse{}, err
	}

	workers, totalCount, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return worker.ListWorkersResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, workerResponse(w))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return worker.ListWorkersResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Workers:    responses,
	}, nil
}

func workerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:         w.ID,
		Name:       w.Name,
		Category:   string(w.Category),
		HourlyRate: w.HourlyRate,
		CreatedAt:  w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  w.UpdatedAt.Format(time.RFC3339),
	}
}
