package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrNameExists     = errors.New("a worker with this name already exists")
)
