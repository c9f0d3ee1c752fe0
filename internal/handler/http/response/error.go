package response

import (
	"errors"
	"net/http"

	"github.com/crewops/crewops-backend-go/internal/domain/timesheet"
	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/pkg/timeutil"
	"github.com/crewops/crewops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrNameExists):
		Conflict(w, "A worker with this name already exists")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDateRange):
		BadRequest(w, "Invalid or missing date range", nil)
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")
	case errors.Is(err, timesheet.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, timeutil.ErrInvalidDuration):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
