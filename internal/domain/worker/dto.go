package worker

import (
	"github.com/crewops/crewops-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	HourlyRate float64 `json:"hourly_rate"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: staff, labor, lead_labor",
		})
	}

	if r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	// Salaried staff are paid monthly; an hourly rate would silently feed the
	// billing calculator.
	if r.Category == string(CategoryStaff) && r.HourlyRate != 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be 0 for salaried staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	HourlyRate float64 `json:"hourly_rate"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type WorkerFilter struct {
	// Search & Filter
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *WorkerFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Category != nil && !validator.IsInSlice(*f.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: staff, labor, lead_labor",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListWorkersResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Workers    []WorkerResponse `json:"workers"`
}
