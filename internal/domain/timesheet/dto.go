package timesheet

import (
	"time"

	"github.com/crewops/crewops-backend-go/internal/pkg/validator"
)

// ========================================
// ENTRY CAPTURE DTOs
// ========================================

type CreateEntryRequest struct {
	WorkerID   string   `json:"worker_id"`
	WorkDate   string   `json:"work_date"`             // YYYY-MM-DD
	StartTime  *string  `json:"start_time,omitempty"`  // HH:MM
	EndTime    *string  `json:"end_time,omitempty"`    // HH:MM
	TotalHours *float64 `json:"total_hours,omitempty"` // decimal hours
	JobID      *string  `json:"job_id,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.WorkDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be in YYYY-MM-DD format",
		})
	}

	hasStart := r.StartTime != nil && *r.StartTime != ""
	hasEnd := r.EndTime != nil && *r.EndTime != ""

	if hasStart != hasEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time and end_time must be supplied together",
		})
	}

	if hasStart {
		if _, valid := validator.IsValidClockTime(*r.StartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if hasEnd {
		if _, valid := validator.IsValidClockTime(*r.EndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	// An entry needs a derivable duration from one of the two shapes.
	if !hasStart && !hasEnd && r.TotalHours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours",
			Message: "either a start_time/end_time pair or total_hours is required",
		})
	}

	if r.TotalHours != nil && *r.TotalHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours",
			Message: "total_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID           string   `json:"id"`
	WorkerID     string   `json:"worker_id"`
	WorkerName   string   `json:"worker_name"`
	WorkDate     string   `json:"work_date"`
	StartTime    *string  `json:"start_time,omitempty"`
	EndTime      *string  `json:"end_time,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	Hours        string   `json:"hours"` // derived, "Xh Ym"
	JobID        *string  `json:"job_id,omitempty"`
	JobTitle     *string  `json:"job_title,omitempty"`
	HourlyRate   float64  `json:"hourly_rate"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type EntryFilter struct {
	// Search & Filter
	WorkerID  *string `json:"worker_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EntryFilter) Validate() error {
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

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntriesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Entries    []EntryResponse `json:"entries"`
}

// ========================================
// WEEKLY DASHBOARD DTOs
// ========================================

type DashboardFilter struct {
	// Both dates or neither. When both are present the window snaps to the
	// Monday-anchored week of start_date, exactly 7 days; end_date is only
	// required to be present and well-formed, it never extends the window.
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	WorkerID  *string `json:"worker_id,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *DashboardFilter) Validate() error {
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

	hasStart := f.StartDate != nil && *f.StartDate != ""
	hasEnd := f.EndDate != nil && *f.EndDate != ""

	if hasStart != hasEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be supplied together",
		})
	}

	if hasStart {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if hasEnd {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeeklyDashboardRow is one worker's week at a glance: a display column per
// weekday plus totals and pay.
type WeeklyDashboardRow struct {
	WorkerID      string  `json:"worker_id"`
	Employee      string  `json:"employee"`
	Job           string  `json:"job"` // representative job title for the week
	Week          string  `json:"week"`
	Mon           string  `json:"mon"`
	Tue           string  `json:"tue"`
	Wed           string  `json:"wed"`
	Thu           string  `json:"thu"`
	Fri           string  `json:"fri"`
	Sat           string  `json:"sat"`
	Sun           string  `json:"sun"`
	Total         string  `json:"total"`
	Billable      string  `json:"billable"`
	HourlyRate    float64 `json:"hourly_rate"`
	WeeklyPayment float64 `json:"weekly_payment"`
	Status        string  `json:"status"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type WeeklyDashboardResponse struct {
	Period     string               `json:"period"`
	Rows       []WeeklyDashboardRow `json:"rows"`
	Pagination Pagination           `json:"pagination"`
}

// ========================================
// DETAILED WEEKLY VIEW DTOs
// ========================================

type WeeklyViewRequest struct {
	WorkerID  string `json:"worker_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, literal, no snapping
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
}

func (r *WeeklyViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DetailedDayRow is one row of the audit view: a day/job pairing, or the
// "Leave" sentinel when the day has no entries at all.
type DetailedDayRow struct {
	Date         string  `json:"date"`
	Day          string  `json:"day"`
	JobID        *string `json:"job_id"`
	JobTitle     string  `json:"job_title"`
	HoursWorked  float64 `json:"hours_worked"`
	HoursDisplay string  `json:"hours_display"`
	PayAmount    float64 `json:"pay_amount"`
}

type WeekTotal struct {
	TotalHours   float64 `json:"total_hours"`
	TotalDisplay string  `json:"total_display"`
	TotalPay     float64 `json:"total_pay"`
}

type WeeklyViewResponse struct {
	WorkerID       string           `json:"worker_id"`
	EmployeeName   string           `json:"employee_name"`
	HourlyRate     float64          `json:"hourly_rate"`
	DailyBreakdown []DetailedDayRow `json:"daily_breakdown"`
	WeekTotal      WeekTotal        `json:"week_total"`
}

// LeaveJobTitle marks a day with no logged entries in the detailed view. The
// dashboard uses a plain "0h" column instead; the two sentinels are distinct
// on purpose and consumers rely on that.
const LeaveJobTitle = "Leave"

// GeneralWorkTitle labels entries carrying no job reference.
const GeneralWorkTitle = "General work"

// ParseDate is a convenience wrapper for the DTO date layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateRange
	}
	return t, nil
}
