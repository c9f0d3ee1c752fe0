package worker

import "time"

// Category is the worker classification. Salaried staff carry no hourly
// rate; labor and lead labor are paid per hour.
type Category string

const (
	CategoryStaff     Category = "staff"
	CategoryLabor     Category = "labor"
	CategoryLeadLabor Category = "lead_labor"
)

// Categories lists every valid worker category.
var Categories = []string{
	string(CategoryStaff),
	string(CategoryLabor),
	string(CategoryLeadLabor),
}

// Worker is any person tracked for time and billing purposes.
type Worker struct {
	ID         string
	Name       string
	Category   Category
	HourlyRate float64 // 0 for salaried staff
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
