package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidDateRange = errors.New("invalid or missing date range")
	ErrEntryNotFound    = errors.New("timesheet entry not found")
	ErrJobNotFound      = errors.New("job not found")
)
