package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for negative hour values and malformed
// duration strings.
var ErrInvalidDuration = errors.New("invalid duration")

// ClockPolicy decides how a clock pair with end before start is treated.
type ClockPolicy string

const (
	// ClockRejectNegative rejects end < start with ErrInvalidDuration.
	ClockRejectNegative ClockPolicy = "reject"
	// ClockCrossMidnight interprets end < start as a span crossing midnight.
	ClockCrossMidnight ClockPolicy = "cross_midnight"
)

// HoursFromClock computes the decimal hours between two clock times on the
// same work date. Behaviour for end < start depends on policy.
func HoursFromClock(start, end time.Time, policy ClockPolicy) (float64, error) {
	span := end.Sub(start)
	if span < 0 {
		if policy == ClockCrossMidnight {
			span += 24 * time.Hour
		} else {
			return 0, fmt.Errorf("%w: clock out %s is before clock in %s",
				ErrInvalidDuration, end.Format("15:04"), start.Format("15:04"))
		}
	}
	return span.Hours(), nil
}

// FormatHours renders decimal hours as "8h 30m", or "8h" when there are no
// leftover minutes. Minutes are truncated, not rounded.
func FormatHours(hours float64) (string, error) {
	if hours < 0 {
		return "", fmt.Errorf("%w: negative hours %f", ErrInvalidDuration, hours)
	}
	// Nudge before truncating so binary float noise (e.g. 8.4999999...)
	// does not eat a whole minute.
	totalMinutes := int(math.Floor(hours*60 + 1e-6))
	h := totalMinutes / 60
	m := totalMinutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h), nil
	}
	return fmt.Sprintf("%dh %dm", h, m), nil
}

// HoursToDuration renders decimal hours as a zero-padded "HH:MM:SS" string,
// truncated to the second.
func HoursToDuration(hours float64) (string, error) {
	if hours < 0 {
		return "", fmt.Errorf("%w: negative hours %f", ErrInvalidDuration, hours)
	}
	totalSeconds := int64(math.Floor(hours*3600 + 1e-6))
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s), nil
}

// DurationToHours parses a "HH:MM:SS" string back into decimal hours. It is
// the inverse of HoursToDuration and is used when merging new hours into an
// already formatted daily bucket.
func DurationToHours(duration string) (float64, error) {
	parts := strings.Split(duration, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q is not in HH:MM:SS format", ErrInvalidDuration, duration)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, fmt.Errorf("%w: bad hour component in %q", ErrInvalidDuration, duration)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: bad minute component in %q", ErrInvalidDuration, duration)
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("%w: bad second component in %q", ErrInvalidDuration, duration)
	}

	return float64(h) + float64(m)/60 + float64(s)/3600, nil
}
