package stats

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used on every query string.
const DateLayout = "2006-01-02"

var (
	ErrInvalidRange    = errors.New("end date must not be before start date")
	ErrIncompleteRange = errors.New("both start and end dates are required")
)

// DateRange is an inclusive calendar-day range. A nil *DateRange means
// "unfiltered".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates that end is not before start.
func NewDateRange(start, end time.Time) (*DateRange, error) {
	s := truncateDay(start)
	e := truncateDay(end)
	if e.Before(s) {
		return nil, ErrInvalidRange
	}
	return &DateRange{Start: s, End: e}, nil
}

// ParseDateRange parses a pair of YYYY-MM-DD strings. The range only applies
// when both are given; otherwise it returns nil and no error.
func ParseDateRange(from, to string) (*DateRange, error) {
	if from == "" || to == "" {
		return nil, nil
	}
	return parseBoth(from, to)
}

// ParseStrictDateRange is ParseDateRange without the lenient fallback: a
// missing end is an error.
func ParseStrictDateRange(from, to string) (*DateRange, error) {
	if from == "" || to == "" {
		return nil, ErrIncompleteRange
	}
	return parseBoth(from, to)
}

func parseBoth(from, to string) (*DateRange, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", from, err)
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", to, err)
	}
	return NewDateRange(start, end)
}

func (r *DateRange) StartDate() string { return r.Start.Format(DateLayout) }
func (r *DateRange) EndDate() string   { return r.End.Format(DateLayout) }

func (r *DateRange) String() string {
	if r == nil {
		return "all"
	}
	return r.StartDate() + ":" + r.EndDate()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
