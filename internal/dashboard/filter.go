package dashboard

import (
	"sync"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

type FilterState string

const (
	Unfiltered FilterState = "unfiltered"
	Filtered   FilterState = "filtered"
)

// Filter holds the active date range. Apply only moves to Filtered when
// both dates parse and end is not before start; a rejected Apply leaves the
// current state untouched.
type Filter struct {
	mu sync.RWMutex
	r  *stats.DateRange
}

func (f *Filter) Apply(start, end string) (*stats.DateRange, error) {
	r, err := stats.ParseStrictDateRange(start, end)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.r = r
	f.mu.Unlock()
	return r, nil
}

func (f *Filter) Clear() {
	f.mu.Lock()
	f.r = nil
	f.mu.Unlock()
}

// Range returns the active range, nil when unfiltered.
func (f *Filter) Range() *stats.DateRange {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.r
}

func (f *Filter) State() FilterState {
	if f.Range() == nil {
		return Unfiltered
	}
	return Filtered
}
