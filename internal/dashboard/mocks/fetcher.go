package mocks

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

// MockFetcher is a function-based mock of dashboard.Fetcher.
type MockFetcher struct {
	FetchSnapshotFunc func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error)
	ExportReportFunc  func(ctx context.Context, r *stats.DateRange) ([]byte, error)

	FetchCalls  atomic.Int32
	ExportCalls atomic.Int32
}

func (m *MockFetcher) FetchSnapshot(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
	m.FetchCalls.Add(1)
	if m.FetchSnapshotFunc != nil {
		return m.FetchSnapshotFunc(ctx, r)
	}
	return nil, errors.New("FetchSnapshotFunc not implemented")
}

func (m *MockFetcher) ExportReport(ctx context.Context, r *stats.DateRange) ([]byte, error) {
	m.ExportCalls.Add(1)
	if m.ExportReportFunc != nil {
		return m.ExportReportFunc(ctx, r)
	}
	return nil, errors.New("ExportReportFunc not implemented")
}
