package mocks

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

// MockUpstream is a mock implementation of the Upstream interface
// for testing the service layer. It uses function-based mocking for flexibility.
type MockUpstream struct {
	FetchSummaryFunc func(ctx context.Context, r *stats.DateRange) ([]byte, error)
	ExportExcelFunc  func(ctx context.Context, r *stats.DateRange) ([]byte, error)

	SummaryCalls atomic.Int32
	ExportCalls  atomic.Int32
}

// FetchSummary implements the Upstream interface
func (m *MockUpstream) FetchSummary(ctx context.Context, r *stats.DateRange) ([]byte, error) {
	m.SummaryCalls.Add(1)
	if m.FetchSummaryFunc != nil {
		return m.FetchSummaryFunc(ctx, r)
	}
	return nil, errors.New("FetchSummaryFunc not implemented")
}

// ExportExcel implements the Upstream interface
func (m *MockUpstream) ExportExcel(ctx context.Context, r *stats.DateRange) ([]byte, error) {
	m.ExportCalls.Add(1)
	if m.ExportExcelFunc != nil {
		return m.ExportExcelFunc(ctx, r)
	}
	return nil, errors.New("ExportExcelFunc not implemented")
}
