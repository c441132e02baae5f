package mocks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/godilite/talentbridge-stats/internal/service"
	"github.com/godilite/talentbridge-stats/internal/stats"
)

// MockReportsService is a mock implementation of the ReportsService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockReportsService struct {
	SummaryFunc func(ctx context.Context, r *stats.DateRange) (json.RawMessage, error)
	ExportFunc  func(ctx context.Context, r *stats.DateRange) (*service.Export, error)
}

// Summary implements the ReportsService interface
func (m *MockReportsService) Summary(ctx context.Context, r *stats.DateRange) (json.RawMessage, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, r)
	}
	return nil, errors.New("SummaryFunc not implemented")
}

// Export implements the ReportsService interface
func (m *MockReportsService) Export(ctx context.Context, r *stats.DateRange) (*service.Export, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, r)
	}
	return nil, errors.New("ExportFunc not implemented")
}
