package mocks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/service"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/view"
)

// MockReportsService is a function-based mock of the reports service used
// by the transport packages.
type MockReportsService struct {
	SummaryFunc func(ctx context.Context, r *stats.DateRange) (json.RawMessage, error)
	ExportFunc  func(ctx context.Context, r *stats.DateRange) (*service.Export, error)
	ViewFunc    func(ctx context.Context, r *stats.DateRange, locale i18n.Locale, theme series.Theme) (*view.View, error)
}

func (m *MockReportsService) Summary(ctx context.Context, r *stats.DateRange) (json.RawMessage, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, r)
	}
	return nil, errors.New("SummaryFunc not implemented")
}

func (m *MockReportsService) Export(ctx context.Context, r *stats.DateRange) (*service.Export, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, r)
	}
	return nil, errors.New("ExportFunc not implemented")
}

func (m *MockReportsService) View(ctx context.Context, r *stats.DateRange, locale i18n.Locale, theme series.Theme) (*view.View, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, r, locale, theme)
	}
	return nil, errors.New("ViewFunc not implemented")
}
