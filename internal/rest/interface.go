package rest

import (
	"context"
	"encoding/json"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/service"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/view"
)

type ReportsService interface {
	Summary(ctx context.Context, r *stats.DateRange) (json.RawMessage, error)
	Export(ctx context.Context, r *stats.DateRange) (*service.Export, error)
	View(ctx context.Context, r *stats.DateRange, locale i18n.Locale, theme series.Theme) (*view.View, error)
}
