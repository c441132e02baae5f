package grpc

import (
	"context"
	"encoding/json"

	"github.com/godilite/talentbridge-stats/internal/service"
	"github.com/godilite/talentbridge-stats/internal/stats"
)

type ReportsService interface {
	Summary(ctx context.Context, r *stats.DateRange) (json.RawMessage, error)
	Export(ctx context.Context, r *stats.DateRange) (*service.Export, error)
}
