package service

import (
	"context"
	"time"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

// Upstream defines the reporting API calls the service depends on.
type Upstream interface {
	FetchSummary(ctx context.Context, r *stats.DateRange) ([]byte, error)
	ExportExcel(ctx context.Context, r *stats.DateRange) ([]byte, error)
}

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}
