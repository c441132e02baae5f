package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/view"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheKeySummary = "reports:summary"

var ErrUpstreamFailure = errors.New("upstream failure")

// ReportsService serves statistics snapshots, exports and derived views.
// Without a cache every call goes to the reporting API.
type ReportsService struct {
	upstream     Upstream
	logger       *zap.Logger
	bundle       *i18n.Bundle
	cache        Cacher
	cacheTTL     time.Duration
	sfGroup      singleflight.Group
	exportPrefix string
	now          func() time.Time
}

type Option func(*ReportsService)

// WithCache enables read-through caching of summaries. A nil cache or a
// non-positive TTL leaves caching off.
func WithCache(c Cacher, ttl time.Duration) Option {
	return func(s *ReportsService) {
		if c == nil || ttl <= 0 {
			return
		}
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithExportPrefix(prefix string) Option {
	return func(s *ReportsService) { s.exportPrefix = prefix }
}

func WithClock(now func() time.Time) Option {
	return func(s *ReportsService) { s.now = now }
}

func WithBundle(b *i18n.Bundle) Option {
	return func(s *ReportsService) { s.bundle = b }
}

// NewReportsService creates a new ReportsService instance.
func NewReportsService(upstream Upstream, logger *zap.Logger, opts ...Option) (*ReportsService, error) {
	if upstream == nil {
		panic("upstream must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	s := &ReportsService{
		upstream:     upstream,
		logger:       logger.Named("reports"),
		exportPrefix: stats.DefaultExportPrefix,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.bundle == nil {
		b, err := i18n.NewBundle()
		if err != nil {
			return nil, fmt.Errorf("load translations: %w", err)
		}
		s.bundle = b
	}
	return s, nil
}

func summaryKey(r *stats.DateRange) string {
	return cacheKeySummary + ":" + r.String()
}

// Summary returns the reporting API's summary body unchanged.
func (s *ReportsService) Summary(ctx context.Context, r *stats.DateRange) (json.RawMessage, error) {
	fetch := func(fetchCtx context.Context) (json.RawMessage, error) {
		body, err := s.upstream.FetchSummary(fetchCtx, r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
		}
		return json.RawMessage(body), nil
	}

	var (
		body json.RawMessage
		err  error
	)
	if s.cache != nil {
		body, err = FindAndCache(ctx, s.cache, &s.sfGroup, summaryKey(r), s.cacheTTL, s.logger, fetch)
	} else {
		body, err = fetch(ctx)
	}
	if err != nil {
		s.logger.Error("failed to fetch summary", zap.Stringer("range", r), zap.Error(err))
		return nil, err
	}

	s.logger.Info("fetched summary",
		zap.Stringer("range", r),
		zap.Int("bytes", len(body)))
	return body, nil
}

// Snapshot fetches and decodes the summary.
func (s *ReportsService) Snapshot(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
	body, err := s.Summary(ctx, r)
	if err != nil {
		return nil, err
	}
	snap, err := stats.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	return snap, nil
}

// Export relays the spreadsheet for the range, named after today's date.
func (s *ReportsService) Export(ctx context.Context, r *stats.DateRange) (*Export, error) {
	data, err := s.upstream.ExportExcel(ctx, r)
	if err != nil {
		s.logger.Error("failed to export report", zap.Stringer("range", r), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	export := &Export{
		Filename:    stats.ExportFilename(s.exportPrefix, s.now()),
		ContentType: stats.ExcelContentType,
		Data:        data,
	}
	s.logger.Info("exported report",
		zap.Stringer("range", r),
		zap.String("filename", export.Filename),
		zap.Int("bytes", len(data)))
	return export, nil
}

// View fetches the snapshot and derives the dashboard for locale and theme.
func (s *ReportsService) View(ctx context.Context, r *stats.DateRange, locale i18n.Locale, theme series.Theme) (*view.View, error) {
	snap, err := s.Snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	v := view.Build(snap, s.bundle.Catalog(locale), theme)
	if len(v.Satisfaction.SkippedScores) > 0 {
		s.logger.Warn("satisfaction distribution has non-numeric scores",
			zap.Strings("keys", v.Satisfaction.SkippedScores))
	}
	return v, nil
}
