// Package dashboard models the statistics page: it loads snapshots through
// the proxy, tracks the date filter and display preferences, and exports
// reports.
package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/view"
	"go.uber.org/zap"
)

const DefaultExportErrorTTL = 3 * time.Second

// ErrSuperseded is returned when a newer fetch was issued before this one
// completed. Its result was dropped.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// Fetcher is the proxy surface the dashboard needs.
type Fetcher interface {
	FetchSnapshot(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error)
	ExportReport(ctx context.Context, r *stats.DateRange) ([]byte, error)
}

// State is a point-in-time copy of what the page shows.
type State struct {
	Loading     bool
	Error       string
	ExportError string
	Filter      *stats.DateRange
	Snapshot    *stats.Snapshot
}

type Export struct {
	Filename string
	Data     []byte
}

type Option func(*Dashboard)

func WithLogger(l *zap.Logger) Option {
	return func(d *Dashboard) {
		if l != nil {
			d.logger = l
		}
	}
}

func WithPreferences(p *PreferenceContext) Option {
	return func(d *Dashboard) {
		if p != nil {
			d.prefs = p
		}
	}
}

func WithExportPrefix(prefix string) Option {
	return func(d *Dashboard) { d.exportPrefix = prefix }
}

func WithExportErrorTTL(ttl time.Duration) Option {
	return func(d *Dashboard) { d.exportErrTTL = ttl }
}

func WithNow(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

type Dashboard struct {
	fetcher      Fetcher
	bundle       *i18n.Bundle
	prefs        *PreferenceContext
	logger       *zap.Logger
	exportPrefix string
	exportErrTTL time.Duration
	now          func() time.Time

	filter Filter
	latest atomic.Uint64

	mu          sync.Mutex
	loading     bool
	errMsg      string
	snapshot    *stats.Snapshot
	exportErr   string
	exportGen   uint64
	exportTimer *time.Timer
}

func New(fetcher Fetcher, bundle *i18n.Bundle, opts ...Option) *Dashboard {
	if fetcher == nil {
		panic("fetcher must not be nil")
	}
	if bundle == nil {
		panic("bundle must not be nil")
	}

	d := &Dashboard{
		fetcher:      fetcher,
		bundle:       bundle,
		logger:       zap.NewNop(),
		exportPrefix: stats.DefaultExportPrefix,
		exportErrTTL: DefaultExportErrorTTL,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.prefs == nil {
		d.prefs = NewPreferenceContext(Preferences{})
	}
	d.logger = d.logger.Named("dashboard")
	return d
}

func (d *Dashboard) Preferences() *PreferenceContext { return d.prefs }

// Load fetches the snapshot for the current filter.
func (d *Dashboard) Load(ctx context.Context) error {
	return d.fetch(ctx, d.filter.Range())
}

// ApplyFilter validates the range and fetches it. An incomplete or inverted
// range is rejected without any request.
func (d *Dashboard) ApplyFilter(ctx context.Context, start, end string) error {
	r, err := d.filter.Apply(start, end)
	if err != nil {
		d.logger.Debug("filter rejected", zap.String("start", start), zap.String("end", end), zap.Error(err))
		return err
	}
	return d.fetch(ctx, r)
}

func (d *Dashboard) ClearFilter(ctx context.Context) error {
	d.filter.Clear()
	return d.fetch(ctx, nil)
}

// Retry re-issues the fetch for the filter that is currently applied.
func (d *Dashboard) Retry(ctx context.Context) error {
	return d.Load(ctx)
}

func (d *Dashboard) fetch(ctx context.Context, r *stats.DateRange) error {
	token := d.latest.Add(1)

	d.mu.Lock()
	d.loading = true
	d.errMsg = ""
	d.mu.Unlock()

	snap, err := d.fetcher.FetchSnapshot(ctx, r)

	d.mu.Lock()
	defer d.mu.Unlock()

	if token != d.latest.Load() {
		d.logger.Debug("discarding stale snapshot", zap.Uint64("token", token), zap.Stringer("range", r))
		return ErrSuperseded
	}

	d.loading = false
	if err != nil {
		d.errMsg = d.message(err, "error")
		d.logger.Warn("failed to load statistics", zap.Stringer("range", r), zap.Error(err))
		return err
	}
	d.snapshot = snap
	return nil
}

// Export downloads the report for the current filter. A failure is shown
// for the export error TTL and then cleared; it never blocks the next
// attempt.
func (d *Dashboard) Export(ctx context.Context) (*Export, error) {
	d.mu.Lock()
	d.exportGen++
	gen := d.exportGen
	d.exportErr = ""
	d.stopExportTimerLocked()
	d.mu.Unlock()

	data, err := d.fetcher.ExportReport(ctx, d.filter.Range())
	if err != nil {
		d.logger.Warn("export failed", zap.Error(err))
		msg := d.message(err, "export.failed")
		d.mu.Lock()
		defer d.mu.Unlock()
		// a newer attempt owns the export error
		if d.exportGen != gen {
			return nil, err
		}
		d.exportErr = msg
		d.stopExportTimerLocked()
		d.exportTimer = time.AfterFunc(d.exportErrTTL, func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if d.exportGen == gen {
				d.exportErr = ""
			}
		})
		return nil, err
	}

	return &Export{
		Filename: stats.ExportFilename(d.exportPrefix, d.now()),
		Data:     data,
	}, nil
}

func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return State{
		Loading:     d.loading,
		Error:       d.errMsg,
		ExportError: d.exportErr,
		Filter:      d.filter.Range(),
		Snapshot:    d.snapshot,
	}
}

// View derives the page for the current preferences. It is nil until a
// snapshot has loaded.
func (d *Dashboard) View() *view.View {
	d.mu.Lock()
	snap := d.snapshot
	d.mu.Unlock()
	if snap == nil {
		return nil
	}
	p := d.prefs.Current()
	return view.Build(snap, d.bundle.Catalog(p.Locale), p.Theme)
}

// Close stops the pending export error timer.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopExportTimerLocked()
}

func (d *Dashboard) stopExportTimerLocked() {
	if d.exportTimer != nil {
		d.exportTimer.Stop()
		d.exportTimer = nil
	}
}

// message picks the user-facing text for err, falling back to the
// localized fallback key when the error carries none.
func (d *Dashboard) message(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return d.bundle.Catalog(d.prefs.Current().Locale).T(fallback)
}
