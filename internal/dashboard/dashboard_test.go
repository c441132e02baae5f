package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/godilite/talentbridge-stats/internal/dashboard/mocks"
	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/stats/statstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newDashboard(t *testing.T, f Fetcher, opts ...Option) *Dashboard {
	t.Helper()
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)

	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	d := New(f, bundle, opts...)
	t.Cleanup(d.Close)
	return d
}

func TestNewPanicsOnMissingCollaborators(t *testing.T) {
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)

	assert.Panics(t, func() { New(nil, bundle) })
	assert.Panics(t, func() { New(&mocks.MockFetcher{}, nil) })
}

func TestLoadCommitsSnapshot(t *testing.T) {
	f := &mocks.MockFetcher{
		FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
			assert.Nil(t, r)
			return statstest.Snapshot(t), nil
		},
	}
	d := newDashboard(t, f)

	require.NoError(t, d.Load(context.Background()))

	st := d.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Snapshot)
	assert.Equal(t, 200, st.Snapshot.General.TotalParticipants)
}

func TestApplyFilterFetchesOnce(t *testing.T) {
	var got []*stats.DateRange
	f := &mocks.MockFetcher{
		FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
			got = append(got, r)
			return &stats.Snapshot{}, nil
		},
	}
	d := newDashboard(t, f)

	require.NoError(t, d.ApplyFilter(context.Background(), "2024-01-01", "2024-01-31"))

	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01:2024-01-31", got[0].String())
	assert.Equal(t, "2024-01-01:2024-01-31", d.State().Filter.String())
}

func TestRejectedFilterIssuesNoFetch(t *testing.T) {
	f := &mocks.MockFetcher{}
	d := newDashboard(t, f)

	err := d.ApplyFilter(context.Background(), "2024-03-10", "2024-03-01")
	assert.ErrorIs(t, err, stats.ErrInvalidRange)

	err = d.ApplyFilter(context.Background(), "2024-03-10", "")
	assert.ErrorIs(t, err, stats.ErrIncompleteRange)

	assert.Equal(t, int32(0), f.FetchCalls.Load())
	assert.Nil(t, d.State().Filter)
}

func TestClearFilterFetchesUnfiltered(t *testing.T) {
	var last *stats.DateRange
	f := &mocks.MockFetcher{
		FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
			last = r
			return &stats.Snapshot{}, nil
		},
	}
	d := newDashboard(t, f)
	require.NoError(t, d.ApplyFilter(context.Background(), "2024-01-01", "2024-01-31"))

	require.NoError(t, d.ClearFilter(context.Background()))

	assert.Nil(t, last)
	assert.Nil(t, d.State().Filter)
	assert.Equal(t, int32(2), f.FetchCalls.Load())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	slow := &stats.Snapshot{General: stats.General{TotalParticipants: 1}}
	fresh := &stats.Snapshot{General: stats.General{TotalParticipants: 2}}

	f := &mocks.MockFetcher{
		FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
			if r == nil {
				close(started)
				<-release
				return slow, nil
			}
			return fresh, nil
		},
	}
	d := newDashboard(t, f)

	done := make(chan error, 1)
	go func() { done <- d.Load(context.Background()) }()
	<-started

	require.NoError(t, d.ApplyFilter(context.Background(), "2024-01-01", "2024-01-31"))
	close(release)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Same(t, fresh, d.State().Snapshot)
}

func TestLoadFailureMessages(t *testing.T) {
	t.Run("error message shown", func(t *testing.T) {
		f := &mocks.MockFetcher{
			FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
				return nil, &FetchError{Status: 500, Message: "Failed to fetch statistics"}
			},
		}
		d := newDashboard(t, f)

		err := d.Load(context.Background())

		assert.Error(t, err)
		assert.Equal(t, "Failed to fetch statistics", d.State().Error)
		assert.False(t, d.State().Loading)
	})

	t.Run("empty message falls back to localized text", func(t *testing.T) {
		f := &mocks.MockFetcher{
			FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
				return nil, &FetchError{}
			},
		}
		prefs := NewPreferenceContext(Preferences{Locale: i18n.Arabic})
		d := newDashboard(t, f, WithPreferences(prefs))

		_ = d.Load(context.Background())

		assert.Equal(t, "حدث خطأ أثناء تحميل الإحصائيات", d.State().Error)
	})
}

func TestRetryKeepsCurrentFilter(t *testing.T) {
	fail := true
	var last *stats.DateRange
	f := &mocks.MockFetcher{
		FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
			last = r
			if fail {
				return nil, errors.New("boom")
			}
			return &stats.Snapshot{}, nil
		},
	}
	d := newDashboard(t, f)
	require.Error(t, d.ApplyFilter(context.Background(), "2024-01-01", "2024-01-31"))
	assert.Equal(t, "boom", d.State().Error)

	fail = false
	require.NoError(t, d.Retry(context.Background()))

	assert.Equal(t, "2024-01-01:2024-01-31", last.String())
	assert.Empty(t, d.State().Error)
	assert.NotNil(t, d.State().Snapshot)
}

func TestExport(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	t.Run("filename and bytes", func(t *testing.T) {
		var got *stats.DateRange
		f := &mocks.MockFetcher{
			FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
				return &stats.Snapshot{}, nil
			},
			ExportReportFunc: func(ctx context.Context, r *stats.DateRange) ([]byte, error) {
				got = r
				return []byte("xlsx"), nil
			},
		}
		d := newDashboard(t, f, WithNow(func() time.Time { return fixed }))
		require.NoError(t, d.ApplyFilter(context.Background(), "2024-01-01", "2024-01-31"))

		export, err := d.Export(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "TalentBridge_Statistics_2025-06-15.xlsx", export.Filename)
		assert.Equal(t, []byte("xlsx"), export.Data)
		assert.Equal(t, "2024-01-01:2024-01-31", got.String())
	})

	t.Run("failure is transient", func(t *testing.T) {
		fail := true
		f := &mocks.MockFetcher{
			ExportReportFunc: func(ctx context.Context, r *stats.DateRange) ([]byte, error) {
				if fail {
					return nil, &FetchError{Status: 500}
				}
				return []byte("ok"), nil
			},
		}
		d := newDashboard(t, f, WithExportErrorTTL(30*time.Millisecond))

		_, err := d.Export(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Export failed", d.State().ExportError)

		assert.Eventually(t, func() bool {
			return d.State().ExportError == ""
		}, time.Second, 5*time.Millisecond)

		fail = false
		_, err = d.Export(context.Background())
		assert.NoError(t, err)
	})

	t.Run("new attempt clears previous error", func(t *testing.T) {
		calls := 0
		f := &mocks.MockFetcher{
			ExportReportFunc: func(ctx context.Context, r *stats.DateRange) ([]byte, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("Failed to download report")
				}
				return []byte("ok"), nil
			},
		}
		d := newDashboard(t, f)

		_, err := d.Export(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Failed to download report", d.State().ExportError)

		_, err = d.Export(context.Background())
		require.NoError(t, err)
		assert.Empty(t, d.State().ExportError)
	})

	t.Run("stale failure after newer success is dropped", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32
		f := &mocks.MockFetcher{
			ExportReportFunc: func(ctx context.Context, r *stats.DateRange) ([]byte, error) {
				if calls.Add(1) == 1 {
					close(started)
					<-release
					return nil, &FetchError{Status: 500}
				}
				return []byte("ok"), nil
			},
		}
		d := newDashboard(t, f, WithExportErrorTTL(time.Hour))

		done := make(chan error, 1)
		go func() {
			_, err := d.Export(context.Background())
			done <- err
		}()
		<-started

		_, err := d.Export(context.Background())
		require.NoError(t, err)

		close(release)
		require.Error(t, <-done)
		assert.Empty(t, d.State().ExportError)

		d.mu.Lock()
		defer d.mu.Unlock()
		assert.Nil(t, d.exportTimer)
	})
}

func TestViewFollowsPreferences(t *testing.T) {
	f := &mocks.MockFetcher{
		FetchSnapshotFunc: func(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
			return statstest.Snapshot(t), nil
		},
	}
	d := newDashboard(t, f)
	assert.Nil(t, d.View())

	require.NoError(t, d.Load(context.Background()))

	v := d.View()
	require.NotNil(t, v)
	assert.Equal(t, "ltr", v.Direction)

	d.Preferences().SetLocale(i18n.Arabic)
	d.Preferences().SetTheme(series.Dark)

	v = d.View()
	assert.Equal(t, "rtl", v.Direction)
	assert.Equal(t, series.Dark, v.Theme)
}
