package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(WithBaseURL(srv.URL+"/api/Reports"), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return c, srv
}

func january(t *testing.T) *stats.DateRange {
	t.Helper()
	r, err := stats.ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL+"/summary", c.URL(summaryPath, nil))
	})

	t.Run("relative base rejected", func(t *testing.T) {
		_, err := New(WithBaseURL("/api/Reports"))
		assert.Error(t, err)
	})

	t.Run("nil collaborators replaced", func(t *testing.T) {
		c, err := New(WithHTTPClient(nil), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, c.http)
		assert.NotNil(t, c.logger)
	})
}

func TestURLRenamesRangeParams(t *testing.T) {
	c, err := New(WithBaseURL("https://reports.example.com/api/Reports/"))
	require.NoError(t, err)

	assert.Equal(t,
		"https://reports.example.com/api/Reports/summary?endDate=2024-01-31&startDate=2024-01-01",
		c.URL(summaryPath, january(t)))
	assert.Equal(t, "https://reports.example.com/api/Reports/export-excel", c.URL(exportPath, nil))
}

func TestFetchSummaryForwardsRange(t *testing.T) {
	var gotPath, gotStart, gotEnd, gotAccept string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStart = r.URL.Query().Get("startDate")
		gotEnd = r.URL.Query().Get("endDate")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"general":{"totalParticipants":5}}`))
	})

	body, err := c.FetchSummary(context.Background(), january(t))

	require.NoError(t, err)
	assert.JSONEq(t, `{"general":{"totalParticipants":5}}`, string(body))
	assert.Equal(t, "/api/Reports/summary", gotPath)
	assert.Equal(t, "2024-01-01", gotStart)
	assert.Equal(t, "2024-01-31", gotEnd)
	assert.Equal(t, "*/*", gotAccept)
}

func TestFetchSummaryWithoutRangeSendsNoParams(t *testing.T) {
	var rawQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.FetchSummary(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, rawQuery)
}

func TestFetchSummaryErrors(t *testing.T) {
	t.Run("decodable error body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"startDate is after endDate"}`))
		})

		_, err := c.FetchSummary(context.Background(), nil)

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, http.StatusBadRequest, uerr.StatusCode)
		assert.Equal(t, "startDate is after endDate", uerr.Message)
		assert.True(t, uerr.Decoded)
	})

	t.Run("problem details title", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"Not Found","status":404}`))
		})

		_, err := c.FetchSummary(context.Background(), nil)

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "Not Found", uerr.Message)
	})

	t.Run("undecodable error body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		})

		_, err := c.FetchSummary(context.Background(), nil)

		var uerr *UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.False(t, uerr.Decoded)
		assert.Equal(t, "upstream responded with status 502", uerr.Message)
		assert.Contains(t, err.Error(), "fetch summary")
	})

	t.Run("invalid json on success", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := c.FetchSummary(context.Background(), nil)

		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("network failure", func(t *testing.T) {
		c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, err := c.FetchSummary(context.Background(), nil)

		var nerr *NetworkError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, "fetch summary", nerr.Op)
	})

	t.Run("caller cancellation", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.FetchSummary(ctx, nil)

		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExportExcelRelaysBytes(t *testing.T) {
	payload := []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0xff}
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	})

	data, err := c.ExportExcel(context.Background(), january(t))

	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "/api/Reports/export-excel", gotPath)
}

func TestExportExcelFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ExportExcel(context.Background(), nil)

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "export excel", uerr.Op)
}
