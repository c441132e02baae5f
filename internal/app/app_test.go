package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pb "github.com/godilite/talentbridge-stats/api/v1"
	"github.com/godilite/talentbridge-stats/internal/config"
	"github.com/godilite/talentbridge-stats/internal/stats/statstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

func TestAppServesHTTPAndGRPC(t *testing.T) {
	reporting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(statstest.SummaryJSON))
	}))
	defer reporting.Close()

	cfg := &config.Config{
		AppEnv:           "test",
		UpstreamBaseURL:  reporting.URL + "/api/Reports",
		ExportFilePrefix: "TalentBridge_Statistics",
		GRPCEnabled:      true,
		ShutdownTimeout:  time.Second,
	}
	a, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t),
		WithHTTPListener(listen(t)),
		WithGRPCListener(listen(t)))
	require.NoError(t, err)
	a.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, a.Shutdown(ctx))
	}()

	resp, err := http.Get("http://" + a.HTTPAddr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	conn, err := grpc.NewClient(a.GRPCAddr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	summary, err := pb.NewReportsClient(conn).GetSummary(ctx, pb.DateRangeRequest("", ""))
	require.NoError(t, err)
	assert.Contains(t, summary.GetFields(), "general")
}

func TestAppWithoutGRPC(t *testing.T) {
	cfg := &config.Config{
		UpstreamBaseURL: "http://127.0.0.1:1/api/Reports",
		ShutdownTimeout: time.Second,
	}
	a, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t), WithHTTPListener(listen(t)))
	require.NoError(t, err)

	assert.Nil(t, a.GRPCAddr())
	assert.NoError(t, a.Shutdown(context.Background()))
}

func TestNewAppRejectsBadUpstream(t *testing.T) {
	cfg := &config.Config{UpstreamBaseURL: "not a url"}

	_, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t))

	assert.ErrorContains(t, err, "upstream client init failed")
}

func TestNewAppReleasesHTTPListenerWhenGRPCFails(t *testing.T) {
	httpLis := listen(t)
	addr := httpLis.Addr().String()
	cfg := &config.Config{
		UpstreamBaseURL: "http://127.0.0.1:1/api/Reports",
		GRPCEnabled:     true,
		GRPCPort:        0,
		ShutdownTimeout: time.Second,
	}

	_, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t), WithHTTPListener(httpLis))

	require.ErrorContains(t, err, "failed to create gRPC server")
	_, err = net.DialTimeout("tcp", addr, time.Second)
	assert.Error(t, err, "HTTP listener still accepting")
}
