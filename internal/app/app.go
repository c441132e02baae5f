package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	pb "github.com/godilite/talentbridge-stats/api/v1"
	"github.com/godilite/talentbridge-stats/internal/config"
	handler "github.com/godilite/talentbridge-stats/internal/grpc"
	"github.com/godilite/talentbridge-stats/internal/rest"
	"github.com/godilite/talentbridge-stats/internal/service"
	"github.com/godilite/talentbridge-stats/internal/upstream"
	"github.com/godilite/talentbridge-stats/pkg/cache"
	grpcsrv "github.com/godilite/talentbridge-stats/pkg/grpc/server"
	httpsrv "github.com/godilite/talentbridge-stats/pkg/http/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	cfg        *config.Config
	cache      *cache.Cache
	httpServer *httpsrv.Server
	grpcServer *grpcsrv.Server
}

// Option overrides how NewApp builds its servers. Tests use it to serve on
// ephemeral listeners.
type Option func(*appOptions)

type appOptions struct {
	httpListener net.Listener
	grpcListener net.Listener
}

func WithHTTPListener(lis net.Listener) Option {
	return func(o *appOptions) { o.httpListener = lis }
}

func WithGRPCListener(lis net.Listener) Option {
	return func(o *appOptions) { o.grpcListener = lis }
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	options := &appOptions{}
	for _, opt := range opts {
		opt(options)
	}

	upstreamClient, err := upstream.New(
		upstream.WithBaseURL(cfg.UpstreamBaseURL),
		upstream.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("upstream client init failed: %w", err)
	}
	logger.Info("Upstream client initialized", zap.String("base_url", cfg.UpstreamBaseURL))

	serviceOpts := []service.Option{service.WithExportPrefix(cfg.ExportFilePrefix)}

	var cacheClient *cache.Cache
	if cfg.CacheEnabled() {
		cacheClient, err = cache.New(ctx, cache.WithAddress(cfg.RedisAddr))
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		serviceOpts = append(serviceOpts, service.WithCache(cacheClient, cfg.CacheTTL))
		logger.Info("Cache client initialized",
			zap.String("addr", cfg.RedisAddr),
			zap.Duration("ttl", cfg.CacheTTL))
	} else {
		logger.Info("Summary cache disabled; every request fetches fresh")
	}

	reportsService, err := service.NewReportsService(upstreamClient, logger, serviceOpts...)
	if err != nil {
		closeCache(cacheClient, logger)
		return nil, fmt.Errorf("reports service init failed: %w", err)
	}

	httpOpts := []httpsrv.Option{
		httpsrv.WithPort(cfg.HTTPPort),
		httpsrv.WithLogger(logger),
		httpsrv.WithAppName(cfg.AppName),
		httpsrv.WithTimeouts(cfg.HTTPReadTimeout, cfg.HTTPWriteTimeout),
		httpsrv.WithLogging(true),
	}
	if options.httpListener != nil {
		httpOpts = append(httpOpts, httpsrv.WithListener(options.httpListener))
	}
	httpServer, err := httpsrv.New(httpOpts...)
	if err != nil {
		closeCache(cacheClient, logger)
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}
	httpServer.RegisterRoutes(rest.NewHandlers(reportsService, logger).Register)

	a := &App{
		logger:     logger,
		cfg:        cfg,
		cache:      cacheClient,
		httpServer: httpServer,
	}

	if cfg.GRPCEnabled {
		grpcOpts := []grpcsrv.Option{
			grpcsrv.WithPort(cfg.GRPCPort),
			grpcsrv.WithLogger(logger),
			grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
			grpcsrv.WithLogging(true),
		}
		if options.grpcListener != nil {
			grpcOpts = append(grpcOpts, grpcsrv.WithListener(options.grpcListener))
		}
		grpcServer, err := grpcsrv.New(grpcOpts...)
		if err != nil {
			if cerr := httpServer.Close(); cerr != nil {
				logger.Warn("failed to release HTTP listener", zap.Error(cerr))
			}
			closeCache(cacheClient, logger)
			return nil, fmt.Errorf("failed to create gRPC server: %w", err)
		}

		grpcHandlers := handler.NewGRPCHandlers(reportsService, logger, 0)
		grpcServer.RegisterServiceWithHealth(pb.ServiceName, func(s *grpc.Server) {
			pb.RegisterReportsServer(s, grpcHandlers)
		})
		a.grpcServer = grpcServer
	}

	return a, nil
}

// HTTPAddr returns the address the HTTP proxy listens on.
func (a *App) HTTPAddr() net.Addr {
	return a.httpServer.Addr()
}

// GRPCAddr returns the gRPC address, or nil when gRPC is disabled.
func (a *App) GRPCAddr() net.Addr {
	if a.grpcServer == nil {
		return nil
	}
	return a.grpcServer.Addr()
}

// Start launches the servers and returns immediately.
func (a *App) Start() {
	a.logger.Info("application starting")
	a.httpServer.Start()
	if a.grpcServer != nil {
		a.grpcServer.Start()
	}
}

// Shutdown stops the servers and releases the cache. It returns the first
// error encountered but always attempts every step.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("application shutting down")

	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if a.grpcServer != nil {
		if err := a.grpcServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
		}
	}
	closeCache(a.cache, a.logger)

	if err := errors.Join(errs...); err != nil {
		return err
	}
	a.logger.Info("graceful shutdown completed successfully")
	return nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	err := a.Shutdown(ctx)
	_ = a.logger.Sync()
	return err
}

func closeCache(c *cache.Cache, logger *zap.Logger) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Error("cache shutdown error", zap.Error(err))
	}
}
