package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	port          int
	listener      net.Listener
	logger        *zap.Logger
	appName       string
	readTimeout   time.Duration
	writeTimeout  time.Duration
	enableLogging bool
}

func WithPort(port int) Option {
	return func(o *Options) {
		o.port = port
	}
}

// WithListener serves on an existing listener instead of opening a port.
func WithListener(lis net.Listener) Option {
	return func(o *Options) {
		o.listener = lis
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithAppName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.appName = name
		}
	}
}

// WithTimeouts sets the transport read and write timeouts. Non-positive
// values keep the defaults.
func WithTimeouts(read, write time.Duration) Option {
	return func(o *Options) {
		if read > 0 {
			o.readTimeout = read
		}
		if write > 0 {
			o.writeTimeout = write
		}
	}
}

func WithLogging(enabled bool) Option {
	return func(o *Options) {
		o.enableLogging = enabled
	}
}

type Server struct {
	app    *fiber.App
	lis    net.Listener
	logger *zap.Logger
}

// New creates a fiber server using the builder options. Every request gets
// a request ID; failed handlers are rendered as {"error": "..."}.
func New(opts ...Option) (*Server, error) {
	options := &Options{
		port:         8080,
		logger:       zap.NewNop(),
		appName:      "talentbridge-stats",
		readTimeout:  30 * time.Second,
		writeTimeout: 60 * time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lis := options.listener
	if lis == nil {
		if options.port < 1 || options.port > 65535 {
			return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", options.port)
		}
		var err error
		lis, err = net.Listen("tcp", fmt.Sprintf(":%d", options.port))
		if err != nil {
			return nil, fmt.Errorf("failed to listen on port %d: %w", options.port, err)
		}
	}

	app := NewApp(logger, options.appName, options.readTimeout, options.writeTimeout)
	app.Use(recover.New())
	app.Use(RequestID())
	if options.enableLogging {
		app.Use(Logging(logger))
	}

	return &Server{
		app:    app,
		lis:    lis,
		logger: logger.Named("http-server"),
	}, nil
}

// NewApp returns a bare fiber app with the JSON error handler. Handlers
// tests build on it directly.
func NewApp(logger *zap.Logger, name string, read, write time.Duration) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           read,
		WriteTimeout:          write,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logger),
	})
}

// RegisterRoutes lets the main application mount its handlers.
func (s *Server) RegisterRoutes(registerFunc func(app *fiber.App)) {
	registerFunc(s.app)
}

// Start runs the server in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("HTTP server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.app.Listener(s.lis); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
}

// Shutdown waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		s.logger.Warn("forced shutdown due to timeout", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// Close releases the listener of a server that was never started.
func (s *Server) Close() error {
	if err := s.lis.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listening address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
