package statusapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stefdude/linknx/internal/ioport"
	"github.com/stefdude/linknx/internal/objects"
	"github.com/stefdude/linknx/internal/scheduler"
)

const gracefulShutdownTimeout = 10 * time.Second

// Config controls the HTTP listener, mirroring config.StatusAPIConfig.
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 5 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	return c
}

// Deps holds the daemon collaborators the status surface reports on.
type Deps struct {
	Logger     *slog.Logger
	Controller *objects.Controller
	Scheduler  *scheduler.Manager
	Ports      *ioport.Registry
	Version    string
}

// Server is the read-only HTTP status server.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	ctl     *objects.Controller
	sched   *scheduler.Manager
	ports   *ioport.Registry
	version string
	server  *http.Server
}

// New creates a status server with the given dependencies. It is not
// started until Start is called.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Controller == nil {
		return nil, fmt.Errorf("statusapi: object controller is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:     cfg.withDefaults(),
		logger:  logger,
		ctl:     deps.Controller,
		sched:   deps.Scheduler,
		ports:   deps.Ports,
		version: deps.Version,
	}, nil
}

// Start launches the HTTP listener in a background goroutine.
func (s *Server) Start(context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("status api server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the HTTP listener.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	s.logger.Info("status api shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down status api: %w", err)
	}
	return nil
}

// HealthCheck reports whether the listener has been started.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("status api health check: %w", ctx.Err())
	default:
	}
	if s.server == nil {
		return fmt.Errorf("status api not started")
	}
	return nil
}
