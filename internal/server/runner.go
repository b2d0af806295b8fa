// Package server runs the daemon components: the HTTP server, the scan
// scheduler and the webhook dispatcher.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/rustizarr/internal/scheduler"
)

// DefaultShutdownTimeout bounds the graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// Config for the daemon runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Closer drains background work on shutdown.
type Closer interface {
	Close(ctx context.Context) error
}

// Runner manages the daemon components.
type Runner struct {
	config    Config
	handler   http.Handler
	scheduler *scheduler.Scheduler // nil when scans are not scheduled
	webhooks  Closer
	logger    *slog.Logger
}

// NewRunner creates a new runner. sched and webhooks may be nil.
func NewRunner(cfg Config, handler http.Handler, sched *scheduler.Scheduler, webhooks Closer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		config:    cfg,
		handler:   handler,
		scheduler: sched,
		webhooks:  webhooks,
		logger:    logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln. It blocks until the context is canceled
// or a component fails, then shuts everything down.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: r.handler, ReadHeaderTimeout: 10 * time.Second}

	// Use errgroup to manage component lifecycle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if r.scheduler != nil {
		g.Go(func() error {
			return r.scheduler.Run(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		r.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if r.webhooks != nil {
			if werr := r.webhooks.Close(shutdownCtx); werr != nil {
				r.logger.Warn("webhook tasks still running at shutdown", "error", werr)
			}
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
