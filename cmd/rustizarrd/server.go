package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vmunix/rustizarr/internal/api"
	"github.com/vmunix/rustizarr/internal/app"
	"github.com/vmunix/rustizarr/internal/catalog"
	"github.com/vmunix/rustizarr/internal/config"
	"github.com/vmunix/rustizarr/internal/processor"
	"github.com/vmunix/rustizarr/internal/scheduler"
	"github.com/vmunix/rustizarr/internal/server"
	"github.com/vmunix/rustizarr/internal/webhook"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	path, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	a := app.New(cfg, logger)
	cache := catalog.New(a.LoadLibrary, logger)
	dispatcher := webhook.NewDispatcher(a.Plex, a.Processor, cache, logger,
		webhook.WithDelay(cfg.Processing.WebhookDelay))

	apiServer, err := api.New(api.Config{
		LibraryID:      cfg.Plex.LibraryID,
		ShowsLibraryID: cfg.Plex.ShowsLibraryID,
		Parallel:       processor.ClampParallel(cfg.Processing.Parallel),
	}, api.ServerDeps{
		Scanner:  a.Processor,
		Catalog:  cache,
		Thumbs:   a.Plex,
		Webhooks: dispatcher,
		Log:      logger,
	})
	if err != nil {
		return fmt.Errorf("create api server: %w", err)
	}

	var sched *scheduler.Scheduler
	if cfg.Processing.Schedule != "" {
		sched, err = scheduler.New(cfg.Processing.Schedule, scheduledScan(a, cache), logger)
		if err != nil {
			return err
		}
		logger.Info("scheduled scans enabled", "schedule", cfg.Processing.Schedule)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("rustizarrd starting",
		"version", version,
		"addr", cfg.Addr(),
		"plex", a.Plex.BaseURL(),
		"library", cfg.Plex.LibraryID,
		"shows_library", cfg.Plex.ShowsLibraryID,
		"overlays", a.Overlays.Root(),
	)

	runner := server.NewRunner(server.Config{Addr: cfg.Addr()}, apiServer.Handler(), sched, dispatcher, logger)
	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info("rustizarrd stopped")
	return nil
}

// scheduledScan scans the movie then the show library and drops the catalog
// when anything was processed.
func scheduledScan(a *app.App, cache *catalog.Cache) scheduler.Job {
	return func(ctx context.Context) {
		cfg := a.Config
		parallel := processor.ClampParallel(cfg.Processing.Parallel)
		processed := 0

		movies, err := a.Processor.ScanMovies(ctx, cfg.Plex.LibraryID, parallel, false)
		if err != nil {
			a.Log.Error("scheduled movie scan failed", "error", err)
		} else {
			processed += movies.Processed()
		}

		shows, err := a.Processor.ScanShows(ctx, cfg.Plex.ShowsLibraryID, parallel, false)
		if err != nil {
			a.Log.Error("scheduled show scan failed", "error", err)
		} else {
			processed += shows.Processed()
		}

		if processed > 0 {
			cache.InvalidateAll()
		}
	}
}
