// Package app wires the processing components from a loaded configuration.
// Both the CLI and the daemon start from here.
package app

import (
	"context"
	"log/slog"

	"github.com/vmunix/rustizarr/internal/config"
	"github.com/vmunix/rustizarr/internal/overlay"
	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/poster"
	"github.com/vmunix/rustizarr/internal/processor"
	"github.com/vmunix/rustizarr/internal/tmdb"
)

// App holds the shared clients and the processing pipeline.
type App struct {
	Config    *config.Config
	Plex      *plex.Client
	TMDB      *tmdb.Client
	Overlays  *overlay.Library
	Renderer  *poster.Renderer
	Processor *processor.Processor
	Log       *slog.Logger
}

// New builds an App. Nothing is contacted until a component is used.
func New(cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}

	var plexOpts []plex.Option
	if cfg.Plex.InsecureTLS {
		plexOpts = append(plexOpts, plex.WithInsecureTLS())
	}
	plexClient := plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, log, plexOpts...)
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey)

	root := overlay.FindRoot(cfg.Overlays.Path)
	lib := overlay.NewLibrary(root, log)
	renderer := poster.NewRenderer(lib, nil, log)

	log.Debug("overlay assets", "root", root)

	return &App{
		Config:    cfg,
		Plex:      plexClient,
		TMDB:      tmdbClient,
		Overlays:  lib,
		Renderer:  renderer,
		Processor: processor.New(plexClient, tmdbClient, renderer, log),
		Log:       log,
	}
}

// KindOf reports which kind of items a library holds. The configured shows
// library holds shows, every other library movies.
func (a *App) KindOf(libraryID string) plex.Kind {
	if libraryID == a.Config.Plex.ShowsLibraryID {
		return plex.KindShow
	}
	return plex.KindMovie
}

// LoadLibrary lists a library with labels, the loader behind the catalog.
func (a *App) LoadLibrary(ctx context.Context, libraryID string) ([]plex.Item, error) {
	return a.Plex.ListWithLabels(ctx, libraryID, a.KindOf(libraryID), nil)
}
