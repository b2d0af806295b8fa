// Package processor runs the poster pipeline for movies, shows and seasons
// and dispatches it over whole libraries with bounded parallelism.
package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/rustizarr/internal/artwork"
	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/poster"
	"github.com/vmunix/rustizarr/internal/tmdb"
)

//go:generate mockgen -source=processor.go -destination=mocks/processor.go -package=mocks

// ProcessedLabel marks items whose poster has been published.
const ProcessedLabel = "Rustizarr"

// MediaServer is the part of the Plex API the pipelines use.
type MediaServer interface {
	List(ctx context.Context, libraryID string, kind plex.Kind) ([]plex.Item, error)
	Item(ctx context.Context, ratingKey string) (*plex.Item, error)
	Seasons(ctx context.Context, showKey string) ([]plex.Item, error)
	UploadPoster(ctx context.Context, ratingKey string, jpeg []byte) error
	AddLabel(ctx context.Context, ratingKey, tag string) error
}

// Metadata looks up source posters and show status.
type Metadata interface {
	TextlessPoster(ctx context.Context, mediaType tmdb.MediaType, id string) (string, error)
	StandardPoster(ctx context.Context, mediaType tmdb.MediaType, id string) (string, error)
	ShowStatus(ctx context.Context, id string) (string, error)
	SeasonPoster(ctx context.Context, showID string, season int) (string, error)
}

// Renderer produces the final JPEG from a source URL and a layer plan.
type Renderer interface {
	Render(ctx context.Context, sourceURL string, layers []artwork.Layer) ([]byte, error)
}

// Ensure the concrete clients implement the interfaces.
var (
	_ MediaServer = (*plex.Client)(nil)
	_ Metadata    = (*tmdb.Client)(nil)
	_ Renderer    = (*poster.Renderer)(nil)
)

// Processor runs item pipelines.
type Processor struct {
	plex     MediaServer
	tmdb     Metadata
	renderer Renderer
	now      func() time.Time
	log      *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithClock sets the time source used for the freshness window.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

// New creates a Processor.
func New(ms MediaServer, md Metadata, r Renderer, log *slog.Logger, opts ...Option) *Processor {
	if log == nil {
		log = slog.Default()
	}
	p := &Processor{
		plex:     ms,
		tmdb:     md,
		renderer: r,
		now:      time.Now,
		log:      log.With("component", "processor"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
