package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
	"github.com/vmunix/rustizarr/internal/webhook"
)

//go:generate mockgen -source=deps.go -destination=mocks/deps.go -package=mocks

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Scanner runs whole-library scans.
type Scanner interface {
	ScanMovies(ctx context.Context, libraryID string, parallel int, force bool) (*processor.Report, error)
	ScanShows(ctx context.Context, libraryID string, parallel int, force bool) (*processor.Report, error)
}

// Catalog serves cached library listings.
type Catalog interface {
	Load(ctx context.Context, libraryID string) ([]plex.Item, error)
	Refresh(ctx context.Context, libraryID string) ([]plex.Item, error)
	InvalidateAll()
}

// ThumbSource fetches poster thumbnails from Plex.
type ThumbSource interface {
	Thumb(ctx context.Context, ratingKey string) (*plex.Thumbnail, error)
}

// WebhookDispatcher schedules background processing of webhook events.
type WebhookDispatcher interface {
	Dispatch(p *webhook.Payload) (string, bool)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Scanner  Scanner
	Catalog  Catalog
	Thumbs   ThumbSource
	Webhooks WebhookDispatcher
	Log      *slog.Logger // optional
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	switch {
	case d.Scanner == nil:
		return fmt.Errorf("scanner: %w", ErrMissingDependency)
	case d.Catalog == nil:
		return fmt.Errorf("catalog: %w", ErrMissingDependency)
	case d.Thumbs == nil:
		return fmt.Errorf("thumbnail source: %w", ErrMissingDependency)
	case d.Webhooks == nil:
		return fmt.Errorf("webhook dispatcher: %w", ErrMissingDependency)
	}
	return nil
}
