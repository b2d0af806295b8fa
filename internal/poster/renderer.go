package poster

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vmunix/rustizarr/internal/artwork"
	"github.com/vmunix/rustizarr/internal/overlay"
)

// Renderer turns a source poster URL and a layer plan into JPEG bytes.
type Renderer struct {
	downloader *Downloader
	compositor *Compositor
	log        *slog.Logger
}

// NewRenderer creates a Renderer. hc may be nil.
func NewRenderer(lib *overlay.Library, hc *http.Client, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{
		downloader: NewDownloader(hc),
		compositor: NewCompositor(lib, log),
		log:        log.With("component", "renderer"),
	}
}

// Render downloads sourceURL, standardizes it and applies layers.
func (r *Renderer) Render(ctx context.Context, sourceURL string, layers []artwork.Layer) ([]byte, error) {
	start := time.Now()

	src, err := r.downloader.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	r.log.Debug("poster downloaded", "url", sourceURL,
		"width", src.Bounds().Dx(), "height", src.Bounds().Dy())

	canvas := Standardize(src)
	composed := r.compositor.Compose(canvas, layers)

	data, err := Encode(composed)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r.log.Debug("poster rendered", "layers", len(layers), "duration_ms", time.Since(start).Milliseconds())
	return data, nil
}
