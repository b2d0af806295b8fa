package poster

import (
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/vmunix/rustizarr/internal/artwork"
	"github.com/vmunix/rustizarr/internal/overlay"
)

// Badge placement in pixels.
const (
	margin       = 30
	badgeSpacing = 12
)

// Compositor applies artwork layers to a standardized canvas.
type Compositor struct {
	assets *overlay.Library
	log    *slog.Logger
}

// NewCompositor creates a Compositor reading assets from lib.
func NewCompositor(lib *overlay.Library, log *slog.Logger) *Compositor {
	if log == nil {
		log = slog.Default()
	}
	return &Compositor{assets: lib, log: log.With("component", "compositor")}
}

// Compose applies the layers in order. Missing assets skip their layer.
// The canvas is not modified; a new image is returned.
func (c *Compositor) Compose(canvas *image.NRGBA, layers []artwork.Layer) *image.NRGBA {
	dst := imaging.Clone(canvas)
	cursor := margin // next free x of the top-left badge row

	for _, l := range layers {
		switch l := l.(type) {
		case artwork.Gradient:
			dst = c.gradient(dst, l)
		case artwork.Title:
			c.title(dst, l)
		case artwork.Badge:
			dst, cursor = c.badge(dst, l, cursor)
		case artwork.ScoreBadge:
			dst = c.scoreBadge(dst, l)
		case artwork.Border:
			dst = c.border(dst, l)
		}
	}
	return dst
}

func (c *Compositor) gradient(dst *image.NRGBA, g artwork.Gradient) *image.NRGBA {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	if top, ok := c.assets.Image(g.Top); ok {
		scaled := imaging.Resize(top, w, 0, imaging.Lanczos)
		dst = imaging.Overlay(dst, scaled, image.Pt(0, 0), 1.0)
	}
	if bottom, ok := c.assets.Image(g.Bottom); ok {
		scaled := imaging.Resize(bottom, w, 0, imaging.Lanczos)
		dst = imaging.Overlay(dst, scaled, image.Pt(0, h-scaled.Bounds().Dy()), 1.0)
	}
	return dst
}

// scaleToHeight resizes img so its height is frac of the canvas height.
func scaleToHeight(img image.Image, canvasHeight int, frac float64) *image.NRGBA {
	target := int(float64(canvasHeight) * frac)
	if target <= 0 || img.Bounds().Dy() == 0 {
		return nil
	}
	width := int(float64(img.Bounds().Dx()) * float64(target) / float64(img.Bounds().Dy()))
	if width <= 0 {
		return nil
	}
	return imaging.Resize(img, width, target, imaging.Lanczos)
}

// badge draws a corner badge and returns the advanced top-left cursor.
func (c *Compositor) badge(dst *image.NRGBA, b artwork.Badge, cursor int) (*image.NRGBA, int) {
	src, ok := c.assets.Image(b.Asset)
	if !ok {
		return dst, cursor
	}
	scaled := scaleToHeight(src, dst.Bounds().Dy(), b.Height)
	if scaled == nil {
		return dst, cursor
	}
	bw, bh := scaled.Bounds().Dx(), scaled.Bounds().Dy()

	switch b.Corner {
	case artwork.BottomLeft:
		dst = imaging.Overlay(dst, scaled, image.Pt(margin, dst.Bounds().Dy()-bh-margin), 1.0)
	default:
		dst = imaging.Overlay(dst, scaled, image.Pt(cursor, margin), 1.0)
		cursor += bw + badgeSpacing
	}
	return dst, cursor
}

func (c *Compositor) scoreBadge(dst *image.NRGBA, s artwork.ScoreBadge) *image.NRGBA {
	src, ok := c.assets.Image(s.Asset)
	if !ok {
		return dst
	}
	scaled := scaleToHeight(src, dst.Bounds().Dy(), s.Height)
	if scaled == nil {
		return dst
	}

	box := image.Rect(0, 0, scaled.Bounds().Dx(), scaled.Bounds().Dy()).
		Add(image.Pt(dst.Bounds().Dx()-scaled.Bounds().Dx()-margin, dst.Bounds().Dy()-scaled.Bounds().Dy()-margin))
	dst = imaging.Overlay(dst, scaled, box.Min, 1.0)

	if f, ok := c.assets.Font(s.Font); ok {
		drawScore(dst, f, s.Score, box)
	}
	return dst
}

func (c *Compositor) border(dst *image.NRGBA, b artwork.Border) *image.NRGBA {
	src, ok := c.assets.Image(b.Asset)
	if !ok && b.Fallback != "" {
		c.log.Debug("border missing, using fallback", "border", b.Kind, "fallback", b.Fallback)
		src, ok = c.assets.Image(b.Fallback)
	}
	if !ok {
		return dst
	}
	stretched := imaging.Resize(src, dst.Bounds().Dx(), dst.Bounds().Dy(), imaging.Lanczos)
	return imaging.Overlay(dst, stretched, image.Pt(0, 0), 1.0)
}
