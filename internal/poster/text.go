package poster

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vmunix/rustizarr/internal/artwork"
)

// Title banner layout.
const (
	titleSize        = 250.0
	titleWidthRatio  = 0.92
	titleLineHeight  = 0.85
	titleBottomSpace = 430
	shadowOffset     = 5

	scoreSizeRatio = 0.65
	scoreNudge     = 2
)

var (
	shadowColor = color.NRGBA{A: 220}
	titleColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	scoreColor  = color.NRGBA{A: 255}
)

var upper = cases.Upper(language.Und)

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// wrapLines greedily fills lines up to maxWidth pixels. A single word wider
// than maxWidth gets a line of its own.
func wrapLines(face font.Face, text string, maxWidth int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		attempt := word
		if current != "" {
			attempt = current + " " + word
		}
		if font.MeasureString(face, attempt).Ceil() > maxWidth {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
			continue
		}
		current = attempt
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (c *Compositor) title(dst *image.NRGBA, t artwork.Title) {
	f, ok := c.assets.Font(t.Font)
	if !ok {
		return
	}
	face, err := newFace(f, titleSize)
	if err != nil {
		c.log.Warn("title font unusable", "font", t.Font, "error", err)
		return
	}
	defer func() { _ = face.Close() }()

	width, height := dst.Bounds().Dx(), dst.Bounds().Dy()
	lines := wrapLines(face, upper.String(t.Text), int(float64(width)*titleWidthRatio))
	if len(lines) == 0 {
		return
	}

	lineHeight := titleSize * titleLineHeight
	top := int(float64(height) - titleBottomSpace - float64(len(lines))*lineHeight)
	ascent := face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		x := (width - font.MeasureString(face, line).Ceil()) / 2
		baseline := top + int(float64(i)*lineHeight) + ascent

		drawString(dst, face, shadowColor, x+shadowOffset, baseline+shadowOffset, line)
		drawString(dst, face, titleColor, x, baseline, line)
	}
}

// drawScore centers the rating on the badge box.
func drawScore(dst *image.NRGBA, f *opentype.Font, score float64, box image.Rectangle) {
	face, err := newFace(f, float64(box.Dy())*scoreSizeRatio)
	if err != nil {
		return
	}
	defer func() { _ = face.Close() }()

	text := fmt.Sprintf("%.1f", score)
	bounds, _ := font.BoundString(face, text)
	ascent := face.Metrics().Ascent.Ceil()

	// Ink extent measured from the dot and the top of the line box.
	inkWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := ascent + bounds.Max.Y.Ceil()

	x := box.Min.X + (box.Dx()-inkWidth)/2 - bounds.Min.X.Round()
	top := box.Min.Y + (box.Dy()-textHeight)/2 + scoreNudge
	drawString(dst, face, scoreColor, x, top+ascent, text)
}

func drawString(dst *image.NRGBA, face font.Face, c color.Color, x, baseline int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
