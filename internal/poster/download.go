// Package poster renders artwork plans onto source posters: it downloads
// the source image, standardizes the canvas, composites each layer and
// encodes the result as JPEG.
package poster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder
)

// Canvas size every poster is resized to before compositing.
const (
	Width  = 2000
	Height = 3000
)

const (
	downloadTimeout = 30 * time.Second
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxImageBytes   = 64 << 20
)

// ErrDownload wraps any failure to fetch or decode a source image.
var ErrDownload = errors.New("download poster")

// Downloader fetches source posters.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a Downloader. A nil client gets a 30s timeout.
func NewDownloader(hc *http.Client) *Downloader {
	if hc == nil {
		hc = &http.Client{Timeout: downloadTimeout}
	}
	return &Downloader{httpClient: hc}
}

// Fetch downloads and decodes a JPEG, PNG or WebP image.
func (d *Downloader) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrDownload, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status: %d", ErrDownload, resp.StatusCode)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrDownload, err)
	}
	return img, nil
}

// Standardize resizes any image to exactly Width x Height with Lanczos
// resampling.
func Standardize(img image.Image) *image.NRGBA {
	return imaging.Resize(img, Width, Height, imaging.Lanczos)
}
