package overlay

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/opentype"
)

const defaultDir = "overlays"

// FindRoot returns the overlay root directory. Search order:
//  1. hint (OVERLAYS_PATH) if it exists
//  2. <user config dir>/rustizarr/overlays
//  3. ./overlays
//
// When none exists ./overlays is returned anyway and every asset lookup
// reports a miss.
func FindRoot(hint string) string {
	var candidates []string
	if hint != "" {
		candidates = append(candidates, hint)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "rustizarr", defaultDir))
	}
	candidates = append(candidates, defaultDir)

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	return defaultDir
}

// Library loads assets below a root directory. Decoded images and parsed
// fonts are kept in memory for the life of the Library.
// Safe for concurrent use.
type Library struct {
	root string
	log  *slog.Logger

	mu     sync.Mutex
	images map[string]image.Image
	fonts  map[string]*opentype.Font
}

// NewLibrary creates a Library rooted at root.
func NewLibrary(root string, log *slog.Logger) *Library {
	if log == nil {
		log = slog.Default()
	}
	return &Library{
		root:   root,
		log:    log.With("component", "overlay"),
		images: make(map[string]image.Image),
		fonts:  make(map[string]*opentype.Font),
	}
}

// Root returns the library's root directory.
func (l *Library) Root() string {
	return l.root
}

// Path returns the absolute-or-relative filesystem path of an asset.
func (l *Library) Path(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// Image returns the decoded asset. A missing or undecodable file logs a
// warning and returns false.
func (l *Library) Image(rel string) (image.Image, bool) {
	l.mu.Lock()
	img, ok := l.images[rel]
	l.mu.Unlock()
	if ok {
		return img, true
	}

	img, err := imaging.Open(l.Path(rel))
	if err != nil {
		l.warn(rel, err)
		return nil, false
	}

	l.mu.Lock()
	l.images[rel] = img
	l.mu.Unlock()
	return img, true
}

// Font returns the parsed font. A missing or invalid file logs a warning
// and returns false.
func (l *Library) Font(rel string) (*opentype.Font, bool) {
	l.mu.Lock()
	f, ok := l.fonts[rel]
	l.mu.Unlock()
	if ok {
		return f, true
	}

	data, err := os.ReadFile(l.Path(rel))
	if err != nil {
		l.warn(rel, err)
		return nil, false
	}
	f, err = opentype.Parse(data)
	if err != nil {
		l.warn(rel, fmt.Errorf("parse font: %w", err))
		return nil, false
	}

	l.mu.Lock()
	l.fonts[rel] = f
	l.mu.Unlock()
	return f, true
}

func (l *Library) warn(rel string, err error) {
	if os.IsNotExist(err) {
		l.log.Warn("overlay asset not found", "asset", rel, "path", l.Path(rel))
		return
	}
	l.log.Warn("overlay asset unusable", "asset", rel, "path", l.Path(rel), "error", err)
}
