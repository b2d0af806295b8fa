// Package catalog caches Plex library listings in memory.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vmunix/rustizarr/internal/plex"
)

// DefaultTTL is how long a listing stays valid.
const DefaultTTL = 300 * time.Second

// Loader fetches a library listing.
type Loader func(ctx context.Context, libraryID string) ([]plex.Item, error)

type entry struct {
	items     []plex.Item
	refreshed time.Time
}

// Cache holds one listing per library. The lock is never held while loading.
//
// Every invalidation bumps a generation. A load only stores its result when
// the generation it started under is still current, and loads of different
// generations never share a flight.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	epoch   uint64            // bumped by InvalidateAll
	gens    map[string]uint64 // bumped by Invalidate
	ttl     time.Duration
	now     func() time.Time

	load  Loader
	group singleflight.Group
	log   *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the listing lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache filled by load.
func New(load Loader, log *slog.Logger, opts ...Option) *Cache {
	if log == nil {
		log = slog.Default()
	}
	c := &Cache{
		entries: make(map[string]entry),
		gens:    make(map[string]uint64),
		ttl:     DefaultTTL,
		now:     time.Now,
		load:    load,
		log:     log.With("component", "catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the listing of a library if it is still valid.
func (c *Cache) Get(libraryID string) ([]plex.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[libraryID]
	if !ok || c.now().Sub(e.refreshed) >= c.ttl {
		return nil, false
	}
	return e.items, true
}

// Set stores a listing.
func (c *Cache) Set(libraryID string, items []plex.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[libraryID] = entry{items: items, refreshed: c.now()}
}

// Invalidate drops the listing of a library. Loads already in flight for
// it will not store their result.
func (c *Cache) Invalidate(libraryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, libraryID)
	c.gens[libraryID]++
}

// InvalidateAll drops every listing. Loads already in flight will not
// store their result.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.epoch++
	c.log.Debug("catalog invalidated", "epoch", c.epoch)
}

// generation must be called with mu held. Both counters only grow, so
// their sum changes whenever either does.
func (c *Cache) generation(libraryID string) uint64 {
	return c.epoch + c.gens[libraryID]
}

// lookup returns a valid listing, or the current generation on a miss.
func (c *Cache) lookup(libraryID string) ([]plex.Item, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[libraryID]
	if ok && c.now().Sub(e.refreshed) < c.ttl {
		return e.items, 0, true
	}
	return nil, c.generation(libraryID), false
}

// store keeps items unless the library was invalidated since gen.
func (c *Cache) store(libraryID string, gen uint64, items []plex.Item) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation(libraryID) != gen {
		return false
	}
	c.entries[libraryID] = entry{items: items, refreshed: c.now()}
	return true
}

// Load returns the cached listing, loading it when missing or stale.
// Concurrent loads of one library share a single request.
func (c *Cache) Load(ctx context.Context, libraryID string) ([]plex.Item, error) {
	items, gen, ok := c.lookup(libraryID)
	if ok {
		c.log.Debug("catalog hit", "library", libraryID, "items", len(items))
		return items, nil
	}

	key := fmt.Sprintf("%s@%d", libraryID, gen)
	v, err, shared := c.group.Do(key, func() (any, error) {
		start := time.Now()
		items, err := c.load(ctx, libraryID)
		if err != nil {
			return nil, err
		}
		if !c.store(libraryID, gen, items) {
			c.log.Debug("catalog invalidated during load, not stored", "library", libraryID)
		}
		c.log.Info("catalog loaded", "library", libraryID, "items", len(items),
			"duration_ms", time.Since(start).Milliseconds())
		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load library %s: %w", libraryID, err)
	}
	if shared {
		c.log.Debug("catalog load shared", "library", libraryID)
	}
	return v.([]plex.Item), nil
}

// Refresh drops the listing and loads it again.
func (c *Cache) Refresh(ctx context.Context, libraryID string) ([]plex.Item, error) {
	c.Invalidate(libraryID)
	return c.Load(ctx, libraryID)
}
