package tmdb

import (
	"sync"
	"time"
)

type cacheEntry struct {
	details *Details
	expires time.Time
}

// cache memoizes details responses keyed by request path.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(key string) (*Details, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.details, true
}

func (c *cache) set(key string, details *Details) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		details: details,
		expires: time.Now().Add(c.ttl),
	}
}
