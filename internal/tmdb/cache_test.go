package tmdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := newCache(time.Hour)

	// Miss
	_, ok := c.get("tv/1399")
	assert.False(t, ok, "empty cache should miss")

	// Set and hit
	c.set("tv/1399", &Details{PosterPath: "/got.jpg", Status: "Ended"})

	got, ok := c.get("tv/1399")
	require.True(t, ok, "should hit after set")
	assert.Equal(t, "Ended", got.Status)

	// Different key should miss
	_, ok = c.get("movie/1399")
	assert.False(t, ok, "different key should miss")
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)

	c.set("tv/1", &Details{Status: "Returning Series"})

	// Should hit immediately
	_, ok := c.get("tv/1")
	require.True(t, ok)

	// Wait for expiry
	time.Sleep(20 * time.Millisecond)

	// Should miss after expiry
	_, ok = c.get("tv/1")
	assert.False(t, ok, "should miss after TTL")
}
