package artboard

import (
	"sync/atomic"

	"github.com/gogpu/artboard/cache"
)

// DefaultLayerCacheCapacity is the number of layer buffers kept.
const DefaultLayerCacheCapacity = 30

// LayerCacheEntry is the rendered offscreen buffer of one layer.
// Width and Height are the ceiled layer box size; the buffer is larger by
// Padding on every side.
type LayerCacheEntry struct {
	Buffer  *Pixmap
	Hash    uint64
	Width   int
	Height  int
	Padding int
}

// LayerCache keeps rendered layer buffers keyed by layer id. An entry is
// only served while its hash and size match the layer's current state.
type LayerCache struct {
	lru    *cache.LRU[string, *LayerCacheEntry]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLayerCache creates a layer cache holding at most capacity buffers.
func NewLayerCache(capacity int) *LayerCache {
	if capacity <= 0 {
		capacity = DefaultLayerCacheCapacity
	}
	return &LayerCache{lru: cache.NewLRU[string, *LayerCacheEntry](capacity)}
}

// Lookup returns the entry for id if it was rendered from the same content
// hash at the same size. Stale entries are dropped.
func (c *LayerCache) Lookup(id string, hash uint64, w, h int) (*LayerCacheEntry, bool) {
	e, ok := c.lru.Peek(id)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	if e.Hash != hash || e.Width != w || e.Height != h || e.Buffer == nil {
		c.lru.Delete(id)
		c.misses.Add(1)
		return nil, false
	}
	c.lru.Get(id)
	c.hits.Add(1)
	return e, true
}

// Store records the buffer rendered for id, replacing any previous entry.
func (c *LayerCache) Store(id string, e *LayerCacheEntry) {
	c.lru.Set(id, e)
}

// Prune drops the entries of layers that are not in live and returns how
// many were removed.
func (c *LayerCache) Prune(live map[string]struct{}) int {
	return c.lru.Prune(func(id string) bool {
		_, ok := live[id]
		return ok
	})
}

// Len returns the number of cached buffers.
func (c *LayerCache) Len() int {
	return c.lru.Len()
}

// Clear drops every entry.
func (c *LayerCache) Clear() {
	c.lru.Clear()
}

// Stats returns cache statistics. Hits and misses count validated lookups,
// so a stale entry is a miss.
func (c *LayerCache) Stats() cache.Stats {
	s := c.lru.Stats()
	s.Hits, s.Misses = c.hits.Load(), c.misses.Load()
	s.HitRate = 0
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}
