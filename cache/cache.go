package cache

import "sync"

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 64

// LRU is a fixed-capacity least-recently-used cache.
//
// LRU is safe for concurrent use.
// LRU must not be copied after creation (has mutex).
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruEntry[K, V]
	order    keyList[K]
	capacity int
	onEvict  func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// lruEntry holds a cached value with its position in the key list.
type lruEntry[K comparable, V any] struct {
	value V
	node  *listNode[K]
}

// NewLRU creates an LRU holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruEntry[K, V]),
		capacity: capacity,
	}
}

// OnEvict registers a callback invoked for every entry dropped because the
// cache went over capacity. It is not called for Delete, Prune or Clear.
// The callback runs with the cache lock held and must not call back into it.
func (c *LRU[K, V]) OnEvict(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get retrieves a value and marks it most recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.order.MoveToBack(entry.node)
	c.hits++
	return entry.value, true
}

// Peek retrieves a value without touching its recency or the statistics.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		return entry.value, true
	}
	var zero V
	return zero, false
}

// Set stores a value as the most recently used entry.
// If the cache exceeds capacity, the least recently used entries are evicted.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.order.MoveToBack(existing.node)
		return
	}

	c.entries[key] = &lruEntry[K, V]{
		value: value,
		node:  c.order.PushBack(key),
	}
	for c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

// GetOrCreate returns the cached value or stores the result of create.
// create is called under the lock, so it must not use the cache.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.order.MoveToBack(entry.node)
		c.hits++
		return entry.value
	}
	c.misses++

	value := create()
	c.entries[key] = &lruEntry[K, V]{
		value: value,
		node:  c.order.PushBack(key),
	}
	for c.order.Len() > c.capacity {
		c.evictOldest()
	}
	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Prune removes every entry for which keep returns false and reports how
// many entries were dropped.
func (c *LRU[K, V]) Prune(keep func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if keep(key) {
			continue
		}
		c.order.Remove(entry.node)
		delete(c.entries, key)
		removed++
	}
	return removed
}

// Keys returns the cached keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Keys()
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruEntry[K, V])
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *LRU[K, V]) ResetStats() {
	c.mu.Lock()
	c.hits, c.misses, c.evictions = 0, 0, 0
	c.mu.Unlock()
}

// evictOldest drops the front of the key list.
// Caller must hold c.mu.
func (c *LRU[K, V]) evictOldest() {
	key, ok := c.order.PopFront()
	if !ok {
		return
	}
	entry := c.entries[key]
	delete(c.entries, key)
	c.evictions++
	if c.onEvict != nil && entry != nil {
		c.onEvict(key, entry.value)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that found nothing.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped for capacity.
	Evictions uint64
}
