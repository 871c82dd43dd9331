// Package cache provides the fixed-capacity LRU used by the editor's
// rendering caches and the retouch brush-mask memo.
//
// # LRU[K, V]
//
// An LRU keeps its keys in an ordered list: the front is the least recently
// used key and the back the most recently used. A hit moves the key to the
// back in O(1); an insert that pushes the cache over capacity evicts from
// the front in O(1).
//
//	c := cache.NewLRU[string, int](2)
//	c.Set("a", 1)
//	c.Set("b", 2)
//	c.Get("a")    // "a" is now most recently used
//	c.Set("c", 3) // evicts "b"
//
// # Thread Safety
//
// LRU is safe for concurrent use. It must not be copied after creation.
package cache
