package cache

import (
	"reflect"
	"strconv"
	"sync"
	"testing"
)

func TestNewLRU(t *testing.T) {
	c := NewLRU[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("Capacity() = %d, want 100", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}

	d := NewLRU[string, int](0)
	if d.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", d.Capacity(), DefaultCapacity)
	}
}

func TestLRUGetSet(t *testing.T) {
	c := NewLRU[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v, want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to miss")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("Get(key1) after overwrite = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	const capacity = 4
	c := NewLRU[string, int](capacity)
	for i := 0; i < capacity; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	// Touch the oldest insert so that "1" becomes least recently used.
	if _, ok := c.Get("0"); !ok {
		t.Fatal("expected key 0 to be present")
	}
	c.Set("new", 100)

	if c.Len() != capacity {
		t.Errorf("Len() = %d, want %d", c.Len(), capacity)
	}
	if _, ok := c.Peek("1"); ok {
		t.Error("key 1 should have been evicted (least recently used)")
	}
	for _, key := range []string{"0", "2", "3", "new"} {
		if _, ok := c.Peek(key); !ok {
			t.Errorf("key %q should still be cached", key)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRUKeysOrder(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a")

	want := []string{"b", "c", "a"}
	if got := c.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	c.Set("b", 20)
	want = []string{"c", "a", "b"}
	if got := c.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after update = %v, want %v", got, want)
	}
}

func TestLRUPeekDoesNotTouchRecency(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Peek("a")
	c.Set("c", 3)

	if _, ok := c.Peek("a"); ok {
		t.Error("Peek must not refresh recency; key a should be evicted")
	}
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Peek changed stats: %+v", s)
	}
}

func TestLRUOnEvict(t *testing.T) {
	c := NewLRU[string, int](1)
	var evicted []string
	c.OnEvict(func(key string, _ int) {
		evicted = append(evicted, key)
	})

	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("b")

	if !reflect.DeepEqual(evicted, []string{"a"}) {
		t.Errorf("evicted = %v, want [a]", evicted)
	}
}

func TestLRUGetOrCreate(t *testing.T) {
	c := NewLRU[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 100
	}

	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("GetOrCreate = %d, want 100", v)
	}
	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("GetOrCreate (cached) = %d, want 100", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestLRUDeletePruneClear(t *testing.T) {
	c := NewLRU[int, int](10)
	for i := 0; i < 6; i++ {
		c.Set(i, i)
	}

	if !c.Delete(0) {
		t.Error("Delete(0) = false, want true")
	}
	if c.Delete(0) {
		t.Error("second Delete(0) = true, want false")
	}

	removed := c.Prune(func(k int) bool { return k%2 == 0 })
	if removed != 3 {
		t.Errorf("Prune removed %d, want 3", removed)
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("Keys() after prune = %v, want [2 4]", got)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestLRUStats(t *testing.T) {
	c := NewLRU[string, int](10)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want ~0.667", s.HitRate)
	}

	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 {
		t.Errorf("stats after reset = %+v", s)
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := NewLRU[int, int](1000)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set(n*100+j, j)
				c.Get(n*100 + j/2)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
}
