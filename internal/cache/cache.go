package cache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a thread-safe LRU cache holding at most Capacity entries.
// It adds hit, miss and eviction counters and an atomic GetOrCreate to
// the underlying golang-lru cache.
type Cache[K comparable, V any] struct {
	// mu serializes GetOrCreate so create runs once per missing key.
	mu       sync.Mutex
	entries  *lru.Cache[K, V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[K, V](capacity)
	if err != nil {
		// lru.New fails only for non-positive sizes.
		panic(err)
	}
	return &Cache[K, V]{entries: entries, capacity: capacity}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries.Get(key)
	c.count(ok)
	return v, ok
}

// Set stores value for key, evicting the least recently used entry
// when the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.entries.Add(key, value) {
		c.evictions.Add(1)
	}
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs while other GetOrCreate calls wait and must not call
// GetOrCreate itself.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries.Get(key); ok {
		c.count(true)
		return v
	}
	c.count(false)
	v := create()
	c.Set(key, v)
	return v
}

func (c *Cache[K, V]) count(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	return c.entries.Remove(key)
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return c.entries.Len()
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
