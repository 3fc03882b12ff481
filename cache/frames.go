// Package cache stores per-frame results keyed by frame index.
//
// A Frames cache is unbounded by default: entries live until Clear. Given a
// positive capacity it becomes a bounded LRU and evicts the least recently
// used frame when full.
package cache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int     // current number of entries
	Capacity  int     // 0 when unbounded
	Hits      uint64  // successful lookups
	Misses    uint64  // failed lookups
	HitRate   float64 // Hits / (Hits + Misses), 0 when unused
	Evictions uint64  // entries dropped to stay within Capacity
}

// Frames maps frame indices to values.
//
// Frames is safe for concurrent use, but callers that compute a value on a
// miss and then Set it must serialize that sequence themselves.
type Frames[V any] struct {
	capacity int

	mu      sync.Mutex
	entries map[int]V

	bounded *lru.Cache[int, V]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a frame cache. If capacity <= 0 the cache is unbounded.
func New[V any](capacity int) *Frames[V] {
	c := &Frames[V]{}
	if capacity > 0 {
		// lru.New only fails for non-positive sizes.
		b, _ := lru.New[int, V](capacity)
		c.capacity = capacity
		c.bounded = b
		return c
	}
	c.entries = make(map[int]V)
	return c
}

// Get returns the value stored for frame.
func (c *Frames[V]) Get(frame int) (V, bool) {
	var (
		v  V
		ok bool
	)
	if c.bounded != nil {
		v, ok = c.bounded.Get(frame)
	} else {
		c.mu.Lock()
		v, ok = c.entries[frame]
		c.mu.Unlock()
	}

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores v for frame, replacing any previous value.
func (c *Frames[V]) Set(frame int, v V) {
	if c.bounded != nil {
		if evicted := c.bounded.Add(frame, v); evicted {
			c.evictions.Add(1)
		}
		return
	}
	c.mu.Lock()
	c.entries[frame] = v
	c.mu.Unlock()
}

// Len returns the number of cached frames.
func (c *Frames[V]) Len() int {
	if c.bounded != nil {
		return c.bounded.Len()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of frames, or 0 when unbounded.
func (c *Frames[V]) Capacity() int {
	return c.capacity
}

// Clear drops every entry and releases the storage. Counters are kept.
func (c *Frames[V]) Clear() {
	if c.bounded != nil {
		c.bounded.Purge()
		return
	}
	c.mu.Lock()
	c.entries = make(map[int]V)
	c.mu.Unlock()
}

// Stats returns current cache statistics.
func (c *Frames[V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Frames[V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
