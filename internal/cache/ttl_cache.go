// Package cache provides a small in-process LRU cache with per-entry TTL.
// The auth service uses it to track issued access tokens.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"
)

// TTLCache stores byte slices with LRU eviction and optional expiry.
// Concurrency: methods are safe for concurrent use.
type TTLCache struct {
	mu    sync.Mutex
	cap   int
	ll    *list.List               // front = most-recently used
	items map[string]*list.Element // key -> element
	now   func() time.Time         // injectable clock for tests

	hits   atomic.Uint64
	misses atomic.Uint64
	evicts atomic.Uint64
}

type ttlEntry struct {
	key    string
	value  []byte
	expiry time.Time // zero means no expiry
}

// Options groups constructor options for TTLCache.
type Options struct {
	Capacity int
	Now      func() time.Time
}

const defaultCapacity = 1024

// New creates a TTLCache with the given options.
func New(opts Options) *TTLCache {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &TTLCache{
		cap:   capacity,
		ll:    list.New(),
		items: make(map[string]*list.Element, capacity),
		now:   nowFn,
	}
}

// Get returns the value for key if present and not expired.
func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, found := c.items[key]
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	ent := el.Value.(*ttlEntry)
	if c.expired(ent) {
		c.remove(el)
		c.misses.Add(1)
		return nil, false
	}
	c.ll.MoveToFront(el)
	c.hits.Add(1)
	return ent.value, true
}

// Exists returns true if key is present and not expired.
func (c *TTLCache) Exists(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Set inserts or updates a value. ttl <= 0 means no expiration.
func (c *TTLCache) Set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}

	if el, found := c.items[key]; found {
		ent := el.Value.(*ttlEntry)
		ent.value = value
		ent.expiry = exp
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&ttlEntry{key: key, value: value, expiry: exp})
	c.items[key] = el
	for c.ll.Len() > c.cap {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest)
		c.evicts.Add(1)
	}
}

// Delete removes a key, reporting whether it was present.
func (c *TTLCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
		return true
	}
	return false
}

// Len returns the current number of items, including not-yet-reaped expired ones.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Stats are simple counters for observability.
type Stats struct {
	Hits, Misses, Evictions uint64
	Size, Capacity          int
}

// CounterStats returns a snapshot of counters and sizes.
func (c *TTLCache) CounterStats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evicts.Load(),
		Size:      c.Len(),
		Capacity:  c.cap,
	}
}

// Callers must hold c.mu.
func (c *TTLCache) expired(e *ttlEntry) bool {
	return !e.expiry.IsZero() && c.now().After(e.expiry)
}

func (c *TTLCache) remove(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*ttlEntry).key)
}
