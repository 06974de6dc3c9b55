// Package cache provides a thread-safe LRU cache for parsed documents.
//
// Parsing a large domain is pure CPU work on an immutable input, so the
// source text itself is a perfect cache key. The cache is generic over the
// parsed value so one instance can hold domains, problems, or plans.
//
// # Example
//
//	c := cache.New[*types.Domain](256)
//	d, err := c.GetOrParse(src, func() (*types.Domain, error) {
//	    return parser.ParseDomain(src)
//	})
package cache

import (
	"container/list"
	"sync"
)

type entry[V any] struct {
	key   string
	value V
}

// Cache is a thread-safe LRU cache keyed by source text. Once capacity is
// reached, the least recently accessed entry is evicted.
//
// Safe for concurrent use by multiple goroutines.
type Cache[V any] struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates an LRU cache with the given capacity. A capacity of zero or
// less falls back to a default of 256.
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache[V]{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a value and promotes its entry to most recently used.
// The entry value is read while a lock is held, as Set may rewrite it in
// place.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	if el, ok := c.items[key]; ok && c.ll.Front() == el {
		v := el.Value.(*entry[V]).value
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	// Promote under the write lock; re-check in case of concurrent
	// eviction.
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry[V]).value, true
}

// Set inserts or replaces a value, evicting the least recently used entry
// when at capacity.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[V]).value = value
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}

	el := c.ll.PushFront(&entry[V]{key: key, value: value})
	c.items[key] = el
}

// GetOrParse retrieves the value for key, or calls parse to produce it
// and caches the result. Errors are not cached: a failing parse is
// retried on the next call.
func (c *Cache[V]) GetOrParse(key string, parse func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := parse()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

// Len returns the number of entries currently cached.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return n
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Invalidate removes a single entry.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.ll.Remove(el)
		delete(c.items, key)
	}
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

func (c *Cache[V]) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry[V]).key)
}
