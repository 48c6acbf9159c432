// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a bounded least-recently-used cache.
//
//	c := cache.New[glyphKey, *geom.Path](1024)
//	p := c.GetOrCreate(k, func() *geom.Path { return load(k) })
//
// A Cache is safe for concurrent use and must not be copied after
// creation.
package cache

import (
	"container/list"
	"sync"
)

// Cache is a thread-safe LRU cache holding at most a fixed number of
// entries.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	limit    int
	order    *list.List // front is most recently used
	entries  map[K]*list.Element
	hits     uint64
	misses   uint64
	evictions uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most limit entries. A limit of 0 or less
// means unbounded.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		limit:   limit,
		order:   list.New(),
		entries: make(map[K]*list.Element),
	}
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	c.misses++
	var zero V
	return zero, false
}

// Set stores value for key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the value for key, calling create to fill a miss.
// create runs under the cache lock and must not use the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value
	}
	c.misses++
	v := create()
	c.set(key, v)
	return v
}

func (c *Cache[K, V]) set(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	for c.limit > 0 && c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry[K, V]).key)
		c.evictions++
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
	return ok
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.entries = make(map[K]*list.Element)
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats holds cache counters.
type Stats struct {
	Len       int
	Limit     int
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

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:       c.order.Len(),
		Limit:     c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
