// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package cache provides the response cache: a thread-safe LRU with TTL
// that memoizes marshaled view payloads per canonical filter. The fact
// table is immutable after startup, so a cached payload can only go stale
// through the TTL, never through data changes.
package cache

import (
	"sync"
	"time"

	"github.com/pitwall-dev/pitwall/internal/metrics"
)

type entry struct {
	key       string
	payload   []byte
	prev      *entry
	next      *entry
	expiresAt time.Time
}

// ResponseCache is an LRU over marshaled responses keyed by endpoint plus
// canonical filter. Get, Set and eviction are O(1): a doubly-linked list
// keeps recency order, a map keeps lookup. Expiration is lazy.
type ResponseCache struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration

	items map[string]*entry

	// head.next is the most recently used, tail.prev the least.
	head *entry
	tail *entry
}

// New creates a ResponseCache. Non-positive capacity or TTL fall back to
// defaults sized for the dashboard's filter churn.
func New(capacity int, ttl time.Duration) *ResponseCache {
	if capacity <= 0 {
		capacity = 1024
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	c := &ResponseCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry, capacity),
		head:     &entry{},
		tail:     &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the cached payload for key, refreshing its recency. The
// returned bytes are shared; callers must not mutate them.
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		metrics.ResponseCacheMisses.Inc()
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.remove(e)
		metrics.ResponseCacheMisses.Inc()
		return nil, false
	}

	c.moveToFront(e)
	metrics.ResponseCacheHits.Inc()
	return e.payload, true
}

// Set stores a payload under key, evicting the least recently used entry
// when over capacity.
func (c *ResponseCache) Set(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.payload = payload
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, payload: payload, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Len returns the current number of entries.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Purge drops every entry.
func (c *ResponseCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry, c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// List surgery below; callers hold c.mu.

func (c *ResponseCache) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *ResponseCache) moveToFront(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *ResponseCache) remove(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *ResponseCache) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.remove(oldest)
}
