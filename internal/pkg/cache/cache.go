package cache

import (
	"context"
	"sync"
	"time"
)

// Loader produces a fresh value for a cache key on miss.
type Loader func(ctx context.Context) (interface{}, error)

type entry struct {
	value     interface{}
	tags      []string
	expiresAt time.Time
}

// Cache is a process-wide read cache for remote query results, keyed by the
// query parameters and invalidated by tag on writes.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	byTag   map[string]map[string]struct{}
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		byTag:   make(map[string]map[string]struct{}),
	}
}

// Fetch returns the cached value for key, or runs loader and stores the
// result under the given tags. Load errors are never cached.
func (c *Cache) Fetch(ctx context.Context, key string, tags []string, loader Loader) (interface{}, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(e.expiresAt) {
		return e.value, nil
	}

	value, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{
		value:     value,
		tags:      tags,
		expiresAt: time.Now().Add(c.ttl),
	}
	for _, tag := range tags {
		if c.byTag[tag] == nil {
			c.byTag[tag] = make(map[string]struct{})
		}
		c.byTag[tag][key] = struct{}{}
	}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops every entry stored under any of the given tags.
func (c *Cache) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range tags {
		for key := range c.byTag[tag] {
			delete(c.entries, key)
		}
		delete(c.byTag, tag)
	}
}
