package recommend

import (
	"sync"

	"Karyatra/be/internal/resource"
)

// Cache keeps the full per-skill result lists for the process lifetime.
// It is an optimization, not a correctness-bearing structure: a racing
// writer losing to another is fine. Invalidation is wholesale because a
// new curated resource can surface under any key.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string][]resource.Resource
	capacity int
}

// NewCache returns a cache holding at most capacity keys; capacity <= 0
// means unbounded.
func NewCache(capacity int) *Cache {
	return &Cache{entries: make(map[string][]resource.Resource), capacity: capacity}
}

func (c *Cache) Get(key string) ([]resource.Resource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rs, ok := c.entries[key]
	return rs, ok
}

func (c *Cache) Put(key string, rs []resource.Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && c.capacity > 0 && len(c.entries) >= c.capacity {
		// Wholesale reset is the only invalidation mode the engine has;
		// reuse it as the capacity bound instead of tracking recency.
		c.entries = make(map[string][]resource.Resource)
	}
	c.entries[key] = rs
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]resource.Resource)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
