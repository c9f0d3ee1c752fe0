// Package rolecache is a small TTL cache for worker role lookups. It exists
// so the role middleware does not hit the worker directory on every request;
// entries expire after a fixed TTL and can be invalidated explicitly when a
// worker's category changes.
package rolecache

import (
	"sync"
	"time"
)

type entry struct {
	role      string
	expiresAt time.Time
}

type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached role for workerID, or false when absent or expired.
// Expired entries are swept lazily on the next Set.
func (c *Cache) Get(workerID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[workerID]
	if !ok || c.now().After(e.expiresAt) {
		return "", false
	}
	return e.role, true
}

// Set stores the role for workerID with the cache's TTL, sweeping entries
// that have already expired so stale worker ids do not accumulate.
func (c *Cache) Set(workerID string, role string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
		}
	}

	c.entries[workerID] = entry{
		role:      role,
		expiresAt: now.Add(c.ttl),
	}
}

// Invalidate removes one worker's cached role.
func (c *Cache) Invalidate(workerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, workerID)
}

// InvalidateAll empties the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
