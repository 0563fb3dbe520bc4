// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Thread-safe cache over sync.Map with a background sweeper

package cache

import (
	"log/slog"
	"sync"
	"time"
)

const sweepInterval = time.Minute

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache stores computed analysis responses keyed by request hash.
type Cache struct {
	store sync.Map
	ttl   time.Duration
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	c := &Cache{ttl: ttl}
	go c.sweep()
	return c
}

// Get returns the cached value, expiring it lazily when stale.
func (c *Cache) Get(key string) (interface{}, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.value, true
}

// Set stores a value under key with the cache TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.store.Store(key, entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
	slog.Debug("Cache set", "key", key, "ttl", c.ttl)
}

// Clear removes a single key.
func (c *Cache) Clear(key string) {
	c.store.Delete(key)
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.store.Range(func(key, val interface{}) bool {
			if now.After(val.(entry).expiresAt) {
				c.store.Delete(key)
			}
			return true
		})
	}
}
