package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the in-memory backend. Good enough for single-box
// deployments and tests; sessions do not survive a restart.
type MemoryCache struct {
	cache *gocache.Cache
}

var _ CacheInterface = (*MemoryCache)(nil)

func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

func (c *MemoryCache) Set(key string, value interface{}, duration time.Duration) {
	c.cache.Set(key, value, duration)
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

func (c *MemoryCache) Close() error {
	return nil
}
