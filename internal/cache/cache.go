package cache

import "time"

// CacheInterface abstracts the session/cache backend so deployments without
// Redis fall back to the in-memory store.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)
	Delete(key string)
	Close() error
}
