package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pneutrack/backend/internal/logging"
)

// RedisCache is the production backend. Values must be strings or []byte
// (the session service stores JSON).
type RedisCache struct {
	client *redis.Client
}

var _ CacheInterface = (*RedisCache)(nil)

// NewRedisClient builds a client from host/port/password and pings it.
// A failed ping is logged but the client is still returned, the pool
// reconnects on its own.
func NewRedisClient(host, port, password string) *redis.Client {
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis", "error", err.Error())
	}
	return client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Set(key string, value interface{}, duration time.Duration) {
	if err := c.client.Set(context.Background(), key, value, duration).Err(); err != nil {
		logging.Error("Redis set failed", "key", key, "error", err.Error())
	}
}

func (c *RedisCache) Get(key string) (interface{}, bool) {
	val, err := c.client.Get(context.Background(), key).Result()
	if err != nil {
		if err != redis.Nil {
			logging.Error("Redis get failed", "key", key, "error", err.Error())
		}
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Delete(key string) {
	if err := c.client.Del(context.Background(), key).Err(); err != nil {
		logging.Error("Redis delete failed", "key", key, "error", err.Error())
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
