package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/corsair-sc/corsair/internal/log"
)

const DefaultExpiration = 5 * time.Minute
const DefaultCleanupInterval = 10 * time.Minute

// NewInMemoryCacheManager initializes the in-memory cache. The useCase label
// only shows up in log lines.
func NewInMemoryCacheManager[V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[V] {
	return &InMemoryCacheManager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager is the concrete implementation of the CacheManager interface
type InMemoryCacheManager[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[V]) Get(ctx context.Context, key string) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(key)
	if !found {
		return zeroValue, false
	}

	// Type assertion check to ensure the type is correct
	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "use_case", c.useCase, "key", key)

		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "use_case", c.useCase, "key", key)

	return v, true
}

// Set sets a value in the cache with a key and TTL
func (c *InMemoryCacheManager[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes values from the cache by key
func (c *InMemoryCacheManager[V]) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.cache.Delete(key)
	}

	return nil
}

// Flush drops every cached value
func (c *InMemoryCacheManager[V]) Flush(ctx context.Context) error {
	c.cache.Flush()

	return nil
}
