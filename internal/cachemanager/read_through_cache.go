package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache serves values from the cache and falls back to fn on a
// miss, storing the result. I is the input the fetch function needs.
type ReadThroughCache[V any, I any] struct {
	cache           CacheManager[V]
	fn              func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[V any, I any](
	cache CacheManager[V],
	fn func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[V, I] {
	return &ReadThroughCache[V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

func (r *ReadThroughCache[V, I]) Get(ctx context.Context, key string, input I, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)

	return value, nil
}

// Invalidate drops the cached value for key so the next Get refetches.
func (r *ReadThroughCache[V, I]) Invalidate(ctx context.Context, key string) error {
	if r.shouldSkipCache {
		return nil
	}
	return r.cache.Delete(ctx, key)
}
