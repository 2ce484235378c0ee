// Package cachemanager provides a generic TTL cache and a read-through
// wrapper used to keep upstream API calls off the hot path.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
}
