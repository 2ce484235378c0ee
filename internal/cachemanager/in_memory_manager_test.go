package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryCacheManager_GetMissingKey(t *testing.T) {
	manager := NewInMemoryCacheManager[string]("test", DefaultExpiration, DefaultCleanupInterval)

	_, found := manager.Get(context.Background(), "missing")
	require.False(t, found)
}

func TestInMemoryCacheManager_SetAndGet(t *testing.T) {
	manager := NewInMemoryCacheManager[string]("test", DefaultExpiration, DefaultCleanupInterval)
	manager.Set(context.Background(), "key", "value", time.Minute)

	value, found := manager.Get(context.Background(), "key")
	require.True(t, found)
	require.Equal(t, "value", value)
}

func TestInMemoryCacheManager_Expiration(t *testing.T) {
	manager := NewInMemoryCacheManager[int]("test", DefaultExpiration, DefaultCleanupInterval)
	manager.Set(context.Background(), "key", 42, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	_, found := manager.Get(context.Background(), "key")
	require.False(t, found)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	manager := NewInMemoryCacheManager[int]("test", DefaultExpiration, DefaultCleanupInterval)
	manager.Set(ctx, "a", 1, time.Minute)
	manager.Set(ctx, "b", 2, time.Minute)

	require.NoError(t, manager.Delete(ctx, "a"))
	_, found := manager.Get(ctx, "a")
	require.False(t, found)

	require.NoError(t, manager.Flush(ctx))
	_, found = manager.Get(ctx, "b")
	require.False(t, found)
}
