package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, "refinance:catalog", ttl), server
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "empty cache reports a miss")

	products := SampleCatalog()
	cache.Set(ctx, products)

	cached, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, products, cached)
}

func TestRedisCache_ExpiredEntryMisses(t *testing.T) {
	cache, server := newTestCache(t, time.Second)
	ctx := context.Background()

	cache.Set(ctx, SampleCatalog())
	server.FastForward(2 * time.Second)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestRedisCache_CorruptEntryMisses(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)

	require.NoError(t, server.Set("refinance:catalog", "{not json"))

	_, ok := cache.Get(context.Background())
	assert.False(t, ok)
}
