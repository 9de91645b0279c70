package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

// Cache is a read-through store for one resolved catalog pass. Obligations
// and offers are never cached; only the slow multi-source catalog fan-out is.
type Cache interface {
	Get(ctx context.Context) ([]models.CatalogProduct, bool)
	Set(ctx context.Context, products []models.CatalogProduct)
}

type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, key string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, key: key, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]models.CatalogProduct, bool) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx, "catalog cache read failed: %v", err)
		}
		return nil, false
	}

	var products []models.CatalogProduct
	if err := json.Unmarshal(payload, &products); err != nil {
		logger.Warn(ctx, "catalog cache entry corrupt, ignoring: %v", err)
		return nil, false
	}
	return products, true
}

func (c *RedisCache) Set(ctx context.Context, products []models.CatalogProduct) {
	payload, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "catalog cache write failed: %v", err)
	}
}
