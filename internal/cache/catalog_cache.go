package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hygienicomfort/shop_api/internal/models"
)

const (
	catalogProductsKey   = "catalog:products"
	catalogCategoriesKey = "catalog:categories"
)

// CatalogSnapshot is the cached product/category listing used to populate
// order forms quickly without a catalog query per keystroke.
type CatalogSnapshot struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	CachedAt   time.Time        `json:"cachedAt"`
}

// CatalogCache caches the product catalog snapshot in Redis. The snapshot is
// invalidated on every product mutation and otherwise expires on its TTL.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a new CatalogCache with the given snapshot TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

// Set stores the catalog snapshot.
func (c *CatalogCache) Set(ctx context.Context, snap *CatalogSnapshot) error {
	snap.CachedAt = time.Now()
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	return c.redis.Set(ctx, catalogProductsKey, string(jsonData), c.ttl)
}

// Get retrieves the catalog snapshot. A cache miss returns (nil, nil).
func (c *CatalogCache) Get(ctx context.Context) (*CatalogSnapshot, error) {
	jsonData, err := c.redis.Get(ctx, catalogProductsKey)
	if IsNil(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap CatalogSnapshot
	if err := json.Unmarshal([]byte(jsonData), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}
	return &snap, nil
}

// Invalidate drops the snapshot after a product mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, catalogProductsKey, catalogCategoriesKey)
}
