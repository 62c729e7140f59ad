package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mwaters/ec-api/internal/models"
)

const (
	productKeyFormat = "product:%d"
	productListKey   = "products:all"

	defaultProductTTL = 5 * time.Minute
)

// ProductCache caches individual products and the full product listing
// in Redis as JSON.
type ProductCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

// NewProductCache creates a ProductCache. Returns nil when rdb is nil so
// callers can hold a single handle regardless of whether Redis is
// configured.
func NewProductCache(rdb *redis.Client, logger *zerolog.Logger) *ProductCache {
	if rdb == nil {
		return nil
	}

	return &ProductCache{
		rdb:    rdb,
		ttl:    defaultProductTTL,
		logger: logger,
	}
}

// GetProduct returns the cached product and true on a hit. A miss, a
// Redis error, or a nil cache all return false.
func (c *ProductCache) GetProduct(ctx context.Context, id int64) (*models.Product, bool) {
	if c == nil {
		return nil, false
	}

	key := fmt.Sprintf(productKeyFormat, id)

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("product cache read failed")
		}
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("product cache entry corrupted")
		return nil, false
	}

	return &product, true
}

// SetProduct stores a product under its id key.
func (c *ProductCache) SetProduct(ctx context.Context, product *models.Product) {
	if c == nil {
		return
	}

	key := fmt.Sprintf(productKeyFormat, product.ID)

	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to marshal product for cache")
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("product cache write failed")
	}
}

// GetProducts returns the cached full listing and true on a hit.
func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("key", productListKey).Msg("product list cache read failed")
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn().Err(err).Str("key", productListKey).Msg("product list cache entry corrupted")
		return nil, false
	}

	return products, true
}

// SetProducts stores the full product listing.
func (c *ProductCache) SetProducts(ctx context.Context, products []models.Product) {
	if c == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", productListKey).Msg("failed to marshal product list for cache")
		return
	}

	if err := c.rdb.Set(ctx, productListKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", productListKey).Msg("product list cache write failed")
	}
}

// Invalidate drops the cached entry for one product and the full
// listing. Called after any write to the products table.
func (c *ProductCache) Invalidate(ctx context.Context, id int64) {
	if c == nil {
		return
	}

	key := fmt.Sprintf(productKeyFormat, id)

	if err := c.rdb.Del(ctx, key, productListKey).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("product cache invalidation failed")
	}
}
