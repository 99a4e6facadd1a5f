package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	// DefaultCacheTTL bounds staleness for cached product listings.
	DefaultCacheTTL = 5 * time.Minute
)

// CacheManager caches product listings in Redis. Listing keys embed a version
// counter; bumping the counter on any product mutation orphans every cached
// listing at once. Any Redis error degrades to a cache miss.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{redis: redis, ttl: DefaultCacheTTL}
}

// GetProductList retrieves a cached product listing.
func (cm *CacheManager) GetProductList(ctx context.Context, category string, featured *bool) ([]models.Product, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.listCacheKey(version, category, featured)).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetProductListAsync caches a product listing off the request path.
func (cm *CacheManager) SetProductListAsync(category string, featured *bool, products []models.Product) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		data, err := json.Marshal(products)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.listCacheKey(version, category, featured), data, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the cache version so all cached listings are bypassed.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if err := cm.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump product cache version", zap.Error(err))
	}
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	version, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		// First use; seed the counter so list keys become stable.
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (cm *CacheManager) listCacheKey(version int64, category string, featured *bool) string {
	featuredKey := "any"
	if featured != nil {
		featuredKey = fmt.Sprintf("%t", *featured)
	}
	return fmt.Sprintf("%s%d:cat=%s:feat=%s", productListCachePrefix, version, category, featuredKey)
}
