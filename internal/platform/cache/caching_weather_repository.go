// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"task_backend/internal/feature/tasks/usecase"
)

// CachingWeatherRepository decorates a WeatherRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Repeated lookups for the same city
// within the TTL skip the external provider.
type CachingWeatherRepository struct {
	inner     usecase.WeatherRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingWeatherRepository decorates a WeatherRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "weather".
func NewCachingWeatherRepository(rdb *redis.Client, ttl time.Duration, inner usecase.WeatherRepository, namespace string) *CachingWeatherRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "weather"
	}
	return &CachingWeatherRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// CurrentDescription retrieves a weather description, checking the cache
// first and falling back to the external provider. Provider errors are
// never cached.
func (c *CachingWeatherRepository) CurrentDescription(ctx context.Context, city string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.CurrentDescription(ctx, city)
	}

	key := c.cacheKey(city)

	// 1) Check cache
	if v, err := c.rdb.Get(ctx, key).Result(); err == nil && v != "" {
		return v, nil
	}

	// 2) Fallback to the external provider
	desc, err := c.inner.CurrentDescription(ctx, city)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, desc, c.ttl).Err()

	return desc, nil
}

// cacheKey generates a cache key for a city lookup.
// City names are case-insensitive as far as the provider is concerned.
func (c *CachingWeatherRepository) cacheKey(city string) string {
	return c.namespace + ":" + safe(strings.ToLower(city))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
