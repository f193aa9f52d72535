package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"autologic-fitment-api/internal/model"
)

// ResultCache stores ranked search responses keyed by the request. A cache is
// best-effort: failures behave like misses and never fail a search.
type ResultCache interface {
	Get(ctx context.Context, req model.PartSearchRequest) ([]model.SearchResult, bool)
	Set(ctx context.Context, req model.PartSearchRequest, results []model.SearchResult)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache wraps a Redis client as a ResultCache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) ResultCache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, req model.PartSearchRequest) ([]model.SearchResult, bool) {
	payload, err := c.client.Get(ctx, cacheKey(req)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("search cache read failed", "error", err)
		}
		return nil, false
	}

	var results []model.SearchResult
	if err := json.Unmarshal(payload, &results); err != nil {
		c.logger.Warn("search cache entry corrupt", "error", err)
		return nil, false
	}
	return results, true
}

func (c *redisCache) Set(ctx context.Context, req model.PartSearchRequest, results []model.SearchResult) {
	payload, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(req), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("search cache write failed", "error", err)
	}
}

func cacheKey(req model.PartSearchRequest) string {
	return fmt.Sprintf("search:refaccion:%s|%s|%s|%d",
		Normalize(req.Refaccion), Normalize(req.Marca), Normalize(req.Modelo), req.Anio)
}
