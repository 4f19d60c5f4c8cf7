package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

const (
	cacheTTL           = 5 * time.Minute
	PortfolioBundleKey = "portfolio:bundle"
)

// PageKey is the cache key holding the rendered block list of one page.
func PageKey(parent string) string {
	return fmt.Sprintf("page:%s", parent)
}

// RedisPageCache keeps rendered public responses as JSON strings. A miss is
// reported as (nil, nil); redis being down degrades to a miss, never an error
// the read path has to care about.
type RedisPageCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisPageCache(rdb *redis.Client, log logger.Logger) *RedisPageCache {
	return &RedisPageCache{rdb: rdb, logger: log}
}

func (c *RedisPageCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("page cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, nil
	}
	return val, nil
}

func (c *RedisPageCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.rdb.Set(ctx, key, value, cacheTTL).Err(); err != nil {
		c.logger.Warn("page cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisPageCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("page cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// InvalidateAllPages drops every rendered page plus the portfolio bundle.
// Used by the worker when an event does not name a single parent.
func (c *RedisPageCache) InvalidateAllPages(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, "page:*", 0).Iterator()
	keys := []string{PortfolioBundleKey}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("page cache scan failed", zap.Error(err))
	}
	c.Invalidate(ctx, keys...)
}
