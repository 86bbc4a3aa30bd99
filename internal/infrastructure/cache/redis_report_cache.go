package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/erp/odoo-dashboard/internal/infrastructure/config"
)

const reportKeyPrefix = "report:"

// RedisReportCache implements ReportCache on Redis. Suitable for
// distributed deployments where several instances share cached reports.
type RedisReportCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisReportCache connects to Redis and verifies the connection.
func NewRedisReportCache(cfg config.RedisConfig) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{client: client, keyPrefix: reportKeyPrefix}, nil
}

// NewRedisReportCacheWithClient wraps an existing client. Useful for tests
// or when sharing a client across components.
func NewRedisReportCacheWithClient(client *redis.Client, keyPrefix string) *RedisReportCache {
	if keyPrefix == "" {
		keyPrefix = reportKeyPrefix
	}
	return &RedisReportCache{client: client, keyPrefix: keyPrefix}
}

// Get retrieves a cached payload. Redis expiry handles TTL.
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return payload, true, nil
}

// Set stores a payload with the given TTL.
func (c *RedisReportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate removes a single entry.
func (c *RedisReportCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
