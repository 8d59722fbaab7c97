package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/config"
	"github.com/redis/go-redis/v9"
)

const accessKeyPrefix = "gallery:access:"

// Connect opens a Redis client from a redis:// URL and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("connected to redis", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}

// AccessCodeCache keeps the access code to gallery id mapping. Gallery
// status is never cached.
type AccessCodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAccessCodeCache(client *redis.Client, ttl time.Duration) *AccessCodeCache {
	return &AccessCodeCache{
		client: client,
		ttl:    ttl,
	}
}

var _ application.AccessCodeCache = (*AccessCodeCache)(nil)

func (c *AccessCodeCache) key(code string) string {
	return accessKeyPrefix + code
}

func (c *AccessCodeCache) Get(ctx context.Context, code string) (string, bool, error) {
	galleryID, err := c.client.Get(ctx, c.key(code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return galleryID, true, nil
}

func (c *AccessCodeCache) Set(ctx context.Context, code, galleryID string) error {
	return c.client.Set(ctx, c.key(code), galleryID, c.ttl).Err()
}
