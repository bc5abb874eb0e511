package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/websnap/screenshots-ms-go/internal/logger"
	"github.com/websnap/screenshots-ms-go/internal/port"
)

// Cache is a Redis lookaside for the device list payload and per-artifact
// ETags. Entries have no TTL: the catalog is fixed for the process
// lifetime and artifacts are immutable once written.
type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetDeviceList(ctx context.Context) ([]byte, error) {
	val, err := c.client.Get(ctx, deviceListKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagDeviceList(ctx context.Context) (string, error) {
	val, err := c.client.Get(ctx, deviceListEtagKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetDeviceList(ctx context.Context, data []byte) {
	if err := c.client.Set(ctx, deviceListKey(), data, 0).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for device list: %v", err)
	}
}

func (c *Cache) SetEtagDeviceList(ctx context.Context, etag string) {
	if err := c.client.Set(ctx, deviceListEtagKey(), etag, 0).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for device list etag: %v", err)
	}
}

func (c *Cache) GetEtagScreenshot(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, screenshotEtagKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetEtagScreenshot(ctx context.Context, key, etag string) {
	if err := c.client.Set(ctx, screenshotEtagKey(key), etag, 0).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for screenshot etag %q: %v", key, err)
	}
}

func deviceListKey() string     { return "devices" }
func deviceListEtagKey() string { return "devices:etag" }

func screenshotEtagKey(key string) string { return "screenshot:" + key + ":etag" }
