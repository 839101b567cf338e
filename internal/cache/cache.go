// FilePath: server/readings/internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/itsatony/w4b_v3/server/readings/internal/models"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

const keyPrefix = "readings"

// StatisticCache stores computed aggregates per device. Keys embed a
// per-device generation that Invalidate bumps, so a new reading makes every
// earlier aggregate for that device unreachable. Callers resolve the key
// once, before reading storage, and store under that same key.
type StatisticCache interface {
	Key(ctx context.Context, filter models.ReadingFilter, stat string) (string, error)
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, deviceUUID string) error
	Close() error
}

// Noop is used when no cache is configured
type Noop struct{}

// Key is empty, which callers treat as "do not cache"
func (Noop) Key(context.Context, models.ReadingFilter, string) (string, error) { return "", nil }
func (Noop) Load(context.Context, string, any) (bool, error)                   { return false, nil }
func (Noop) Store(context.Context, string, any) error                          { return nil }
func (Noop) Invalidate(context.Context, string) error                          { return nil }
func (Noop) Close() error                                                      { return nil }

// RedisCache keeps aggregates in redis with a fixed TTL
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a redis backed cache when enabled, Noop otherwise
func New(ctx context.Context, cfg config.RedisConfig) (StatisticCache, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	nuts.L.Infof("[Cache] Connected to redis at %s", client.Options().Addr)
	return NewRedisCache(client, cfg.TTL), nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Key resolves the device's current generation into a statistic key
func (c *RedisCache) Key(ctx context.Context, filter models.ReadingFilter, stat string) (string, error) {
	gen, err := c.client.Get(ctx, GenerationKey(filter.DeviceUUID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("cache generation %s: %w", filter.DeviceUUID, err)
	}
	return StatisticKey(filter, stat, gen), nil
}

func (c *RedisCache) Load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, deviceUUID string) error {
	if err := c.client.Incr(ctx, GenerationKey(deviceUUID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", deviceUUID, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GenerationKey is the counter bumped whenever a device gets a new reading
func GenerationKey(deviceUUID string) string {
	return fmt.Sprintf("%s:device:%s:generation", keyPrefix, segment(deviceUUID))
}

// StatisticKey identifies one aggregate over one filter at one generation
func StatisticKey(filter models.ReadingFilter, stat string, generation int64) string {
	parts := []string{
		keyPrefix,
		"device", segment(filter.DeviceUUID),
		"gen", fmt.Sprint(generation),
		"stat", stat,
		"type", segment(string(filter.Type)),
		"start", bound(filter.Start),
		"end", bound(filter.End),
	}
	return strings.Join(parts, ":")
}

func bound(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

// segment escapes the key separator out of caller supplied values
func segment(v string) string {
	return url.QueryEscape(v)
}
