package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aadithya-J/time_management/internal/models"
)

// ListCache holds the serialized result of a full entry scan, tagged with the
// generation it was read under. Invalidate starts a new generation, so a scan
// that raced a write is stored under a generation nobody reads anymore.
type ListCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64) ([]models.TimeEntry, bool, error)
	Set(ctx context.Context, gen int64, entries []models.TimeEntry) error
	Invalidate(ctx context.Context) error
}

type RedisListCache struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisListCache(rdb redis.Cmdable, table string, ttl time.Duration) *RedisListCache {
	return &RedisListCache{
		rdb:    rdb,
		prefix: fmt.Sprintf("cache:%s", table),
		ttl:    ttl,
	}
}

func (c *RedisListCache) genKey() string {
	return c.prefix + ":gen"
}

func (c *RedisListCache) listKey(gen int64) string {
	return fmt.Sprintf("%s:list:%d", c.prefix, gen)
}

func (c *RedisListCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisListCache) Get(ctx context.Context, gen int64) ([]models.TimeEntry, bool, error) {
	raw, err := c.rdb.Get(ctx, c.listKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entries []models.TimeEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("decode cached list: %w", err)
	}
	return entries, true, nil
}

func (c *RedisListCache) Set(ctx context.Context, gen int64, entries []models.TimeEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.listKey(gen), raw, c.ttl).Err()
}

// Invalidate bumps the generation. Lists cached under older generations
// are left to expire.
func (c *RedisListCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, c.genKey()).Err()
}

// Noop never hits.
type Noop struct{}

func (Noop) Generation(context.Context) (int64, error)                    { return 0, nil }
func (Noop) Get(context.Context, int64) ([]models.TimeEntry, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, int64, []models.TimeEntry) error         { return nil }
func (Noop) Invalidate(context.Context) error                             { return nil }
