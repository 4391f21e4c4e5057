// Package cache keeps computed fund statistics in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
)

// Stats live in one hash per generation, with a field per recent-donations
// limit. Invalidate bumps the generation, so entries computed before it are
// never served again and expire on their own.
const (
	statsKey      = "donations:fund-stats"
	generationKey = "donations:fund-stats:gen"
)

func statsKeyFor(generation int64) string {
	return statsKey + ":" + strconv.FormatInt(generation, 10)
}

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=cache
type Client interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

type StatsCache struct {
	client Client
	ttl    time.Duration
}

func NewStatsCache(client Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// NewRedisClient connects to addr and pings it once.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Generation returns the current cache generation. A missing counter is
// generation zero.
func (c *StatsCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get looks limit up in the current generation and returns that generation,
// which a later Set must be given.
func (c *StatsCache) Get(ctx context.Context, limit int) (*domain.FundStats, int64, bool, error) {
	gen, err := c.Generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}
	raw, err := c.client.HGet(ctx, statsKeyFor(gen), strconv.Itoa(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, err
	}
	var stats domain.FundStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		zap.L().Warn("dropping unreadable fund stats cache entry", zap.Error(err))
		return nil, gen, false, nil
	}
	return &stats, gen, true, nil
}

// Set stores stats under generation. Stats computed before an Invalidate land
// in a retired generation.
func (c *StatsCache) Set(ctx context.Context, generation int64, limit int, stats *domain.FundStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	key := statsKeyFor(generation)
	if err := c.client.HSet(ctx, key, strconv.Itoa(limit), raw).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey).Err()
}

// Nop is used when no Redis address is configured.
type Nop struct{}

func (Nop) Get(context.Context, int) (*domain.FundStats, int64, bool, error) {
	return nil, 0, false, nil
}
func (Nop) Set(context.Context, int64, int, *domain.FundStats) error { return nil }
func (Nop) Invalidate(context.Context) error                         { return nil }
