package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cafe-api/cafe-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	cafeListKey       = "cafes:all"
	cafeGenerationKey = "cafes:gen"
	locationsKey      = "cafes:locations"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// GetCafes reports ok=false on a cache miss.
func (c *RedisCache) GetCafes(ctx context.Context) ([]domain.Cafe, bool, error) {
	payload, err := c.Client.Get(ctx, cafeListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cafes []domain.Cafe
	if err := json.Unmarshal(payload, &cafes); err != nil {
		return nil, false, err
	}
	return cafes, true, nil
}

// Generation is bumped by every Invalidate. A missing counter reads as 0.
func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.Client.Get(ctx, cafeGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

// SetCafes stores the list only while the generation still equals the one
// read before the list was loaded. A snapshot older than a write is dropped.
func (c *RedisCache) SetCafes(ctx context.Context, generation int64, cafes []domain.Cafe) error {
	payload, err := json.Marshal(cafes)
	if err != nil {
		return err
	}

	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, cafeGenerationKey).Int64()
		if errors.Is(err, redis.Nil) {
			current, err = 0, nil
		}
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cafeListKey, payload, c.TTL)
			return nil
		})
		return err
	}, cafeGenerationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, cafeGenerationKey)
		pipe.Del(ctx, cafeListKey)
		return nil
	})
	return err
}

// LocationCounts reads the per-location tallies maintained by cafe-feed, largest first.
func (c *RedisCache) LocationCounts(ctx context.Context) ([]domain.LocationCount, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, locationsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]domain.LocationCount, 0, len(members))
	for _, member := range members {
		location, _ := member.Member.(string)
		counts = append(counts, domain.LocationCount{
			Location: location,
			Cafes:    int(member.Score),
		})
	}
	return counts, nil
}
