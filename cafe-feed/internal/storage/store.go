package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	eventCountsKey = "cafes:events"
	locationsKey   = "cafes:locations"
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) RecordEvent(ctx context.Context, eventType string) error {
	return s.rdb.HIncrBy(ctx, eventCountsKey, eventType, 1).Err()
}

// AdjustLocation moves a location's cafe tally and drops it once it reaches zero.
func (s *Store) AdjustLocation(ctx context.Context, location string, delta int) error {
	score, err := s.rdb.ZIncrBy(ctx, locationsKey, float64(delta), location).Result()
	if err != nil {
		return err
	}
	if score <= 0 {
		return s.rdb.ZRem(ctx, locationsKey, location).Err()
	}
	return nil
}

// ReplaceLocations swaps the whole tally for counts in one transaction.
func (s *Store) ReplaceLocations(ctx context.Context, counts map[string]int) error {
	members := make([]redis.Z, 0, len(counts))
	for location, count := range counts {
		if count > 0 {
			members = append(members, redis.Z{Score: float64(count), Member: location})
		}
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, locationsKey)
		if len(members) > 0 {
			pipe.ZAdd(ctx, locationsKey, members...)
		}
		return nil
	})
	return err
}
