package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb), mr
}

func TestRecordEvent(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordEvent(ctx, "cafe_added"))
	require.NoError(t, store.RecordEvent(ctx, "cafe_added"))
	require.NoError(t, store.RecordEvent(ctx, "cafe_closed"))

	assert.Equal(t, "2", mr.HGet(eventCountsKey, "cafe_added"))
	assert.Equal(t, "1", mr.HGet(eventCountsKey, "cafe_closed"))
}

func TestAdjustLocation(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.AdjustLocation(ctx, "peckham", 1))
	require.NoError(t, store.AdjustLocation(ctx, "peckham", 1))
	require.NoError(t, store.AdjustLocation(ctx, "hackney", 1))

	score, err := mr.ZScore(locationsKey, "peckham")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)

	require.NoError(t, store.AdjustLocation(ctx, "hackney", -1))
	members, err := mr.ZMembers(locationsKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"peckham"}, members)
}

func TestAdjustLocation_NeverGoesNegative(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, store.AdjustLocation(context.Background(), "soho", -1))
	assert.False(t, mr.Exists(locationsKey))
}

func TestReplaceLocations(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.AdjustLocation(ctx, "peckham", 1))
	require.NoError(t, store.AdjustLocation(ctx, "peckham", 1))
	require.NoError(t, store.AdjustLocation(ctx, "soho", 1))

	require.NoError(t, store.ReplaceLocations(ctx, map[string]int{"peckham": 1, "hackney": 3, "mars": 0}))

	members, err := mr.ZMembers(locationsKey)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"peckham", "hackney"}, members)

	score, err := mr.ZScore(locationsKey, "hackney")
	require.NoError(t, err)
	assert.Equal(t, float64(3), score)

	require.NoError(t, store.ReplaceLocations(ctx, map[string]int{}))
	assert.False(t, mr.Exists(locationsKey))
}
