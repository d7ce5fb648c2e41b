package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySearchCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySearchCache(16, time.Hour, "bestiary")
	key := c.BuildListKey("dragon_by_likeness_0_0_1_0")

	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)

	records := sampleBestiaries()
	require.NoError(t, c.Set(ctx, key, NewListEntry(records), time.Minute))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, records, got.Records)

	// Mutating a returned entry must not leak into the stored one.
	got.Records[0].Name = "changed"
	again, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Ancient Dragon", again.Records[0].Name)
}

func TestMemorySearchCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySearchCache(16, time.Hour, "bestiary")

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	key := c.BuildRecordKey(1)
	require.NoError(t, c.Set(ctx, key, NewRecordEntry(sampleBestiaries()[0]), 900*time.Second))

	now = now.Add(899 * time.Second)
	_, err := c.Get(ctx, key)
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemorySearchCacheRejectsInvalidEntry(t *testing.T) {
	c := NewMemorySearchCache(16, time.Hour, "bestiary")
	assert.Error(t, c.Set(context.Background(), "k", &Entry{Kind: "x"}, time.Minute))
}

func TestMemorySearchCacheDeleteLists(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySearchCache(16, time.Hour, "bestiary")
	records := sampleBestiaries()

	require.NoError(t, c.Set(ctx, c.BuildListKey("a_by_name_0_0_1_0"), NewListEntry(records), time.Minute))
	require.NoError(t, c.Set(ctx, c.BuildListKey("b_by_name_0_0_1_0"), NewListEntry(records), time.Minute))
	recordKey := c.BuildRecordKey(1)
	require.NoError(t, c.Set(ctx, recordKey, NewRecordEntry(records[0]), time.Minute))

	n, err := c.DeleteLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = c.Get(ctx, recordKey)
	assert.NoError(t, err)

	require.NoError(t, c.Delete(ctx, recordKey))
	_, err = c.Get(ctx, recordKey)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemorySearchCacheEvictsLeastRecent(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySearchCache(2, time.Hour, "bestiary")
	records := sampleBestiaries()

	require.NoError(t, c.Set(ctx, "a", NewRecordEntry(records[0]), time.Minute))
	require.NoError(t, c.Set(ctx, "b", NewRecordEntry(records[0]), time.Minute))
	require.NoError(t, c.Set(ctx, "c", NewRecordEntry(records[0]), time.Minute))

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "c")
	assert.NoError(t, err)
}
