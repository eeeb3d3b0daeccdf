package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gittree/internal/domain"
)

func newTestCache(t *testing.T, opts ...CacheOption) *SQLiteDetailsCache {
	t.Helper()
	cache, err := NewSQLiteDetailsCache(filepath.Join(t.TempDir(), "cache", "details.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func sampleDetails(hash string) *domain.CommitDetails {
	return &domain.CommitDetails{
		Author:  "Alice",
		Date:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Email:   "alice@example.com",
		Files:   []string{"a.txt", "b.txt"},
		Hash:    hash,
		Message: "subject\n\nbody",
		Parents: []string{"p1", "p2"},
		Stats: map[string]domain.FileStat{
			"a.txt": {Additions: 3, Deletions: 1},
			"b.txt": {Additions: 0, Deletions: 4},
		},
	}
}

func TestSQLiteDetailsCache_PutGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	want := sampleDetails("abc")
	require.NoError(t, cache.Put(ctx, want))

	got, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, want.Author, got.Author)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.Files, got.Files)
	assert.Equal(t, want.Message, got.Message)
	assert.Equal(t, want.Parents, got.Parents)
	assert.Equal(t, want.Stats, got.Stats)
	assert.True(t, want.Date.Equal(got.Date))
}

func TestSQLiteDetailsCache_Miss(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCommitNotFound)
}

func TestSQLiteDetailsCache_PutOverwrites(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, sampleDetails("abc")))
	updated := sampleDetails("abc")
	updated.Message = "amended"
	require.NoError(t, cache.Put(ctx, updated))

	got, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "amended", got.Message)
}

func TestSQLiteDetailsCache_EvictsLeastRecentlyAccessed(t *testing.T) {
	cache := newTestCache(t, WithMaxEntries(2))
	ctx := context.Background()

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	require.NoError(t, cache.Put(ctx, sampleDetails("one")))
	require.NoError(t, cache.Put(ctx, sampleDetails("two")))

	// touching "one" makes "two" the eviction candidate
	_, err := cache.Get(ctx, "one")
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, sampleDetails("three")))

	_, err = cache.Get(ctx, "two")
	assert.ErrorIs(t, err, domain.ErrCommitNotFound)
	_, err = cache.Get(ctx, "one")
	assert.NoError(t, err)
	_, err = cache.Get(ctx, "three")
	assert.NoError(t, err)
}
