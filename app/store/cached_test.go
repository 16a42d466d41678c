package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCached_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("caches on first read, returns cached on second", func(t *testing.T) {
		underlying, err := New(t.TempDir() + "/test.db")
		require.NoError(t, err)
		defer underlying.Close()

		cached, err := NewCached(underlying, 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "visitor1", "dark"))

		// first read - loads from DB
		theme, err := cached.Get(ctx, "visitor1")
		require.NoError(t, err)
		assert.Equal(t, "dark", theme)

		stats := cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(0), stats.Hits)

		// second read - should hit cache
		theme, err = cached.Get(ctx, "VISITOR1")
		require.NoError(t, err)
		assert.Equal(t, "dark", theme)

		stats = cached.Stats()
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(1), stats.Hits)
	})

	t.Run("invalidates cache on Set", func(t *testing.T) {
		underlying, err := New(t.TempDir() + "/test.db")
		require.NoError(t, err)
		defer underlying.Close()

		cached, err := NewCached(underlying, 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "visitor1", "dark"))
		_, err = cached.Get(ctx, "visitor1")
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "visitor1", "light"))

		theme, err := cached.Get(ctx, "visitor1")
		require.NoError(t, err)
		assert.Equal(t, "light", theme)

		// initial load + reload after invalidation
		assert.Equal(t, int64(2), cached.Stats().Misses)
	})

	t.Run("invalidates cache on Delete", func(t *testing.T) {
		underlying, err := New(t.TempDir() + "/test.db")
		require.NoError(t, err)
		defer underlying.Close()

		cached, err := NewCached(underlying, 100)
		require.NoError(t, err)

		require.NoError(t, cached.Set(ctx, "visitor1", "dark"))
		_, err = cached.Get(ctx, "visitor1")
		require.NoError(t, err)

		require.NoError(t, cached.Delete(ctx, "visitor1"))

		_, err = cached.Get(ctx, "visitor1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrNotFound for missing visitor", func(t *testing.T) {
		underlying, err := New(t.TempDir() + "/test.db")
		require.NoError(t, err)
		defer underlying.Close()

		cached, err := NewCached(underlying, 100)
		require.NoError(t, err)

		_, err = cached.Get(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)

		// a later write is visible, misses are not cached
		require.NoError(t, underlying.Set(ctx, "nobody", "dark"))
		theme, err := cached.Get(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, "dark", theme)
	})
}

func TestCached_Delegates(t *testing.T) {
	ctx := context.Background()
	underlying, err := New(t.TempDir() + "/test.db")
	require.NoError(t, err)
	defer underlying.Close()

	cached, err := NewCached(underlying, 100)
	require.NoError(t, err)

	require.NoError(t, cached.Set(ctx, "a", "dark"))
	require.NoError(t, cached.Set(ctx, "b", "light"))

	counts, err := cached.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"dark": 1, "light": 1}, counts)

	theme, err := cached.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestCached_Close(t *testing.T) {
	underlying, err := New(t.TempDir() + "/test.db")
	require.NoError(t, err)

	cached, err := NewCached(underlying, 100)
	require.NoError(t, err)

	require.NoError(t, cached.Close())

	// underlying store is closed
	_, err = underlying.Get(context.Background(), "visitor1")
	assert.Error(t, err)
}
