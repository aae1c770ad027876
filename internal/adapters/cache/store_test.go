package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", FileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store, now := openTestStore(t)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "novas", []byte(`[1]`), time.Minute))
	got, ok, err := store.Get(ctx, "novas")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[1]`), got)

	// Overwrite
	require.NoError(t, store.Set(ctx, "novas", []byte(`[2]`), time.Minute))
	got, _, err = store.Get(ctx, "novas")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), got)

	*now = now.Add(time.Minute)
	_, ok, err = store.Get(ctx, "novas")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire at its ttl")
}

func TestStore_ZeroTTLIsNotStored(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_InvalidateTag(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.Set(ctx, "phases:a", []byte("a"), time.Hour, "phases"))
	require.NoError(t, store.Set(ctx, "phases:b", []byte("b"), time.Hour, "phases", "other"))
	require.NoError(t, store.Set(ctx, "novas", []byte("n"), time.Hour, "novas"))

	require.NoError(t, store.InvalidateTag(ctx, "phases"))

	_, ok, _ := store.Get(ctx, "phases:a")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "phases:b")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "novas")
	assert.True(t, ok)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	require.NoError(t, store.Set(ctx, "a", []byte("a"), time.Hour, "t"))
	require.NoError(t, store.Set(ctx, "b", []byte("b"), time.Hour))

	n, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestProvide(t *testing.T) {
	cache, cleanup, err := Provide(&config.RuntimeConfig{CacheEnabled: false})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, Disabled{}, cache)

	cache, cleanup, err = Provide(&config.RuntimeConfig{CacheEnabled: true, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &Store{}, cache)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}
