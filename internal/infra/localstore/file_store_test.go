package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tilemart/config"
	"tilemart/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStoreForTest(t *testing.T) (repository.CartRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cart.json")
	cfg := &config.Config{}
	cfg.Cart.StorePath = path

	return NewFileStore(cfg), path
}

func TestFileStore_MissingFileIsEmptyCart(t *testing.T) {
	t.Parallel()

	store, _ := newFileStoreForTest(t)

	tileIDs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tileIDs)
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store, path := newFileStoreForTest(t)

	require.NoError(t, store.Save(context.Background(), []int64{4, 8, 15}))

	tileIDs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 8, 15}, tileIDs)

	// The on-disk form is a plain JSON array, same shape the storefront keeps.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[4,8,15]", string(data))
}

func TestFileStore_SaveNilWritesEmptyArray(t *testing.T) {
	t.Parallel()

	store, path := newFileStoreForTest(t)

	require.NoError(t, store.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	store, _ := newFileStoreForTest(t)

	require.NoError(t, store.Save(context.Background(), []int64{1, 2, 3}))
	require.NoError(t, store.Save(context.Background(), []int64{2}))

	tileIDs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, tileIDs)
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	store, path := newFileStoreForTest(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := store.Load(context.Background())
	require.Error(t, err)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	tileIDs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tileIDs)

	require.NoError(t, store.Save(context.Background(), []int64{7, 9}))

	tileIDs, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, tileIDs)

	// The store keeps its own copy, detached from the caller's slice.
	tileIDs[0] = 99
	reloaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, reloaded)
}
