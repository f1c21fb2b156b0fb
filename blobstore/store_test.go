package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreConformance exercises the Store contract shared by all
// implementations.
func testStoreConformance(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "dict/a.fad", []byte("alpha")))
	require.NoError(t, store.Put(ctx, "dict/b.fad", []byte("beta")))
	require.NoError(t, store.Put(ctx, "other/c.fad", []byte("gamma")))

	data, err := store.Get(ctx, "dict/a.fad")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha"), data)

	// Overwrite replaces the blob.
	require.NoError(t, store.Put(ctx, "dict/a.fad", []byte("alpha2")))
	data, err = store.Get(ctx, "dict/a.fad")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha2"), data)

	names, err := store.List(ctx, "dict/")
	require.NoError(t, err)
	assert.Equal(t, []string{"dict/a.fad", "dict/b.fad"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dict/a.fad", "dict/b.fad", "other/c.fad"}, names)

	require.NoError(t, store.Delete(ctx, "dict/a.fad"))
	_, err = store.Get(ctx, "dict/a.fad")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing blob is not an error.
	assert.NoError(t, store.Delete(ctx, "dict/a.fad"))
}

func TestMemoryStore(t *testing.T) {
	testStoreConformance(t, NewMemoryStore())
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("original")
	require.NoError(t, store.Put(ctx, "blob", data))
	data[0] = 'X' // caller mutation must not leak into the store

	got, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
