package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	testStoreConformance(t, NewLocalStore(t.TempDir()))
}

func TestLocalStoreEmptyBlob(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "empty", nil))
	data, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLocalStoreListSkipsTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "dict/a.fad", []byte("alpha")))

	// A crashed Put leaves its temp file behind; List must not report it.
	leftover := filepath.Join(dir, "dict", ".blob-12345")
	require.NoError(t, os.WriteFile(leftover, []byte("partial"), 0o644))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dict/a.fad"}, names)
}

func TestLocalStoreListEmptyRoot(t *testing.T) {
	ctx := context.Background()

	// Nothing has been stored yet, so the root does not even exist.
	store := NewLocalStore(filepath.Join(t.TempDir(), "never-created"))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}
