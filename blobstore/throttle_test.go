package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottleDisabled(t *testing.T) {
	store := NewMemoryStore()
	assert.Same(t, Store(store), Throttle(store, 0))
	assert.Same(t, Store(store), Throttle(store, -1))
}

func TestThrottlePassThrough(t *testing.T) {
	// Generous limit, so the conformance suite runs without real waiting.
	testStoreConformance(t, Throttle(NewMemoryStore(), 1<<30))
}

func TestThrottleLargeBlob(t *testing.T) {
	ctx := context.Background()
	store := Throttle(NewMemoryStore(), 1<<20)

	// Larger than one burst; waitN must chunk instead of failing.
	data := make([]byte, 3<<20)
	require.NoError(t, store.Put(ctx, "big", data))

	got, err := store.Get(ctx, "big")
	require.NoError(t, err)
	assert.Len(t, got, len(data))
}

func TestThrottleFractionalRate(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	store := Throttle(mem, 0.5)

	// The limiter starts with one full burst token, so a single byte
	// passes immediately even below one byte per second.
	require.NoError(t, store.Put(ctx, "tiny", []byte{0x42}))

	got, err := mem.Get(ctx, "tiny")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, got)
}

func TestThrottleContextCanceled(t *testing.T) {
	store := Throttle(NewMemoryStore(), 1) // 1 byte/s

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := store.Put(ctx, "slow", make([]byte, 64))
	assert.Error(t, err)
}
