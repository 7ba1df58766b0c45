package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sid-1", 7))

	userID, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)

	require.NoError(t, store.Delete(ctx, "sid-1"))

	_, ok, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionStoreUnknownID(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)

	_, ok, err := store.Get(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(-time.Second)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sid-1", 7))

	_, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	assert.NoError(t, store.Delete(ctx, "sid-1"))
	assert.NoError(t, store.Delete(ctx, "sid-1"))
}
