package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	_, err := c.Get(ctx, "short")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, "forever")
	assert.NoError(t, err, "zero ttl means no expiry")
}

func TestMemoryCache_InvalidatePrefix(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "bulk:alice:options", []byte("a"), 0))
	require.NoError(t, c.Set(ctx, "bulk:alice:stats:1", []byte("b"), 0))
	require.NoError(t, c.Set(ctx, "bulk:bob:options", []byte("c"), 0))

	require.NoError(t, c.InvalidatePrefix(ctx, "bulk:alice:"))

	_, err := c.Get(ctx, "bulk:alice:options")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, "bulk:alice:stats:1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Get(ctx, "bulk:bob:options")
	assert.NoError(t, err, "other owners' entries survive")
}

func TestMemoryCache_CleanExpired(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Nanosecond))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Hour))
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 1, c.CleanExpired())
	assert.Equal(t, 1, c.Size())
}
