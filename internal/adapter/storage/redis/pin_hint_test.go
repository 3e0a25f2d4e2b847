package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinHintStore_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewPinHintStore(client)
	ctx := context.Background()

	// Nothing stored yet.
	hasPin, known, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, known)
	assert.False(t, hasPin)

	require.NoError(t, store.Set(ctx, "user-1", true, 24*time.Hour))
	hasPin, known, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, known)
	assert.True(t, hasPin)

	// A negative hint is also a known answer.
	require.NoError(t, store.Set(ctx, "user-2", false, 24*time.Hour))
	hasPin, known, err = store.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, known)
	assert.False(t, hasPin)
}

func TestPinHintStore_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewPinHintStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user-1", true, time.Second))

	s.FastForward(2 * time.Second)

	_, known, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, known, "hint should expire with its TTL")
}

func TestPinHintStore_Clear(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewPinHintStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user-1", true, time.Hour))
	require.NoError(t, store.Clear(ctx, "user-1"))

	_, known, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, known)
}

func TestPinHintStore_KeysAreScopedPerUser(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewPinHintStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user-1", true, time.Hour))
	_, known, err := store.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.False(t, known)
}
