package storage

import (
	"context"
	"log/slog"
	"testing"

	"solarsavers/config"
	"solarsavers/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRedisStore(t *testing.T, mr *miniredis.Miniredis, prefix string) repository.KeyValueStore {
	t.Helper()

	store, err := NewRedisStore(context.Background(), config.RedisConfig{Addr: mr.Addr(), Prefix: prefix}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store := createTestRedisStore(t, mr, "solarsavers:")

	_, err := store.Get(ctx, repository.KeyCart)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))

	require.NoError(t, store.Set(ctx, repository.KeyCart, []byte(`[{"id":"1","quantity":2}]`)))

	got, err := store.Get(ctx, repository.KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","quantity":2}]`, string(got))

	raw, err := mr.Get("solarsavers:cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","quantity":2}]`, raw)
	assert.Zero(t, mr.TTL("solarsavers:cart"))

	require.NoError(t, store.Delete(ctx, repository.KeyCart))
	_, err = store.Get(ctx, repository.KeyCart)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
	assert.False(t, mr.Exists("solarsavers:cart"))
}

func TestRedisStore_DeleteMissingKey(t *testing.T) {
	store := createTestRedisStore(t, miniredis.RunT(t), "")

	assert.NoError(t, store.Delete(context.Background(), repository.KeyToken))
}

func TestRedisStore_SharedBetweenKiosks(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	first := createTestRedisStore(t, mr, "shop-a:")
	second := createTestRedisStore(t, mr, "shop-a:")
	other := createTestRedisStore(t, mr, "shop-b:")

	require.NoError(t, first.Set(ctx, repository.KeyToken, []byte(`"abc"`)))

	got, err := second.Get(ctx, repository.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(got))

	_, err = other.Get(ctx, repository.KeyToken)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(context.Background(), config.RedisConfig{Addr: addr}, slog.Default())
	assert.Error(t, err)
}

func TestRedisStore_ServerErrorIsNotMissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	store := createTestRedisStore(t, mr, "")
	mr.SetError("ERR simulated failure")

	_, err := store.Get(context.Background(), repository.KeyCart)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrKeyNotFound))
}
