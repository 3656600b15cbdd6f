package storage

import (
	"context"
	"log/slog"
	"testing"

	"solarsavers/config"
	"solarsavers/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(slog.Default())
	defer store.Close()

	_, err := store.Get(ctx, repository.KeyCart)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))

	require.NoError(t, store.Set(ctx, repository.KeyCart, []byte(`[{"id":"1","quantity":2}]`)))

	got, err := store.Get(ctx, repository.KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","quantity":2}]`, string(got))

	require.NoError(t, store.Delete(ctx, repository.KeyCart))
	_, err = store.Get(ctx, repository.KeyCart)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}

func TestMemoryStore_DeleteMissingKey(t *testing.T) {
	store := NewMemoryStore(slog.Default())
	defer store.Close()

	assert.NoError(t, store.Delete(context.Background(), repository.KeyToken))
}

func TestFileStore_VisibleToSecondOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir, slog.Default())
	require.NoError(t, err)
	defer first.Close()

	require.NoError(t, first.Set(ctx, repository.KeyToken, []byte(`"abc"`)))

	second, err := NewFileStore(dir, slog.Default())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, repository.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(got))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "etcd"}, slog.Default())
	assert.Error(t, err)
}
