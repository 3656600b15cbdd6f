package impl

import (
	"context"
	"testing"

	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/infra/notification"
	"solarsavers/internal/infra/storage"
	mockRepo "solarsavers/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T, store repository.KeyValueStore) (*cartService, *notification.Toaster) {
	t.Helper()

	toaster := notification.NewToaster(newDiscardLogger())
	cart := NewCartService(store, toaster, newDiscardLogger()).(*cartService)
	cart.Initialize(context.Background())

	return cart, toaster
}

func TestCartService_AddMergesQuantity(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t, storage.NewMemoryStore(newDiscardLogger()))

	cart.Add(ctx, product("p1", 100), 2)
	cart.Add(ctx, product("p1", 100), 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_AddClampsQuantity(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t, storage.NewMemoryStore(newDiscardLogger()))

	cart.Add(ctx, product("p1", 100), 0)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartService_UpdateQuantityFloor(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		ctx := context.Background()
		cart, _ := newTestCart(t, storage.NewMemoryStore(newDiscardLogger()))
		cart.Add(ctx, product("p1", 100), 2)

		cart.UpdateQuantity(ctx, "p1", quantity)

		assert.Empty(t, cart.Items(), "quantity %d", quantity)
		assert.False(t, cart.Contains("p1"))
	}
}

func TestCartService_DerivedTotals(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t, storage.NewMemoryStore(newDiscardLogger()))

	cart.Add(ctx, product("a", 100), 2)
	cart.Add(ctx, product("b", 50), 1)

	assert.InDelta(t, 250.0, cart.Total(), 0.0001)
	assert.Equal(t, 3, cart.Count())

	cart.Remove(ctx, "a")
	assert.InDelta(t, 50.0, cart.Total(), 0.0001)
	assert.Equal(t, 1, cart.Count())
}

func TestCartService_RemoveMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t, storage.NewMemoryStore(newDiscardLogger()))
	cart.Add(ctx, product("a", 100), 1)

	cart.Remove(ctx, "missing")

	assert.Len(t, cart.Items(), 1)
}

func TestCartService_ItemsIsACopy(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t, storage.NewMemoryStore(newDiscardLogger()))
	cart.Add(ctx, product("a", 100), 1)

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartService_WriteThroughVisibleToSecondInstance(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(newDiscardLogger())
	first, _ := newTestCart(t, store)

	first.Add(ctx, product("a", 100), 2)

	second, _ := newTestCart(t, store)
	require.Len(t, second.Items(), 1)
	assert.Equal(t, 2, second.Items()[0].Quantity)
}

func TestCartService_LastWriteWinsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(newDiscardLogger())
	first, _ := newTestCart(t, store)
	second, _ := newTestCart(t, store)

	first.Add(ctx, product("a", 100), 1)
	second.Add(ctx, product("b", 50), 1)

	third, _ := newTestCart(t, store)
	items := third.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestCartService_UnparsableStorageStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(newDiscardLogger())
	require.NoError(t, store.Set(ctx, repository.KeyCart, []byte("{not json")))

	cart, _ := newTestCart(t, store)

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
}

func TestCartService_StorageFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, repository.KeyCart).Return(nil, repository.ErrKeyNotFound)
	store.EXPECT().Set(mock.Anything, repository.KeyCart, mock.Anything).Return(errors.New("disk full"))

	cart, toaster := newTestCart(t, store)
	cart.Add(ctx, product("a", 100), 1)

	assert.True(t, cart.Contains("a"))
	notices := toaster.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, service.NoticeError, notices[0].Level)
	assert.Equal(t, "Could not save your cart", notices[0].Message)
}

func TestWishlistService_SetSemantics(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(newDiscardLogger())
	wishlist := NewWishlistService(store, notification.NewToaster(newDiscardLogger()), newDiscardLogger())
	wishlist.Initialize(ctx)

	assert.True(t, wishlist.Add(ctx, product("a", 100)))
	assert.False(t, wishlist.Add(ctx, product("a", 100)))
	assert.Equal(t, 1, wishlist.Count())

	wishlist.Remove(ctx, "a")
	assert.False(t, wishlist.Contains("a"))

	wishlist.Add(ctx, product("b", 1))
	wishlist.Clear(ctx)
	assert.Empty(t, wishlist.Items())
}

func TestCompareService_BoundedAtLimit(t *testing.T) {
	ctx := context.Background()
	compare := NewCompareService(newTestConfig("fixture"), storage.NewMemoryStore(newDiscardLogger()), notification.NewToaster(newDiscardLogger()), newDiscardLogger())
	compare.Initialize(ctx)

	for _, id := range []string{"a", "b", "c", "d"} {
		assert.True(t, compare.Add(ctx, product(id, 1)))
	}
	assert.False(t, compare.Add(ctx, product("a", 1)))
	assert.False(t, compare.Add(ctx, product("e", 1)))

	items := compare.Items()
	require.Len(t, items, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
	assert.Equal(t, 4, compare.Limit())
}

func TestCompareService_DefaultLimit(t *testing.T) {
	cfg := newTestConfig("fixture")
	cfg.Cart.CompareLimit = 0

	compare := NewCompareService(cfg, storage.NewMemoryStore(newDiscardLogger()), notification.NewToaster(newDiscardLogger()), newDiscardLogger())

	assert.Equal(t, DefaultCompareLimit, compare.Limit())
}

func TestCollections_WishlistItemEqualityIsByID(t *testing.T) {
	ctx := context.Background()
	wishlist := NewWishlistService(storage.NewMemoryStore(newDiscardLogger()), notification.NewToaster(newDiscardLogger()), newDiscardLogger())
	wishlist.Initialize(ctx)

	first := product("a", 100)
	changed := first
	changed.Price = 1

	wishlist.Add(ctx, first)
	assert.False(t, wishlist.Add(ctx, changed))
	assert.Equal(t, 100.0, wishlist.Items()[0].Price)
}
