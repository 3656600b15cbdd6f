package impl

import (
	"context"
	"log/slog"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
)

type wishlistService struct {
	items *persistedCollection[entity.WishlistItem]
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(store repository.KeyValueStore, notifier service.Notifier, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		items: newPersistedCollection[entity.WishlistItem](repository.KeyWishlist, "wishlist", store, notifier, logger),
	}
}

func (srv *wishlistService) Initialize(ctx context.Context) {
	srv.items.initialize(ctx)
}

func (srv *wishlistService) Add(ctx context.Context, product entity.Product) bool {
	return srv.items.mutate(ctx, func(items []entity.WishlistItem) ([]entity.WishlistItem, bool) {
		if indexOf(items, product.ID) >= 0 {
			return items, false
		}

		return append(items, entity.WishlistItem{Product: product}), true
	})
}

func (srv *wishlistService) Remove(ctx context.Context, id string) {
	srv.items.remove(ctx, id)
}

func (srv *wishlistService) Clear(ctx context.Context) {
	srv.items.clear(ctx)
}

func (srv *wishlistService) Contains(id string) bool {
	return srv.items.contains(id)
}

func (srv *wishlistService) Items() []entity.WishlistItem {
	return srv.items.snapshot()
}

func (srv *wishlistService) Count() int {
	return srv.items.size()
}
