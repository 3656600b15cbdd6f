package impl

import (
	"context"
	"log/slog"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	items *persistedCollection[entity.CartItem]
}

// NewCartService is the constructor for cartService.
func NewCartService(store repository.KeyValueStore, notifier service.Notifier, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		items: newPersistedCollection[entity.CartItem](repository.KeyCart, "cart", store, notifier, logger),
	}
}

func (srv *cartService) Initialize(ctx context.Context) {
	srv.items.initialize(ctx)
}

func (srv *cartService) Add(ctx context.Context, product entity.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	srv.items.mutate(ctx, func(items []entity.CartItem) ([]entity.CartItem, bool) {
		if idx := indexOf(items, product.ID); idx >= 0 {
			items[idx].Quantity += quantity

			return items, true
		}

		return append(items, entity.CartItem{Product: product, Quantity: quantity}), true
	})
}

func (srv *cartService) Remove(ctx context.Context, id string) {
	srv.items.remove(ctx, id)
}

func (srv *cartService) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		srv.items.remove(ctx, id)

		return
	}

	srv.items.mutate(ctx, func(items []entity.CartItem) ([]entity.CartItem, bool) {
		idx := indexOf(items, id)
		if idx < 0 || items[idx].Quantity == quantity {
			return items, false
		}
		items[idx].Quantity = quantity

		return items, true
	})
}

func (srv *cartService) Clear(ctx context.Context) {
	srv.items.clear(ctx)
}

func (srv *cartService) Contains(id string) bool {
	return srv.items.contains(id)
}

func (srv *cartService) Items() []entity.CartItem {
	return srv.items.snapshot()
}

// Total is Σ price × quantity, recomputed on every call.
func (srv *cartService) Total() float64 {
	var total float64
	for _, item := range srv.items.snapshot() {
		total += item.Subtotal()
	}

	return total
}

// Count is Σ quantity.
func (srv *cartService) Count() int {
	var count int
	for _, item := range srv.items.snapshot() {
		count += item.Quantity
	}

	return count
}
