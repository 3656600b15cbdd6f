package impl

import (
	"context"
	"log/slog"

	"solarsavers/config"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
)

// DefaultCompareLimit is the compare list capacity when none is configured.
const DefaultCompareLimit = 4

type compareService struct {
	items *persistedCollection[entity.CompareItem]
	limit int
}

// NewCompareService is the constructor for compareService.
func NewCompareService(
	cfg *config.Config,
	store repository.KeyValueStore,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CompareUsecase {
	limit := cfg.Cart.CompareLimit
	if limit <= 0 {
		limit = DefaultCompareLimit
	}

	return &compareService{
		items: newPersistedCollection[entity.CompareItem](repository.KeyCompare, "compare list", store, notifier, logger),
		limit: limit,
	}
}

func (srv *compareService) Initialize(ctx context.Context) {
	srv.items.initialize(ctx)
}

// Add is a no-op once the list is full, whatever the id.
func (srv *compareService) Add(ctx context.Context, product entity.Product) bool {
	return srv.items.mutate(ctx, func(items []entity.CompareItem) ([]entity.CompareItem, bool) {
		if len(items) >= srv.limit || indexOf(items, product.ID) >= 0 {
			return items, false
		}

		return append(items, entity.CompareItem{Product: product}), true
	})
}

func (srv *compareService) Remove(ctx context.Context, id string) {
	srv.items.remove(ctx, id)
}

func (srv *compareService) Clear(ctx context.Context) {
	srv.items.clear(ctx)
}

func (srv *compareService) Contains(id string) bool {
	return srv.items.contains(id)
}

func (srv *compareService) Items() []entity.CompareItem {
	return srv.items.snapshot()
}

func (srv *compareService) Count() int {
	return srv.items.size()
}

func (srv *compareService) Limit() int {
	return srv.limit
}
