package usecase

import (
	"context"

	"solarsavers/internal/domain/entity"
)

// CartUsecase is the persisted cart. Mutations never fail; storage problems are reported as notices.
type CartUsecase interface {
	Initialize(ctx context.Context)
	// Add merges quantity into an existing line or appends a new one. Quantities below 1 count as 1.
	Add(ctx context.Context, product entity.Product, quantity int)
	Remove(ctx context.Context, id string)
	// UpdateQuantity removes the line when quantity <= 0.
	UpdateQuantity(ctx context.Context, id string, quantity int)
	Clear(ctx context.Context)
	Contains(id string) bool
	Items() []entity.CartItem
	Total() float64
	Count() int
}

// WishlistUsecase is the persisted wishlist with set semantics on product id.
type WishlistUsecase interface {
	Initialize(ctx context.Context)
	// Add reports false when the product is already present.
	Add(ctx context.Context, product entity.Product) bool
	Remove(ctx context.Context, id string)
	Clear(ctx context.Context)
	Contains(id string) bool
	Items() []entity.WishlistItem
	Count() int
}

// CompareUsecase is the persisted compare list, bounded by Limit.
type CompareUsecase interface {
	Initialize(ctx context.Context)
	// Add reports false when the product is present or the list is full.
	Add(ctx context.Context, product entity.Product) bool
	Remove(ctx context.Context, id string)
	Clear(ctx context.Context)
	Contains(id string) bool
	Items() []entity.CompareItem
	Count() int
	Limit() int
}
