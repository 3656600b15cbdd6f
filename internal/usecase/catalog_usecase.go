package usecase

import (
	"context"

	"solarsavers/internal/domain/entity"
)

// CatalogUsecase serves the shop, product and vendor product pages.
type CatalogUsecase interface {
	// Products lists the catalog; filter.Search is matched locally.
	Products(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	Featured(ctx context.Context) ([]entity.Product, error)
	Product(ctx context.Context, id string) (*entity.Product, error)
	VendorProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, in entity.ProductInput) (Outcome, error)
	UpdateProduct(ctx context.Context, id string, in entity.ProductUpdate) (Outcome, error)
	DeleteProduct(ctx context.Context, id string) (Outcome, error)
	// Recommend picks up to four products sized near sizeKW.
	Recommend(ctx context.Context, sizeKW float64, propertyType string) []entity.Product
}

// OrderUsecase covers checkout and order fulfilment.
type OrderUsecase interface {
	// Checkout places an order for the cart contents and clears the cart on success.
	Checkout(ctx context.Context, form entity.ShippingForm) (*entity.Order, Outcome, error)
	Orders(ctx context.Context) ([]entity.Order, error)
	VendorOrders(ctx context.Context) ([]entity.Order, error)
	AssignedOrders(ctx context.Context) ([]entity.Order, error)
	PendingAssignment(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (Outcome, error)
	AvailableVendors(ctx context.Context, orderID string) (*entity.AvailableVendors, error)
	Assign(ctx context.Context, orderID string, assignment entity.OrderAssignment) (Outcome, error)
}

// InventoryUsecase is the vendor inventory page.
type InventoryUsecase interface {
	Inventory(ctx context.Context) ([]entity.InventoryItem, error)
	// Add rejects a vendor price above the selling price before any request is sent.
	Add(ctx context.Context, in entity.InventoryInput) (Outcome, error)
	Update(ctx context.Context, id string, in entity.InventoryUpdate) (Outcome, error)
	Delete(ctx context.Context, id string) (Outcome, error)
	Suggest(ctx context.Context, suggestion entity.ProductSuggestion) (Outcome, error)
}

// SuggestionUsecase is the admin review queue.
type SuggestionUsecase interface {
	Suggestions(ctx context.Context) ([]entity.ProductSuggestion, error)
	Approve(ctx context.Context, id string, sellPrice float64) (Outcome, error)
	Reject(ctx context.Context, id string) (Outcome, error)
}
