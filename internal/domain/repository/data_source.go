package repository

import (
	"context"

	"solarsavers/internal/domain/entity"
)

// AuthSource is the identity part of the remote API.
type AuthSource interface {
	Login(ctx context.Context, creds entity.Credentials) (*entity.AuthResult, error)
	Register(ctx context.Context, reg entity.Registration) (*entity.AuthResult, error)
	RegisterVendor(ctx context.Context, reg entity.VendorRegistration) (*entity.AuthResult, error)
	Me(ctx context.Context, token string) (*entity.User, error)
}

// ProductSource reads and writes catalog products.
type ProductSource interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	FeaturedProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	VendorProducts(ctx context.Context, token string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, token string, in entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in entity.ProductUpdate) (*entity.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

// OrderSource places, lists and assigns orders.
type OrderSource interface {
	PlaceOrder(ctx context.Context, token string, req entity.OrderRequest) (*entity.Order, error)
	ListOrders(ctx context.Context, token string) ([]entity.Order, error)
	VendorOrders(ctx context.Context, token string) ([]entity.Order, error)
	AssignedOrders(ctx context.Context, token string) ([]entity.Order, error)
	PendingAssignment(ctx context.Context, token string) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id, status string) error
	AvailableVendors(ctx context.Context, token, orderID string) (*entity.AvailableVendors, error)
	AssignOrder(ctx context.Context, token, orderID string, assignment entity.OrderAssignment) error
}

// InventorySource manages a vendor's stock.
type InventorySource interface {
	ListInventory(ctx context.Context, token string) ([]entity.InventoryItem, error)
	AddInventory(ctx context.Context, token string, in entity.InventoryInput) (*entity.InventoryItem, error)
	UpdateInventory(ctx context.Context, token, id string, in entity.InventoryUpdate) error
	DeleteInventory(ctx context.Context, token, id string) error
	SuggestProduct(ctx context.Context, token string, s entity.ProductSuggestion) error
}

// SuggestionSource is the admin review queue of vendor product suggestions.
type SuggestionSource interface {
	ListSuggestions(ctx context.Context, token string) ([]entity.ProductSuggestion, error)
	ApproveSuggestion(ctx context.Context, token, id string, sellPrice float64) error
	RejectSuggestion(ctx context.Context, token, id string) error
}

// TicketSource is the support desk.
type TicketSource interface {
	CreateTicket(ctx context.Context, token string, in entity.TicketInput) (*entity.Ticket, error)
	ListTickets(ctx context.Context, token string) ([]entity.Ticket, error)
	GetTicket(ctx context.Context, token, id string) (*entity.Ticket, error)
	ReplyTicket(ctx context.Context, token, id, message string) error
	AdminTickets(ctx context.Context, token string, filter entity.TicketFilter) ([]entity.Ticket, error)
	UpdateTicketStatus(ctx context.Context, token, id, status string) error
	UpdateTicketPriority(ctx context.Context, token, id, priority string) error
}

// BlogSource manages blog posts.
type BlogSource interface {
	PublicBlogs(ctx context.Context) ([]entity.Blog, error)
	AdminBlogs(ctx context.Context, token string) ([]entity.Blog, error)
	CreateBlog(ctx context.Context, token string, in entity.BlogInput) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, token, id string, in entity.BlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, token, id string) error
}

// UtilitySource holds the endpoints that do not belong to an entity.
type UtilitySource interface {
	Calculate(ctx context.Context, in entity.CalculatorInput) (*entity.CalculatorResult, error)
	Chat(ctx context.Context, msg entity.ChatMessage) (*entity.ChatReply, error)
	Contact(ctx context.Context, form entity.ContactForm) error
	Seed(ctx context.Context) error
}

// DataSource is the full capability set. It is implemented by the remote API
// client and by the fixture source used for offline preview.
type DataSource interface {
	AuthSource
	ProductSource
	OrderSource
	InventorySource
	SuggestionSource
	TicketSource
	BlogSource
	UtilitySource
}

// FallbackSource is the offline dataset used when the API is unreachable in demo mode.
type FallbackSource interface {
	DataSource

	// TokenFor issues a token the fallback accepts for a user with the given role.
	TokenFor(role entity.Role) string
}
