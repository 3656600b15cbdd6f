// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"solarsavers/internal/delivery/http/middleware"
	"solarsavers/internal/delivery/http/router/handler"
	"solarsavers/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CollectionHandler *handler.CollectionHandler
	ShopHandler       *handler.ShopHandler
	DashboardHandler  *handler.DashboardHandler
	VendorHandler     *handler.VendorHandler
	AdminHandler      *handler.AdminHandler
	GateMiddleware    *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session    *handler.SessionHandler
	collection *handler.CollectionHandler
	shop       *handler.ShopHandler
	dashboard  *handler.DashboardHandler
	vendor     *handler.VendorHandler
	admin      *handler.AdminHandler
	gate       *middleware.GateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:    params.SessionHandler,
		collection: params.CollectionHandler,
		shop:       params.ShopHandler,
		dashboard:  params.DashboardHandler,
		vendor:     params.VendorHandler,
		admin:      params.AdminHandler,
		gate:       params.GateMiddleware,
	}
}

// RegisterRoutes mirrors the navigation shell's route table.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.Use(r.gate.Attach)

	// Public pages
	e.GET("/", r.shop.Home)
	e.GET("/shop", r.shop.Shop)
	e.GET("/shop/:category", r.shop.Shop)
	e.GET("/product/:id", r.shop.Product)
	e.POST("/calculator", r.shop.Calculate)
	e.POST("/contact", r.shop.Contact)
	e.GET("/blog", r.shop.Blogs)
	e.POST("/chat", r.shop.Chat)
	e.DELETE("/chat", r.shop.ResetChat)

	// Session
	e.GET("/session", r.session.Current)
	e.POST("/login", r.session.Login)
	e.POST("/register", r.session.Register)
	e.POST("/vendor/register", r.session.RegisterVendor)
	e.POST("/logout", r.session.Logout)

	// Collections are stored on the device and need no sign-in
	e.GET("/cart", r.collection.Cart)
	e.DELETE("/cart", r.collection.ClearCart)
	e.POST("/cart/items", r.collection.AddToCart)
	e.PATCH("/cart/items/:id", r.collection.UpdateCartItem)
	e.DELETE("/cart/items/:id", r.collection.RemoveCartItem)
	e.GET("/wishlist", r.collection.Wishlist)
	e.POST("/wishlist/items", r.collection.AddToWishlist)
	e.DELETE("/wishlist/items/:id", r.collection.RemoveFromWishlist)
	e.GET("/compare", r.collection.Compare)
	e.POST("/compare/items", r.collection.AddToCompare)
	e.DELETE("/compare/items/:id", r.collection.RemoveFromCompare)

	// Any signed-in role
	signedIn := r.gate.RoleGate()
	e.POST("/checkout", r.dashboard.Checkout, signedIn)
	e.GET("/orders/:id/receipt", r.dashboard.Receipt, signedIn)

	customerGroup := e.Group("/dashboard", r.gate.RoleGate(entity.RoleCustomer, entity.RoleAdmin))
	{
		customerGroup.GET("", r.dashboard.Dashboard)
		customerGroup.POST("/tickets", r.dashboard.CreateTicket)
		customerGroup.GET("/tickets/:id", r.dashboard.Ticket)
		customerGroup.POST("/tickets/:id/reply", r.dashboard.ReplyTicket)
	}

	vendorGroup := e.Group("/vendor", r.gate.RoleGate(entity.RoleVendor, entity.RoleAdmin))
	{
		vendorGroup.GET("/inventory", r.vendor.Inventory)
		vendorGroup.POST("/inventory", r.vendor.AddInventory)
		vendorGroup.PATCH("/inventory/:id", r.vendor.UpdateInventory)
		vendorGroup.DELETE("/inventory/:id", r.vendor.DeleteInventory)
		vendorGroup.POST("/suggestions", r.vendor.Suggest)
		vendorGroup.GET("/products", r.vendor.Products)
		vendorGroup.GET("/orders", r.vendor.Orders)
		vendorGroup.PUT("/orders/:id/status", r.vendor.UpdateOrderStatus)
	}

	adminGroup := e.Group("/admin", r.gate.RoleGate(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", r.admin.Orders)
		adminGroup.GET("/orders/:id/vendors", r.admin.AvailableVendors)
		adminGroup.PUT("/orders/:id/assign", r.admin.AssignOrder)
		adminGroup.PUT("/orders/:id/status", r.admin.UpdateOrderStatus)
		adminGroup.GET("/tickets", r.admin.Tickets)
		adminGroup.PUT("/tickets/:id/status", r.admin.UpdateTicketStatus)
		adminGroup.PUT("/tickets/:id/priority", r.admin.UpdateTicketPriority)
		adminGroup.GET("/blogs", r.admin.Blogs)
		adminGroup.POST("/blogs", r.admin.CreateBlog)
		adminGroup.PUT("/blogs/:id", r.admin.UpdateBlog)
		adminGroup.DELETE("/blogs/:id", r.admin.DeleteBlog)
		adminGroup.GET("/suggestions", r.admin.Suggestions)
		adminGroup.PUT("/suggestions/:id/approve", r.admin.ApproveSuggestion)
		adminGroup.PUT("/suggestions/:id/reject", r.admin.RejectSuggestion)
		adminGroup.GET("/products", r.admin.Products)
		adminGroup.POST("/products", r.admin.CreateProduct)
		adminGroup.PATCH("/products/:id", r.admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.admin.DeleteProduct)
	}
}
