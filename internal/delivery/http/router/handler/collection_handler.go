package handler

import (
	"fmt"
	"net/http"

	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	Cart     usecase.CartUsecase
	Wishlist usecase.WishlistUsecase
	Compare  usecase.CompareUsecase
	Catalog  usecase.CatalogUsecase
	Notifier service.Notifier
}

// CollectionHandler serves the cart, wishlist and compare pages.
type CollectionHandler struct {
	cart     usecase.CartUsecase
	wishlist usecase.WishlistUsecase
	compare  usecase.CompareUsecase
	catalog  usecase.CatalogUsecase
	notifier service.Notifier
}

// NewCollectionHandler is the constructor for CollectionHandler.
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		cart:     params.Cart,
		wishlist: params.Wishlist,
		compare:  params.Compare,
		catalog:  params.Catalog,
		notifier: params.Notifier,
	}
}

// AddItemRequest names a catalog product to put in a collection.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// QuantityRequest sets a cart line's quantity. Zero or less removes the line.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart page.
type CartView struct {
	Items []entity.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// ListView is the wishlist or compare page.
type ListView[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
	Limit int `json:"limit,omitempty"`
}

func (h *CollectionHandler) cartView() CartView {
	return CartView{Items: h.cart.Items(), Total: h.cart.Total(), Count: h.cart.Count()}
}

func (h *CollectionHandler) product(c echo.Context) (*entity.Product, error) {
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	p, err := h.catalog.Product(c.Request().Context(), req.ProductID)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Cart handles GET /cart.
func (h *CollectionHandler) Cart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartView(), "")
}

// AddToCart handles POST /cart/items. A missing quantity adds one unit.
func (h *CollectionHandler) AddToCart(c echo.Context) error {
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.catalog.Product(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	h.cart.Add(c.Request().Context(), *p, quantity)
	h.notifier.Success(fmt.Sprintf("%s added to cart!", p.Name))

	return response.Success(c, http.StatusOK, h.cartView(), "")
}

// UpdateCartItem handles PATCH /cart/items/:id.
func (h *CollectionHandler) UpdateCartItem(c echo.Context) error {
	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	h.cart.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Quantity)

	return response.Success(c, http.StatusOK, h.cartView(), "")
}

// RemoveCartItem handles DELETE /cart/items/:id.
func (h *CollectionHandler) RemoveCartItem(c echo.Context) error {
	h.cart.Remove(c.Request().Context(), c.Param("id"))

	return response.Success(c, http.StatusOK, h.cartView(), "")
}

// ClearCart handles DELETE /cart.
func (h *CollectionHandler) ClearCart(c echo.Context) error {
	h.cart.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, h.cartView(), "")
}

// Wishlist handles GET /wishlist.
func (h *CollectionHandler) Wishlist(c echo.Context) error {
	return response.Success(c, http.StatusOK, ListView[entity.WishlistItem]{
		Items: h.wishlist.Items(),
		Count: h.wishlist.Count(),
	}, "")
}

// AddToWishlist handles POST /wishlist/items.
func (h *CollectionHandler) AddToWishlist(c echo.Context) error {
	p, err := h.product(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if h.wishlist.Add(c.Request().Context(), *p) {
		h.notifier.Success("Added to wishlist!")
	} else {
		h.notifier.Info("Already in your wishlist")
	}

	return h.Wishlist(c)
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id.
func (h *CollectionHandler) RemoveFromWishlist(c echo.Context) error {
	if h.wishlist.Contains(c.Param("id")) {
		h.wishlist.Remove(c.Request().Context(), c.Param("id"))
		h.notifier.Success("Removed from wishlist")
	}

	return h.Wishlist(c)
}

// Compare handles GET /compare.
func (h *CollectionHandler) Compare(c echo.Context) error {
	return response.Success(c, http.StatusOK, ListView[entity.CompareItem]{
		Items: h.compare.Items(),
		Count: h.compare.Count(),
		Limit: h.compare.Limit(),
	}, "")
}

// AddToCompare handles POST /compare/items. A full list leaves the request a no-op.
func (h *CollectionHandler) AddToCompare(c echo.Context) error {
	p, err := h.product(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	switch {
	case h.compare.Add(c.Request().Context(), *p):
		h.notifier.Success("Added to compare!")
	case h.compare.Contains(p.ID):
		h.notifier.Info("Already in compare")
	default:
		h.notifier.Info(fmt.Sprintf("You can compare up to %d products", h.compare.Limit()))
	}

	return h.Compare(c)
}

// RemoveFromCompare handles DELETE /compare/items/:id.
func (h *CollectionHandler) RemoveFromCompare(c echo.Context) error {
	if h.compare.Contains(c.Param("id")) {
		h.compare.Remove(c.Request().Context(), c.Param("id"))
		h.notifier.Success("Removed from compare")
	}

	return h.Compare(c)
}
