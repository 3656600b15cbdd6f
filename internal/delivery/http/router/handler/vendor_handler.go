package handler

import (
	"net/http"

	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/view/table"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	Inventory usecase.InventoryUsecase
	Orders    usecase.OrderUsecase
	Catalog   usecase.CatalogUsecase
}

// VendorHandler serves the vendor dashboard.
type VendorHandler struct {
	inventory usecase.InventoryUsecase
	orders    usecase.OrderUsecase
	catalog   usecase.CatalogUsecase
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		inventory: params.Inventory,
		orders:    params.Orders,
		catalog:   params.Catalog,
	}
}

// StatusRequest carries a new order status.
type StatusRequest struct {
	Status string `json:"status"`
}

var inventoryColumns = []table.Column{
	{Key: "product_name", Label: "Product"},
	{Key: "quantity", Label: "Stock"},
	{Key: "vendor_price", Label: "Your price"},
	{Key: "sell_price", Label: "Sell price"},
	{Key: "location", Label: "Location"},
	{Key: "is_available", Label: "Status", Render: func(value any, _ table.Record) any {
		if ok, _ := value.(bool); ok {
			return "Available"
		}
		return "Unavailable"
	}},
}

var inventoryActions = []table.Action{
	{Label: table.Static("Edit"), Icon: "edit"},
	{
		Label: table.Computed(func(row table.Record) string {
			if ok, _ := row["is_available"].(bool); ok {
				return "Mark unavailable"
			}
			return "Mark available"
		}),
		Icon: "toggle",
	},
	{Label: table.Static("Delete"), Icon: "trash", Variant: "danger"},
}

// Inventory handles GET /vendor/inventory.
func (h *VendorHandler) Inventory(c echo.Context) error {
	items, err := h.inventory.Inventory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, items, inventoryColumns, table.WithActions(inventoryActions...))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddInventory handles POST /vendor/inventory.
func (h *VendorHandler) AddInventory(c echo.Context) error {
	var in entity.InventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.inventory.Add(c.Request().Context(), in)

	return mutation(c, http.StatusCreated, outcome, err, "Product added to inventory")
}

// UpdateInventory handles PATCH /vendor/inventory/:id.
func (h *VendorHandler) UpdateInventory(c echo.Context) error {
	var in entity.InventoryUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.inventory.Update(c.Request().Context(), c.Param("id"), in)

	return mutation(c, http.StatusOK, outcome, err, "Inventory updated")
}

// DeleteInventory handles DELETE /vendor/inventory/:id.
func (h *VendorHandler) DeleteInventory(c echo.Context) error {
	outcome, err := h.inventory.Delete(c.Request().Context(), c.Param("id"))

	return mutation(c, http.StatusOK, outcome, err, "Product removed from inventory")
}

// Suggest handles POST /vendor/suggestions.
func (h *VendorHandler) Suggest(c echo.Context) error {
	var s entity.ProductSuggestion
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.inventory.Suggest(c.Request().Context(), s)

	return mutation(c, http.StatusCreated, outcome, err, "Product suggestion submitted for review")
}

// Products handles GET /vendor/products.
func (h *VendorHandler) Products(c echo.Context) error {
	products, err := h.catalog.VendorProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, products, productColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Orders handles GET /vendor/orders: the orders assigned to the vendor.
func (h *VendorHandler) Orders(c echo.Context) error {
	orders, err := h.orders.AssignedOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, orders, orderColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateOrderStatus handles PUT /vendor/orders/:id/status.
func (h *VendorHandler) UpdateOrderStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)

	return mutation(c, http.StatusOK, outcome, err, "Order status updated")
}
