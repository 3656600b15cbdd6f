package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/view/table"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	Catalog    usecase.CatalogUsecase
	Calculator usecase.CalculatorUsecase
	Blog       usecase.BlogUsecase
	Contact    usecase.ContactUsecase
	Chat       usecase.ChatUsecase
	Logger     *slog.Logger
}

// ShopHandler serves the public storefront pages.
type ShopHandler struct {
	catalog    usecase.CatalogUsecase
	calculator usecase.CalculatorUsecase
	blog       usecase.BlogUsecase
	contact    usecase.ContactUsecase
	chat       usecase.ChatUsecase
	logger     *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		catalog:    params.Catalog,
		calculator: params.Calculator,
		blog:       params.Blog,
		contact:    params.Contact,
		chat:       params.Chat,
		logger:     params.Logger,
	}
}

var productColumns = []table.Column{
	{Key: "name", Label: "Product"},
	{Key: "brand", Label: "Brand"},
	{Key: "category", Label: "Category"},
	{Key: "system_size_kw", Label: "Size (kW)"},
	{Key: "price", Label: "Price", Render: price},
	{Key: "rating", Label: "Rating"},
	{Key: "in_stock", Label: "Stock", Render: func(value any, _ table.Record) any {
		if in, _ := value.(bool); in {
			return "In stock"
		}
		return "Out of stock"
	}},
}

// Home handles GET /.
func (h *ShopHandler) Home(c echo.Context) error {
	products, err := h.catalog.Featured(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"featured": products}, "")
}

// Shop handles GET /shop and GET /shop/:category. The category, brand, min and
// max parameters filter the catalog; q, sort and page drive the table.
func (h *ShopHandler) Shop(c echo.Context) error {
	filter := entity.ProductFilter{
		Category: c.Param("category"),
		Brand:    c.QueryParam("brand"),
	}
	if filter.Category == "" {
		filter.Category = c.QueryParam("category")
	}
	if v, err := strconv.ParseFloat(c.QueryParam("min"), 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max"), 64); err == nil {
		filter.MaxPrice = v
	}

	products, err := h.catalog.Products(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, products, productColumns, table.WithPageSize(12))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Product handles GET /product/:id.
func (h *ShopHandler) Product(c echo.Context) error {
	p, err := h.catalog.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, p, "")
}

// Calculate handles POST /calculator.
func (h *ShopHandler) Calculate(c echo.Context) error {
	var in entity.CalculatorInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	estimate, err := h.calculator.Calculate(c.Request().Context(), in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, estimate, "")
}

// Blogs handles GET /blog.
func (h *ShopHandler) Blogs(c echo.Context) error {
	blogs, err := h.blog.PublicBlogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, blogs, "")
}

// Contact handles POST /contact.
func (h *ShopHandler) Contact(c echo.Context) error {
	var form entity.ContactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.contact.Submit(c.Request().Context(), form); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Message sent")
}

// Chat handles POST /chat.
func (h *ShopHandler) Chat(c echo.Context) error {
	var msg entity.ChatMessage
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	reply, err := h.chat.Send(c.Request().Context(), msg.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply, "")
}

// ResetChat handles DELETE /chat.
func (h *ShopHandler) ResetChat(c echo.Context) error {
	h.chat.Reset()

	return response.Success(c, http.StatusOK, nil, "Conversation cleared")
}
