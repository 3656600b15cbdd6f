package handler

import (
	"net/http"
	"strconv"

	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/view/table"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Orders      usecase.OrderUsecase
	Tickets     usecase.TicketUsecase
	Blogs       usecase.BlogUsecase
	Suggestions usecase.SuggestionUsecase
	Catalog     usecase.CatalogUsecase
}

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	orders      usecase.OrderUsecase
	tickets     usecase.TicketUsecase
	blogs       usecase.BlogUsecase
	suggestions usecase.SuggestionUsecase
	catalog     usecase.CatalogUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		orders:      params.Orders,
		tickets:     params.Tickets,
		blogs:       params.Blogs,
		suggestions: params.Suggestions,
		catalog:     params.Catalog,
	}
}

// BlogRequest is the blog editor form. Tags arrive comma separated.
type BlogRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Tags        string `json:"tags"`
	IsPublished bool   `json:"is_published"`
}

func (r BlogRequest) input() entity.BlogInput {
	return entity.BlogInput{
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Tags:        entity.ParseTags(r.Tags),
		IsPublished: r.IsPublished,
	}
}

// PriorityRequest carries a new ticket priority.
type PriorityRequest struct {
	Priority string `json:"priority"`
}

var ticketColumns = []table.Column{
	{Key: "subject", Label: "Subject"},
	{Key: "user_name", Label: "Customer"},
	{Key: "category", Label: "Category"},
	{Key: "status", Label: "Status"},
	{Key: "priority", Label: "Priority"},
	{Key: "created_at", Label: "Created"},
}

var blogColumns = []table.Column{
	{Key: "title", Label: "Title"},
	{Key: "category", Label: "Category"},
	{Key: "author_name", Label: "Author"},
	{Key: "is_published", Label: "Status", Render: func(value any, _ table.Record) any {
		if ok, _ := value.(bool); ok {
			return "Published"
		}
		return "Draft"
	}},
	{Key: "views", Label: "Views"},
	{Key: "created_at", Label: "Created"},
}

var suggestionColumns = []table.Column{
	{Key: "name", Label: "Product"},
	{Key: "vendor_name", Label: "Vendor"},
	{Key: "brand", Label: "Brand"},
	{Key: "suggested_price", Label: "Suggested price"},
	{Key: "status", Label: "Status"},
}

var suggestionActions = []table.Action{
	{
		Label:  table.Static("Approve"),
		Icon:   "check",
		Hidden: table.Computed(func(row table.Record) bool { return row["status"] != entity.SuggestionPending }),
	},
	{
		Label:   table.Static("Reject"),
		Icon:    "x",
		Variant: "danger",
		Hidden:  table.Computed(func(row table.Record) bool { return row["status"] != entity.SuggestionPending }),
	},
}

// Orders handles GET /admin/orders. The table lists every order; pending
// assignment is returned alongside.
func (h *AdminHandler) Orders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orders.Orders(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pending, err := h.orders.PendingAssignment(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, orders, orderColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders":  view,
		"pending": pending,
	}, "")
}

// AvailableVendors handles GET /admin/orders/:id/vendors.
func (h *AdminHandler) AvailableVendors(c echo.Context) error {
	vendors, err := h.orders.AvailableVendors(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendors, "")
}

// AssignOrder handles PUT /admin/orders/:id/assign.
func (h *AdminHandler) AssignOrder(c echo.Context) error {
	var assignment entity.OrderAssignment
	if err := c.Bind(&assignment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.orders.Assign(c.Request().Context(), c.Param("id"), assignment)

	return mutation(c, http.StatusOK, outcome, err, "Order assigned successfully")
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)

	return mutation(c, http.StatusOK, outcome, err, "Order status updated")
}

// Tickets handles GET /admin/tickets?status=&priority=.
func (h *AdminHandler) Tickets(c echo.Context) error {
	tickets, err := h.tickets.AdminTickets(c.Request().Context(), entity.TicketFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, tickets, ticketColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateTicketStatus handles PUT /admin/tickets/:id/status.
func (h *AdminHandler) UpdateTicketStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.tickets.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)

	return mutation(c, http.StatusOK, outcome, err, "Ticket updated")
}

// UpdateTicketPriority handles PUT /admin/tickets/:id/priority.
func (h *AdminHandler) UpdateTicketPriority(c echo.Context) error {
	var req PriorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.tickets.UpdatePriority(c.Request().Context(), c.Param("id"), req.Priority)

	return mutation(c, http.StatusOK, outcome, err, "Ticket updated")
}

// Blogs handles GET /admin/blogs.
func (h *AdminHandler) Blogs(c echo.Context) error {
	blogs, err := h.blogs.AdminBlogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, blogs, blogColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// CreateBlog handles POST /admin/blogs.
func (h *AdminHandler) CreateBlog(c echo.Context) error {
	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.blogs.Save(c.Request().Context(), "", req.input())

	return mutation(c, http.StatusCreated, outcome, err, "Blog created successfully")
}

// UpdateBlog handles PUT /admin/blogs/:id.
func (h *AdminHandler) UpdateBlog(c echo.Context) error {
	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.blogs.Save(c.Request().Context(), c.Param("id"), req.input())

	return mutation(c, http.StatusOK, outcome, err, "Blog updated successfully")
}

// DeleteBlog handles DELETE /admin/blogs/:id.
func (h *AdminHandler) DeleteBlog(c echo.Context) error {
	outcome, err := h.blogs.Delete(c.Request().Context(), c.Param("id"))

	return mutation(c, http.StatusOK, outcome, err, "Blog deleted successfully")
}

// Suggestions handles GET /admin/suggestions.
func (h *AdminHandler) Suggestions(c echo.Context) error {
	suggestions, err := h.suggestions.Suggestions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, suggestions, suggestionColumns, table.WithActions(suggestionActions...))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ApproveSuggestion handles PUT /admin/suggestions/:id/approve?sell_price=.
// Without a sell price the suggested price is used.
func (h *AdminHandler) ApproveSuggestion(c echo.Context) error {
	var sellPrice float64
	if raw := c.QueryParam("sell_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "sell_price must be a number")
		}
		sellPrice = v
	}

	outcome, err := h.suggestions.Approve(c.Request().Context(), c.Param("id"), sellPrice)

	return mutation(c, http.StatusOK, outcome, err, "Product approved and added to catalog")
}

// RejectSuggestion handles PUT /admin/suggestions/:id/reject.
func (h *AdminHandler) RejectSuggestion(c echo.Context) error {
	outcome, err := h.suggestions.Reject(c.Request().Context(), c.Param("id"))

	return mutation(c, http.StatusOK, outcome, err, "Suggestion rejected")
}

// Products handles GET /admin/products.
func (h *AdminHandler) Products(c echo.Context) error {
	products, err := h.catalog.Products(c.Request().Context(), entity.ProductFilter{})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, products, productColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// CreateProduct handles POST /admin/products.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var in entity.ProductInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.catalog.CreateProduct(c.Request().Context(), in)

	return mutation(c, http.StatusCreated, outcome, err, "Product created successfully")
}

// UpdateProduct handles PATCH /admin/products/:id.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var in entity.ProductUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), in)

	return mutation(c, http.StatusOK, outcome, err, "Product updated successfully")
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	outcome, err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id"))

	return mutation(c, http.StatusOK, outcome, err, "Product deleted successfully")
}
