package handler

import (
	"net/http"

	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/view/table"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	Orders  usecase.OrderUsecase
	Tickets usecase.TicketUsecase
	QRCode  service.QRCodeService
}

// DashboardHandler serves checkout and the customer dashboard.
type DashboardHandler struct {
	orders  usecase.OrderUsecase
	tickets usecase.TicketUsecase
	qrcode  service.QRCodeService
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		orders:  params.Orders,
		tickets: params.Tickets,
		qrcode:  params.QRCode,
	}
}

// CheckoutRequest is the shipping form.
type CheckoutRequest struct {
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
}

// ReplyRequest is a ticket reply.
type ReplyRequest struct {
	Message string `json:"message"`
}

// DashboardView is the customer dashboard.
type DashboardView struct {
	Orders  table.View      `json:"orders"`
	Tickets []entity.Ticket `json:"tickets"`
}

var orderColumns = []table.Column{
	{Key: "id", Label: "Order"},
	{Key: "created_at", Label: "Date"},
	{Key: "total_amount", Label: "Total"},
	{Key: "status", Label: "Status"},
	{Key: "shipping_address", Label: "Ship to", DisableSort: true},
}

// Checkout handles POST /checkout.
func (h *DashboardHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	order, outcome, err := h.orders.Checkout(c.Request().Context(), entity.ShippingForm{
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, outcome.Label("Order placed successfully!"))
}

// Dashboard handles GET /dashboard.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orders.Orders(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tickets, err := h.tickets.Tickets(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := tableView(c, orders, orderColumns)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, DashboardView{Orders: view, Tickets: tickets}, "")
}

// CreateTicket handles POST /dashboard/tickets.
func (h *DashboardHandler) CreateTicket(c echo.Context) error {
	var in entity.TicketInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.tickets.Create(c.Request().Context(), in)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, outcome, outcome.Label("Ticket created successfully"))
}

// Ticket handles GET /dashboard/tickets/:id.
func (h *DashboardHandler) Ticket(c echo.Context) error {
	ticket, err := h.tickets.Ticket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ticket, "")
}

// ReplyTicket handles POST /dashboard/tickets/:id/reply.
func (h *DashboardHandler) ReplyTicket(c echo.Context) error {
	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	outcome, err := h.tickets.Reply(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome, outcome.Label("Reply sent"))
}

// Receipt handles GET /orders/:id/receipt and answers with a PNG QR code.
func (h *DashboardHandler) Receipt(c echo.Context) error {
	png, err := h.qrcode.GenerateOrderQR(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=order-receipt.png")

	return c.Blob(http.StatusOK, "image/png", png)
}
