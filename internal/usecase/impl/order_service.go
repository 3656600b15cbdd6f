package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/google/uuid"
)

// PaymentCOD is the payment method used when checkout leaves it blank.
const PaymentCOD = "cod"

// orderService implements the OrderUsecase interface.
type orderService struct {
	gw        *Gateway
	cart      usecase.CartUsecase
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger

	orders   *ListResource[entity.Order]
	vendor   *ListResource[entity.Order]
	assigned *ListResource[entity.Order]
	pending  *ListResource[entity.Order]
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	gw *Gateway,
	session usecase.SessionUsecase,
	cart usecase.CartUsecase,
	validator *validation.Validator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.OrderUsecase {
	srv := &orderService{
		gw:        gw,
		cart:      cart,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
	srv.orders = orderList(gw, "list orders", repository.DataSource.ListOrders)
	srv.vendor = orderList(gw, "vendor orders", repository.DataSource.VendorOrders)
	srv.assigned = orderList(gw, "assigned orders", repository.DataSource.AssignedOrders)
	srv.pending = orderList(gw, "pending assignment", repository.DataSource.PendingAssignment)
	closeOnSessionChange(session, srv.orders, srv.vendor, srv.assigned, srv.pending)

	return srv
}

func orderList(
	gw *Gateway,
	name string,
	fetch func(src repository.DataSource, ctx context.Context, token string) ([]entity.Order, error),
) *ListResource[entity.Order] {
	return NewListResource(func(ctx context.Context) ([]entity.Order, bool, error) {
		return read(ctx, gw, bearer(name), func(src repository.DataSource, token string) ([]entity.Order, error) {
			return fetch(src, ctx, token)
		})
	})
}

// ShippingAddress joins the checkout form the way the backend stores it.
func ShippingAddress(form entity.ShippingForm) string {
	return form.Address + ", " + form.City + ", " + form.State + " - " + form.Pincode
}

func (srv *orderService) Checkout(ctx context.Context, form entity.ShippingForm) (*entity.Order, usecase.Outcome, error) {
	items := srv.cart.Items()
	if len(items) == 0 {
		return nil, usecase.Outcome{}, domainerrors.ErrEmptyCart
	}
	if err := srv.validator.Validate(form); err != nil {
		srv.notifier.Error("Please fill all required fields")

		return nil, usecase.Outcome{}, err
	}
	if strings.TrimSpace(form.PaymentMethod) == "" {
		form.PaymentMethod = PaymentCOD
	}

	req := entity.OrderRequest{
		Items:           make([]entity.OrderLine, 0, len(items)),
		ShippingAddress: ShippingAddress(form),
		PaymentMethod:   form.PaymentMethod,
	}
	for _, item := range items {
		req.Items = append(req.Items, entity.OrderLine{ProductID: item.ID, Quantity: item.Quantity})
	}

	var order *entity.Order
	outcome, err := write(ctx, srv.gw, bearer("place order"), func(src repository.DataSource, token string) error {
		o, err := src.PlaceOrder(ctx, token, req)
		order = o

		return err
	})
	if err != nil {
		srv.notifier.Error("Failed to place order")

		return nil, outcome, err
	}
	if outcome.Demo || order == nil {
		order = localOrder(srv.gw.session.Snapshot(), items, req.ShippingAddress)
	}

	placed := *order
	srv.orders.Apply(func(orders []entity.Order) []entity.Order {
		return append([]entity.Order{placed}, orders...)
	})
	srv.cart.Clear(ctx)
	srv.notifier.Success(outcome.Label("Order placed successfully!"))
	srv.logger.Info("Order placed", slog.String("order_id", placed.ID), slog.Bool("demo", outcome.Demo))

	return order, outcome, nil
}

// localOrder is the record shown when the order exists only in page state.
func localOrder(snap entity.Session, items []entity.CartItem, address string) *entity.Order {
	order := &entity.Order{
		ID:              "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		Items:           make([]map[string]any, 0, len(items)),
		Status:          entity.OrderPending,
		ShippingAddress: address,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if snap.User != nil {
		order.UserID = snap.User.ID
	}
	for _, item := range items {
		order.Items = append(order.Items, map[string]any{
			"product_id":   item.ID,
			"product_name": item.Name,
			"quantity":     item.Quantity,
			"price":        item.Price,
		})
		order.TotalAmount += item.Subtotal()
	}

	return order
}

func (srv *orderService) load(ctx context.Context, r *ListResource[entity.Order]) ([]entity.Order, error) {
	orders, err := r.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load orders")

		return nil, err
	}

	return orders, nil
}

func (srv *orderService) Orders(ctx context.Context) ([]entity.Order, error) {
	return srv.load(ctx, srv.orders)
}

func (srv *orderService) VendorOrders(ctx context.Context) ([]entity.Order, error) {
	return srv.load(ctx, srv.vendor)
}

func (srv *orderService) AssignedOrders(ctx context.Context) ([]entity.Order, error) {
	return srv.load(ctx, srv.assigned)
}

func (srv *orderService) PendingAssignment(ctx context.Context) ([]entity.Order, error) {
	return srv.load(ctx, srv.pending)
}

func (srv *orderService) UpdateStatus(ctx context.Context, id, status string) (usecase.Outcome, error) {
	if err := validation.OneOf("status", status, entity.OrderStatuses); err != nil {
		return usecase.Outcome{}, err
	}

	outcome, err := write(ctx, srv.gw, bearer("update order status"), func(src repository.DataSource, token string) error {
		return src.UpdateOrderStatus(ctx, token, id, status)
	})
	if err != nil {
		srv.notifier.Error("Failed to update order status")

		return outcome, err
	}

	setStatus := func(orders []entity.Order) []entity.Order {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
			}
		}

		return orders
	}
	srv.orders.Apply(setStatus)
	srv.vendor.Apply(setStatus)
	srv.assigned.Apply(setStatus)
	srv.notifier.Success(outcome.Label("Order status updated"))

	return outcome, nil
}

func (srv *orderService) AvailableVendors(ctx context.Context, orderID string) (*entity.AvailableVendors, error) {
	vendors, _, err := read(ctx, srv.gw, bearer("available vendors"), func(src repository.DataSource, token string) (*entity.AvailableVendors, error) {
		return src.AvailableVendors(ctx, token, orderID)
	})
	if err != nil {
		srv.notifier.Error("Failed to load available vendors")

		return nil, err
	}

	return vendors, nil
}

func (srv *orderService) Assign(ctx context.Context, orderID string, assignment entity.OrderAssignment) (usecase.Outcome, error) {
	if err := srv.validator.Validate(assignment); err != nil {
		srv.notifier.Error("Please select a vendor")

		return usecase.Outcome{}, err
	}

	outcome, err := write(ctx, srv.gw, bearer("assign order"), func(src repository.DataSource, token string) error {
		return src.AssignOrder(ctx, token, orderID, assignment)
	})
	if err != nil {
		srv.notifier.Error("Failed to assign order")

		return outcome, err
	}

	srv.pending.Apply(func(orders []entity.Order) []entity.Order {
		return slices.DeleteFunc(orders, func(o entity.Order) bool { return o.ID == orderID })
	})
	srv.orders.Apply(func(orders []entity.Order) []entity.Order {
		for i := range orders {
			if orders[i].ID == orderID {
				orders[i].Status = entity.OrderAssigned
				orders[i].AssignedVendorID = assignment.VendorID
			}
		}

		return orders
	})
	srv.notifier.Success(outcome.Label("Order assigned successfully"))

	return outcome, nil
}
