package fixture

import (
	"context"
	"slices"
	"strings"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/google/uuid"
)

func (s *Source) PlaceOrder(_ context.Context, token string, req entity.OrderRequest) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		ID:              "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID:          user.ID,
		Items:           make([]map[string]any, 0, len(req.Items)),
		Status:          entity.OrderPending,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       s.timestamp(),
	}
	for _, line := range req.Items {
		p, ok := findByID(s.products, line.ProductID)
		if !ok {
			return nil, domainerrors.ErrNotFound.WithDetails("Product " + line.ProductID + " not found")
		}
		order.Items = append(order.Items, map[string]any{
			"product_id":   p.ID,
			"product_name": p.Name,
			"quantity":     line.Quantity,
			"price":        p.Price,
		})
		order.TotalAmount += p.Price * float64(line.Quantity)
	}
	s.orders = append([]entity.Order{order}, s.orders...)

	return &order, nil
}

func (s *Source) filterOrders(keep func(entity.Order) bool) []entity.Order {
	out := []entity.Order{}
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}

	return out
}

func (s *Source) ListOrders(_ context.Context, token string) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return nil, err
	}

	return s.filterOrders(func(o entity.Order) bool {
		return user.Role == entity.RoleAdmin || o.UserID == user.ID
	}), nil
}

func (s *Source) VendorOrders(_ context.Context, token string) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token, entity.RoleVendor, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return s.filterOrders(func(o entity.Order) bool {
		return o.AssignedVendorID == user.ID
	}), nil
}

func (s *Source) AssignedOrders(ctx context.Context, token string) ([]entity.Order, error) {
	return s.VendorOrders(ctx, token)
}

func (s *Source) PendingAssignment(_ context.Context, token string) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return s.filterOrders(func(o entity.Order) bool {
		return o.Status == entity.OrderPending && o.AssignedVendorID == ""
	}), nil
}

func (s *Source) UpdateOrderStatus(_ context.Context, token, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleVendor, entity.RoleAdmin); err != nil {
		return err
	}
	if !slices.Contains(entity.OrderStatuses, status) {
		return domainerrors.ErrRemoteRejected.WithDetails("Invalid status")
	}

	if !replaceByID(s.orders, id, func(o entity.Order) entity.Order {
		o.Status = status

		return o
	}) {
		return domainerrors.ErrNotFound.WithDetails("Order not found")
	}

	return nil
}

// AvailableVendors lists vendors whose inventory covers every line, cheapest first.
func (s *Source) AvailableVendors(_ context.Context, token, orderID string) (*entity.AvailableVendors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	order, ok := findByID(s.orders, orderID)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("Order not found")
	}

	totals := map[string]*entity.AvailableVendor{}
	covered := map[string]int{}
	for _, line := range order.Items {
		productID, _ := line["product_id"].(string)
		qty := quantityOf(line["quantity"])
		for _, inv := range s.inventory {
			if inv.ProductID != productID || !inv.IsAvailable || inv.Quantity < qty {
				continue
			}
			v, ok := totals[inv.VendorID]
			if !ok {
				v = &entity.AvailableVendor{VendorID: inv.VendorID, VendorName: inv.VendorName, Location: inv.Location}
				if u, found := s.userByID(inv.VendorID); found {
					v.Email = u.Email
				}
				totals[inv.VendorID] = v
			}
			v.TotalVendorPrice += inv.VendorPrice * float64(qty)
			covered[inv.VendorID]++
		}
	}

	out := &entity.AvailableVendors{OrderID: order.ID, OrderTotal: order.TotalAmount, AvailableVendors: []entity.AvailableVendor{}}
	for id, v := range totals {
		if covered[id] == len(order.Items) {
			out.AvailableVendors = append(out.AvailableVendors, *v)
		}
	}
	slices.SortFunc(out.AvailableVendors, func(a, b entity.AvailableVendor) int {
		switch {
		case a.TotalVendorPrice < b.TotalVendorPrice:
			return -1
		case a.TotalVendorPrice > b.TotalVendorPrice:
			return 1
		default:
			return strings.Compare(a.VendorID, b.VendorID)
		}
	})

	return out, nil
}

func (s *Source) AssignOrder(_ context.Context, token, orderID string, assignment entity.OrderAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return err
	}

	vendor, ok := s.userByID(assignment.VendorID)
	if !ok || vendor.Role != entity.RoleVendor {
		return domainerrors.ErrNotFound.WithDetails("Vendor not found")
	}

	if !replaceByID(s.orders, orderID, func(o entity.Order) entity.Order {
		o.AssignedVendorID = vendor.ID
		o.AssignedVendorName = vendor.Name
		o.AssignedAt = s.timestamp()
		o.Status = entity.OrderAssigned

		return o
	}) {
		return domainerrors.ErrNotFound.WithDetails("Order not found")
	}

	return nil
}

func (s *Source) userByID(id string) (entity.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}

	return entity.User{}, false
}

// quantityOf reads a JSON-ish quantity, which is int in fixtures and float64 after decoding.
func quantityOf(v any) int {
	switch q := v.(type) {
	case int:
		return q
	case float64:
		return int(q)
	default:
		return 0
	}
}
