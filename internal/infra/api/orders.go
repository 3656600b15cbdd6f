package api

import (
	"context"
	"net/http"
	"net/url"

	"solarsavers/internal/domain/entity"
)

func orderPath(id string) string {
	return "/api/orders/" + url.PathEscape(id)
}

func adminOrderPath(id, action string) string {
	return "/api/admin/orders/" + url.PathEscape(id) + "/" + action
}

func (c *Client) PlaceOrder(ctx context.Context, token string, req entity.OrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := c.send(ctx, http.MethodPost, "/api/orders", token, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) listOrders(ctx context.Context, path, token string) ([]entity.Order, error) {
	var out []entity.Order
	if err := c.get(ctx, path, token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListOrders returns the caller's orders; admins get every order.
func (c *Client) ListOrders(ctx context.Context, token string) ([]entity.Order, error) {
	return c.listOrders(ctx, "/api/orders", token)
}

func (c *Client) VendorOrders(ctx context.Context, token string) ([]entity.Order, error) {
	return c.listOrders(ctx, "/api/vendor/orders", token)
}

func (c *Client) AssignedOrders(ctx context.Context, token string) ([]entity.Order, error) {
	return c.listOrders(ctx, "/api/vendor/assigned-orders", token)
}

func (c *Client) PendingAssignment(ctx context.Context, token string) ([]entity.Order, error) {
	return c.listOrders(ctx, "/api/admin/orders/pending-assignment", token)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}

	return c.send(ctx, http.MethodPut, orderPath(id)+"/status", token, body, nil)
}

func (c *Client) AvailableVendors(ctx context.Context, token, orderID string) (*entity.AvailableVendors, error) {
	var out entity.AvailableVendors
	if err := c.get(ctx, adminOrderPath(orderID, "available-vendors"), token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) AssignOrder(ctx context.Context, token, orderID string, assignment entity.OrderAssignment) error {
	return c.send(ctx, http.MethodPut, adminOrderPath(orderID, "assign"), token, assignment, nil)
}
