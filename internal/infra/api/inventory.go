package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"solarsavers/internal/domain/entity"
)

func inventoryPath(id string) string {
	return "/api/vendor/inventory/" + url.PathEscape(id)
}

func (c *Client) ListInventory(ctx context.Context, token string) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	if err := c.get(ctx, "/api/vendor/inventory", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AddInventory(ctx context.Context, token string, in entity.InventoryInput) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	if err := c.send(ctx, http.MethodPost, "/api/vendor/inventory", token, in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateInventory(ctx context.Context, token, id string, in entity.InventoryUpdate) error {
	return c.send(ctx, http.MethodPut, inventoryPath(id), token, in, nil)
}

func (c *Client) DeleteInventory(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, inventoryPath(id), token, nil, nil)
}

func (c *Client) SuggestProduct(ctx context.Context, token string, s entity.ProductSuggestion) error {
	return c.send(ctx, http.MethodPost, "/api/vendor/suggest-product", token, s, nil)
}

func (c *Client) ListSuggestions(ctx context.Context, token string) ([]entity.ProductSuggestion, error) {
	var out []entity.ProductSuggestion
	if err := c.get(ctx, "/api/admin/product-suggestions", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ApproveSuggestion publishes the suggestion to the catalog at sellPrice.
func (c *Client) ApproveSuggestion(ctx context.Context, token, id string, sellPrice float64) error {
	q := url.Values{"sell_price": []string{strconv.FormatFloat(sellPrice, 'f', -1, 64)}}

	return c.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/admin/product-suggestions/" + url.PathEscape(id) + "/approve",
		token:  token,
		query:  q,
	}, nil)
}

func (c *Client) RejectSuggestion(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodPut, "/api/admin/product-suggestions/"+url.PathEscape(id)+"/reject", token, nil, nil)
}
