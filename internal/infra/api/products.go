package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"solarsavers/internal/domain/entity"
)

func productQuery(filter entity.ProductFilter) url.Values {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Brand != "" {
		q.Set("brand", filter.Brand)
	}
	if filter.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	return q
}

// ListProducts fetches the catalog. Free-text search is applied locally by the caller.
func (c *Client) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/api/products", "", productQuery(filter), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/api/products/featured", "", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var out entity.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), "", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) VendorProducts(ctx context.Context, token string) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/api/vendor/products", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in entity.ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := c.send(ctx, http.MethodPost, "/api/products", token, in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in entity.ProductUpdate) (*entity.Product, error) {
	var out entity.Product
	if err := c.send(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), token, in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), token, nil, nil)
}
