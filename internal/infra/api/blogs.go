package api

import (
	"context"
	"net/http"
	"net/url"

	"solarsavers/internal/domain/entity"
)

func adminBlogPath(id string) string {
	return "/api/admin/blogs/" + url.PathEscape(id)
}

func (c *Client) PublicBlogs(ctx context.Context) ([]entity.Blog, error) {
	var out []entity.Blog
	if err := c.get(ctx, "/api/blogs", "", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AdminBlogs(ctx context.Context, token string) ([]entity.Blog, error) {
	var out []entity.Blog
	if err := c.get(ctx, "/api/admin/blogs", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateBlog(ctx context.Context, token string, in entity.BlogInput) (*entity.Blog, error) {
	var out entity.Blog
	if err := c.send(ctx, http.MethodPost, "/api/admin/blogs", token, in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateBlog(ctx context.Context, token, id string, in entity.BlogInput) (*entity.Blog, error) {
	var out entity.Blog
	if err := c.send(ctx, http.MethodPut, adminBlogPath(id), token, in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteBlog(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, adminBlogPath(id), token, nil, nil)
}
