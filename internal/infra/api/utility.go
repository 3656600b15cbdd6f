package api

import (
	"context"
	"net/http"

	"solarsavers/internal/domain/entity"
)

func (c *Client) Calculate(ctx context.Context, in entity.CalculatorInput) (*entity.CalculatorResult, error) {
	var out entity.CalculatorResult
	if err := c.send(ctx, http.MethodPost, "/api/calculator", "", in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Chat(ctx context.Context, msg entity.ChatMessage) (*entity.ChatReply, error) {
	var out entity.ChatReply
	if err := c.send(ctx, http.MethodPost, "/api/chat", "", msg, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Contact(ctx context.Context, form entity.ContactForm) error {
	return c.send(ctx, http.MethodPost, "/api/contact", "", form, nil)
}

// Seed asks the API to load its demo catalog. It is idempotent on the server.
func (c *Client) Seed(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, "/api/seed", "", nil, nil)
}
