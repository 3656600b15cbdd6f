package api

import (
	"context"
	"net/http"
	"net/url"

	"solarsavers/internal/domain/entity"
)

func ticketPath(id string) string {
	return "/api/tickets/" + url.PathEscape(id)
}

func (c *Client) CreateTicket(ctx context.Context, token string, in entity.TicketInput) (*entity.Ticket, error) {
	var out entity.Ticket
	if err := c.send(ctx, http.MethodPost, "/api/tickets", token, in, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListTickets(ctx context.Context, token string) ([]entity.Ticket, error) {
	var out []entity.Ticket
	if err := c.get(ctx, "/api/tickets", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetTicket(ctx context.Context, token, id string) (*entity.Ticket, error) {
	var out entity.Ticket
	if err := c.get(ctx, ticketPath(id), token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ReplyTicket(ctx context.Context, token, id, message string) error {
	return c.send(ctx, http.MethodPost, ticketPath(id)+"/reply", token, entity.Message{Message: message}, nil)
}

func (c *Client) AdminTickets(ctx context.Context, token string, filter entity.TicketFilter) ([]entity.Ticket, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		q.Set("priority", filter.Priority)
	}

	var out []entity.Ticket
	if err := c.get(ctx, "/api/admin/tickets", token, q, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) updateTicket(ctx context.Context, token, id, field, value string) error {
	return c.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/admin/tickets/" + url.PathEscape(id) + "/" + field,
		token:  token,
		query:  url.Values{field: []string{value}},
	}, nil)
}

func (c *Client) UpdateTicketStatus(ctx context.Context, token, id, status string) error {
	return c.updateTicket(ctx, token, id, "status", status)
}

func (c *Client) UpdateTicketPriority(ctx context.Context, token, id, priority string) error {
	return c.updateTicket(ctx, token, id, "priority", priority)
}
