package usecase

import (
	"context"

	"solarsavers/internal/domain/entity"
)

// TicketUsecase is the support desk for customers and admins.
type TicketUsecase interface {
	Create(ctx context.Context, in entity.TicketInput) (Outcome, error)
	Tickets(ctx context.Context) ([]entity.Ticket, error)
	Ticket(ctx context.Context, id string) (*entity.Ticket, error)
	Reply(ctx context.Context, id, message string) (Outcome, error)
	AdminTickets(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error)
	UpdateStatus(ctx context.Context, id, status string) (Outcome, error)
	UpdatePriority(ctx context.Context, id, priority string) (Outcome, error)
}

// BlogUsecase is the blog page and its admin editor.
type BlogUsecase interface {
	PublicBlogs(ctx context.Context) ([]entity.Blog, error)
	AdminBlogs(ctx context.Context) ([]entity.Blog, error)
	// Save creates a post when id is empty and updates it otherwise.
	Save(ctx context.Context, id string, in entity.BlogInput) (Outcome, error)
	Delete(ctx context.Context, id string) (Outcome, error)
}
