package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/google/uuid"
)

// TicketCategoryOrder is the ticket category that must reference an order.
const TicketCategoryOrder = "order"

// ticketService implements the TicketUsecase interface.
type ticketService struct {
	gw        *Gateway
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger

	mu     sync.Mutex
	filter entity.TicketFilter

	tickets *ListResource[entity.Ticket]
	admin   *ListResource[entity.Ticket]
}

// NewTicketService is the constructor for ticketService.
func NewTicketService(
	gw *Gateway,
	session usecase.SessionUsecase,
	validator *validation.Validator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.TicketUsecase {
	srv := &ticketService{
		gw:        gw,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
	srv.tickets = NewListResource(func(ctx context.Context) ([]entity.Ticket, bool, error) {
		return read(ctx, gw, bearer("list tickets"), func(src repository.DataSource, token string) ([]entity.Ticket, error) {
			return src.ListTickets(ctx, token)
		})
	})
	srv.admin = NewListResource(func(ctx context.Context) ([]entity.Ticket, bool, error) {
		filter := srv.currentFilter()

		return read(ctx, gw, bearer("admin tickets"), func(src repository.DataSource, token string) ([]entity.Ticket, error) {
			return src.AdminTickets(ctx, token, filter)
		})
	})
	closeOnSessionChange(session, srv.tickets, srv.admin)

	return srv
}

func (srv *ticketService) currentFilter() entity.TicketFilter {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.filter
}

func (srv *ticketService) Create(ctx context.Context, in entity.TicketInput) (usecase.Outcome, error) {
	if err := srv.validator.Validate(in); err != nil {
		srv.notifier.Error("Please fill all required fields")

		return usecase.Outcome{}, err
	}
	if in.Category == TicketCategoryOrder && strings.TrimSpace(in.OrderID) == "" {
		srv.notifier.Error("Please select an order")

		return usecase.Outcome{}, domainerrors.ErrValidationFailed.WithDetails("order_id is required")
	}

	var created *entity.Ticket
	outcome, err := write(ctx, srv.gw, bearer("create ticket"), func(src repository.DataSource, token string) error {
		t, err := src.CreateTicket(ctx, token, in)
		created = t

		return err
	})
	if err != nil {
		srv.notifier.Error("Failed to create ticket")

		return outcome, err
	}

	if created == nil {
		created = localTicket(srv.gw.session.Snapshot(), in)
	}
	ticket := *created
	srv.tickets.Apply(func(items []entity.Ticket) []entity.Ticket {
		return append([]entity.Ticket{ticket}, items...)
	})
	srv.notifier.Success(outcome.Label("Ticket created successfully"))

	return outcome, nil
}

func localTicket(snap entity.Session, in entity.TicketInput) *entity.Ticket {
	now := time.Now().UTC().Format(time.RFC3339)
	t := &entity.Ticket{
		ID:        uuid.NewString(),
		Subject:   in.Subject,
		Message:   in.Message,
		Category:  in.Category,
		Status:    entity.TicketOpen,
		Priority:  entity.PriorityMedium,
		OrderID:   in.OrderID,
		Replies:   []entity.TicketReply{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if snap.User != nil {
		t.UserID = snap.User.ID
		t.UserName = snap.User.Name
		t.UserEmail = snap.User.Email
	}

	return t
}

func (srv *ticketService) Tickets(ctx context.Context) ([]entity.Ticket, error) {
	tickets, err := srv.tickets.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load tickets")

		return nil, err
	}

	return tickets, nil
}

func (srv *ticketService) Ticket(ctx context.Context, id string) (*entity.Ticket, error) {
	ticket, _, err := read(ctx, srv.gw, bearer("get ticket"), func(src repository.DataSource, token string) (*entity.Ticket, error) {
		return src.GetTicket(ctx, token, id)
	})
	if err != nil {
		srv.notifier.Error("Failed to load ticket")

		return nil, err
	}

	return ticket, nil
}

func (srv *ticketService) Reply(ctx context.Context, id, message string) (usecase.Outcome, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return usecase.Outcome{}, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	outcome, err := write(ctx, srv.gw, bearer("reply ticket"), func(src repository.DataSource, token string) error {
		return src.ReplyTicket(ctx, token, id, message)
	})
	if err != nil {
		srv.notifier.Error("Failed to send reply")

		return outcome, err
	}

	snap := srv.gw.session.Snapshot()
	reply := entity.TicketReply{Message: message, CreatedAt: time.Now().UTC().Format(time.RFC3339)}
	if snap.User != nil {
		reply.UserName = snap.User.Name
		reply.IsAdmin = snap.User.Role == entity.RoleAdmin
	}
	appendReply := func(items []entity.Ticket) []entity.Ticket {
		for i := range items {
			if items[i].ID == id {
				items[i].Replies = append(append([]entity.TicketReply(nil), items[i].Replies...), reply)
				items[i].UpdatedAt = reply.CreatedAt
			}
		}

		return items
	}
	srv.tickets.Apply(appendReply)
	srv.admin.Apply(appendReply)
	srv.notifier.Success(outcome.Label("Reply sent"))

	return outcome, nil
}

// AdminTickets remembers filter for later reloads.
func (srv *ticketService) AdminTickets(ctx context.Context, filter entity.TicketFilter) ([]entity.Ticket, error) {
	if filter.Status != "" {
		if err := validation.OneOf("status", filter.Status, entity.TicketStatuses); err != nil {
			return nil, err
		}
	}
	if filter.Priority != "" {
		if err := validation.OneOf("priority", filter.Priority, entity.TicketPriorities); err != nil {
			return nil, err
		}
	}

	srv.mu.Lock()
	srv.filter = filter
	srv.mu.Unlock()

	tickets, err := srv.admin.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load tickets")

		return nil, err
	}

	// Fallback data is not filtered server-side.
	return filter.Apply(tickets), nil
}

func (srv *ticketService) UpdateStatus(ctx context.Context, id, status string) (usecase.Outcome, error) {
	if err := validation.OneOf("status", status, entity.TicketStatuses); err != nil {
		return usecase.Outcome{}, err
	}

	return srv.update(ctx, "update ticket status", id, func(src repository.DataSource, token string) error {
		return src.UpdateTicketStatus(ctx, token, id, status)
	}, func(t *entity.Ticket) { t.Status = status })
}

func (srv *ticketService) UpdatePriority(ctx context.Context, id, priority string) (usecase.Outcome, error) {
	if err := validation.OneOf("priority", priority, entity.TicketPriorities); err != nil {
		return usecase.Outcome{}, err
	}

	return srv.update(ctx, "update ticket priority", id, func(src repository.DataSource, token string) error {
		return src.UpdateTicketPriority(ctx, token, id, priority)
	}, func(t *entity.Ticket) { t.Priority = priority })
}

func (srv *ticketService) update(
	ctx context.Context,
	name, id string,
	send func(src repository.DataSource, token string) error,
	set func(t *entity.Ticket),
) (usecase.Outcome, error) {
	outcome, err := write(ctx, srv.gw, bearer(name), send)
	if err != nil {
		srv.notifier.Error("Failed to update ticket")

		return outcome, err
	}

	srv.admin.Apply(func(items []entity.Ticket) []entity.Ticket {
		for i := range items {
			if items[i].ID == id {
				set(&items[i])
			}
		}

		return items
	})
	srv.notifier.Success(outcome.Label("Ticket updated"))

	return outcome, nil
}
