package fixture

import (
	"context"
	"slices"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/google/uuid"
)

func (s *Source) CreateTicket(_ context.Context, token string, in entity.TicketInput) (*entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	ticket := entity.Ticket{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
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
	s.tickets = append([]entity.Ticket{ticket}, s.tickets...)

	return &ticket, nil
}

func (s *Source) ListTickets(_ context.Context, token string) ([]entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return nil, err
	}

	out := []entity.Ticket{}
	for _, t := range s.tickets {
		if t.UserID == user.ID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (s *Source) GetTicket(_ context.Context, token, id string) (*entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return nil, err
	}

	t, ok := findByID(s.tickets, id)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("Ticket not found")
	}
	if user.Role != entity.RoleAdmin && t.UserID != user.ID {
		return nil, domainerrors.ErrForbidden
	}

	return &t, nil
}

func (s *Source) ReplyTicket(_ context.Context, token, id, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return err
	}

	var forbidden bool
	found := replaceByID(s.tickets, id, func(t entity.Ticket) entity.Ticket {
		if user.Role != entity.RoleAdmin && t.UserID != user.ID {
			forbidden = true

			return t
		}
		now := s.timestamp()
		t.Replies = append(slices.Clone(t.Replies), entity.TicketReply{
			UserName:  user.Name,
			IsAdmin:   user.Role == entity.RoleAdmin,
			Message:   message,
			CreatedAt: now,
		})
		t.UpdatedAt = now

		return t
	})
	switch {
	case !found:
		return domainerrors.ErrNotFound.WithDetails("Ticket not found")
	case forbidden:
		return domainerrors.ErrForbidden
	}

	return nil
}

func (s *Source) AdminTickets(_ context.Context, token string, filter entity.TicketFilter) ([]entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return filter.Apply(s.tickets), nil
}

func (s *Source) updateTicket(token, id string, allowed []string, value string, set func(*entity.Ticket)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return err
	}
	if !slices.Contains(allowed, value) {
		return domainerrors.ErrRemoteRejected.WithDetails("Invalid value " + value)
	}

	if !replaceByID(s.tickets, id, func(t entity.Ticket) entity.Ticket {
		set(&t)
		t.UpdatedAt = s.timestamp()

		return t
	}) {
		return domainerrors.ErrNotFound.WithDetails("Ticket not found")
	}

	return nil
}

func (s *Source) UpdateTicketStatus(_ context.Context, token, id, status string) error {
	return s.updateTicket(token, id, entity.TicketStatuses, status, func(t *entity.Ticket) { t.Status = status })
}

func (s *Source) UpdateTicketPriority(_ context.Context, token, id, priority string) error {
	return s.updateTicket(token, id, entity.TicketPriorities, priority, func(t *entity.Ticket) { t.Priority = priority })
}

func (s *Source) PublicBlogs(_ context.Context) ([]entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entity.Blog{}
	for _, b := range s.blogs {
		if b.IsPublished {
			out = append(out, b)
		}
	}

	return out, nil
}

func (s *Source) AdminBlogs(_ context.Context, token string) ([]entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return append([]entity.Blog(nil), s.blogs...), nil
}

// NewBlog builds the record a locally created post gets.
func NewBlog(in entity.BlogInput, now string) entity.Blog {
	b := in.ApplyTo(entity.Blog{
		ID:         "blog-" + uuid.NewString(),
		AuthorID:   "admin",
		AuthorName: "Admin",
		CreatedAt:  now,
	})
	b.UpdatedAt = now

	return b
}

func (s *Source) CreateBlog(_ context.Context, token string, in entity.BlogInput) (*entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	b := NewBlog(in, s.timestamp())
	s.blogs = append([]entity.Blog{b}, s.blogs...)

	return &b, nil
}

func (s *Source) UpdateBlog(_ context.Context, token, id string, in entity.BlogInput) (*entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	var updated entity.Blog
	if !replaceByID(s.blogs, id, func(b entity.Blog) entity.Blog {
		updated = in.ApplyTo(b)
		updated.UpdatedAt = s.timestamp()

		return updated
	}) {
		return nil, domainerrors.ErrNotFound.WithDetails("Blog not found")
	}

	return &updated, nil
}

func (s *Source) DeleteBlog(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return err
	}

	var ok bool
	if s.blogs, ok = removeByID(s.blogs, id); !ok {
		return domainerrors.ErrNotFound.WithDetails("Blog not found")
	}

	return nil
}
