package impl

import (
	"context"
	"log/slog"
	"sync"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"
)

// calculatorService implements the CalculatorUsecase interface.
type calculatorService struct {
	gw        *Gateway
	catalog   usecase.CatalogUsecase
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger
}

// NewCalculatorService is the constructor for calculatorService.
func NewCalculatorService(
	gw *Gateway,
	catalog usecase.CatalogUsecase,
	validator *validation.Validator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CalculatorUsecase {
	return &calculatorService{
		gw:        gw,
		catalog:   catalog,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
}

// Calculate sizes the system. In demo mode a failed calculation is estimated locally.
func (srv *calculatorService) Calculate(ctx context.Context, in entity.CalculatorInput) (*usecase.Estimate, error) {
	if err := srv.validator.Validate(in); err != nil {
		srv.notifier.Error("Please enter a valid monthly bill and city")

		return nil, err
	}

	result, demo, err := read(ctx, srv.gw, public("calculate"), func(src repository.DataSource, _ string) (*entity.CalculatorResult, error) {
		return src.Calculate(ctx, in)
	})
	if err != nil {
		srv.notifier.Error("Calculation failed")

		return nil, err
	}

	estimate := &usecase.Estimate{
		Result:          *result,
		Recommendations: srv.catalog.Recommend(ctx, result.RecommendedSizeKW, in.PropertyType),
		Demo:            demo,
	}
	srv.notifier.Success(usecase.Outcome{Demo: demo}.Label("Calculation complete!"))

	return estimate, nil
}

// chatService implements the ChatUsecase interface.
type chatService struct {
	gw        *Gateway
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger

	mu        sync.Mutex
	sessionID string
}

// NewChatService is the constructor for chatService.
func NewChatService(gw *Gateway, validator *validation.Validator, notifier service.Notifier, logger *slog.Logger) usecase.ChatUsecase {
	return &chatService{
		gw:        gw,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
}

// Send keeps the conversation id the assistant hands out. A reply without one
// leaves the current conversation in place.
func (srv *chatService) Send(ctx context.Context, message string) (*entity.ChatReply, error) {
	srv.mu.Lock()
	msg := entity.ChatMessage{Message: message, SessionID: srv.sessionID}
	srv.mu.Unlock()

	if err := srv.validator.Validate(msg); err != nil {
		return nil, err
	}

	reply, _, err := read(ctx, srv.gw, public("chat"), func(src repository.DataSource, _ string) (*entity.ChatReply, error) {
		return src.Chat(ctx, msg)
	})
	if err != nil {
		srv.notifier.Error("Sorry, the assistant is unavailable right now")

		return nil, err
	}

	if reply.SessionID != "" {
		srv.mu.Lock()
		srv.sessionID = reply.SessionID
		srv.mu.Unlock()
	}

	return reply, nil
}

// Reset starts a new conversation.
func (srv *chatService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.sessionID = ""
}

// contactService implements the ContactUsecase interface.
type contactService struct {
	gw        *Gateway
	validator *validation.Validator
	notifier  service.Notifier
}

// NewContactService is the constructor for contactService.
func NewContactService(gw *Gateway, validator *validation.Validator, notifier service.Notifier) usecase.ContactUsecase {
	return &contactService{gw: gw, validator: validator, notifier: notifier}
}

func (srv *contactService) Submit(ctx context.Context, form entity.ContactForm) error {
	if err := srv.validator.Validate(form); err != nil {
		srv.notifier.Error("Please fill all required fields")

		return err
	}

	outcome, err := write(ctx, srv.gw, public("contact"), func(src repository.DataSource, _ string) error {
		return src.Contact(ctx, form)
	})
	if err != nil {
		srv.notifier.Error("Failed to send message")

		return err
	}
	srv.notifier.Success(outcome.Label("Message sent successfully! We'll get back to you soon."))

	return nil
}

// seedService implements the SeedUsecase interface.
type seedService struct {
	gw     *Gateway
	logger *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(gw *Gateway, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{gw: gw, logger: logger}
}

func (srv *seedService) Seed(ctx context.Context) {
	src, _, err := srv.gw.primary(public("seed"))
	if err != nil {
		return
	}

	if err := src.Seed(ctx); err != nil {
		srv.log(ctx).Info("Seed request failed, continuing", slog.Any("error", err))

		return
	}
	srv.log(ctx).Info("Demo data seeded")
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return srv.gw.log(ctx).With(slog.String("component", "seed"))
}
