package impl

import (
	"context"
	"log/slog"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
)

// suggestionService implements the SuggestionUsecase interface.
type suggestionService struct {
	gw       *Gateway
	notifier service.Notifier
	logger   *slog.Logger

	suggestions *ListResource[entity.ProductSuggestion]
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(
	gw *Gateway,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.SuggestionUsecase {
	srv := &suggestionService{
		gw:       gw,
		notifier: notifier,
		logger:   logger,
	}
	srv.suggestions = NewListResource(func(ctx context.Context) ([]entity.ProductSuggestion, bool, error) {
		return read(ctx, gw, bearer("list suggestions"), func(src repository.DataSource, token string) ([]entity.ProductSuggestion, error) {
			return src.ListSuggestions(ctx, token)
		})
	})
	closeOnSessionChange(session, srv.suggestions)

	return srv
}

func (srv *suggestionService) Suggestions(ctx context.Context) ([]entity.ProductSuggestion, error) {
	suggestions, err := srv.suggestions.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load suggestions")

		return nil, err
	}

	return suggestions, nil
}

// Approve publishes the suggestion at sellPrice. A zero price takes the vendor's suggested price.
func (srv *suggestionService) Approve(ctx context.Context, id string, sellPrice float64) (usecase.Outcome, error) {
	if sellPrice <= 0 {
		for _, s := range srv.suggestions.Items() {
			if s.ID == id {
				sellPrice = s.SuggestedPrice
			}
		}
	}
	if sellPrice <= 0 {
		srv.notifier.Error("Please enter a selling price")

		return usecase.Outcome{}, domainerrors.ErrValidationFailed.WithDetails("sell_price must be greater than 0")
	}

	outcome, err := write(ctx, srv.gw, bearer("approve suggestion"), func(src repository.DataSource, token string) error {
		return src.ApproveSuggestion(ctx, token, id, sellPrice)
	})
	if err != nil {
		srv.notifier.Error("Failed to approve suggestion")

		return outcome, err
	}

	srv.setStatus(id, entity.SuggestionApproved)
	srv.notifier.Success(outcome.Label("Product approved and added to catalog"))

	return outcome, nil
}

func (srv *suggestionService) Reject(ctx context.Context, id string) (usecase.Outcome, error) {
	outcome, err := write(ctx, srv.gw, bearer("reject suggestion"), func(src repository.DataSource, token string) error {
		return src.RejectSuggestion(ctx, token, id)
	})
	if err != nil {
		srv.notifier.Error("Failed to reject suggestion")

		return outcome, err
	}

	srv.setStatus(id, entity.SuggestionRejected)
	srv.notifier.Success(outcome.Label("Suggestion rejected"))

	return outcome, nil
}

func (srv *suggestionService) setStatus(id, status string) {
	srv.suggestions.Apply(func(items []entity.ProductSuggestion) []entity.ProductSuggestion {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
			}
		}

		return items
	})
}
