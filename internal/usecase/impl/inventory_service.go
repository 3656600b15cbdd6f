package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	gw        *Gateway
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger

	inventory *ListResource[entity.InventoryItem]
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	gw *Gateway,
	session usecase.SessionUsecase,
	validator *validation.Validator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	srv := &inventoryService{
		gw:        gw,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
	srv.inventory = NewListResource(func(ctx context.Context) ([]entity.InventoryItem, bool, error) {
		return read(ctx, gw, bearer("list inventory"), func(src repository.DataSource, token string) ([]entity.InventoryItem, error) {
			return src.ListInventory(ctx, token)
		})
	})
	closeOnSessionChange(session, srv.inventory)

	return srv
}

func (srv *inventoryService) Inventory(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := srv.inventory.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load inventory")

		return nil, err
	}

	return items, nil
}

// Add looks up the selling price when the form does not carry it, then
// checks the ceiling before anything is sent.
func (srv *inventoryService) Add(ctx context.Context, in entity.InventoryInput) (usecase.Outcome, error) {
	var product *entity.Product
	if in.ProductID != "" {
		p, _, err := read(ctx, srv.gw, public("get product"), func(src repository.DataSource, _ string) (*entity.Product, error) {
			return src.GetProduct(ctx, in.ProductID)
		})
		if err != nil {
			srv.notifier.Error("Product not found")

			return usecase.Outcome{}, err
		}
		product = p
		if in.SellPrice == 0 {
			in.SellPrice = p.Price
		}
	}

	if err := srv.validator.Validate(in); err != nil {
		srv.notifier.Error(errorMessage(err))

		return usecase.Outcome{}, err
	}

	var added *entity.InventoryItem
	outcome, err := write(ctx, srv.gw, bearer("add inventory"), func(src repository.DataSource, token string) error {
		item, err := src.AddInventory(ctx, token, in)
		added = item

		return err
	})
	if err != nil {
		srv.notifier.Error(errorMessage(err))

		return outcome, err
	}

	if added == nil {
		added = localInventory(srv.gw.session.Snapshot(), in, product)
	}
	item := *added
	srv.inventory.Apply(func(items []entity.InventoryItem) []entity.InventoryItem {
		return append(items, item)
	})
	srv.notifier.Success(outcome.Label("Product added to inventory"))

	return outcome, nil
}

func localInventory(snap entity.Session, in entity.InventoryInput, product *entity.Product) *entity.InventoryItem {
	item := &entity.InventoryItem{
		ID:          uuid.NewString(),
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		VendorPrice: in.VendorPrice,
		SellPrice:   in.SellPrice,
		IsAvailable: in.Quantity > 0,
		Location:    in.Location,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if product != nil {
		item.ProductName = product.Name
	}
	if snap.User != nil {
		item.VendorID = snap.User.ID
		item.VendorName = snap.User.Name
	}

	return item
}

func (srv *inventoryService) Update(ctx context.Context, id string, in entity.InventoryUpdate) (usecase.Outcome, error) {
	if err := srv.validator.Validate(in); err != nil {
		srv.notifier.Error(errorMessage(err))

		return usecase.Outcome{}, err
	}
	if in.VendorPrice != nil {
		for _, item := range srv.inventory.Items() {
			if item.ID == id && item.SellPrice > 0 && *in.VendorPrice > item.SellPrice {
				srv.notifier.Error(domainerrors.ErrPriceCeiling.Message())

				return usecase.Outcome{}, domainerrors.ErrPriceCeiling
			}
		}
	}

	outcome, err := write(ctx, srv.gw, bearer("update inventory"), func(src repository.DataSource, token string) error {
		return src.UpdateInventory(ctx, token, id, in)
	})
	if err != nil {
		srv.notifier.Error(errorMessage(err))

		return outcome, err
	}

	srv.inventory.Apply(func(items []entity.InventoryItem) []entity.InventoryItem {
		for i := range items {
			if items[i].ID == id {
				items[i] = in.Apply(items[i])
			}
		}

		return items
	})
	srv.notifier.Success(outcome.Label("Inventory updated"))

	return outcome, nil
}

func (srv *inventoryService) Delete(ctx context.Context, id string) (usecase.Outcome, error) {
	outcome, err := write(ctx, srv.gw, bearer("delete inventory"), func(src repository.DataSource, token string) error {
		return src.DeleteInventory(ctx, token, id)
	})
	if err != nil {
		srv.notifier.Error("Failed to remove product")

		return outcome, err
	}

	srv.inventory.Apply(func(items []entity.InventoryItem) []entity.InventoryItem {
		return slices.DeleteFunc(items, func(item entity.InventoryItem) bool { return item.ID == id })
	})
	srv.notifier.Success(outcome.Label("Product removed from inventory"))

	return outcome, nil
}

func (srv *inventoryService) Suggest(ctx context.Context, suggestion entity.ProductSuggestion) (usecase.Outcome, error) {
	if err := srv.validator.Validate(suggestion); err != nil {
		srv.notifier.Error(errorMessage(err))

		return usecase.Outcome{}, err
	}

	outcome, err := write(ctx, srv.gw, bearer("suggest product"), func(src repository.DataSource, token string) error {
		return src.SuggestProduct(ctx, token, suggestion)
	})
	if err != nil {
		srv.notifier.Error("Failed to submit suggestion")

		return outcome, err
	}
	srv.notifier.Success(outcome.Label("Product suggestion submitted for review"))

	return outcome, nil
}

// errorMessage picks the user-facing text of an application error.
func errorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}

	return domainerrors.ErrInternalError.Message()
}
