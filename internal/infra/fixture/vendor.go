package fixture

import (
	"context"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/google/uuid"
)

func (s *Source) ListInventory(_ context.Context, token string) ([]entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token, entity.RoleVendor)
	if err != nil {
		return nil, err
	}

	out := []entity.InventoryItem{}
	for _, inv := range s.inventory {
		if inv.VendorID == user.ID {
			out = append(out, inv)
		}
	}

	return out, nil
}

// AddInventory enforces the platform price ceiling the same way the API does.
func (s *Source) AddInventory(_ context.Context, token string, in entity.InventoryInput) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token, entity.RoleVendor)
	if err != nil {
		return nil, err
	}

	product, ok := findByID(s.products, in.ProductID)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("Product not found")
	}
	if in.VendorPrice > product.Price {
		return nil, domainerrors.ErrPriceCeiling
	}
	for _, inv := range s.inventory {
		if inv.VendorID == user.ID && inv.ProductID == in.ProductID {
			return nil, domainerrors.ErrRemoteRejected.WithDetails("Product already in your inventory")
		}
	}

	item := entity.InventoryItem{
		ID:          uuid.NewString(),
		VendorID:    user.ID,
		VendorName:  user.Name,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		VendorPrice: in.VendorPrice,
		SellPrice:   product.Price,
		IsAvailable: in.Quantity > 0,
		Location:    in.Location,
		UpdatedAt:   s.timestamp(),
	}
	s.inventory = append(s.inventory, item)

	return &item, nil
}

func (s *Source) UpdateInventory(_ context.Context, token, id string, in entity.InventoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleVendor); err != nil {
		return err
	}

	var ceiling bool
	found := replaceByID(s.inventory, id, func(item entity.InventoryItem) entity.InventoryItem {
		if in.VendorPrice != nil && *in.VendorPrice > item.SellPrice {
			ceiling = true

			return item
		}
		item = in.Apply(item)
		item.UpdatedAt = s.timestamp()

		return item
	})
	switch {
	case !found:
		return domainerrors.ErrNotFound.WithDetails("Inventory item not found")
	case ceiling:
		return domainerrors.ErrPriceCeiling
	}

	return nil
}

func (s *Source) DeleteInventory(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleVendor); err != nil {
		return err
	}

	var ok bool
	if s.inventory, ok = removeByID(s.inventory, id); !ok {
		return domainerrors.ErrNotFound.WithDetails("Inventory item not found")
	}

	return nil
}

func (s *Source) SuggestProduct(_ context.Context, token string, sug entity.ProductSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token, entity.RoleVendor)
	if err != nil {
		return err
	}

	sug.ID = uuid.NewString()
	sug.VendorID = user.ID
	sug.VendorName = user.Name
	sug.Status = entity.SuggestionPending
	sug.CreatedAt = s.timestamp()
	s.suggestions = append([]entity.ProductSuggestion{sug}, s.suggestions...)

	return nil
}

func (s *Source) ListSuggestions(_ context.Context, token string) ([]entity.ProductSuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return append([]entity.ProductSuggestion(nil), s.suggestions...), nil
}

// ApproveSuggestion publishes the suggestion as a catalog product priced at sellPrice.
func (s *Source) ApproveSuggestion(_ context.Context, token, id string, sellPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return err
	}

	var approved entity.ProductSuggestion
	if !replaceByID(s.suggestions, id, func(sug entity.ProductSuggestion) entity.ProductSuggestion {
		sug.Status = entity.SuggestionApproved
		approved = sug

		return sug
	}) {
		return domainerrors.ErrNotFound.WithDetails("Suggestion not found")
	}

	s.products = append(s.products, entity.Product{
		ID:               uuid.NewString(),
		Name:             approved.Name,
		Description:      approved.Description,
		Category:         approved.Category,
		SystemSizeKW:     approved.SystemSizeKW,
		Price:            sellPrice,
		EfficiencyRating: approved.EfficiencyRating,
		WarrantyYears:    approved.WarrantyYears,
		Brand:            approved.Brand,
		ImageURL:         approved.ImageURL,
		Features:         approved.Features,
		InStock:          true,
		VendorID:         approved.VendorID,
		VendorName:       approved.VendorName,
		CreatedAt:        s.timestamp(),
	})

	return nil
}

func (s *Source) RejectSuggestion(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleAdmin); err != nil {
		return err
	}

	if !replaceByID(s.suggestions, id, func(sug entity.ProductSuggestion) entity.ProductSuggestion {
		sug.Status = entity.SuggestionRejected

		return sug
	}) {
		return domainerrors.ErrNotFound.WithDetails("Suggestion not found")
	}

	return nil
}
