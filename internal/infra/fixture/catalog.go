package fixture

import (
	"context"
	"slices"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/google/uuid"
)

func (s *Source) ListProducts(_ context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.Match(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

// FeaturedProducts returns in-stock products with the best ratings first.
func (s *Source) FeaturedProducts(_ context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.InStock {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b entity.Product) int {
		switch {
		case a.EfficiencyRating > b.EfficiencyRating:
			return -1
		case a.EfficiencyRating < b.EfficiencyRating:
			return 1
		default:
			return 0
		}
	})
	if len(out) > 8 {
		out = out[:8]
	}

	return out, nil
}

func (s *Source) GetProduct(_ context.Context, id string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := findByID(s.products, id)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("Product not found")
	}

	return &p, nil
}

func (s *Source) VendorProducts(_ context.Context, token string) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token, entity.RoleVendor, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	out := []entity.Product{}
	for _, p := range s.products {
		if user.Role == entity.RoleAdmin || p.VendorID == user.ID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (s *Source) CreateProduct(_ context.Context, token string, in entity.ProductInput) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token, entity.RoleVendor, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	p := entity.Product{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Description:      in.Description,
		Category:         in.Category,
		SystemSizeKW:     in.SystemSizeKW,
		Price:            in.Price,
		OriginalPrice:    in.OriginalPrice,
		EfficiencyRating: in.EfficiencyRating,
		WarrantyYears:    in.WarrantyYears,
		Brand:            in.Brand,
		ImageURL:         in.ImageURL,
		Features:         in.Features,
		InStock:          in.InStock,
		VendorID:         user.ID,
		VendorName:       user.Name,
		CreatedAt:        s.timestamp(),
	}
	s.products = append([]entity.Product{p}, s.products...)

	return &p, nil
}

func (s *Source) UpdateProduct(_ context.Context, token, id string, in entity.ProductUpdate) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleVendor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	var updated entity.Product
	if !replaceByID(s.products, id, func(p entity.Product) entity.Product {
		updated = in.Apply(p)

		return updated
	}) {
		return nil, domainerrors.ErrNotFound.WithDetails("Product not found")
	}

	return &updated, nil
}

func (s *Source) DeleteProduct(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userFor(token, entity.RoleVendor, entity.RoleAdmin); err != nil {
		return err
	}

	var ok bool
	if s.products, ok = removeByID(s.products, id); !ok {
		return domainerrors.ErrNotFound.WithDetails("Product not found")
	}

	return nil
}
