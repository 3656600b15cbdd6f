package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/google/uuid"
)

const (
	recommendBelowKW = 3
	recommendAboveKW = 5
	recommendLimit   = 4
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	gw        *Gateway
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger

	vendorProducts *ListResource[entity.Product]
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	gw *Gateway,
	session usecase.SessionUsecase,
	validator *validation.Validator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	srv := &catalogService{
		gw:        gw,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
	srv.vendorProducts = NewListResource(func(ctx context.Context) ([]entity.Product, bool, error) {
		return read(ctx, gw, bearer("vendor products"), func(src repository.DataSource, token string) ([]entity.Product, error) {
			return src.VendorProducts(ctx, token)
		})
	})
	closeOnSessionChange(session, srv.vendorProducts)

	return srv
}

// Products sends the server-side filters and applies the free-text search locally.
func (srv *catalogService) Products(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	remote := filter
	remote.Search = ""

	products, _, err := read(ctx, srv.gw, public("list products"), func(src repository.DataSource, _ string) ([]entity.Product, error) {
		return src.ListProducts(ctx, remote)
	})
	if err != nil {
		srv.notifier.Error("Failed to load products")

		return nil, err
	}

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if filter.Match(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (srv *catalogService) Featured(ctx context.Context) ([]entity.Product, error) {
	products, _, err := read(ctx, srv.gw, public("featured products"), func(src repository.DataSource, _ string) ([]entity.Product, error) {
		return src.FeaturedProducts(ctx)
	})

	return products, err
}

func (srv *catalogService) Product(ctx context.Context, id string) (*entity.Product, error) {
	product, _, err := read(ctx, srv.gw, public("get product"), func(src repository.DataSource, _ string) (*entity.Product, error) {
		return src.GetProduct(ctx, id)
	})
	if err != nil {
		srv.notifier.Error("Failed to load product")

		return nil, err
	}

	return product, nil
}

func (srv *catalogService) VendorProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.vendorProducts.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load products")

		return nil, err
	}

	return products, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, in entity.ProductInput) (usecase.Outcome, error) {
	if err := srv.validator.Validate(in); err != nil {
		return usecase.Outcome{}, err
	}

	var created *entity.Product
	outcome, err := write(ctx, srv.gw, bearer("create product"), func(src repository.DataSource, token string) error {
		p, err := src.CreateProduct(ctx, token, in)
		created = p

		return err
	})
	if err != nil {
		srv.notifier.Error("Failed to create product")

		return outcome, err
	}

	if outcome.Demo {
		created = &entity.Product{
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
			CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		}
	}
	if created != nil {
		p := *created
		srv.vendorProducts.Apply(func(items []entity.Product) []entity.Product {
			return append(items, p)
		})
	}
	srv.notifier.Success(outcome.Label("Product created successfully"))

	return outcome, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id string, in entity.ProductUpdate) (usecase.Outcome, error) {
	if err := srv.validator.Validate(in); err != nil {
		return usecase.Outcome{}, err
	}

	var updated *entity.Product
	outcome, err := write(ctx, srv.gw, bearer("update product"), func(src repository.DataSource, token string) error {
		p, err := src.UpdateProduct(ctx, token, id, in)
		updated = p

		return err
	})
	if err != nil {
		srv.notifier.Error("Failed to update product")

		return outcome, err
	}

	srv.vendorProducts.Apply(func(items []entity.Product) []entity.Product {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if updated != nil {
				items[i] = *updated
			} else {
				items[i] = in.Apply(items[i])
			}
		}

		return items
	})
	srv.notifier.Success(outcome.Label("Product updated successfully"))

	return outcome, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id string) (usecase.Outcome, error) {
	outcome, err := write(ctx, srv.gw, bearer("delete product"), func(src repository.DataSource, token string) error {
		return src.DeleteProduct(ctx, token, id)
	})
	if err != nil {
		srv.notifier.Error("Failed to delete product")

		return outcome, err
	}

	srv.vendorProducts.Apply(func(items []entity.Product) []entity.Product {
		return slices.DeleteFunc(items, func(p entity.Product) bool { return p.ID == id })
	})
	srv.notifier.Success(outcome.Label("Product deleted successfully"))

	return outcome, nil
}

// Recommend keeps products between sizeKW-3 and sizeKW+5, restricted to the
// commercial category for commercial properties, closest size first.
// A failed lookup yields no recommendations.
func (srv *catalogService) Recommend(ctx context.Context, sizeKW float64, propertyType string) []entity.Product {
	products, _, err := read(ctx, srv.gw, public("recommend products"), func(src repository.DataSource, _ string) ([]entity.Product, error) {
		return src.ListProducts(ctx, entity.ProductFilter{})
	})
	if err != nil {
		srv.logger.Warn("Failed to load recommendations", slog.Any("error", err))

		return []entity.Product{}
	}

	return recommend(products, sizeKW, propertyType)
}

func recommend(products []entity.Product, sizeKW float64, propertyType string) []entity.Product {
	out := []entity.Product{}
	for _, p := range products {
		if p.SystemSizeKW < sizeKW-recommendBelowKW || p.SystemSizeKW > sizeKW+recommendAboveKW {
			continue
		}
		if propertyType == entity.CategoryCommercial && p.Category != entity.CategoryCommercial {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(a, b entity.Product) int {
		return cmp.Compare(math.Abs(a.SystemSizeKW-sizeKW), math.Abs(b.SystemSizeKW-sizeKW))
	})
	if len(out) > recommendLimit {
		out = out[:recommendLimit]
	}

	return out
}
