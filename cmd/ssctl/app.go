package main

import (
	"context"
	"io"
	"log/slog"

	"solarsavers/config"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/infra/api"
	"solarsavers/internal/infra/auth"
	"solarsavers/internal/infra/fixture"
	logs "solarsavers/internal/infra/log"
	"solarsavers/internal/infra/notification"
	"solarsavers/internal/infra/qrcode"
	"solarsavers/internal/infra/storage"
	"solarsavers/internal/usecase"
	"solarsavers/internal/usecase/impl"
	"solarsavers/internal/validation"

	"github.com/pkg/errors"
)

// app is the storefront wired for a single command invocation.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      repository.KeyValueStore
	toaster    *notification.Toaster
	session    usecase.SessionUsecase
	cart       usecase.CartUsecase
	wishlist   usecase.WishlistUsecase
	compare    usecase.CompareUsecase
	catalog    usecase.CatalogUsecase
	orders     usecase.OrderUsecase
	calculator usecase.CalculatorUsecase
	qrcode     service.QRCodeService
}

func newApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*app, error) {
	logger, err := logs.NewWithWriter(cfg, logOut)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}

	client := api.NewClient(cfg.API, logger)
	fixtures := fixture.NewSource()
	v := validation.New()
	toaster := notification.NewToaster(logger)

	session := impl.NewSessionService(impl.SelectAuthSource(cfg, client, fixtures), store, auth.NewJWTInspector(), v, logger)
	client.OnUnauthorized(session.Reject)
	gw := impl.NewGateway(cfg, client, fixtures, session, logger)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		toaster:  toaster,
		session:  session,
		cart:     impl.NewCartService(store, toaster, logger),
		wishlist: impl.NewWishlistService(store, toaster, logger),
		compare:  impl.NewCompareService(cfg, store, toaster, logger),
		catalog:  impl.NewCatalogService(gw, session, v, toaster, logger),
		qrcode:   qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL),
	}
	a.orders = impl.NewOrderService(gw, session, a.cart, v, toaster, logger)
	a.calculator = impl.NewCalculatorService(gw, a.catalog, v, toaster, logger)

	session.Initialize(ctx)
	a.cart.Initialize(ctx)
	a.wishlist.Initialize(ctx)
	a.compare.Initialize(ctx)

	return a, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Failed to close storage", slog.Any("error", err))
	}
}
