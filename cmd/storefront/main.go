package main

import (
	"context"
	"log/slog"
	"os"

	"solarsavers/config"
	"solarsavers/internal/delivery"
	deliverycontext "solarsavers/internal/delivery/context"
	"solarsavers/internal/delivery/http"
	"solarsavers/internal/delivery/http/middleware"
	"solarsavers/internal/delivery/http/router/handler"
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

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type initStoresParams struct {
	fx.In
	fx.Lifecycle

	Client   *api.Client
	Session  usecase.SessionUsecase
	Cart     usecase.CartUsecase
	Wishlist usecase.WishlistUsecase
	Compare  usecase.CompareUsecase
	Seed     usecase.SeedUsecase
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			initStores,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
		validation.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newAPIClient,
			newRemoteSource,
			fx.Annotate(
				fixture.NewSource,
				fx.As(new(repository.FallbackSource)),
			),
			impl.SelectAuthSource,
		),
	)
}

func newAPIClient(cfg *config.Config, logger *slog.Logger) *api.Client {
	return api.NewClient(cfg.API, logger)
}

// newRemoteSource exposes the API client as the primary data source.
func newRemoteSource(client *api.Client) repository.DataSource {
	return client
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			fx.Annotate(
				notification.NewToaster,
				fx.As(new(service.Notifier)),
				fx.As(new(deliverycontext.NoticeSource)),
			),
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewGateway,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCompareService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewInventoryService,
			impl.NewSuggestionService,
			impl.NewTicketService,
			impl.NewBlogService,
			impl.NewCalculatorService,
			impl.NewChatService,
			impl.NewContactService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewGateMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCollectionHandler,
			handler.NewShopHandler,
			handler.NewDashboardHandler,
			handler.NewVendorHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// initStores restores the durable stores and seeds the API once the graph is built.
// A 401 on any bearer call demotes the session.
func initStores(params initStoresParams) {
	params.Client.OnUnauthorized(params.Session.Reject)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go params.Seed.Seed(context.Background())

			params.Session.Initialize(ctx)
			params.Cart.Initialize(ctx)
			params.Wishlist.Initialize(ctx)
			params.Compare.Initialize(ctx)

			params.Logger.Info("Storefront state restored",
				slog.String("session", params.Session.Snapshot().State.String()),
				slog.Int("cart_items", params.Cart.Count()),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
