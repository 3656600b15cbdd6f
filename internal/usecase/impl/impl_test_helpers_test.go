package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"solarsavers/config"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/infra/api"
	"solarsavers/internal/infra/auth"
	"solarsavers/internal/infra/fixture"
	"solarsavers/internal/infra/notification"
	"solarsavers/internal/infra/storage"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(mode string) *config.Config {
	cfg := &config.Config{}
	cfg.DataSource.Mode = mode
	cfg.Cart.CompareLimit = DefaultCompareLimit

	return cfg
}

// newDownClient points at a port nothing listens on.
func newDownClient() *api.Client {
	return api.NewClientWithHTTP("http://127.0.0.1:1", &http.Client{Timeout: time.Second}, newDiscardLogger())
}

func product(id string, price float64) entity.Product {
	return entity.Product{ID: id, Name: "Product " + id, Price: price, Category: entity.CategoryHome}
}

// pageFixture wires the page services the way the storefront does, with the
// session signed in against the fixture accounts.
type pageFixture struct {
	cfg      *config.Config
	fixtures *fixture.Source
	store    repository.KeyValueStore
	toaster  *notification.Toaster
	session  usecase.SessionUsecase
	gateway  *Gateway
	cart     usecase.CartUsecase
}

func createPageFixture(t *testing.T, mode string, remote repository.DataSource) *pageFixture {
	t.Helper()

	logger := newDiscardLogger()
	f := &pageFixture{
		cfg:      newTestConfig(mode),
		fixtures: fixture.NewSource(),
		store:    storage.NewMemoryStore(logger),
		toaster:  notification.NewToaster(logger),
	}
	if remote == nil {
		remote = f.fixtures
	}

	f.session = NewSessionService(f.fixtures, f.store, auth.NewJWTInspector(), validation.New(), logger)
	f.session.Initialize(context.Background())
	f.gateway = NewGateway(f.cfg, remote, f.fixtures, f.session, logger)
	f.cart = NewCartService(f.store, f.toaster, logger)
	f.cart.Initialize(context.Background())

	return f
}

func (f *pageFixture) login(t *testing.T, email, password string) {
	t.Helper()

	_, err := f.session.Login(context.Background(), email, password)
	require.NoError(t, err)
}

func (f *pageFixture) lastNotice(t *testing.T) string {
	t.Helper()

	notices := f.toaster.Drain()
	require.NotEmpty(t, notices)

	return notices[len(notices)-1].Message
}
