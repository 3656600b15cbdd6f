package impl

import (
	"context"
	"testing"

	"solarsavers/config"
	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/infra/fixture"
	"solarsavers/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_DemoReadFallsBackToFixtures(t *testing.T) {
	f := createPageFixture(t, config.DataSourceDemo, newDownClient())
	catalog := NewCatalogService(f.gateway, f.session, validation.New(), f.toaster, newDiscardLogger())

	products, err := catalog.Products(context.Background(), entity.ProductFilter{})

	require.NoError(t, err)
	assert.Len(t, products, 7)
	assert.Empty(t, f.toaster.Drain())
}

func TestGateway_DemoRoleScopedReadUsesFixtureAccount(t *testing.T) {
	f := createPageFixture(t, config.DataSourceDemo, newDownClient())
	f.login(t, "admin@solarsavers.com", "admin123")
	orders := NewOrderService(f.gateway, f.session, f.cart, validation.New(), f.toaster, newDiscardLogger())

	list, err := orders.PendingAssignment(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGateway_RemoteReadSurfacesError(t *testing.T) {
	f := createPageFixture(t, config.DataSourceRemote, newDownClient())
	catalog := NewCatalogService(f.gateway, f.session, validation.New(), f.toaster, newDiscardLogger())

	products, err := catalog.Products(context.Background(), entity.ProductFilter{})

	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
	assert.Equal(t, "Failed to load products", f.lastNotice(t))
}

func TestGateway_DemoWriteIsLabelled(t *testing.T) {
	f := createPageFixture(t, config.DataSourceDemo, newDownClient())
	f.login(t, "vendor@solarsavers.com", "vendor123")
	inventory := NewInventoryService(f.gateway, f.session, validation.New(), f.toaster, newDiscardLogger()).(*inventoryService)

	outcome, err := inventory.Add(context.Background(), entity.InventoryInput{ProductID: "5", Quantity: 3, VendorPrice: 1500})

	require.NoError(t, err)
	assert.True(t, outcome.Demo)
	notices := f.toaster.Drain()
	require.NotEmpty(t, notices)
	assert.Equal(t, service.NoticeSuccess, notices[len(notices)-1].Level)
	assert.Equal(t, "Product added to inventory (demo)", notices[len(notices)-1].Message)

	items := inventory.inventory.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "5", items[0].ProductID)
	assert.Equal(t, 1800.0, items[0].SellPrice)
	assert.Equal(t, "vendor-1", items[0].VendorID)
}

func TestGateway_RemoteWriteFailureIsAnError(t *testing.T) {
	f := createPageFixture(t, config.DataSourceRemote, newDownClient())
	f.login(t, "admin@solarsavers.com", "admin123")
	tickets := NewTicketService(f.gateway, f.session, validation.New(), f.toaster, newDiscardLogger())

	outcome, err := tickets.UpdateStatus(context.Background(), "t1", entity.TicketResolved)

	assert.False(t, outcome.Demo)
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
	assert.Equal(t, "Failed to update ticket", f.lastNotice(t))
}

func TestGateway_ValidationIsNeverSwallowed(t *testing.T) {
	f := createPageFixture(t, config.DataSourceDemo, newDownClient())
	f.login(t, "vendor@solarsavers.com", "vendor123")
	inventory := NewInventoryService(f.gateway, f.session, validation.New(), f.toaster, newDiscardLogger())

	outcome, err := inventory.Add(context.Background(), entity.InventoryInput{ProductID: "5", Quantity: 3, VendorPrice: 2000})

	assert.False(t, outcome.Demo)
	assert.True(t, errors.Is(err, domainerrors.ErrPriceCeiling))
}

func TestGateway_BearerCallNeedsSession(t *testing.T) {
	f := createPageFixture(t, config.DataSourceDemo, newDownClient())
	orders := NewOrderService(f.gateway, f.session, f.cart, validation.New(), f.toaster, newDiscardLogger())

	_, err := orders.Orders(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestSelectAuthSource(t *testing.T) {
	remote := newDownClient()
	fixtures := fixture.NewSource()

	assert.Same(t, fixtures, SelectAuthSource(newTestConfig(config.DataSourceFixture), remote, fixtures))
	assert.Same(t, remote, SelectAuthSource(newTestConfig(config.DataSourceDemo), remote, fixtures))
	assert.Same(t, remote, SelectAuthSource(newTestConfig(config.DataSourceRemote), remote, fixtures))
}
