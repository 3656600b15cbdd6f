package fixture

import (
	"context"
	"testing"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, s *Source, email, password string) string {
	t.Helper()

	res, err := s.Login(context.Background(), entity.Credentials{Email: email, Password: password})
	require.NoError(t, err)

	return res.AccessToken
}

func TestSource_LoginAndMe(t *testing.T) {
	ctx := context.Background()
	s := NewSource()

	token := login(t, s, "admin@solarsavers.com", "admin123")

	user, err := s.Me(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)

	_, err = s.Login(ctx, entity.Credentials{Email: "admin@solarsavers.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = s.Me(ctx, "unknown")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestSource_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	s := NewSource()

	_, err := s.Register(ctx, entity.Registration{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = s.Register(ctx, entity.Registration{Name: "Asha", Email: "ASHA@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountExists))
}

func TestSource_RoleChecks(t *testing.T) {
	ctx := context.Background()
	s := NewSource()

	vendor := login(t, s, "vendor@solarsavers.com", "vendor123")

	_, err := s.AdminBlogs(ctx, vendor)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	items, err := s.ListInventory(ctx, vendor)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSource_InventoryPriceCeiling(t *testing.T) {
	ctx := context.Background()
	s := NewSource()
	vendor := login(t, s, "vendor@solarsavers.com", "vendor123")

	_, err := s.AddInventory(ctx, vendor, entity.InventoryInput{ProductID: "3", Quantity: 2, VendorPrice: 16000})
	assert.True(t, errors.Is(err, domainerrors.ErrPriceCeiling))

	item, err := s.AddInventory(ctx, vendor, entity.InventoryInput{ProductID: "3", Quantity: 2, VendorPrice: 14000})
	require.NoError(t, err)
	assert.Equal(t, 15000.0, item.SellPrice)

	_, err = s.AddInventory(ctx, vendor, entity.InventoryInput{ProductID: "3", Quantity: 1, VendorPrice: 14000})
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))
}

func TestSource_PlaceAndAssignOrder(t *testing.T) {
	ctx := context.Background()
	s := NewSource()
	customer := login(t, s, "customer@solarsavers.com", "demo123")
	admin := login(t, s, "admin@solarsavers.com", "admin123")

	order, err := s.PlaceOrder(ctx, customer, entity.OrderRequest{
		Items:           []entity.OrderLine{{ProductID: "1", Quantity: 2}, {ProductID: "2", Quantity: 1}},
		ShippingAddress: "12 MG Road, Pune, MH - 411001",
		PaymentMethod:   "cod",
	})
	require.NoError(t, err)
	assert.Equal(t, 299.0*2+8500, order.TotalAmount)
	assert.Equal(t, entity.OrderPending, order.Status)

	vendors, err := s.AvailableVendors(ctx, admin, order.ID)
	require.NoError(t, err)
	require.Len(t, vendors.AvailableVendors, 1)
	assert.Equal(t, 250.0*2+7600, vendors.AvailableVendors[0].TotalVendorPrice)
	assert.Equal(t, "vendor@solarsavers.com", vendors.AvailableVendors[0].Email)

	require.NoError(t, s.AssignOrder(ctx, admin, order.ID, entity.OrderAssignment{VendorID: demoVendorID}))

	pending, err := s.PendingAssignment(ctx, admin)
	require.NoError(t, err)
	for _, o := range pending {
		assert.NotEqual(t, order.ID, o.ID)
	}

	mine, err := s.ListOrders(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, order.ID, mine[0].ID)
	assert.Equal(t, entity.OrderAssigned, mine[0].Status)
}

func TestSource_TicketFlow(t *testing.T) {
	ctx := context.Background()
	s := NewSource()
	admin := login(t, s, "admin@solarsavers.com", "admin123")

	require.NoError(t, s.ReplyTicket(ctx, admin, "t1", "We are on it"))
	require.NoError(t, s.UpdateTicketPriority(ctx, admin, "t1", entity.PriorityLow))

	err := s.UpdateTicketStatus(ctx, admin, "t1", "escalated")
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))

	ticket, err := s.GetTicket(ctx, admin, "t1")
	require.NoError(t, err)
	require.Len(t, ticket.Replies, 1)
	assert.True(t, ticket.Replies[0].IsAdmin)
	assert.Equal(t, entity.PriorityLow, ticket.Priority)

	open, err := s.AdminTickets(ctx, admin, entity.TicketFilter{Status: entity.TicketInProgress})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "t2", open[0].ID)
}

func TestSource_Blogs(t *testing.T) {
	ctx := context.Background()
	s := NewSource()
	admin := login(t, s, "admin@solarsavers.com", "admin123")

	public, err := s.PublicBlogs(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 3)

	blog, err := s.CreateBlog(ctx, admin, entity.BlogInput{Title: "Net metering", Content: "...", Excerpt: "How it works", Category: "guides", Tags: entity.ParseTags("grid, , billing")})
	require.NoError(t, err)
	assert.Contains(t, blog.ID, "blog-")
	assert.Equal(t, "Admin", blog.AuthorName)
	assert.Equal(t, []string{"grid", "billing"}, blog.Tags)

	require.NoError(t, s.DeleteBlog(ctx, admin, blog.ID))
	assert.True(t, errors.Is(s.DeleteBlog(ctx, admin, blog.ID), domainerrors.ErrNotFound))
}

func TestEstimate(t *testing.T) {
	res := Estimate(entity.CalculatorInput{MonthlyBill: 4500, PropertyType: "home", City: "Pune"})

	assert.Equal(t, 5.0, res.RecommendedSizeKW)
	assert.Equal(t, 300000.0, res.EstimatedCost)
	assert.Equal(t, 45000.0, res.AnnualSavings)
	assert.Equal(t, 4.5, res.PaybackYears)
	assert.Equal(t, 6000.0, res.CO2ReductionKg)
}

func TestChatAnswer(t *testing.T) {
	assert.Contains(t, ChatAnswer("What does it COST?"), "₹5,999")
	assert.Contains(t, ChatAnswer("how many kW do I need"), "system size")
	assert.Equal(t, defaultChatAnswer, ChatAnswer("hello"))

	reply, err := NewSource().Chat(context.Background(), entity.ChatMessage{Message: "warranty?", SessionID: "s-1"})
	require.NoError(t, err)
	assert.Equal(t, "s-1", reply.SessionID)
}

func TestSource_TokenFor(t *testing.T) {
	s := NewSource()

	token := s.TokenFor(entity.RoleVendor)
	assert.Equal(t, token, s.TokenFor(entity.RoleVendor))

	user, err := s.Me(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, user.Role)

	assert.Empty(t, s.TokenFor(entity.Role("guest")))
}
