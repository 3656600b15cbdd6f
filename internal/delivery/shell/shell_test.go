package shell

import (
	"testing"

	"solarsavers/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func authenticated(role entity.Role) entity.Session {
	return entity.Session{
		State: entity.SessionAuthenticated,
		User:  &entity.User{ID: "u1", Role: role},
		Token: "t",
	}
}

func TestDecide(t *testing.T) {
	admin := entity.Roles{entity.RoleAdmin}

	tests := []struct {
		name    string
		session entity.Session
		allowed entity.Roles
		want    Decision
	}{
		{"unknown never redirects", entity.Session{State: entity.SessionUnknown}, admin, Decision{Kind: Loading}},
		{"anonymous goes to login", entity.Session{State: entity.SessionAnonymous}, admin, Decision{Kind: Redirect, Location: LoginPath}},
		{"vendor on admin route goes home", authenticated(entity.RoleVendor), admin, Decision{Kind: Redirect, Location: HomePath}},
		{"admin on admin route renders", authenticated(entity.RoleAdmin), admin, Decision{Kind: Render}},
		{"any role when unrestricted", authenticated(entity.RoleCustomer), nil, Decision{Kind: Render}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.session, tt.allowed))
		})
	}
}

func TestDecide_IsIdempotent(t *testing.T) {
	s := authenticated(entity.RoleVendor)

	first := Decide(s, entity.Roles{entity.RoleAdmin})
	second := Decide(s, entity.Roles{entity.RoleAdmin})

	assert.Equal(t, first, second)
	assert.Equal(t, entity.SessionAuthenticated, s.State)
	assert.Equal(t, entity.RoleVendor, s.User.Role)
}

func TestVisit(t *testing.T) {
	vendor := authenticated(entity.RoleVendor)

	assert.Equal(t, Decision{Kind: Redirect, Location: HomePath}, Visit(vendor, "/admin/orders"))
	assert.Equal(t, Decision{Kind: Render}, Visit(vendor, "/vendor/inventory"))
	assert.Equal(t, Decision{Kind: Render}, Visit(vendor, "/vendor/register"))
	assert.Equal(t, Decision{Kind: Redirect, Location: HomePath}, Visit(vendor, "/dashboard"))
	assert.Equal(t, Decision{Kind: Render}, Visit(entity.Session{State: entity.SessionAnonymous}, "/shop/home"))
	assert.Equal(t, Decision{Kind: Redirect, Location: LoginPath}, Visit(entity.Session{State: entity.SessionAnonymous}, "/checkout"))
	assert.Equal(t, Decision{Kind: Loading}, Visit(entity.Session{}, "/checkout"))
}

func TestMatch(t *testing.T) {
	r, ok := Match("/product/42")
	assert.True(t, ok)
	assert.Equal(t, "/product/:id", r.Pattern)

	r, ok = Match("/admin/tickets/")
	assert.True(t, ok)
	assert.Equal(t, "/admin/*", r.Pattern)

	_, ok = Match("/admin")
	assert.False(t, ok)
}

func TestNavLinks(t *testing.T) {
	labels := func(links []Link) []string {
		out := make([]string, 0, len(links))
		for _, l := range links {
			out = append(out, l.Label)
		}

		return out
	}

	assert.Equal(t, []string{"Dashboard", "Products", "Inventory", "Orders", "Profile"}, labels(NavLinks(entity.RoleVendor)))
	assert.Equal(t, []string{"Dashboard", "Users", "Vendors", "Products", "Orders", "Suggestions", "Tickets", "Blogs", "Settings"}, labels(NavLinks(entity.RoleAdmin)))
	assert.Equal(t, []string{"Dashboard", "Orders", "Tickets"}, labels(NavLinks(entity.RoleCustomer)))
	assert.Empty(t, NavLinks(entity.Role("guest")))
}
