// Package shell decides what a route shows for the current session and which
// navigation links each role gets.
package shell

import (
	"strings"

	"solarsavers/internal/domain/entity"
)

// Entry points the shell redirects to.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Kind is the outcome of a gate decision.
type Kind int

const (
	// Loading shows a neutral indicator while the session resolves.
	Loading Kind = iota
	// Redirect sends the visitor to Decision.Location.
	Redirect
	// Render shows the route content.
	Render
)

func (k Kind) String() string {
	switch k {
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	default:
		return "loading"
	}
}

// Decision is what a protected route should do.
type Decision struct {
	Kind     Kind   `json:"kind"`
	Location string `json:"location,omitempty"`
}

// Decide gates a protected route. A nil allowed list admits every signed-in role.
// It never mutates the session.
func Decide(s entity.Session, allowed entity.Roles) Decision {
	switch s.State {
	case entity.SessionAnonymous:
		return Decision{Kind: Redirect, Location: LoginPath}
	case entity.SessionAuthenticated:
		if s.User == nil {
			return Decision{Kind: Redirect, Location: LoginPath}
		}
		if allowed != nil && !allowed.Contains(s.User.Role) {
			return Decision{Kind: Redirect, Location: HomePath}
		}

		return Decision{Kind: Render}
	default:
		return Decision{Kind: Loading}
	}
}

// Route is an entry of the route table.
type Route struct {
	Pattern   string
	Protected bool
	// Roles limits a protected route. Nil means any signed-in role.
	Roles entity.Roles
}

// Routes is the storefront route table.
var Routes = []Route{
	{Pattern: "/"},
	{Pattern: "/shop"},
	{Pattern: "/shop/:category"},
	{Pattern: "/product/:id"},
	{Pattern: "/calculator"},
	{Pattern: "/contact"},
	{Pattern: "/login"},
	{Pattern: "/register"},
	{Pattern: "/vendor/register"},
	{Pattern: "/cart"},
	{Pattern: "/wishlist"},
	{Pattern: "/compare"},
	{Pattern: "/blog"},
	{Pattern: "/checkout", Protected: true},
	{Pattern: "/dashboard", Protected: true, Roles: entity.Roles{entity.RoleCustomer, entity.RoleAdmin}},
	{Pattern: "/vendor/*", Protected: true, Roles: entity.Roles{entity.RoleVendor, entity.RoleAdmin}},
	{Pattern: "/admin/*", Protected: true, Roles: entity.Roles{entity.RoleAdmin}},
}

// Match returns the first route whose pattern fits path.
func Match(path string) (Route, bool) {
	path = "/" + strings.Trim(path, "/")
	for _, r := range Routes {
		if matchPattern(r.Pattern, path) {
			return r, true
		}
	}

	return Route{}, false
}

func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}

	pp := strings.Split(strings.Trim(pattern, "/"), "/")
	sp := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range pp {
		if seg == "*" {
			return len(sp) > i
		}
		if i >= len(sp) {
			return false
		}
		if !strings.HasPrefix(seg, ":") && seg != sp[i] {
			return false
		}
	}

	return len(pp) == len(sp)
}

// Visit decides a path from the route table. Public and unknown paths render.
func Visit(s entity.Session, path string) Decision {
	route, ok := Match(path)
	if !ok || !route.Protected {
		return Decision{Kind: Render}
	}

	return Decide(s, route.Roles)
}

// Link is one sidebar entry.
type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavLinks returns the dashboard sidebar for role.
func NavLinks(role entity.Role) []Link {
	switch role {
	case entity.RoleVendor:
		return []Link{
			{Label: "Dashboard", Path: "/vendor/dashboard"},
			{Label: "Products", Path: "/vendor/products"},
			{Label: "Inventory", Path: "/vendor/inventory"},
			{Label: "Orders", Path: "/vendor/orders"},
			{Label: "Profile", Path: "/vendor/profile"},
		}
	case entity.RoleAdmin:
		return []Link{
			{Label: "Dashboard", Path: "/admin/dashboard"},
			{Label: "Users", Path: "/admin/users"},
			{Label: "Vendors", Path: "/admin/vendors"},
			{Label: "Products", Path: "/admin/products"},
			{Label: "Orders", Path: "/admin/orders"},
			{Label: "Suggestions", Path: "/admin/suggestions"},
			{Label: "Tickets", Path: "/admin/tickets"},
			{Label: "Blogs", Path: "/admin/blogs"},
			{Label: "Settings", Path: "/admin/settings"},
		}
	case entity.RoleCustomer:
		return []Link{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "Orders", Path: "/dashboard/orders"},
			{Label: "Tickets", Path: "/dashboard/tickets"},
		}
	default:
		return []Link{}
	}
}
