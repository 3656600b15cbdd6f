package fixture

import "solarsavers/internal/domain/entity"

const (
	demoVendorID   = "vendor-1"
	demoVendorName = "SolarTech Solutions"
	demoPassword   = "demo123"
)

func ptr[T any](v T) *T {
	return &v
}

// demoAccounts are the sign-ins accepted in fixture mode.
var demoAccounts = []struct {
	user     entity.User
	password string
}{
	{entity.User{ID: "admin-1", Email: "admin@solarsavers.com", Name: "Admin", Role: entity.RoleAdmin, CreatedAt: "2024-12-01T00:00:00Z"}, "admin123"},
	{entity.User{ID: demoVendorID, Email: "vendor@solarsavers.com", Name: demoVendorName, Role: entity.RoleVendor, CreatedAt: "2024-12-01T00:00:00Z"}, "vendor123"},
	{entity.User{ID: "customer-1", Email: "customer@solarsavers.com", Name: "John Customer", Role: entity.RoleCustomer, CreatedAt: "2024-12-02T00:00:00Z"}, demoPassword},
}

func demoProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Solar Panel 400W Monocrystalline", Category: entity.CategoryHome, SystemSizeKW: 0.4, Price: 299, OriginalPrice: ptr(349.0), EfficiencyRating: 21.5, WarrantyYears: 25, Brand: "SunPower", InStock: true, VendorID: demoVendorID, VendorName: demoVendorName, ImageURL: "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=400"},
		{ID: "2", Name: "5kW Complete Home Solar System", Category: entity.CategoryHome, SystemSizeKW: 5, Price: 8500, OriginalPrice: ptr(9500.0), EfficiencyRating: 20.5, WarrantyYears: 20, Brand: "Tesla", InStock: true, VendorID: demoVendorID, VendorName: demoVendorName, ImageURL: "https://images.unsplash.com/photo-1508514177221-188b1cf16e9d?w=400"},
		{ID: "3", Name: "10kW Commercial Solar Array", Category: entity.CategoryCommercial, SystemSizeKW: 10, Price: 15000, OriginalPrice: ptr(17000.0), EfficiencyRating: 22, WarrantyYears: 25, Brand: "LG Solar", InStock: true, VendorID: demoVendorID, VendorName: demoVendorName, ImageURL: "https://images.unsplash.com/photo-1466611653911-95081537e5b7?w=400"},
		{ID: "4", Name: "Lithium Battery Storage 10kWh", Category: entity.CategoryHome, SystemSizeKW: 10, Price: 3200, EfficiencyRating: 95, WarrantyYears: 10, Brand: "Tesla", InStock: false, VendorID: demoVendorID, VendorName: demoVendorName, ImageURL: "https://images.unsplash.com/photo-1559302504-64aae6ca6b6d?w=400"},
		{ID: "5", Name: "Hybrid Inverter 5kW", Category: entity.CategoryHome, SystemSizeKW: 5, Price: 1800, OriginalPrice: ptr(2100.0), EfficiencyRating: 97, WarrantyYears: 10, Brand: "Fronius", InStock: true, VendorID: demoVendorID, VendorName: demoVendorName, ImageURL: "https://images.unsplash.com/photo-1545209463-e2a9e07c8693?w=400"},
		{ID: "6", Name: "Home Starter 3kW Solar System", Description: "Perfect entry-level solar system for small homes. Includes monocrystalline panels and hybrid inverter.", Category: entity.CategoryHome, SystemSizeKW: 3, Price: 5999, OriginalPrice: ptr(7499.0), EfficiencyRating: 20.5, WarrantyYears: 25, Brand: "SolarTech", InStock: true, VendorID: demoVendorID, VendorName: demoVendorName, Features: []string{"Monocrystalline panels", "Hybrid inverter", "Mobile monitoring"}},
		{ID: "7", Name: "Business Pro 25kW System", Description: "Commercial-grade installation for offices and shops.", Category: entity.CategoryCommercial, SystemSizeKW: 25, Price: 45999, EfficiencyRating: 21.8, WarrantyYears: 30, Brand: "SunPower", InStock: true, VendorID: demoVendorID, VendorName: demoVendorName, Features: []string{"Three-phase inverter", "Remote monitoring"}},
	}
}

func demoOrders() []entity.Order {
	return []entity.Order{
		{ID: "ORD-001", UserID: "customer-1", Items: []map[string]any{{"product_id": "1", "product_name": "Solar Panel 400W", "quantity": 12, "price": 299.0}}, TotalAmount: 3588, Status: entity.OrderPending, ShippingAddress: "123 Green Street, Solar City, SC - 12345", CreatedAt: "2024-12-27T10:30:00Z"},
		{ID: "ORD-002", UserID: "customer-2", Items: []map[string]any{{"product_id": "2", "product_name": "5kW Complete Home Solar System", "quantity": 1, "price": 8500.0}}, TotalAmount: 8500, Status: entity.OrderProcessing, ShippingAddress: "456 Sun Avenue, Bright City, BC - 67890", AssignedVendorID: demoVendorID, AssignedVendorName: demoVendorName, AssignedAt: "2024-12-27T09:15:00Z", CreatedAt: "2024-12-26T14:20:00Z"},
		{ID: "ORD-003", UserID: "customer-3", Items: []map[string]any{{"product_id": "3", "product_name": "10kW Commercial Solar Array", "quantity": 1, "price": 15000.0}}, TotalAmount: 15000, Status: entity.OrderShipped, ShippingAddress: "789 Power Blvd, Energy Town, ET - 11223", AssignedVendorID: demoVendorID, AssignedVendorName: demoVendorName, AssignedAt: "2024-12-25T12:00:00Z", CreatedAt: "2024-12-25T09:00:00Z"},
		{ID: "ORD-004", UserID: "customer-1", Items: []map[string]any{{"product_id": "4", "product_name": "Lithium Battery 10kWh", "quantity": 2, "price": 3200.0}, {"product_id": "5", "product_name": "Hybrid Inverter 5kW", "quantity": 1, "price": 1800.0}}, TotalAmount: 8200, Status: entity.OrderDelivered, ShippingAddress: "321 Volt Lane, Current City, CC - 44556", AssignedVendorID: demoVendorID, AssignedVendorName: demoVendorName, AssignedAt: "2024-12-24T15:00:00Z", CreatedAt: "2024-12-24T11:45:00Z"},
		{ID: "ORD-005", UserID: "customer-4", Items: []map[string]any{{"product_id": "1", "product_name": "Solar Panel 400W", "quantity": 6, "price": 299.0}}, TotalAmount: 1794, Status: entity.OrderPending, ShippingAddress: "654 Ray Road, Light City, LC - 77889", CreatedAt: "2024-12-23T16:30:00Z"},
	}
}

func demoInventory() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "inv-1", VendorID: demoVendorID, VendorName: demoVendorName, ProductID: "1", ProductName: "Solar Panel 400W Monocrystalline", Quantity: 120, VendorPrice: 250, SellPrice: 299, IsAvailable: true, Location: "Pune", UpdatedAt: "2024-12-27T08:00:00Z"},
		{ID: "inv-2", VendorID: demoVendorID, VendorName: demoVendorName, ProductID: "2", ProductName: "5kW Complete Home Solar System", Quantity: 8, VendorPrice: 7600, SellPrice: 8500, IsAvailable: true, Location: "Pune", UpdatedAt: "2024-12-26T08:00:00Z"},
		{ID: "inv-3", VendorID: demoVendorID, VendorName: demoVendorName, ProductID: "4", ProductName: "Lithium Battery Storage 10kWh", Quantity: 0, VendorPrice: 2900, SellPrice: 3200, IsAvailable: false, Location: "Mumbai", UpdatedAt: "2024-12-20T08:00:00Z"},
	}
}

func demoSuggestions() []entity.ProductSuggestion {
	return []entity.ProductSuggestion{
		{ID: "sug-1", VendorID: demoVendorID, VendorName: demoVendorName, Name: "Bifacial Panel 550W", Description: "High-yield bifacial module for ground mounts.", Category: entity.CategoryCommercial, SystemSizeKW: 0.55, SuggestedPrice: 420, EfficiencyRating: 22.3, WarrantyYears: 30, Brand: "Jinko", Status: entity.SuggestionPending, CreatedAt: "2024-12-26T10:00:00Z"},
		{ID: "sug-2", VendorID: demoVendorID, VendorName: demoVendorName, Name: "Micro Inverter 800W", Description: "Panel-level inverter for shaded roofs.", Category: entity.CategoryHome, SystemSizeKW: 0.8, SuggestedPrice: 210, EfficiencyRating: 96.5, WarrantyYears: 15, Brand: "Enphase", Status: entity.SuggestionPending, CreatedAt: "2024-12-25T10:00:00Z"},
	}
}

func demoTickets() []entity.Ticket {
	return []entity.Ticket{
		{ID: "t1", UserID: "customer-1", UserName: "John Customer", UserEmail: "john@example.com", Subject: "Solar panel issue", Message: "My panels are not generating expected output.", Category: "technical", Status: entity.TicketOpen, Priority: entity.PriorityHigh, Replies: []entity.TicketReply{}, CreatedAt: "2024-12-27T10:00:00Z", UpdatedAt: "2024-12-27T10:00:00Z"},
		{ID: "t2", UserID: "customer-2", UserName: "Sarah Smith", UserEmail: "sarah@example.com", Subject: "Billing question", Message: "I have a question about my latest invoice.", Category: "billing", Status: entity.TicketInProgress, Priority: entity.PriorityMedium, Replies: []entity.TicketReply{{UserName: "Admin", IsAdmin: true, Message: "Hi Sarah, I'll look into this.", CreatedAt: "2024-12-26T11:00:00Z"}}, CreatedAt: "2024-12-26T09:00:00Z", UpdatedAt: "2024-12-26T11:00:00Z"},
	}
}

func demoBlogs() []entity.Blog {
	return []entity.Blog{
		{ID: "blog-1", Title: "5 Reasons to Go Solar in 2025", Excerpt: "Discover why 2025 is the perfect year to switch to solar energy for your home or business.", Content: "Solar energy has never been more accessible...", Category: "guides", ImageURL: "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=600", Tags: []string{"solar", "energy", "savings"}, AuthorID: "admin", AuthorName: "Solar Admin", IsPublished: true, Views: 1250, CreatedAt: "2024-12-20T10:00:00Z", UpdatedAt: "2024-12-20T10:00:00Z"},
		{ID: "blog-2", Title: "Understanding Solar Panel Efficiency", Excerpt: "Learn what solar panel efficiency means and how it affects your energy production.", Content: "Solar panel efficiency is a crucial factor...", Category: "technology", ImageURL: "https://images.unsplash.com/photo-1508514177221-188b1cf16e9d?w=600", Tags: []string{"technology", "efficiency", "panels"}, AuthorID: "admin", AuthorName: "Solar Admin", IsPublished: true, Views: 890, CreatedAt: "2024-12-18T14:00:00Z", UpdatedAt: "2024-12-18T14:00:00Z"},
		{ID: "blog-3", Title: "Government Solar Subsidies Guide", Excerpt: "Complete guide to solar subsidies and incentives available in India.", Content: "The Indian government offers various subsidies...", Category: "news", ImageURL: "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=600", Tags: []string{"subsidy", "government", "incentives"}, AuthorID: "admin", AuthorName: "Solar Admin", IsPublished: true, Views: 2100, CreatedAt: "2024-12-15T09:00:00Z", UpdatedAt: "2024-12-15T09:00:00Z"},
		{ID: "blog-4", Title: "Solar Maintenance Tips", Excerpt: "Essential tips to keep your solar system running at peak performance.", Content: "Regular maintenance is key to solar efficiency...", Category: "tips", ImageURL: "https://images.unsplash.com/photo-1559302504-64aae6ca6b6d?w=600", Tags: []string{"maintenance", "tips", "performance"}, AuthorID: "admin", AuthorName: "Solar Admin", IsPublished: false, CreatedAt: "2024-12-28T16:00:00Z", UpdatedAt: "2024-12-28T16:00:00Z"},
	}
}

// chatAnswers maps message keywords to canned assistant replies, checked in order.
var chatAnswers = []struct {
	keywords []string
	answer   string
}{
	{[]string{"price", "cost"}, "Our solar systems range from ₹5,999 for a 3kW home system to ₹2,75,000 for industrial 250kW installations. Use our Solar Calculator for a personalized estimate!"},
	{[]string{"size", "kw"}, "The right system size depends on your electricity bill. A typical home uses 3-10kW, while commercial properties need 25-250kW. Try our Solar Calculator!"},
	{[]string{"warranty"}, "All our solar systems come with 25-30 year warranties. Premium brands like SunPower and LG offer extended performance guarantees."},
	{[]string{"install"}, "Installation typically takes 1-3 days for homes and 1-2 weeks for commercial projects. Our vendors handle permits and grid connection."},
	{[]string{"save", "bill"}, "On average, solar can reduce your electricity bills by 70-90%. Your exact savings depend on your consumption and system size."},
}

const defaultChatAnswer = "Thanks for your question! I'm your SolarSavers assistant. For personalized recommendations, try our Solar Calculator or browse our products. How can I help you with solar energy today?"
