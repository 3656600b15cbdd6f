package entity

import "strings"

// Product categories.
const (
	CategoryHome       = "home"
	CategoryCommercial = "commercial"
)

// Identifiable is implemented by everything a persisted collection can hold.
type Identifiable interface {
	ItemID() string
}

// Product is a catalog entry owned by the API.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category"`
	SystemSizeKW     float64  `json:"system_size_kw"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price,omitempty"`
	EfficiencyRating float64  `json:"efficiency_rating"`
	WarrantyYears    int      `json:"warranty_years"`
	Brand            string   `json:"brand"`
	ImageURL         string   `json:"image_url,omitempty"`
	Features         []string `json:"features,omitempty"`
	InStock          bool     `json:"in_stock"`
	VendorID         string   `json:"vendor_id,omitempty"`
	VendorName       string   `json:"vendor_name,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewCount      int      `json:"review_count,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

// ItemID returns the product identity.
func (p Product) ItemID() string {
	return p.ID
}

// ProductInput is the create form for a catalog product.
type ProductInput struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Category         string   `json:"category" validate:"oneof=home commercial"`
	SystemSizeKW     float64  `json:"system_size_kw" validate:"gt=0"`
	Price            float64  `json:"price" validate:"gt=0"`
	OriginalPrice    *float64 `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	EfficiencyRating float64  `json:"efficiency_rating" validate:"gte=0,lte=100"`
	WarrantyYears    int      `json:"warranty_years" validate:"gte=0"`
	Brand            string   `json:"brand" validate:"required"`
	ImageURL         string   `json:"image_url"`
	Features         []string `json:"features"`
	InStock          bool     `json:"in_stock"`
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

// Apply merges the update into p.
func (u ProductUpdate) Apply(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}

	return p
}

// ProductFilter narrows the catalog listing.
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Search   string
}

// Match reports whether p passes every set field of the filter.
// Search is a case-insensitive substring of name, brand or description.
func (f ProductFilter) Match(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if q := strings.ToLower(f.Search); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	return true
}
