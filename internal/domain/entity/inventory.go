package entity

// InventoryItem is a vendor's stock of a catalog product.
type InventoryItem struct {
	ID          string  `json:"id"`
	VendorID    string  `json:"vendor_id"`
	VendorName  string  `json:"vendor_name"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	VendorPrice float64 `json:"vendor_price"`
	SellPrice   float64 `json:"sell_price"`
	IsAvailable bool    `json:"is_available"`
	Location    string  `json:"location,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

// ItemID returns the inventory row identity.
func (i InventoryItem) ItemID() string {
	return i.ID
}

// InventoryInput adds a product to a vendor's inventory.
// SellPrice is the platform price the vendor price may not exceed; it is not sent.
type InventoryInput struct {
	ProductID   string  `json:"product_id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	VendorPrice float64 `json:"vendor_price" validate:"gt=0,ltefield=SellPrice"`
	Location    string  `json:"location,omitempty"`
	SellPrice   float64 `json:"-"`
}

// InventoryUpdate is a partial inventory update.
type InventoryUpdate struct {
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	VendorPrice *float64 `json:"vendor_price,omitempty" validate:"omitempty,gt=0"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// Apply merges the update into item.
func (u InventoryUpdate) Apply(item InventoryItem) InventoryItem {
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.VendorPrice != nil {
		item.VendorPrice = *u.VendorPrice
	}
	if u.IsAvailable != nil {
		item.IsAvailable = *u.IsAvailable
	}

	return item
}

// Suggestion review states.
const (
	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
)

// ProductSuggestion is a vendor-proposed catalog product awaiting admin review.
type ProductSuggestion struct {
	ID               string   `json:"id,omitempty"`
	VendorID         string   `json:"vendor_id,omitempty"`
	VendorName       string   `json:"vendor_name,omitempty"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Category         string   `json:"category" validate:"oneof=home commercial"`
	SystemSizeKW     float64  `json:"system_size_kw" validate:"gt=0"`
	SuggestedPrice   float64  `json:"suggested_price" validate:"gt=0"`
	EfficiencyRating float64  `json:"efficiency_rating" validate:"gte=0,lte=100"`
	WarrantyYears    int      `json:"warranty_years" validate:"gte=0"`
	Brand            string   `json:"brand" validate:"required"`
	ImageURL         string   `json:"image_url"`
	Features         []string `json:"features"`
	Status           string   `json:"status,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

// ItemID returns the suggestion identity.
func (s ProductSuggestion) ItemID() string {
	return s.ID
}
