package entity

// CartItem is a product snapshot with a quantity; it is stored under the "cart" key.
// Quantity is never below 1 while the item is in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity.
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// WishlistItem is a product snapshot stored under the "wishlist" key.
type WishlistItem struct {
	Product
}

// CompareItem is a product snapshot stored under the "compare" key.
type CompareItem struct {
	Product
}
