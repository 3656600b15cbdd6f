package entity

// Order statuses used by the admin and vendor dashboards.
const (
	OrderPending    = "pending"
	OrderAssigned   = "assigned"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderStatuses lists the values accepted by the status update endpoint.
var OrderStatuses = []string{OrderPending, OrderAssigned, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// OrderLine is one product line of an order request.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the body of POST /api/orders.
type OrderRequest struct {
	Items           []OrderLine `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string      `json:"shipping_address" validate:"required"`
	PaymentMethod   string      `json:"payment_method" validate:"required"`
}

// ShippingForm is the checkout form; every address field is required.
type ShippingForm struct {
	Address       string `validate:"required"`
	City          string `validate:"required"`
	State         string `validate:"required"`
	Pincode       string `validate:"required"`
	Phone         string `validate:"required"`
	PaymentMethod string
}

// Order is an order as returned by the API.
type Order struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"user_id"`
	Items              []map[string]any `json:"items"`
	TotalAmount        float64          `json:"total_amount"`
	Status             string           `json:"status"`
	ShippingAddress    string           `json:"shipping_address"`
	AssignedVendorID   string           `json:"assigned_vendor_id,omitempty"`
	AssignedVendorName string           `json:"assigned_vendor_name,omitempty"`
	AssignedAt         string           `json:"assigned_at,omitempty"`
	CreatedAt          string           `json:"created_at"`
}

// ItemID returns the order identity.
func (o Order) ItemID() string {
	return o.ID
}

// AvailableVendor is a vendor able to fulfil every line of an order.
type AvailableVendor struct {
	VendorID         string  `json:"vendor_id"`
	VendorName       string  `json:"vendor_name"`
	TotalVendorPrice float64 `json:"total_vendor_price"`
	Location         string  `json:"location,omitempty"`
	Email            string  `json:"email"`
}

// AvailableVendors is the body of GET /api/admin/orders/:id/available-vendors.
type AvailableVendors struct {
	OrderID          string            `json:"order_id"`
	OrderTotal       float64           `json:"order_total"`
	AvailableVendors []AvailableVendor `json:"available_vendors"`
}

// OrderAssignment is the body of PUT /api/admin/orders/:id/assign.
type OrderAssignment struct {
	VendorID        string `json:"vendor_id" validate:"required"`
	AssignmentNotes string `json:"assignment_notes,omitempty"`
}
