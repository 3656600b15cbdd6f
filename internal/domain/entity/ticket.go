package entity

// Ticket statuses.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// Ticket priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// TicketStatuses and TicketPriorities are the values the admin endpoints accept.
var (
	TicketStatuses   = []string{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}
	TicketPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// TicketReply is one message in a ticket thread.
type TicketReply struct {
	UserName  string `json:"user_name"`
	IsAdmin   bool   `json:"is_admin"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Ticket is a support ticket.
type Ticket struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	UserName  string        `json:"user_name"`
	UserEmail string        `json:"user_email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Category  string        `json:"category"`
	Status    string        `json:"status"`
	Priority  string        `json:"priority"`
	OrderID   string        `json:"order_id,omitempty"`
	Replies   []TicketReply `json:"replies"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// ItemID returns the ticket identity.
func (t Ticket) ItemID() string {
	return t.ID
}

// TicketInput opens a ticket. Non-general tickets reference an order.
type TicketInput struct {
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Category string `json:"category" validate:"oneof=general order technical billing"`
	OrderID  string `json:"order_id,omitempty"`
}

// TicketFilter narrows the admin ticket listing. Empty fields mean "all".
type TicketFilter struct {
	Status   string
	Priority string
}

// Apply keeps the tickets matching every set field of the filter.
func (f TicketFilter) Apply(tickets []Ticket) []Ticket {
	out := []Ticket{}
	for _, t := range tickets {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		out = append(out, t)
	}

	return out
}
