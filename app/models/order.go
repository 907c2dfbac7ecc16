package models

import (
	"fmt"
	"strings"
	"time"
)

// Order statuses as the remote API reports them. The first four form
// the linear fulfilment path; cancelled sits outside it.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Order mirrors a customer order.
type Order struct {
	ID           int         `json:"id"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	DeliveryDate string      `json:"delivery_date,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Items        []OrderItem `json:"items"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID int      `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
}

// Ref returns the customer-facing order reference, e.g. "#ECO-000042".
func (o Order) Ref() string {
	return FormatOrderRef(o.ID)
}

// FormatOrderRef renders an order id in the public "#ECO-000042" form.
func FormatOrderRef(id int) string {
	return fmt.Sprintf("#ECO-%06d", id)
}

// ParseOrderRef extracts the numeric order id from user input.
// Both plain ids ("42") and full references ("#ECO-000042") are
// accepted: every non-digit character is stripped before parsing.
func ParseOrderRef(s string) (int, bool) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	var id int
	if _, err := fmt.Sscanf(digits.String(), "%d", &id); err != nil {
		return 0, false
	}
	return id, true
}
