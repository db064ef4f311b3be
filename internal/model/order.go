package model

import (
	"time"

	"github.com/araddon/dateparse"
)

// Order is a completed or pending sale owned by the backend.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customer_id,omitempty"`
	Customer      string      `json:"customer,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	Total         float64     `json:"total"`
	Tax           float64     `json:"tax"`
	PaymentMethod string      `json:"payment_method"`
	Status        string      `json:"status"`
	Date          string      `json:"date,omitempty"`
	CreatedAt     string      `json:"created_at,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order statuses.
const (
	OrderCompleted = "Completed"
	OrderPending   = "Pending"
	OrderFailed    = "Failed"
)

// OrderStatuses lists the order statuses in display order.
var OrderStatuses = []string{OrderCompleted, OrderPending, OrderFailed}

// Payment methods as stored on orders.
const (
	MethodCash   = "Cash"
	MethodCard   = "Card"
	MethodMobile = "Mobile"
)

// PaymentMethods lists the payment methods in display order.
var PaymentMethods = []string{MethodCash, MethodCard, MethodMobile}

// FilterAll disables a list filter.
const FilterAll = "All"

// OrderedAt returns when the order was placed. The backend sends RFC 3339
// created_at values while older records only carry a calendar date, so both
// are accepted. Values without a zone are read as UTC. The zero time is
// returned when neither parses.
func (o Order) OrderedAt() time.Time {
	for _, s := range []string{o.CreatedAt, o.Date} {
		if s == "" {
			continue
		}
		if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Day returns the order date formatted as YYYY-MM-DD, or "" if unknown.
func (o Order) Day() string {
	t := o.OrderedAt()
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// CustomerLabel returns the customer name, falling back to the customer ID.
func (o Order) CustomerLabel() string {
	if o.Customer != "" {
		return o.Customer
	}
	return o.CustomerID
}
