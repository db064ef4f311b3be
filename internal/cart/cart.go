// Package cart holds the POS cart and the payment arithmetic.
package cart

import (
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/erazemk/blagajna/internal/model"
)

// TaxRate is applied to every sale. It is fixed and does not follow the tax
// rate stored in settings.
const TaxRate = 0.10

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientAmount = errors.New("amount given is less than total")
	ErrUnknownMethod      = errors.New("unknown payment method")
)

// Item is one cart line.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// LineTotal returns price times quantity.
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is a session's cart. It is safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// Add puts one unit of p in the cart. An existing line is incremented,
// otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Image:    p.Image,
	})
}

// SetQuantity sets a line's quantity. A quantity of zero or less removes it.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(id); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// Remove drops a line.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.DeleteFunc(c.items, func(it Item) bool { return it.ID == id })
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Totals returns the cart totals.
func (c *Cart) Totals() Totals {
	return Compute(c.Items())
}

// Checkout validates payment and builds the order for the cart. The cart is
// left untouched; callers clear it once the order is stored.
func (c *Cart) Checkout(p Payment) (model.Order, error) {
	items := c.Items()
	q := Quote(Compute(items), p)
	if q.Units == 0 {
		return model.Order{}, ErrEmptyCart
	}
	if !q.CanConfirm {
		return model.Order{}, ErrInsufficientAmount
	}

	lines := make([]model.OrderItem, len(items))
	for i, it := range items {
		lines[i] = model.OrderItem{ProductID: it.ID, Quantity: it.Quantity, Price: it.Price}
	}
	return model.Order{
		Items:         lines,
		Total:         roundCents(q.Total),
		Tax:           roundCents(q.Tax),
		PaymentMethod: p.Method.OrderMethod(),
		Status:        model.OrderCompleted,
	}, nil
}

func (c *Cart) index(id string) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ID == id })
}

// Totals are the sums for a set of lines.
type Totals struct {
	Units    int     `json:"units"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute sums items and applies TaxRate.
func Compute(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Units += it.Quantity
		t.Subtotal += it.LineTotal()
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Tax
	return t
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
