// Package catalog is the page-facing view of the backend's products,
// customers and orders. Listings fall back to sample records when the
// backend fails, and failed mutations are handled by the configured policy.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/erazemk/blagajna/internal/backend"
	"github.com/erazemk/blagajna/internal/model"
)

// ErrNotFound is returned for records that do not exist.
var ErrNotFound = errors.New("not found")

// Policy decides what happens when the backend rejects a mutation.
type Policy string

// Mutation policies.
const (
	// Optimistic records the change locally and reports success.
	Optimistic Policy = "optimistic"
	// Strict returns the backend error and records nothing.
	Strict Policy = "strict"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case Optimistic, Strict:
		return p, nil
	}
	return "", fmt.Errorf("unknown mutation policy %q", s)
}

// Backend is the subset of the REST client the catalog needs.
type Backend interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Customers(ctx context.Context) ([]model.Customer, error)
	Customer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, c model.Customer) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, c model.Customer) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, o model.Order) (*model.Order, error)
}

// Catalog wraps a Backend with fallback data and the mutation policy.
type Catalog struct {
	backend Backend
	policy  Policy
	now     func() time.Time

	mu        sync.Mutex
	products  *overlay[model.Product]
	customers *overlay[model.Customer]
	orders    *overlay[model.Order]
}

// New returns a catalog over b using the given mutation policy.
func New(b Backend, policy Policy) *Catalog {
	return &Catalog{
		backend: b,
		policy:  policy,
		now:     time.Now,
		products: newOverlay(
			func(p model.Product) string { return p.ID },
			func(p *model.Product, id string) { p.ID = id },
		),
		customers: newOverlay(
			func(c model.Customer) string { return c.ID },
			func(c *model.Customer, id string) { c.ID = id },
		),
		orders: newOverlay(
			func(o model.Order) string { return o.ID },
			func(o *model.Order, id string) { o.ID = id },
		),
	}
}

// Policy returns the active mutation policy.
func (c *Catalog) Policy() Policy {
	return c.policy
}

// keepLocally reports whether a failed mutation is recorded in the overlay.
// Records the client could not encode are never kept.
func (c *Catalog) keepLocally(err error) bool {
	return c.policy == Optimistic && !errors.Is(err, backend.ErrEncoding)
}

// Products lists products. Backend failures are logged and replaced by the
// sample products.
func (c *Catalog) Products(ctx context.Context) []model.Product {
	list, err := c.backend.Products(ctx)
	if err != nil {
		slog.Warn("fetching products failed, using sample data", "error", err)
		list = fixtureProducts()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products.apply(list)
}

// Product returns one product. If the backend lookup fails the product is
// searched in the listing, which includes local changes and sample data.
func (c *Catalog) Product(ctx context.Context, id string) (*model.Product, error) {
	c.mu.Lock()
	rec, found, gone := c.products.find(id)
	c.mu.Unlock()
	if gone {
		return nil, ErrNotFound
	}
	if found {
		return &rec, nil
	}

	p, err := c.backend.Product(ctx, id)
	if err == nil {
		return p, nil
	}
	list := c.Products(ctx)
	if i := slices.IndexFunc(list, func(p model.Product) bool { return p.ID == id }); i >= 0 {
		return &list[i], nil
	}
	return nil, ErrNotFound
}

// CreateProduct creates a product.
func (c *Catalog) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	created, err := c.backend.CreateProduct(ctx, p)
	if err == nil {
		return created, nil
	}
	if !c.keepLocally(err) {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	local := c.products.create(p)
	slog.Warn("backend rejected product create, kept locally", "id", local.ID, "error", err)
	return &local, nil
}

// UpdateProduct replaces product id.
func (c *Catalog) UpdateProduct(ctx context.Context, id string, p model.Product) (*model.Product, error) {
	if IsLocal(id) {
		return updateLocal(&c.mu, c.products, id, p)
	}

	updated, err := c.backend.UpdateProduct(ctx, id, p)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		c.products.clear(id)
		return updated, nil
	}
	if !c.keepLocally(err) {
		return nil, fmt.Errorf("updating product %s: %w", id, err)
	}

	rec, _ := c.products.update(id, p)
	slog.Warn("backend rejected product update, kept locally", "id", id, "error", err)
	return &rec, nil
}

// DeleteProduct deletes product id.
func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	if IsLocal(id) {
		return removeLocal(&c.mu, c.products, id)
	}

	err := c.backend.DeleteProduct(ctx, id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		c.products.clear(id)
		return nil
	}
	if !c.keepLocally(err) {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}

	c.products.remove(id)
	slog.Warn("backend rejected product delete, hidden locally", "id", id, "error", err)
	return nil
}

// Customers lists customers. Backend failures are logged and replaced by the
// sample customers.
func (c *Catalog) Customers(ctx context.Context) []model.Customer {
	list, err := c.backend.Customers(ctx)
	if err != nil {
		slog.Warn("fetching customers failed, using sample data", "error", err)
		list = fixtureCustomers()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customers.apply(list)
}

// Customer returns one customer.
func (c *Catalog) Customer(ctx context.Context, id string) (*model.Customer, error) {
	c.mu.Lock()
	rec, found, gone := c.customers.find(id)
	c.mu.Unlock()
	if gone {
		return nil, ErrNotFound
	}
	if found {
		return &rec, nil
	}

	cu, err := c.backend.Customer(ctx, id)
	if err == nil {
		return cu, nil
	}
	list := c.Customers(ctx)
	if i := slices.IndexFunc(list, func(cu model.Customer) bool { return cu.ID == id }); i >= 0 {
		return &list[i], nil
	}
	return nil, ErrNotFound
}

// CreateCustomer creates a customer. New customers start without purchases.
func (c *Catalog) CreateCustomer(ctx context.Context, cu model.Customer) (*model.Customer, error) {
	cu.TotalPurchases = 0
	cu.TotalSpent = 0
	if cu.CreatedAt == "" {
		cu.CreatedAt = c.now().UTC().Format(time.RFC3339)
	}

	created, err := c.backend.CreateCustomer(ctx, cu)
	if err == nil {
		return created, nil
	}
	if !c.keepLocally(err) {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	local := c.customers.create(cu)
	slog.Warn("backend rejected customer create, kept locally", "id", local.ID, "error", err)
	return &local, nil
}

// UpdateCustomer replaces customer id.
func (c *Catalog) UpdateCustomer(ctx context.Context, id string, cu model.Customer) (*model.Customer, error) {
	if IsLocal(id) {
		return updateLocal(&c.mu, c.customers, id, cu)
	}

	updated, err := c.backend.UpdateCustomer(ctx, id, cu)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		c.customers.clear(id)
		return updated, nil
	}
	if !c.keepLocally(err) {
		return nil, fmt.Errorf("updating customer %s: %w", id, err)
	}

	rec, _ := c.customers.update(id, cu)
	slog.Warn("backend rejected customer update, kept locally", "id", id, "error", err)
	return &rec, nil
}

// DeleteCustomer deletes customer id.
func (c *Catalog) DeleteCustomer(ctx context.Context, id string) error {
	if IsLocal(id) {
		return removeLocal(&c.mu, c.customers, id)
	}

	err := c.backend.DeleteCustomer(ctx, id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		c.customers.clear(id)
		return nil
	}
	if !c.keepLocally(err) {
		return fmt.Errorf("deleting customer %s: %w", id, err)
	}

	c.customers.remove(id)
	slog.Warn("backend rejected customer delete, hidden locally", "id", id, "error", err)
	return nil
}

// Orders lists orders. Backend failures are logged and replaced by the
// sample orders.
func (c *Catalog) Orders(ctx context.Context) []model.Order {
	list, err := c.backend.Orders(ctx)
	if err != nil {
		slog.Warn("fetching orders failed, using sample data", "error", err)
		list = fixtureOrders()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders.apply(list)
}

// Order returns one order.
func (c *Catalog) Order(ctx context.Context, id string) (*model.Order, error) {
	c.mu.Lock()
	rec, found, _ := c.orders.find(id)
	c.mu.Unlock()
	if found {
		return &rec, nil
	}

	o, err := c.backend.Order(ctx, id)
	if err == nil {
		return o, nil
	}
	list := c.Orders(ctx)
	if i := slices.IndexFunc(list, func(o model.Order) bool { return o.ID == id }); i >= 0 {
		return &list[i], nil
	}
	return nil, ErrNotFound
}

// CreateOrder records a sale. Orders kept locally are marked completed and
// stamped with the current time.
func (c *Catalog) CreateOrder(ctx context.Context, o model.Order) (*model.Order, error) {
	if o.CreatedAt == "" {
		o.CreatedAt = c.now().UTC().Format(time.RFC3339)
	}

	created, err := c.backend.CreateOrder(ctx, o)
	if err == nil {
		return created, nil
	}
	if !c.keepLocally(err) {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	if o.Status == "" {
		o.Status = model.OrderCompleted
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	local := c.orders.create(o)
	slog.Warn("backend rejected order, kept locally", "id", local.ID, "error", err)
	return &local, nil
}

// updateLocal and removeLocal change records that only exist in the overlay.
// The backend has never seen them, so it is not called.
func updateLocal[T any](mu *sync.Mutex, o *overlay[T], id string, rec T) (*T, error) {
	mu.Lock()
	defer mu.Unlock()
	updated, ok := o.update(id, rec)
	if !ok {
		return nil, ErrNotFound
	}
	return &updated, nil
}

func removeLocal[T any](mu *sync.Mutex, o *overlay[T], id string) error {
	mu.Lock()
	defer mu.Unlock()
	if !o.remove(id) {
		return ErrNotFound
	}
	return nil
}
