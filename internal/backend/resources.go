package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/erazemk/blagajna/internal/model"
)

// Products lists all products.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// ListProducts lists all products, returning an empty list if the backend
// fails.
func (c *Client) ListProducts(ctx context.Context) []model.Product {
	products, err := c.Products(ctx)
	if err != nil {
		slog.Warn("listing products failed", "error", err)
		return []model.Product{}
	}
	return products
}

// Product fetches a single product.
func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	var created model.Product
	if err := c.do(ctx, http.MethodPost, "/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product and returns the stored record.
func (c *Client) UpdateProduct(ctx context.Context, id string, p model.Product) (*model.Product, error) {
	var updated model.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

// Customers lists all customers.
func (c *Client) Customers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}

// ListCustomers lists all customers, returning an empty list if the backend
// fails.
func (c *Client) ListCustomers(ctx context.Context) []model.Customer {
	customers, err := c.Customers(ctx)
	if err != nil {
		slog.Warn("listing customers failed", "error", err)
		return []model.Customer{}
	}
	return customers
}

// Customer fetches a single customer.
func (c *Client) Customer(ctx context.Context, id string) (*model.Customer, error) {
	var cu model.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), nil, &cu); err != nil {
		return nil, err
	}
	return &cu, nil
}

// CreateCustomer creates a customer and returns the stored record.
func (c *Client) CreateCustomer(ctx context.Context, cu model.Customer) (*model.Customer, error) {
	var created model.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", cu, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomer replaces a customer and returns the stored record.
func (c *Client) UpdateCustomer(ctx context.Context, id string, cu model.Customer) (*model.Customer, error) {
	var updated model.Customer
	if err := c.do(ctx, http.MethodPut, "/customers/"+url.PathEscape(id), cu, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomer deletes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), nil, nil)
}

// Orders lists all orders.
func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// ListOrders lists all orders, returning an empty list if the backend fails.
func (c *Client) ListOrders(ctx context.Context) []model.Order {
	orders, err := c.Orders(ctx)
	if err != nil {
		slog.Warn("listing orders failed", "error", err)
		return []model.Order{}
	}
	return orders
}

// Order fetches a single order.
func (c *Client) Order(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder creates an order and returns the stored record.
func (c *Client) CreateOrder(ctx context.Context, o model.Order) (*model.Order, error) {
	var created model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", o, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
