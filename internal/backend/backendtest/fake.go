// Package backendtest provides an in-memory stand-in for the POS REST API.
package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/erazemk/blagajna/internal/model"
)

// Fake is an in-memory backend served over HTTP. Its API root is URL.
type Fake struct {
	URL string

	mu        sync.Mutex
	down      bool
	nextID    int
	products  []model.Product
	customers []model.Customer
	orders    []model.Order
}

// New starts a fake backend that is closed when the test ends.
func New(t *testing.T) *Fake {
	t.Helper()

	f := &Fake{nextID: 100}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", f.guard(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	mux.HandleFunc("GET /api/products", f.guard(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.products)
	}))
	mux.HandleFunc("GET /api/products/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		i := slices.IndexFunc(f.products, func(p model.Product) bool { return p.ID == r.PathValue("id") })
		if i < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		writeJSON(w, http.StatusOK, f.products[i])
	}))
	mux.HandleFunc("POST /api/products", f.guard(func(w http.ResponseWriter, r *http.Request) {
		var p model.Product
		if !decode(w, r, &p) {
			return
		}
		p.ID = f.newID()
		f.products = append(f.products, p)
		writeJSON(w, http.StatusCreated, p)
	}))
	mux.HandleFunc("PUT /api/products/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		var p model.Product
		if !decode(w, r, &p) {
			return
		}
		i := slices.IndexFunc(f.products, func(x model.Product) bool { return x.ID == r.PathValue("id") })
		if i < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		p.ID = r.PathValue("id")
		f.products[i] = p
		writeJSON(w, http.StatusOK, p)
	}))
	mux.HandleFunc("DELETE /api/products/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		n := len(f.products)
		f.products = slices.DeleteFunc(f.products, func(p model.Product) bool { return p.ID == r.PathValue("id") })
		if len(f.products) == n {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
	}))

	mux.HandleFunc("GET /api/customers", f.guard(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.customers)
	}))
	mux.HandleFunc("GET /api/customers/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		i := slices.IndexFunc(f.customers, func(c model.Customer) bool { return c.ID == r.PathValue("id") })
		if i < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Customer not found"})
			return
		}
		writeJSON(w, http.StatusOK, f.customers[i])
	}))
	mux.HandleFunc("POST /api/customers", f.guard(func(w http.ResponseWriter, r *http.Request) {
		var c model.Customer
		if !decode(w, r, &c) {
			return
		}
		c.ID = f.newID()
		f.customers = append(f.customers, c)
		writeJSON(w, http.StatusCreated, c)
	}))
	mux.HandleFunc("PUT /api/customers/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		var c model.Customer
		if !decode(w, r, &c) {
			return
		}
		i := slices.IndexFunc(f.customers, func(x model.Customer) bool { return x.ID == r.PathValue("id") })
		if i < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Customer not found"})
			return
		}
		c.ID = r.PathValue("id")
		f.customers[i] = c
		writeJSON(w, http.StatusOK, c)
	}))
	mux.HandleFunc("DELETE /api/customers/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		n := len(f.customers)
		f.customers = slices.DeleteFunc(f.customers, func(c model.Customer) bool { return c.ID == r.PathValue("id") })
		if len(f.customers) == n {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Customer not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
	}))

	mux.HandleFunc("GET /api/orders", f.guard(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.orders)
	}))
	mux.HandleFunc("GET /api/orders/{id}", f.guard(func(w http.ResponseWriter, r *http.Request) {
		i := slices.IndexFunc(f.orders, func(o model.Order) bool { return o.ID == r.PathValue("id") })
		if i < 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
			return
		}
		writeJSON(w, http.StatusOK, f.orders[i])
	}))
	mux.HandleFunc("POST /api/orders", f.guard(func(w http.ResponseWriter, r *http.Request) {
		var o model.Order
		if !decode(w, r, &o) {
			return
		}
		o.ID = "ORD-" + f.newID()
		if o.Status == "" {
			o.Status = model.OrderCompleted
		}
		f.orders = append(f.orders, o)
		writeJSON(w, http.StatusCreated, o)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	f.URL = srv.URL + "/api"
	return f
}

// guard serializes handlers and fails every request while the fake is down.
func (f *Fake) guard(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.down {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "backend unavailable"})
			return
		}
		h(w, r)
	}
}

// SetDown makes every request fail with 503 until called with false.
func (f *Fake) SetDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

// AddProduct seeds a product.
func (f *Fake) AddProduct(p model.Product) {
	f.mu.Lock()
	f.products = append(f.products, p)
	f.mu.Unlock()
}

// AddCustomer seeds a customer.
func (f *Fake) AddCustomer(c model.Customer) {
	f.mu.Lock()
	f.customers = append(f.customers, c)
	f.mu.Unlock()
}

// AddOrder seeds an order.
func (f *Fake) AddOrder(o model.Order) {
	f.mu.Lock()
	f.orders = append(f.orders, o)
	f.mu.Unlock()
}

// Products returns a copy of the stored products.
func (f *Fake) Products() []model.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.products)
}

// Customers returns a copy of the stored customers.
func (f *Fake) Customers() []model.Customer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.customers)
}

// Orders returns a copy of the stored orders.
func (f *Fake) Orders() []model.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.orders)
}

func (f *Fake) newID() string {
	f.nextID++
	return strconv.Itoa(f.nextID)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
