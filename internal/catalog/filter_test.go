package catalog

import (
	"slices"
	"testing"

	"github.com/erazemk/blagajna/internal/model"
)

func TestFilterProducts(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		query, category string
		want            []string
	}{
		{"", "", productIDs(products)},
		{"", "All", productIDs(products)},
		{"coffee", "", []string{"4", "9"}},
		{"COFFEE", "Supplies", []string{"9"}},
		{"bever", "", []string{"4", "6"}},
		{"", "Electronics", []string{"1", "2", "3"}},
		{"  mouse ", "All", []string{"2"}},
		{"", "electronics", []string{}},
	}
	for _, tt := range tests {
		got := productIDs(FilterProducts(products, tt.query, tt.category))
		if !slices.Equal(got, tt.want) {
			t.Errorf("FilterProducts(%q, %q) = %v, want %v", tt.query, tt.category, got, tt.want)
		}
	}
}

func TestCategories(t *testing.T) {
	got := Categories(fixtureProducts())
	want := []string{"Electronics", "Beverages", "Accessories", "Equipment", "Supplies"}
	if !slices.Equal(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestPartitionProducts(t *testing.T) {
	products := append(fixtureProducts(), model.Product{ID: "neg", Stock: -2})
	b := PartitionProducts(products)

	if n := len(b.InStock) + len(b.LowStock) + len(b.OutOfStock); n != len(products) {
		t.Fatalf("buckets hold %d products, want %d", n, len(products))
	}
	if got := productIDs(b.InStock); !slices.Equal(got, []string{"2", "4", "6", "8"}) {
		t.Errorf("in stock = %v", got)
	}
	if got := productIDs(b.LowStock); !slices.Equal(got, []string{"1", "5", "7"}) {
		t.Errorf("low stock = %v", got)
	}
	if got := productIDs(b.OutOfStock); !slices.Equal(got, []string{"3", "9", "neg"}) {
		t.Errorf("out of stock = %v", got)
	}
}

func TestPartitionCustomers(t *testing.T) {
	customers := append(fixtureCustomers(),
		model.Customer{ID: "4", TotalPurchases: 11},
		model.Customer{ID: "5"},
	)
	b := PartitionCustomers(customers)
	id := func(c model.Customer) string { return c.ID }

	if got := ids(b.VIP, id); !slices.Equal(got, []string{"4"}) {
		t.Errorf("vip = %v", got)
	}
	if got := ids(b.Regular, id); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("regular = %v", got)
	}
	if got := ids(b.New, id); !slices.Equal(got, []string{"5"}) {
		t.Errorf("new = %v", got)
	}
}

func TestFilterOrders(t *testing.T) {
	orders := fixtureOrders()
	id := func(o model.Order) string { return o.ID }

	tests := []struct {
		status, method string
		want           []string
	}{
		{"All", "All", []string{"ORD-001", "ORD-002", "ORD-003"}},
		{"Completed", "All", []string{"ORD-001", "ORD-002"}},
		{"All", "Mobile", []string{"ORD-003"}},
		{"Completed", "Cash", []string{"ORD-002"}},
		{"Failed", "", []string{}},
	}
	for _, tt := range tests {
		got := ids(FilterOrders(orders, tt.status, tt.method), id)
		if !slices.Equal(got, tt.want) {
			t.Errorf("FilterOrders(%q, %q) = %v, want %v", tt.status, tt.method, got, tt.want)
		}
	}
}
