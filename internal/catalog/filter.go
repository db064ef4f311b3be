package catalog

import (
	"strings"

	"github.com/erazemk/blagajna/internal/model"
)

// FilterProducts returns the products whose name or category contains query,
// ignoring case, and whose category equals category. An empty query matches
// everything, as does an empty or "All" category.
func FilterProducts(products []model.Product, query, category string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		if category != "" && category != model.FilterAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct product categories in order of first
// appearance.
func Categories(products []model.Product) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats
}

// ProductBuckets partitions products by stock status.
type ProductBuckets struct {
	InStock    []model.Product
	LowStock   []model.Product
	OutOfStock []model.Product
}

// PartitionProducts splits products into stock buckets, keeping their order.
func PartitionProducts(products []model.Product) ProductBuckets {
	var b ProductBuckets
	for _, p := range products {
		switch p.Status() {
		case model.InStock:
			b.InStock = append(b.InStock, p)
		case model.LowStock:
			b.LowStock = append(b.LowStock, p)
		default:
			b.OutOfStock = append(b.OutOfStock, p)
		}
	}
	return b
}

// CustomerBuckets partitions customers by segment.
type CustomerBuckets struct {
	VIP     []model.Customer
	Regular []model.Customer
	New     []model.Customer
}

// PartitionCustomers splits customers into segments, keeping their order.
func PartitionCustomers(customers []model.Customer) CustomerBuckets {
	var b CustomerBuckets
	for _, c := range customers {
		switch c.Segment() {
		case model.SegmentVIP:
			b.VIP = append(b.VIP, c)
		case model.SegmentRegular:
			b.Regular = append(b.Regular, c)
		default:
			b.New = append(b.New, c)
		}
	}
	return b
}

// FilterOrders returns the orders matching status and payment method. An
// empty or "All" value disables that filter.
func FilterOrders(orders []model.Order, status, method string) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && status != model.FilterAll && o.Status != status {
			continue
		}
		if method != "" && method != model.FilterAll && o.PaymentMethod != method {
			continue
		}
		out = append(out, o)
	}
	return out
}
