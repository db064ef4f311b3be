// Package report derives sales figures from order, customer and product
// listings.
package report

import (
	"cmp"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/erazemk/blagajna/internal/model"
)

// Summary holds the headline numbers for the dashboard and reports page.
type Summary struct {
	Revenue    float64
	Average    float64
	Median     float64
	Orders     int
	Customers  int
	Products   int
	StockUnits int
	LowStock   int
	OutOfStock int
}

// Summarize computes the headline numbers. Failed orders are counted but do
// not add to revenue.
func Summarize(orders []model.Order, customers []model.Customer, products []model.Product) Summary {
	s := Summary{
		Orders:    len(orders),
		Customers: len(customers),
		Products:  len(products),
	}

	totals := saleTotals(orders)
	s.Revenue, _ = stats.Sum(totals)
	s.Average, _ = stats.Mean(totals)
	s.Median, _ = stats.Median(totals)

	for _, p := range products {
		if p.Stock > 0 {
			s.StockUnits += p.Stock
		}
		switch p.Status() {
		case model.LowStock:
			s.LowStock++
		case model.OutOfStock:
			s.OutOfStock++
		}
	}
	return s
}

func saleTotals(orders []model.Order) stats.Float64Data {
	totals := make(stats.Float64Data, 0, len(orders))
	for _, o := range orders {
		if o.Status == model.OrderFailed {
			continue
		}
		totals = append(totals, o.Total)
	}
	return totals
}

// DaySales is the revenue of one calendar day.
type DaySales struct {
	Day     string
	Sales   float64
	Orders  int
	Percent float64 // of the best day in the series
}

// DailySales groups orders by day and returns the last days entries in
// ascending order. Orders without a usable date and failed orders are
// skipped.
func DailySales(orders []model.Order, days int) []DaySales {
	byDay := make(map[string]*DaySales)
	for _, o := range orders {
		day := o.Day()
		if day == "" || o.Status == model.OrderFailed {
			continue
		}
		d, ok := byDay[day]
		if !ok {
			d = &DaySales{Day: day}
			byDay[day] = d
		}
		d.Sales += o.Total
		d.Orders++
	}

	out := make([]DaySales, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b DaySales) int { return cmp.Compare(a.Day, b.Day) })
	if days > 0 && len(out) > days {
		out = out[len(out)-days:]
	}

	sales := make(stats.Float64Data, len(out))
	for i, d := range out {
		sales[i] = d.Sales
	}
	best, _ := stats.Max(sales)
	for i := range out {
		out[i].Percent = percent(out[i].Sales, best)
	}
	return out
}

// ProductSales is one product's share of sales.
type ProductSales struct {
	ProductID string
	Name      string
	Units     int
	Revenue   float64
	Percent   float64 // of the top product's revenue
}

// TopProducts ranks products by revenue from order lines and returns at most
// n of them. Names come from products, falling back to the product ID.
func TopProducts(orders []model.Order, products []model.Product, n int) []ProductSales {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	byID := make(map[string]*ProductSales)
	for _, o := range orders {
		if o.Status == model.OrderFailed {
			continue
		}
		for _, it := range o.Items {
			ps, ok := byID[it.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: it.ProductID, Name: cmp.Or(names[it.ProductID], it.ProductID)}
				byID[it.ProductID] = ps
			}
			ps.Units += it.Quantity
			ps.Revenue += it.Price * float64(it.Quantity)
		}
	}

	out := make([]ProductSales, 0, len(byID))
	for _, ps := range byID {
		out = append(out, *ps)
	}
	slices.SortFunc(out, func(a, b ProductSales) int {
		return cmp.Or(cmp.Compare(b.Revenue, a.Revenue), cmp.Compare(a.Name, b.Name))
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	if len(out) > 0 {
		for i := range out {
			out[i].Percent = percent(out[i].Revenue, out[0].Revenue)
		}
	}
	return out
}

// Recent returns the n most recent orders, newest first. Orders without a
// date sort last and ties keep their listing order.
func Recent(orders []model.Order, n int) []model.Order {
	out := slices.Clone(orders)
	slices.SortStableFunc(out, func(a, b model.Order) int {
		return b.OrderedAt().Compare(a.OrderedAt())
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func percent(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max * 100
}
