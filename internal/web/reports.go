package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/report"
)

const (
	trendDays   = 7
	topProducts = 5
)

// ReportsPage handles GET /reports.
func (s *Server) ReportsPage(w http.ResponseWriter, r *http.Request) {
	var (
		products  []model.Product
		customers []model.Customer
		orders    []model.Order
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { products = s.Catalog.Products(ctx); return nil })
	g.Go(func() error { customers = s.Catalog.Customers(ctx); return nil })
	g.Go(func() error { orders = s.Catalog.Orders(ctx); return nil })
	_ = g.Wait()

	s.Templates.Render(w, "reports.html", &struct {
		PageData
		Summary report.Summary
		Trend   []report.DaySales
		Top     []report.ProductSales
	}{
		PageData: s.page(r, "reports", "reports"),
		Summary:  report.Summarize(orders, customers, products),
		Trend:    report.DailySales(orders, trendDays),
		Top:      report.TopProducts(orders, products, topProducts),
	})
}
