package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/report"
)

// recentOrders is the number of orders listed on the dashboard.
const recentOrders = 5

// Dashboard handles GET /. The lists come from the degrading client calls,
// so an unreachable backend shows zeros rather than sample data.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		products  []model.Product
		customers []model.Customer
		orders    []model.Order
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { products = s.Backend.ListProducts(ctx); return nil })
	g.Go(func() error { customers = s.Backend.ListCustomers(ctx); return nil })
	g.Go(func() error { orders = s.Backend.ListOrders(ctx); return nil })
	_ = g.Wait()

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Summary report.Summary
		Recent  []model.Order
	}{
		PageData: s.page(r, "dashboard", "dashboard"),
		Summary:  report.Summarize(orders, customers, products),
		Recent:   report.Recent(orders, recentOrders),
	})
}
