package web

import (
	"log/slog"
	"net/http"

	"github.com/gocarina/gocsv"

	"github.com/erazemk/blagajna/internal/catalog"
	"github.com/erazemk/blagajna/internal/model"
)

func orderFilters(r *http.Request) (status, method string) {
	status, method = r.URL.Query().Get("status"), r.URL.Query().Get("method")
	if status == "" {
		status = model.FilterAll
	}
	if method == "" {
		method = model.FilterAll
	}
	return status, method
}

// OrdersPage handles GET /orders.
func (s *Server) OrdersPage(w http.ResponseWriter, r *http.Request) {
	status, method := orderFilters(r)
	orders := catalog.FilterOrders(s.Catalog.Orders(r.Context()), status, method)

	s.Templates.Render(w, "orders.html", &struct {
		PageData
		Status   string
		Method   string
		Statuses []string
		Methods  []string
		Orders   []model.Order
	}{
		PageData: s.page(r, "orders", "orders"),
		Status:   status,
		Method:   method,
		Statuses: append([]string{model.FilterAll}, model.OrderStatuses...),
		Methods:  append([]string{model.FilterAll}, model.PaymentMethods...),
		Orders:   orders,
	})
}

type orderLine struct {
	model.OrderItem
	Name string
}

// OrderDetailPage handles GET /orders/{id}.
func (s *Server) OrderDetailPage(w http.ResponseWriter, r *http.Request) {
	o, err := s.Catalog.Order(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
		return
	}

	names := make(map[string]string)
	for _, p := range s.Catalog.Products(r.Context()) {
		names[p.ID] = p.Name
	}
	lines := make([]orderLine, len(o.Items))
	for i, it := range o.Items {
		lines[i] = orderLine{OrderItem: it, Name: names[it.ProductID]}
		if lines[i].Name == "" {
			lines[i].Name = it.ProductID
		}
	}

	data := s.page(r, "viewOrder", "orders")
	data.Title = data.T("orderID") + " " + o.ID
	s.Templates.Render(w, "order_detail.html", &struct {
		PageData
		Order *model.Order
		Lines []orderLine
	}{PageData: data, Order: o, Lines: lines})
}

// orderRow is one line of the orders CSV export.
type orderRow struct {
	ID            string  `csv:"id"`
	Date          string  `csv:"date"`
	Customer      string  `csv:"customer"`
	Items         int     `csv:"items"`
	Tax           float64 `csv:"tax"`
	Total         float64 `csv:"total"`
	PaymentMethod string  `csv:"payment_method"`
	Status        string  `csv:"status"`
}

func exportRows(orders []model.Order) []orderRow {
	rows := make([]orderRow, len(orders))
	for i, o := range orders {
		units := 0
		for _, it := range o.Items {
			units += it.Quantity
		}
		rows[i] = orderRow{
			ID:            o.ID,
			Date:          o.Day(),
			Customer:      o.CustomerLabel(),
			Items:         units,
			Tax:           o.Tax,
			Total:         o.Total,
			PaymentMethod: o.PaymentMethod,
			Status:        o.Status,
		}
	}
	return rows
}

// OrdersExport handles GET /orders/export. The same filters as the order
// table apply.
func (s *Server) OrdersExport(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	status, method := orderFilters(r)
	orders := catalog.FilterOrders(s.Catalog.Orders(r.Context()), status, method)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	if err := gocsv.Marshal(exportRows(orders), w); err != nil {
		slog.Error("failed to write orders export", "error", err)
		return
	}
	slog.Info("orders exported", "user", claims.Email, "orders", len(orders), "status", status, "method", method)
}
