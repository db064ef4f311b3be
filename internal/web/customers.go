package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/blagajna/internal/catalog"
	"github.com/erazemk/blagajna/internal/model"
)

// CustomersPage handles GET /customers.
func (s *Server) CustomersPage(w http.ResponseWriter, r *http.Request) {
	customers := s.Catalog.Customers(r.Context())

	s.Templates.Render(w, "customers.html", &struct {
		PageData
		View      string
		Customers []model.Customer
		Buckets   catalog.CustomerBuckets
	}{
		PageData:  s.page(r, "customers", "customers"),
		View:      listView(r),
		Customers: customers,
		Buckets:   catalog.PartitionCustomers(customers),
	})
}

// customerFromForm reads the contact fields. Name and email are required.
func customerFromForm(r *http.Request) (model.Customer, bool) {
	c := model.Customer{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Phone:   strings.TrimSpace(r.FormValue("phone")),
		Address: strings.TrimSpace(r.FormValue("address")),
	}
	return c, c.Name != "" && c.Email != ""
}

// CustomerCreateSubmit handles POST /customers.
func (s *Server) CustomerCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())

	c, ok := customerFromForm(r)
	if !ok {
		redirectNotice(w, r, "/customers", "error", "requiredFields")
		return
	}

	created, err := s.Catalog.CreateCustomer(r.Context(), c)
	if err != nil {
		slog.Error("failed to create customer", "error", err)
		redirectNotice(w, r, "/customers", "error", "backendUnavailable")
		return
	}

	slog.Info("customer created", "user", claims.Email, "customer", created.Name, "id", created.ID)
	redirectNotice(w, r, "/customers", "notice", "saved")
}

// CustomerEditPage handles GET /customers/{id}.
func (s *Server) CustomerEditPage(w http.ResponseWriter, r *http.Request) {
	c, err := s.Catalog.Customer(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
		return
	}

	data := s.page(r, "editCustomer", "customers")
	data.Title = c.Name
	s.Templates.Render(w, "customer_edit.html", &struct {
		PageData
		Customer *model.Customer
	}{PageData: data, Customer: c})
}

// CustomerUpdateSubmit handles POST /customers/{id}. Purchase totals are
// kept from the current record.
func (s *Server) CustomerUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")
	back := "/customers/" + id

	c, ok := customerFromForm(r)
	if !ok {
		redirectNotice(w, r, back, "error", "requiredFields")
		return
	}

	current, err := s.Catalog.Customer(r.Context(), id)
	if err != nil {
		http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
		return
	}
	c.ID = id
	c.TotalPurchases = current.TotalPurchases
	c.TotalSpent = current.TotalSpent
	c.CreatedAt = current.CreatedAt

	if _, err := s.Catalog.UpdateCustomer(r.Context(), id, c); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
			return
		}
		slog.Error("failed to update customer", "id", id, "error", err)
		redirectNotice(w, r, back, "error", "backendUnavailable")
		return
	}

	slog.Info("customer updated", "user", claims.Email, "customer", c.Name, "id", id)
	redirectNotice(w, r, back, "notice", "saved")
}

// CustomerDeleteSubmit handles POST /customers/{id}/delete.
func (s *Server) CustomerDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	if err := s.Catalog.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
			return
		}
		slog.Error("failed to delete customer", "id", id, "error", err)
		redirectNotice(w, r, "/customers/"+id, "error", "backendUnavailable")
		return
	}

	slog.Info("customer deleted", "user", claims.Email, "id", id)
	redirectNotice(w, r, "/customers", "notice", "deleted")
}
