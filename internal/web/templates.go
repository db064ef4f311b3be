package web

import (
	"context"
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/erazemk/blagajna/internal/auth"
	"github.com/erazemk/blagajna/internal/cart"
	"github.com/erazemk/blagajna/internal/catalog"
	"github.com/erazemk/blagajna/internal/i18n"
	"github.com/erazemk/blagajna/internal/model"
	webembed "github.com/erazemk/blagajna/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"roleAtLeast": model.RoleAtLeast,
		"stockClass": func(p model.Product) string {
			switch p.Status() {
			case model.InStock:
				return "badge-ok"
			case model.LowStock:
				return "badge-warn"
			default:
				return "badge-bad"
			}
		},
		"stockKey": func(p model.Product) string {
			switch p.Status() {
			case model.InStock:
				return "inStock"
			case model.LowStock:
				return "lowStock"
			default:
				return "outOfStock"
			}
		},
		"segmentClass": func(c model.Customer) string {
			switch c.Segment() {
			case model.SegmentVIP:
				return "badge-vip"
			case model.SegmentRegular:
				return "badge-ok"
			default:
				return "badge-muted"
			}
		},
		"statusClass": func(status string) string {
			switch status {
			case model.OrderCompleted:
				return "badge-ok"
			case model.OrderPending:
				return "badge-warn"
			case model.OrderFailed:
				return "badge-bad"
			default:
				return "badge-muted"
			}
		},
		"methodKey": func(method string) string {
			switch method {
			case model.MethodCard:
				return "card"
			case model.MethodMobile:
				return "mobile"
			default:
				return "cash"
			}
		},
		// arr packs values for sub-templates that need the page and an item.
		"arr": func(v ...any) []any { return v },
		"width": func(percent float64) string {
			return fmt.Sprintf("%.0f%%", percent)
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"dashboard.html",
		"pos.html",
		"payment.html",
		"products.html",
		"product_edit.html",
		"customers.html",
		"customer_edit.html",
		"orders.html",
		"order_detail.html",
		"reports.html",
		"settings.html",
		"users.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	ts.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders a template with a non-default status code.
func (ts *Templates) RenderStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title    string
	Active   string
	User     *auth.Claims
	Lang     string
	Dir      string
	Currency string
	Error    string
	Success  string

	locale i18n.Locale
}

// T translates key into the page locale.
func (p PageData) T(key string) string {
	return i18n.Translate(p.locale, key)
}

// Money formats an amount in the active currency.
func (p PageData) Money(amount float64) string {
	return i18n.FormatMoney(p.Currency, amount)
}

// Can reports whether the signed-in user holds at least role.
func (p PageData) Can(role string) bool {
	return p.User != nil && model.RoleAtLeast(p.User.Role, role)
}

// Lister is the degrading list surface of the backend client.
type Lister interface {
	ListProducts(ctx context.Context) []model.Product
	ListCustomers(ctx context.Context) []model.Customer
	ListOrders(ctx context.Context) []model.Order
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *sql.DB
	Templates *Templates
	JWTSecret string
	Backend   Lister
	Catalog   *catalog.Catalog
	Carts     *cart.Registry
	Prefs     *i18n.State
}

// page builds the common page data. titleKey is translated, and notices
// passed back through a redirect are picked up from the query string.
func (s *Server) page(r *http.Request, titleKey, active string) PageData {
	l := s.Prefs.Locale()
	p := PageData{
		Active:   active,
		User:     GetWebClaims(r.Context()),
		Lang:     string(l),
		Dir:      l.Dir(),
		Currency: s.Prefs.Currency(),
		locale:   l,
	}
	p.Title = p.T(titleKey)
	q := r.URL.Query()
	if k := q.Get("notice"); k != "" && p.T(k) != k {
		p.Success = p.T(k)
	}
	if k := q.Get("error"); k != "" && p.T(k) != k {
		p.Error = p.T(k)
	}
	return p
}
