package web

import (
	"net/http"

	webembed "github.com/erazemk/blagajna/web"
)

// NewRouter creates the web page router with all page routes registered.
// Templates are loaded unless s already carries them.
func NewRouter(s *Server) (http.Handler, error) {
	if s.Templates == nil {
		templates, err := LoadTemplates()
		if err != nil {
			return nil, err
		}
		s.Templates = templates
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(s.JWTSecret, s.DB)
	page := func(h http.HandlerFunc) http.Handler { return cookieAuth(h) }

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", page(s.Dashboard))

	mux.Handle("GET /pos", page(s.POSPage))
	mux.Handle("POST /pos/cart", page(s.CartAddSubmit))
	mux.Handle("POST /pos/cart/{id}/quantity", page(s.CartQuantitySubmit))
	mux.Handle("POST /pos/cart/{id}/remove", page(s.CartRemoveSubmit))
	mux.Handle("GET /pos/payment", page(s.PaymentPage))
	mux.Handle("POST /pos/payment", page(s.PaymentSubmit))

	mux.Handle("GET /products", page(s.ProductsPage))
	mux.Handle("POST /products", page(s.ProductCreateSubmit))
	mux.Handle("GET /products/{id}", page(s.ProductEditPage))
	mux.Handle("POST /products/{id}", page(s.ProductUpdateSubmit))
	mux.Handle("POST /products/{id}/delete", page(s.ProductDeleteSubmit))
	mux.Handle("POST /products/{id}/image", page(s.ProductImageSubmit))
	mux.Handle("GET /products/{id}/image", page(s.ProductImageGet))

	mux.Handle("GET /customers", page(s.CustomersPage))
	mux.Handle("POST /customers", page(s.CustomerCreateSubmit))
	mux.Handle("GET /customers/{id}", page(s.CustomerEditPage))
	mux.Handle("POST /customers/{id}", page(s.CustomerUpdateSubmit))
	mux.Handle("POST /customers/{id}/delete", page(s.CustomerDeleteSubmit))

	mux.Handle("GET /orders", page(s.OrdersPage))
	mux.Handle("GET /orders/export", page(s.OrdersExport))
	mux.Handle("GET /orders/{id}", page(s.OrderDetailPage))

	mux.Handle("GET /reports", page(s.ReportsPage))

	mux.Handle("GET /settings", page(s.SettingsPage))
	mux.Handle("POST /settings/language", page(s.LanguageSubmit))
	mux.Handle("POST /settings/currency", page(s.CurrencySubmit))
	mux.Handle("POST /settings/tax", page(s.TaxRateSubmit))
	mux.Handle("POST /settings/password", page(s.PasswordSubmit))

	mux.Handle("GET /users", page(s.UsersPage))
	mux.Handle("POST /users", page(s.UserCreateSubmit))
	mux.Handle("POST /users/{id}/password", page(s.UserResetPasswordSubmit))
	mux.Handle("POST /users/{id}/role", page(s.UserUpdateRoleSubmit))
	mux.Handle("POST /users/{id}/delete", page(s.UserDeleteSubmit))

	return mux, nil
}
