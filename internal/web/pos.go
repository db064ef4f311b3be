package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"github.com/erazemk/blagajna/internal/cart"
	"github.com/erazemk/blagajna/internal/catalog"
	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/store"
)

// POSPage handles GET /pos: the product grid and the session cart.
func (s *Server) POSPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = model.FilterAll
	}

	products := s.Catalog.Products(r.Context())
	photos, err := store.HasProductImages(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list product images", "error", err)
	}

	c := s.Carts.Get(sessionID(claims))
	s.Templates.Render(w, "pos.html", &struct {
		PageData
		Query      string
		Category   string
		Categories []string
		Products   []model.Product
		Photos     map[string]bool
		Items      []cart.Item
		Totals     cart.Totals
	}{
		PageData:   s.page(r, "pos", "pos"),
		Query:      query,
		Category:   category,
		Categories: append([]string{model.FilterAll}, catalog.Categories(products)...),
		Products:   catalog.FilterProducts(products, query, category),
		Photos:     photos,
		Items:      c.Items(),
		Totals:     c.Totals(),
	})
}

// posReturn rebuilds the grid URL so cart actions keep the search state.
func posReturn(r *http.Request) string {
	q := url.Values{}
	if v := r.FormValue("q"); v != "" {
		q.Set("q", v)
	}
	if v := r.FormValue("category"); v != "" && v != model.FilterAll {
		q.Set("category", v)
	}
	if len(q) == 0 {
		return "/pos"
	}
	return "/pos?" + q.Encode()
}

// CartAddSubmit handles POST /pos/cart.
func (s *Server) CartAddSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.FormValue("id")
	if id == "" {
		http.Redirect(w, r, posReturn(r), http.StatusSeeOther)
		return
	}

	p, err := s.Catalog.Product(r.Context(), id)
	if err != nil {
		redirectNotice(w, r, posReturn(r), "error", "notFound")
		return
	}

	s.Carts.Get(sessionID(claims)).Add(*p)
	http.Redirect(w, r, posReturn(r), http.StatusSeeOther)
}

// CartQuantitySubmit handles POST /pos/cart/{id}/quantity.
func (s *Server) CartQuantitySubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	quantity, err := cast.ToIntE(r.FormValue("quantity"))
	if err != nil {
		redirectNotice(w, r, posReturn(r), "error", "invalidInput")
		return
	}

	s.Carts.Get(sessionID(claims)).SetQuantity(r.PathValue("id"), quantity)
	http.Redirect(w, r, posReturn(r), http.StatusSeeOther)
}

// CartRemoveSubmit handles POST /pos/cart/{id}/remove.
func (s *Server) CartRemoveSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Carts.Get(sessionID(claims)).Remove(r.PathValue("id"))
	http.Redirect(w, r, posReturn(r), http.StatusSeeOther)
}

type paymentData struct {
	PageData
	Items   []cart.Item
	Methods []cart.Method
	Method  cart.Method
	Amount  string
	Quote   cart.QuoteResult
}

// formNumber parses a numeric form value. NaN and infinities are rejected.
func formNumber(v string) (float64, error) {
	f, err := cast.ToFloat64E(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if !cart.Finite(f) {
		return 0, fmt.Errorf("%q is not a finite number", v)
	}
	return f, nil
}

func (s *Server) renderPayment(w http.ResponseWriter, r *http.Request, status int, c *cart.Cart, method cart.Method, amount string, errKey string) {
	given, err := formNumber(amount)
	if err != nil && amount != "" && errKey == "" {
		status, errKey = http.StatusBadRequest, "invalidInput"
	}
	p := s.page(r, "payment", "pos")
	if errKey != "" {
		p.Error = p.T(errKey)
	}
	s.Templates.RenderStatus(w, status, "payment.html", &paymentData{
		PageData: p,
		Items:    c.Items(),
		Methods:  cart.Methods,
		Method:   method,
		Amount:   amount,
		Quote:    cart.Quote(c.Totals(), cart.Payment{Method: method, AmountGiven: given}),
	})
}

// PaymentPage handles GET /pos/payment. The method and amount query values
// drive the change preview.
func (s *Server) PaymentPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	c := s.Carts.Get(sessionID(claims))
	if len(c.Items()) == 0 {
		redirectNotice(w, r, "/pos", "error", "emptyCart")
		return
	}

	method, err := cart.ParseMethod(r.URL.Query().Get("method"))
	if err != nil {
		method = cart.Cash
	}
	s.renderPayment(w, r, http.StatusOK, c, method, r.URL.Query().Get("amount"), "")
}

// PaymentSubmit handles POST /pos/payment. A stored order empties the cart.
func (s *Server) PaymentSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	c := s.Carts.Get(sessionID(claims))

	method, err := cart.ParseMethod(r.FormValue("method"))
	if err != nil {
		s.renderPayment(w, r, http.StatusBadRequest, c, cart.Cash, r.FormValue("amount"), "invalidInput")
		return
	}

	amount := r.FormValue("amount")
	given := 0.0
	if amount != "" {
		if given, err = formNumber(amount); err != nil || given < 0 {
			s.renderPayment(w, r, http.StatusBadRequest, c, method, amount, "invalidInput")
			return
		}
	}

	order, err := c.Checkout(cart.Payment{Method: method, AmountGiven: given})
	switch {
	case errors.Is(err, cart.ErrEmptyCart):
		redirectNotice(w, r, "/pos", "error", "emptyCart")
		return
	case errors.Is(err, cart.ErrInsufficientAmount):
		s.renderPayment(w, r, http.StatusUnprocessableEntity, c, method, amount, "insufficientAmount")
		return
	case err != nil:
		slog.Error("checkout failed", "error", err)
		s.renderPayment(w, r, http.StatusInternalServerError, c, method, amount, "error")
		return
	}

	created, err := s.Catalog.CreateOrder(r.Context(), order)
	if err != nil {
		slog.Error("failed to create order", "user", claims.Email, "error", err)
		s.renderPayment(w, r, http.StatusBadGateway, c, method, amount, "backendUnavailable")
		return
	}

	c.Clear()
	slog.Info("sale completed", "user", claims.Email, "order", created.ID, "total", created.Total, "method", created.PaymentMethod)
	redirectNotice(w, r, "/pos", "notice", "paymentSuccess")
}
