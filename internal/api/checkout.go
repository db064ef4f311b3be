package api

import (
	"net/http"

	"github.com/erazemk/blagajna/internal/cart"
)

type quoteRequest struct {
	Items       []cart.Item `json:"items"`
	Method      string      `json:"method"`
	AmountGiven float64     `json:"amount_given"`
}

// Quote handles POST /api/checkout/quote. It prices a set of lines without
// touching any session cart.
func Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method, err := cart.ParseMethod(req.Method)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "method must be cash, card or mobile")
		return
	}
	if req.AmountGiven < 0 {
		jsonError(w, http.StatusBadRequest, "amount_given must not be negative")
		return
	}
	for _, it := range req.Items {
		if it.Quantity < 0 || it.Price < 0 {
			jsonError(w, http.StatusBadRequest, "price and quantity must not be negative")
			return
		}
	}

	q := cart.Quote(cart.Compute(req.Items), cart.Payment{Method: method, AmountGiven: req.AmountGiven})
	jsonResponse(w, http.StatusOK, q)
}
