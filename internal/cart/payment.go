package cart

import (
	"math"

	"github.com/erazemk/blagajna/internal/model"
)

// Method is a payment method as chosen at the till.
type Method string

// Payment methods.
const (
	Cash   Method = "cash"
	Card   Method = "card"
	Mobile Method = "mobile"
)

// Methods lists the payment methods in display order.
var Methods = []Method{Cash, Card, Mobile}

// ParseMethod validates a payment method. An empty value selects cash.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case "":
		return Cash, nil
	case Cash, Card, Mobile:
		return m, nil
	}
	return "", ErrUnknownMethod
}

// OrderMethod returns the method name stored on orders.
func (m Method) OrderMethod() string {
	switch m {
	case Card:
		return model.MethodCard
	case Mobile:
		return model.MethodMobile
	default:
		return model.MethodCash
	}
}

// Payment is what the customer hands over.
type Payment struct {
	Method      Method
	AmountGiven float64
}

// QuoteResult is the payment preview for a set of totals.
type QuoteResult struct {
	Totals
	Change     float64 `json:"change"`
	CanConfirm bool    `json:"can_confirm"`
}

// Quote computes the change and whether the payment can be confirmed. An
// empty cart cannot be confirmed, and neither can a cash payment below the
// total or an amount that is not a finite number. Amounts are compared in
// whole cents.
func Quote(t Totals, p Payment) QuoteResult {
	q := QuoteResult{Totals: t, CanConfirm: t.Units > 0}
	if !Finite(p.AmountGiven) {
		q.CanConfirm = false
		return q
	}
	q.Change = p.AmountGiven - t.Total
	if p.Method == Cash && roundCents(p.AmountGiven) < roundCents(t.Total) {
		q.CanConfirm = false
	}
	return q
}

// Finite reports whether v is neither NaN nor an infinity.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
