package i18n

import (
	"errors"
	"math"
	"slices"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/erazemk/blagajna/internal/model"
)

// ErrUnknownCurrency is returned for currencies the till does not offer.
var ErrUnknownCurrency = errors.New("unknown currency")

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"ETB": "Br ",
}

// Amounts are always grouped the English way so receipts read the same in
// every locale.
var printer = message.NewPrinter(language.English)

// ParseCurrency validates an ISO 4217 code against the offered currencies.
func ParseCurrency(code string) (currency.Unit, error) {
	if !slices.Contains(model.Currencies, code) {
		return currency.Unit{}, ErrUnknownCurrency
	}
	return currency.ParseISO(code)
}

// FormatMoney renders amount in the given currency, using the currency's
// standard number of decimals. Unknown codes format as USD.
func FormatMoney(code string, amount float64) string {
	unit, err := ParseCurrency(code)
	if err != nil {
		code, unit = model.DefaultCurrency, currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + symbols[code] + printer.Sprint(number.Decimal(amount, number.Scale(scale)))
}
