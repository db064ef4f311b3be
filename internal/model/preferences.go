package model

// Preferences are the locally persisted presentation settings.
type Preferences struct {
	Locale   string  `json:"locale"`
	Currency string  `json:"currency"`
	TaxRate  float64 `json:"tax_rate"`
}

// Preference defaults.
const (
	DefaultLocale   = "en"
	DefaultCurrency = "USD"
	DefaultTaxRate  = 10.0
)

// Currencies lists the selectable currencies.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "CNY", "INR", "ETB"}
