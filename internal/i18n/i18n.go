// Package i18n holds the translation tables, locale negotiation and money
// formatting for the rendered pages.
package i18n

import (
	"maps"

	"golang.org/x/text/language"
)

// Locale is a supported UI language.
type Locale string

// Supported locales.
const (
	English Locale = "en"
	Amharic Locale = "am"
	Arabic  Locale = "ar"
)

// Locales lists the supported locales in display order.
var Locales = []Locale{English, Amharic, Arabic}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Amharic,
	language.Arabic,
})

// Parse returns the locale for s if it is supported.
func Parse(s string) (Locale, bool) {
	l := Locale(s)
	_, ok := tables[l]
	return l, ok
}

// Translate looks up key in the table for l. Unknown keys, and keys in an
// unknown locale, are returned unchanged.
func Translate(l Locale, key string) string {
	if v, ok := tables[l][key]; ok && v != "" {
		return v
	}
	return key
}

// Table returns a copy of the translation table for l.
func Table(l Locale) (map[string]string, bool) {
	t, ok := tables[l]
	if !ok {
		return nil, false
	}
	return maps.Clone(t), true
}

// Dir returns the text direction for the locale.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Name returns the locale's name in its own language.
func (l Locale) Name() string {
	switch l {
	case Amharic:
		return "አማርኛ"
	case Arabic:
		return "العربية"
	default:
		return "English"
	}
}

// Match picks the best supported locale for an Accept-Language header.
// It falls back to English.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Locales[idx]
}
