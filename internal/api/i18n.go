package api

import (
	"net/http"

	"github.com/erazemk/blagajna/internal/i18n"
)

type translationsResponse struct {
	Locale       string            `json:"locale"`
	Dir          string            `json:"dir"`
	Translations map[string]string `json:"translations"`
}

// Translations handles GET /api/i18n/{lang}.
func Translations(w http.ResponseWriter, r *http.Request) {
	l, ok := i18n.Parse(r.PathValue("lang"))
	if !ok {
		jsonError(w, http.StatusNotFound, "unknown locale")
		return
	}
	writeTable(w, l)
}

// NegotiatedTranslations handles GET /api/i18n. The locale is picked from
// the Accept-Language header.
func NegotiatedTranslations(w http.ResponseWriter, r *http.Request) {
	writeTable(w, i18n.Match(r.Header.Get("Accept-Language")))
}

func writeTable(w http.ResponseWriter, l i18n.Locale) {
	table, _ := i18n.Table(l)
	jsonResponse(w, http.StatusOK, translationsResponse{
		Locale:       string(l),
		Dir:          l.Dir(),
		Translations: table,
	})
}
