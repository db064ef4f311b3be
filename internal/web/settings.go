package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/blagajna/internal/i18n"
	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/store"
)

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	prefs, err := store.GetPreferences(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to load preferences", "error", err)
		prefs = &model.Preferences{Locale: model.DefaultLocale, Currency: model.DefaultCurrency, TaxRate: model.DefaultTaxRate}
	}

	s.Templates.Render(w, "settings.html", &struct {
		PageData
		Locales    []i18n.Locale
		Current    i18n.Locale
		Currencies []string
		TaxRate    float64
	}{
		PageData:   s.page(r, "settings", "settings"),
		Locales:    i18n.Locales,
		Current:    s.Prefs.Locale(),
		Currencies: model.Currencies,
		TaxRate:    prefs.TaxRate,
	})
}

// LanguageSubmit handles POST /settings/language. The locale applies to
// every page of every user.
func (s *Server) LanguageSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	lang := r.FormValue("lang")
	if _, ok := i18n.Parse(lang); !ok {
		redirectNotice(w, r, "/settings", "error", "invalidInput")
		return
	}
	if err := s.Prefs.SetLocale(r.Context(), lang); err != nil {
		slog.Error("failed to set locale", "error", err)
		redirectNotice(w, r, "/settings", "error", "error")
		return
	}

	slog.Info("locale changed", "user", claims.Email, "locale", lang)
	redirectNotice(w, r, "/settings", "notice", "saved")
}

// CurrencySubmit handles POST /settings/currency (admin only).
func (s *Server) CurrencySubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}
	claims := GetWebClaims(r.Context())
	code := r.FormValue("currency")
	if _, err := i18n.ParseCurrency(code); err != nil {
		redirectNotice(w, r, "/settings", "error", "invalidInput")
		return
	}
	if err := s.Prefs.SetCurrency(r.Context(), code); err != nil {
		slog.Error("failed to set currency", "error", err)
		redirectNotice(w, r, "/settings", "error", "error")
		return
	}

	slog.Info("currency changed", "user", claims.Email, "currency", code)
	redirectNotice(w, r, "/settings", "notice", "saved")
}

// TaxRateSubmit handles POST /settings/tax (admin only). The rate is stored
// and shown but checkout keeps its fixed rate.
func (s *Server) TaxRateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}
	claims := GetWebClaims(r.Context())
	rate, err := formNumber(r.FormValue("tax_rate"))
	if err != nil || rate < 0 || rate > 100 {
		redirectNotice(w, r, "/settings", "error", "invalidInput")
		return
	}
	if err := store.SetTaxRate(r.Context(), s.DB, rate); err != nil {
		slog.Error("failed to set tax rate", "error", err)
		redirectNotice(w, r, "/settings", "error", "error")
		return
	}

	slog.Info("tax rate changed", "user", claims.Email, "rate", rate)
	redirectNotice(w, r, "/settings", "notice", "saved")
}

// PasswordSubmit handles POST /settings/password (change own password).
func (s *Server) PasswordSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	currentPassword := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")

	if currentPassword == "" || newPassword == "" {
		redirectNotice(w, r, "/settings", "error", "requiredFields")
		return
	}
	if err := model.ValidatePassword(newPassword); err != nil {
		redirectNotice(w, r, "/settings", "error", "passwordTooShort")
		return
	}

	user, err := store.GetUser(r.Context(), s.DB, claims.UserID)
	if err != nil || user == nil {
		slog.Error("failed to load user", "user", claims.Email, "error", err)
		redirectNotice(w, r, "/settings", "error", "error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		redirectNotice(w, r, "/settings", "error", "wrongPassword")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		redirectNotice(w, r, "/settings", "error", "error")
		return
	}

	if err := store.UpdateUserPassword(r.Context(), s.DB, claims.UserID, string(hash)); err != nil {
		slog.Error("failed to update password", "error", err)
		redirectNotice(w, r, "/settings", "error", "error")
		return
	}

	slog.Info("user changed own password", "user", claims.Email)
	redirectNotice(w, r, "/settings", "notice", "saved")
}
