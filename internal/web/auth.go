package web

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/blagajna/internal/auth"
	"github.com/erazemk/blagajna/internal/store"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &struct {
		PageData
		Email string
	}{PageData: s.page(r, "loginTitle", "")})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	fail := func(status int, key string) {
		p := s.page(r, "loginTitle", "")
		p.Error = p.T(key)
		s.Templates.RenderStatus(w, status, "login.html", &struct {
			PageData
			Email string
		}{PageData: p, Email: email})
	}

	if email == "" || password == "" {
		fail(http.StatusBadRequest, "requiredFields")
		return
	}

	user, err := store.GetUserByEmail(r.Context(), s.DB, email)
	if err != nil {
		slog.Error("looking up user", "error", err)
		fail(http.StatusInternalServerError, "error")
		return
	}
	if user == nil {
		fail(http.StatusUnauthorized, "invalidCredentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login failed", "email", email, "remote", r.RemoteAddr)
		fail(http.StatusUnauthorized, "invalidCredentials")
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		slog.Error("generating token", "error", err)
		fail(http.StatusInternalServerError, "error")
		return
	}

	setAuthCookie(w, token)
	slog.Info("user logged in", "user", user.Email, "role", user.Role, "via", "web")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. A valid session token is revoked and its
// cart dropped.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value); err == nil {
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("revoking token", "error", err)
			}
			s.Carts.Drop(sessionID(claims))
			slog.Info("user logged out", "user", claims.Email, "via", "web")
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
