package web

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/store"
)

// UsersPage handles GET /users (admin only).
func (s *Server) UsersPage(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}

	users, err := store.ListUsers(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list users", "error", err)
	}

	s.Templates.Render(w, "users.html", &struct {
		PageData
		Users []model.User
		Roles []string
	}{
		PageData: s.page(r, "users", "users"),
		Users:    users,
		Roles:    model.Roles,
	})
}

// UserCreateSubmit handles POST /users (admin only).
func (s *Server) UserCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}
	claims := GetWebClaims(r.Context())

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	role := r.FormValue("role")

	if email == "" || password == "" || role == "" {
		redirectNotice(w, r, "/users", "error", "requiredFields")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil || !model.ValidRole(role) {
		redirectNotice(w, r, "/users", "error", "invalidInput")
		return
	}
	if err := model.ValidatePassword(password); err != nil {
		redirectNotice(w, r, "/users", "error", "passwordTooShort")
		return
	}

	existing, err := store.GetUserByEmail(r.Context(), s.DB, email)
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		redirectNotice(w, r, "/users", "error", "error")
		return
	}
	if existing != nil {
		redirectNotice(w, r, "/users", "error", "emailTaken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	if _, err := store.CreateUser(r.Context(), s.DB, email, string(hash), role); err != nil {
		slog.Error("failed to create user", "error", err)
		redirectNotice(w, r, "/users", "error", "error")
		return
	}

	slog.Info("user created", "user", claims.Email, "new_user", email, "role", role)
	redirectNotice(w, r, "/users", "notice", "saved")
}

// targetUser resolves the {id} path value to a live account.
func (s *Server) targetUser(r *http.Request) *model.User {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return nil
	}
	u, err := store.GetUser(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get user", "id", id, "error", err)
		return nil
	}
	if u == nil || u.DeletedAt != nil {
		return nil
	}
	return u
}

// lastAdmin reports whether u is the only remaining admin. Lookup failures
// count as true so the guard fails closed.
func (s *Server) lastAdmin(r *http.Request, u *model.User) bool {
	if u.Role != model.RoleAdmin {
		return false
	}
	n, err := store.CountAdmins(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to count admins", "error", err)
		return true
	}
	return n <= 1
}

// UserResetPasswordSubmit handles POST /users/{id}/password (admin only).
func (s *Server) UserResetPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}
	claims := GetWebClaims(r.Context())

	target := s.targetUser(r)
	if target == nil {
		redirectNotice(w, r, "/users", "error", "notFound")
		return
	}

	newPassword := r.FormValue("new_password")
	if err := model.ValidatePassword(newPassword); err != nil {
		redirectNotice(w, r, "/users", "error", "passwordTooShort")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	if err := store.UpdateUserPassword(r.Context(), s.DB, target.ID, string(hash)); err != nil {
		slog.Error("failed to reset password", "error", err)
		redirectNotice(w, r, "/users", "error", "error")
		return
	}

	slog.Info("user password reset", "user", claims.Email, "target_user", target.Email)
	redirectNotice(w, r, "/users", "notice", "saved")
}

// UserUpdateRoleSubmit handles POST /users/{id}/role (admin only).
func (s *Server) UserUpdateRoleSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}
	claims := GetWebClaims(r.Context())

	target := s.targetUser(r)
	if target == nil {
		redirectNotice(w, r, "/users", "error", "notFound")
		return
	}

	role := r.FormValue("role")
	if !model.ValidRole(role) {
		redirectNotice(w, r, "/users", "error", "invalidInput")
		return
	}
	if role != model.RoleAdmin && s.lastAdmin(r, target) {
		redirectNotice(w, r, "/users", "error", "lastAdmin")
		return
	}

	if err := store.UpdateUserRole(r.Context(), s.DB, target.ID, role); err != nil {
		slog.Error("failed to update role", "error", err)
		redirectNotice(w, r, "/users", "error", "error")
		return
	}

	slog.Info("user role updated", "user", claims.Email, "target_user", target.Email, "new_role", role)
	redirectNotice(w, r, "/users", "notice", "saved")
}

// UserDeleteSubmit handles POST /users/{id}/delete (admin only).
func (s *Server) UserDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleAdmin) {
		return
	}
	claims := GetWebClaims(r.Context())

	target := s.targetUser(r)
	if target == nil {
		redirectNotice(w, r, "/users", "error", "notFound")
		return
	}
	if target.ID == claims.UserID {
		redirectNotice(w, r, "/users", "error", "deleteSelf")
		return
	}
	if s.lastAdmin(r, target) {
		redirectNotice(w, r, "/users", "error", "lastAdmin")
		return
	}

	if err := store.DeleteUser(r.Context(), s.DB, target.ID); err != nil {
		slog.Error("failed to delete user", "error", err)
		redirectNotice(w, r, "/users", "error", "error")
		return
	}

	slog.Info("user deleted", "user", claims.Email, "deleted_user", target.Email)
	redirectNotice(w, r, "/users", "notice", "deleted")
}
