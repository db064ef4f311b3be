package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/blagajna/internal/auth"
	"github.com/erazemk/blagajna/internal/backend"
	"github.com/erazemk/blagajna/internal/backend/backendtest"
	"github.com/erazemk/blagajna/internal/db"
	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/store"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	server *httptest.Server
	db     *sql.DB
	fake   *backendtest.Fake
	token  string
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	database := db.NewTestDB(t)
	fake := backendtest.New(t)
	router := NewRouter(database, testJWTSecret, backend.New(fake.URL, time.Second))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Create admin user.
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	store.CreateUser(ctx, database, "admin@pos.local", string(hash), model.RoleAdmin)

	// Get token.
	body, _ := json.Marshal(map[string]string{"email": "Admin@POS.local", "password": "password"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp map[string]string
	json.NewDecoder(resp.Body).Decode(&loginResp)
	token := loginResp["token"]
	if token == "" {
		t.Fatal("empty token from login")
	}

	return &testEnv{server: server, db: database, fake: fake, token: token}
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func do(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	req, _ := authRequest(method, url, token, body)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestLoginEndpoint(t *testing.T) {
	env := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{"email": "admin@pos.local", "password": "wrong"})
	resp, _ := http.Post(env.server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	body, _ = json.Marshal(map[string]string{"email": "admin@pos.local"})
	resp, _ = http.Post(env.server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLogoutRevokesToken(t *testing.T) {
	env := setupTestServer(t)

	resp, _ := do(t, "POST", env.server.URL+"/api/auth/logout", env.token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, out := do(t, "GET", env.server.URL+"/api/i18n/en", env.token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", resp.StatusCode)
	}
	if out["error"] != "token revoked" {
		t.Errorf("unexpected error body: %v", out)
	}
}

func TestChangePassword(t *testing.T) {
	env := setupTestServer(t)

	resp, _ := do(t, "PUT", env.server.URL+"/api/auth/password", env.token, map[string]string{
		"current_password": "wrong", "new_password": "longenough",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong current password, got %d", resp.StatusCode)
	}

	resp, _ = do(t, "PUT", env.server.URL+"/api/auth/password", env.token, map[string]string{
		"current_password": "password", "new_password": "short",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", resp.StatusCode)
	}

	resp, _ = do(t, "PUT", env.server.URL+"/api/auth/password", env.token, map[string]string{
		"current_password": "password", "new_password": "longenough",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := json.Marshal(map[string]string{"email": "admin@pos.local", "password": "longenough"})
	login, _ := http.Post(env.server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if login.StatusCode != http.StatusOK {
		t.Errorf("expected login with new password, got %d", login.StatusCode)
	}
	login.Body.Close()
}

func TestHealth(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.server.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	var ok struct {
		Status  string            `json:"status"`
		Backend map[string]string `json:"backend"`
	}
	json.NewDecoder(resp.Body).Decode(&ok)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || ok.Status != "ok" || ok.Backend["status"] != "ok" {
		t.Errorf("unexpected health: %d %+v", resp.StatusCode, ok)
	}

	env.fake.SetDown(true)
	resp, _ = http.Get(env.server.URL + "/api/health")
	var failed map[string]string
	json.NewDecoder(resp.Body).Decode(&failed)
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError || failed["status"] != "error" || failed["message"] == "" {
		t.Errorf("unexpected health failure: %d %v", resp.StatusCode, failed)
	}
}

func TestCheckoutQuote(t *testing.T) {
	env := setupTestServer(t)
	url := env.server.URL + "/api/checkout/quote"

	resp, out := do(t, "POST", url, env.token, map[string]any{
		"items":        []map[string]any{{"price": 10, "quantity": 2}, {"price": 5, "quantity": 1}},
		"method":       "cash",
		"amount_given": 30,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if out["subtotal"] != 25.0 || out["tax"] != 2.5 || out["total"] != 27.5 || out["change"] != 2.5 {
		t.Errorf("unexpected quote: %v", out)
	}
	if out["can_confirm"] != true {
		t.Errorf("expected can_confirm, got %v", out["can_confirm"])
	}

	_, out = do(t, "POST", url, env.token, map[string]any{
		"items":        []map[string]any{{"price": 10, "quantity": 2}},
		"method":       "cash",
		"amount_given": 5,
	})
	if out["can_confirm"] != false {
		t.Errorf("expected short cash to be refused, got %v", out)
	}

	resp, _ = do(t, "POST", url, env.token, map[string]any{"method": "cheque"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown method, got %d", resp.StatusCode)
	}
}

func TestTranslations(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.DefaultClient.Do(mustRequest(t, "GET", env.server.URL+"/api/i18n/ar", env.token))
	if err != nil {
		t.Fatal(err)
	}
	var tr translationsResponse
	json.NewDecoder(resp.Body).Decode(&tr)
	resp.Body.Close()
	if tr.Dir != "rtl" || tr.Translations["dashboard"] != "لوحة المعلومات" {
		t.Errorf("unexpected translations: %s %q", tr.Dir, tr.Translations["dashboard"])
	}

	resp, _ = do(t, "GET", env.server.URL+"/api/i18n/fr", env.token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown locale, got %d", resp.StatusCode)
	}
}

func TestNegotiatedTranslations(t *testing.T) {
	env := setupTestServer(t)

	req := mustRequest(t, "GET", env.server.URL+"/api/i18n", env.token)
	req.Header.Set("Accept-Language", "am-ET, en;q=0.5")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	var tr translationsResponse
	json.NewDecoder(resp.Body).Decode(&tr)
	resp.Body.Close()
	if tr.Locale != "am" || tr.Dir != "ltr" {
		t.Errorf("expected am/ltr, got %s/%s", tr.Locale, tr.Dir)
	}
}

func mustRequest(t *testing.T, method, url, token string) *http.Request {
	t.Helper()
	req, err := authRequest(method, url, token, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestUsersAPIFlow(t *testing.T) {
	env := setupTestServer(t)
	base := env.server.URL + "/api/users"

	resp, created := do(t, "POST", base, env.token, map[string]string{
		"email": "cashier@pos.local", "password": "till-pass-1", "role": model.RoleCashier,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if _, leaked := created["password_hash"]; leaked {
		t.Error("password hash must not be serialized")
	}

	resp, _ = do(t, "POST", base, env.token, map[string]string{
		"email": "CASHIER@pos.local", "password": "till-pass-1", "role": model.RoleCashier,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}

	resp, _ = do(t, "POST", base, env.token, map[string]string{
		"email": "x@pos.local", "password": "till-pass-1", "role": "owner",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid role, got %d", resp.StatusCode)
	}

	req, _ := authRequest("GET", base, env.token, nil)
	listResp, _ := http.DefaultClient.Do(req)
	var users []model.User
	json.NewDecoder(listResp.Body).Decode(&users)
	listResp.Body.Close()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	// The only admin cannot be demoted.
	resp, _ = do(t, "PUT", base+"/1", env.token, map[string]string{"role": model.RoleManager})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 demoting last admin, got %d", resp.StatusCode)
	}

	resp, _ = do(t, "DELETE", base+"/1", env.token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for self delete, got %d", resp.StatusCode)
	}

	resp, _ = do(t, "DELETE", base+"/2", env.token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 deleting cashier, got %d", resp.StatusCode)
	}
	resp, _ = do(t, "GET", base+"/2", env.token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for deleted user, got %d", resp.StatusCode)
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	env := setupTestServer(t)

	resp, _ := http.Get(env.server.URL + "/api/i18n/en")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated request, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRoleBasedAccess(t *testing.T) {
	env := setupTestServer(t)

	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	u, _ := store.CreateUser(ctx, env.db, "cashier@pos.local", string(hash), model.RoleCashier)

	cashierToken, _ := auth.GenerateToken(testJWTSecret, u.ID, u.Email, model.RoleCashier)

	resp, _ := do(t, "GET", env.server.URL+"/api/users", cashierToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for cashier listing users, got %d", resp.StatusCode)
	}

	resp, _ = do(t, "POST", env.server.URL+"/api/checkout/quote", cashierToken, map[string]any{"method": "card"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected cashier to quote, got %d", resp.StatusCode)
	}
}
