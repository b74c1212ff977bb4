package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/seed"
)

const testSecret = "test-secret"

// Fake SessionRepository
type fakeSessionRepo struct {
	mu             sync.Mutex
	sessions       map[string][]byte
	idempotencySet map[string]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:       make(map[string][]byte),
		idempotencySet: make(map[string]bool),
	}
}

func (f *fakeSessionRepo) SaveSession(ctx context.Context, sessionID string, payload []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID] = payload
	return nil
}

func (f *fakeSessionRepo) GetSession(ctx context.Context, sessionID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[sessionID], nil
}

func (f *fakeSessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.idempotencySet[key] {
		return false, nil
	}
	f.idempotencySet[key] = true
	return true, nil
}

type testEnv struct {
	router  *httprouter.Router
	catalog *service.CatalogService
	carts   *service.CartService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := service.NewCatalogService(seed.Products(), seed.Users(), seed.Orders(), 100)
	carts := service.NewCartService()
	sessions := newFakeSessionRepo()
	checkout := service.NewCheckoutService(carts, catalog, sessions)

	auth := NewAuth(testSecret)
	router := NewRouter(
		auth,
		NewAuthHandler(catalog, sessions, testSecret, time.Hour),
		NewCatalogHandler(catalog, 5000),
		NewCartHandler(carts, catalog, checkout),
		NewAdminHandler(catalog, t.TempDir()),
	)

	return &testEnv{router: router, catalog: catalog, carts: carts}
}

func encodeBody(t *testing.T, body any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	return &buf
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	if body != nil {
		buf = encodeBody(t, body)
	}

	req := httptest.NewRequest(method, path, buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s failed: %d %s", email, rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
