package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rl1809/storefront/internal/core/domain"
)

// Mock SessionRepository
type mockSessionRepo struct {
	mu             sync.Mutex
	sessions       map[string][]byte
	idempotencySet map[string]bool
	failIdempotent bool
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		sessions:       make(map[string][]byte),
		idempotencySet: make(map[string]bool),
	}
}

func (m *mockSessionRepo) SaveSession(ctx context.Context, sessionID string, payload []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = payload
	return nil
}

func (m *mockSessionRepo) GetSession(ctx context.Context, sessionID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[sessionID], nil
}

func (m *mockSessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockSessionRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failIdempotent {
		return false, errors.New("session store down")
	}
	if m.idempotencySet[key] {
		return false, nil
	}
	m.idempotencySet[key] = true
	return true, nil
}

func newCheckoutEnv() (*CartService, *CatalogService, *CheckoutService, *mockSessionRepo) {
	carts := NewCartService()
	catalog := newTestCatalog()
	sessions := newMockSessionRepo()
	return carts, catalog, NewCheckoutService(carts, catalog, sessions), sessions
}

func TestCheckout_Success(t *testing.T) {
	carts, catalog, checkout, _ := newCheckoutEnv()

	laptop, _ := catalog.ProductByID("1")
	carts.AddToCart("u1", laptop)
	carts.AddToCart("u1", laptop)

	order, err := checkout.Checkout(context.Background(), CheckoutRequest{
		RequestID:       "req-1",
		CartID:          "u1",
		UserID:          "u1",
		UserName:        "John Smith",
		UserEmail:       "john@example.com",
		ShippingAddress: "123 Main St",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if order.Total != laptop.Price*2 {
		t.Errorf("expected total %v, got %v", laptop.Price*2, order.Total)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected pending status, got %s", order.Status)
	}
	if order.UserName != "John Smith" || order.UserEmail != "john@example.com" {
		t.Errorf("expected buyer snapshot, got %s / %s", order.UserName, order.UserEmail)
	}
	if order.ID == "" {
		t.Error("expected non-empty order ID")
	}

	if len(carts.Lines("u1")) != 0 {
		t.Error("expected cart cleared after checkout")
	}
	if _, ok := catalog.OrderByID(order.ID); !ok {
		t.Error("expected order appended to catalog")
	}
}

func TestCheckout_DuplicateRequest(t *testing.T) {
	carts, catalog, checkout, _ := newCheckoutEnv()

	laptop, _ := catalog.ProductByID("1")
	carts.AddToCart("u1", laptop)

	req := CheckoutRequest{RequestID: "req-1", CartID: "u1", UserID: "u1", ShippingAddress: "123 Main St"}
	if _, err := checkout.Checkout(context.Background(), req); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}

	carts.AddToCart("u1", laptop)
	_, err := checkout.Checkout(context.Background(), req)
	if !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("expected ErrDuplicateRequest, got: %v", err)
	}

	// Only the first checkout created an order.
	if len(catalog.Orders()) != len(seedOrders())+1 {
		t.Errorf("expected exactly one new order, got %d total", len(catalog.Orders()))
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	_, _, checkout, _ := newCheckoutEnv()

	_, err := checkout.Checkout(context.Background(), CheckoutRequest{
		RequestID: "req-1", CartID: "u1", UserID: "u1", ShippingAddress: "123 Main St",
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Errorf("expected ErrCartEmpty, got: %v", err)
	}
}

func TestCheckout_SessionStoreFailure(t *testing.T) {
	carts, catalog, checkout, sessions := newCheckoutEnv()
	sessions.failIdempotent = true

	laptop, _ := catalog.ProductByID("1")
	carts.AddToCart("u1", laptop)

	_, err := checkout.Checkout(context.Background(), CheckoutRequest{
		RequestID: "req-1", CartID: "u1", UserID: "u1", ShippingAddress: "123 Main St",
	})
	if err == nil {
		t.Fatal("expected error when idempotency check fails")
	}

	// The cart is untouched on failure.
	if len(carts.Lines("u1")) != 1 {
		t.Errorf("expected cart untouched, got %d lines", len(carts.Lines("u1")))
	}
}
