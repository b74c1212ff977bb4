package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

var (
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrCartEmpty        = errors.New("cart is empty")
)

// CheckoutService turns a cart into an order. The order lands in the
// catalog store immediately; mirroring to external storage happens
// asynchronously and cannot fail the checkout.
type CheckoutService struct {
	carts    *CartService
	catalog  *CatalogService
	sessions port.SessionRepository
}

func NewCheckoutService(carts *CartService, catalog *CatalogService, sessions port.SessionRepository) *CheckoutService {
	return &CheckoutService{carts: carts, catalog: catalog, sessions: sessions}
}

type CheckoutRequest struct {
	RequestID       string
	CartID          string
	UserID          string
	UserName        string
	UserEmail       string
	ShippingAddress string
}

// Checkout snapshots the cart into a pending order, appends it to the
// catalog and clears the cart. The request id deduplicates retries.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error) {
	idempotencyKey := fmt.Sprintf("checkout:%s", req.RequestID)

	ok, err := s.sessions.SetIdempotency(ctx, idempotencyKey)
	if err != nil {
		return domain.Order{}, fmt.Errorf("idempotency check failed: %w", err)
	}
	if !ok {
		return domain.Order{}, ErrDuplicateRequest
	}

	lines := s.carts.Lines(req.CartID)
	if len(lines) == 0 {
		return domain.Order{}, ErrCartEmpty
	}

	total := 0.0
	for _, l := range lines {
		total += l.Product.Price * float64(l.Quantity)
	}

	order := domain.Order{
		ID:              "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		Items:           lines,
		Total:           total,
		Status:          domain.OrderStatusPending,
		OrderDate:       time.Now(),
		ShippingAddress: req.ShippingAddress,
	}

	s.catalog.AddOrder(order)
	s.carts.ClearCart(req.CartID)

	return order, nil
}
