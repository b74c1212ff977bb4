package service

import (
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
)

// CartService holds one cart per cart id (a user id or an anonymous
// client token) behind a single mutex. Carts start empty and live only
// for the process lifetime.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*domain.Cart)}
}

func (s *CartService) cart(cartID string) *domain.Cart {
	c, ok := s.carts[cartID]
	if !ok {
		c = &domain.Cart{}
		s.carts[cartID] = c
	}
	return c
}

func (s *CartService) AddToCart(cartID string, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(cartID).Add(p)
}

func (s *CartService) RemoveFromCart(cartID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(cartID).Remove(productID)
}

func (s *CartService) UpdateQuantity(cartID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(cartID).UpdateQuantity(productID, quantity)
}

func (s *CartService) ClearCart(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(cartID).Clear()
}

// Lines returns a copy of the cart's lines in insertion order.
func (s *CartService) Lines(cartID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(cartID).Lines()
}

func (s *CartService) TotalItems(cartID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(cartID).TotalItems()
}

func (s *CartService) TotalPrice(cartID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(cartID).TotalPrice()
}
