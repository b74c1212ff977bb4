package service

import (
	"log"
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
)

type MirrorEventKind int

const (
	MirrorProductUpserted MirrorEventKind = iota
	MirrorProductDeleted
	MirrorOrderSaved
)

// MirrorEvent is a value copy of one catalog change, consumed by the
// write-behind mirror workers.
type MirrorEvent struct {
	Kind      MirrorEventKind
	Product   domain.Product
	ProductID string
	Order     domain.Order
}

// CatalogService owns the product, user and order collections. Every
// operation is synchronous and total: mutations referencing an absent
// id are no-ops. A single mutex guards all three collections.
type CatalogService struct {
	mu       sync.Mutex
	products []domain.Product
	users    []domain.User
	orders   []domain.Order
	events   chan MirrorEvent
}

func NewCatalogService(products []domain.Product, users []domain.User, orders []domain.Order, queueSize int) *CatalogService {
	s := &CatalogService{
		products: make([]domain.Product, len(products)),
		users:    make([]domain.User, len(users)),
		orders:   make([]domain.Order, len(orders)),
		events:   make(chan MirrorEvent, queueSize),
	}
	copy(s.products, products)
	copy(s.users, users)
	copy(s.orders, orders)
	return s
}

// Products returns a snapshot copy of the product collection.
func (s *CatalogService) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID returns the first product with the given id.
func (s *CatalogService) ProductByID(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// AddProduct appends to the catalog. Id uniqueness is the caller's
// responsibility; a duplicate id shadows the earlier product in lookups.
func (s *CatalogService) AddProduct(p domain.Product) {
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	s.publish(MirrorEvent{Kind: MirrorProductUpserted, Product: p})
}

// UpdateProduct replaces the product whose id matches p.ID; no-op when absent.
func (s *CatalogService) UpdateProduct(p domain.Product) {
	s.mu.Lock()
	replaced := false
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			replaced = true
		}
	}
	s.mu.Unlock()
	if replaced {
		s.publish(MirrorEvent{Kind: MirrorProductUpserted, Product: p})
	}
}

// DeleteProduct removes the matching product; no-op when absent.
func (s *CatalogService) DeleteProduct(id string) {
	s.mu.Lock()
	removed := false
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	s.mu.Unlock()
	if removed {
		s.publish(MirrorEvent{Kind: MirrorProductDeleted, ProductID: id})
	}
}

// Search applies the filter criteria to a snapshot of the catalog.
func (s *CatalogService) Search(c domain.FilterCriteria) []domain.Product {
	return domain.FilterProducts(s.Products(), c)
}

// FilterOptions lists the distinct facet values across the catalog.
func (s *CatalogService) FilterOptions() domain.FilterOptions {
	return domain.CollectFilterOptions(s.Products())
}

// Users returns a snapshot copy of the user collection.
func (s *CatalogService) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *CatalogService) UserByID(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *CatalogService) UserByEmail(email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// AddUser appends a user to the collection.
func (s *CatalogService) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// SetUserStatus replaces the status of the matching user; no-op when absent.
func (s *CatalogService) SetUserStatus(id string, status domain.UserStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
		}
	}
}

// DeleteUser removes the matching user; no-op when absent.
func (s *CatalogService) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

// Orders returns a snapshot copy of the order collection.
func (s *CatalogService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *CatalogService) OrderByID(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// AddOrder appends the order and bumps the owning user's lifetime order
// count when the user still exists.
func (s *CatalogService) AddOrder(o domain.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, o)
	for i := range s.users {
		if s.users[i].ID == o.UserID {
			s.users[i].TotalOrders++
		}
	}
	s.mu.Unlock()
	s.publish(MirrorEvent{Kind: MirrorOrderSaved, Order: o})
}

// SetOrderStatus replaces the status of the matching order, leaving all
// other fields unchanged. Any transition is accepted; there is no
// legality graph. No-op when absent.
func (s *CatalogService) SetOrderStatus(id string, status domain.OrderStatus) {
	s.mu.Lock()
	var updated *domain.Order
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			o := s.orders[i]
			updated = &o
		}
	}
	s.mu.Unlock()
	if updated != nil {
		s.publish(MirrorEvent{Kind: MirrorOrderSaved, Order: *updated})
	}
}

// Events exposes the mirror queue for the worker pool.
func (s *CatalogService) Events() <-chan MirrorEvent {
	return s.events
}

// Close stops event publication. Pending events remain readable.
func (s *CatalogService) Close() {
	close(s.events)
}

// publish never blocks a store operation: when the queue is full the
// event is dropped, since the mirror is best-effort.
func (s *CatalogService) publish(ev MirrorEvent) {
	select {
	case s.events <- ev:
	default:
		log.Printf("mirror queue full, dropping event kind=%d", ev.Kind)
	}
}
