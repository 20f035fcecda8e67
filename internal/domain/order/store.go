// internal/domain/order/store.go
package order

import (
	"sync"
)

// Store holds the authoritative in-memory order collection. Orders are
// deliberately session-only: unlike products and the cart, mutations are
// never snapshotted and every new store starts from the seed.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

// NewStore creates an order store seeded with the fixed initial list
func NewStore() *Store {
	return &Store{orders: Seed()}
}

// All returns a copy of the full order collection
func (s *Store) All() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the order with the given id
func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Update merges the patch into the order with the given id. It reports
// whether a matching order was found; an unknown id is a no-op.
func (s *Store) Update(id string, patch Patch) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			patch.apply(&s.orders[i])
			return s.orders[i], true
		}
	}
	return Order{}, false
}

// Delete removes the order with the given id. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return
		}
	}
}

// Count returns the number of orders in the collection
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
