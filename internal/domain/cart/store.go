// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jinstore/admin-backend/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// AddRequest carries the product being added to the cart
type AddRequest struct {
	ID    int     `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Image string  `json:"image"`
}

// Store holds the in-memory cart and mirrors every mutation to a JSON
// snapshot under the configured storage key
type Store struct {
	mu       sync.RWMutex
	items    []Item
	snapshot storage.Snapshot
	key      string
	logger   *logrus.Logger
}

// NewStore creates a cart store, loading the persisted snapshot when one
// exists and falling back to the default cart otherwise
func NewStore(ctx context.Context, snapshot storage.Snapshot, key string, logger *logrus.Logger) *Store {
	s := &Store{
		snapshot: snapshot,
		key:      key,
		logger:   logger,
	}
	s.items = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []Item {
	data, found, err := s.snapshot.Load(ctx, s.key)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to load cart snapshot, using default cart")
		return seed()
	}
	if !found {
		return seed()
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Undecodable cart snapshot, using default cart")
		return seed()
	}
	return items
}

// persist snapshots the full cart. A failed write is logged and swallowed
// so the cart keeps operating in memory. Callers must hold the lock.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode cart snapshot")
		return
	}
	if err := s.snapshot.Save(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to persist cart snapshot, operating in memory only")
	}
}

// Items returns a copy of the cart lines
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Totals recomputes the derived cart totals
func (s *Store) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Totals
	for _, item := range s.items {
		t.ItemCount += item.Quantity
		t.TotalPrice += item.Price * float64(item.Quantity)
	}
	return t
}

// AddToCart increments the quantity of an existing line or inserts a new
// line with quantity 1, using the placeholder image when the product has
// none
func (s *Store) AddToCart(ctx context.Context, req AddRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == req.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	image := req.Image
	if image == "" {
		image = DefaultImage
	}
	s.items = append(s.items, Item{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: 1,
		Image:    image,
	})
	s.persist(ctx)
}

// RemoveFromCart deletes the line with the given id; absent ids are a
// no-op
func (s *Store) RemoveFromCart(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, id)
}

func (s *Store) removeLocked(ctx context.Context, id int) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// below removes the line, keeping the quantity >= 1 invariant.
func (s *Store) UpdateQuantity(ctx context.Context, id int, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(ctx, id)
		return
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	s.persist(ctx)
}

// IsInCart reports whether a line with the given id exists
func (s *Store) IsInCart(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}
