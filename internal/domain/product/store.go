// internal/domain/product/store.go
package product

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jinstore/admin-backend/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// Store holds the authoritative in-memory product catalog. Every mutation
// re-serializes the whole collection as a JSON snapshot under the
// configured storage key.
type Store struct {
	mu       sync.RWMutex
	products []Product
	snapshot storage.Snapshot
	key      string
	logger   *logrus.Logger
}

// NewStore creates a product store, loading the persisted snapshot when
// one exists. A missing or undecodable snapshot silently falls back to
// the seed catalog.
func NewStore(ctx context.Context, snapshot storage.Snapshot, key string, logger *logrus.Logger) *Store {
	s := &Store{
		snapshot: snapshot,
		key:      key,
		logger:   logger,
	}
	s.products = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []Product {
	data, found, err := s.snapshot.Load(ctx, s.key)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to load product snapshot, using seed data")
		return Seed()
	}
	if !found {
		return Seed()
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		// Corrupt snapshot is treated the same as no snapshot
		s.logger.WithError(err).WithField("key", s.key).Warn("Undecodable product snapshot, using seed data")
		return Seed()
	}
	return products
}

// persist snapshots the full collection. A failed write is logged and
// swallowed so the store keeps operating in memory. Callers must hold
// the lock.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.products)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode product snapshot")
		return
	}
	if err := s.snapshot.Save(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to persist product snapshot, operating in memory only")
	}
}

// All returns a copy of the full product catalog
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id
func (s *Store) Get(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Add assigns the next id to the draft, fills default rating/reviews,
// appends it and persists. The id is max(existing ids, 0)+1, so deleting
// the max-id product lets its id be reissued; ids present in the
// collection are never reused.
func (s *Store) Add(ctx context.Context, draft Draft) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:       s.nextID(),
		Name:     draft.Name,
		Price:    draft.Price,
		OldPrice: draft.OldPrice,
		Rating:   draft.Rating,
		Reviews:  draft.Reviews,
		Image:    draft.Image,
		Category: draft.Category,
		Color:    draft.Color,
	}
	if p.Rating == 0 {
		p.Rating = 4
	}

	s.products = append(s.products, p)
	s.persist(ctx)
	return p
}

// nextID computes max(existing ids, 0)+1. Callers must hold the lock.
func (s *Store) nextID() int {
	max := 0
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Update merges the patch into the product with the given id and
// persists. It reports whether a matching product was found; an unknown
// id is a no-op.
func (s *Store) Update(ctx context.Context, id int, patch Patch) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			patch.apply(&s.products[i])
			s.persist(ctx)
			return s.products[i], true
		}
	}
	return Product{}, false
}

// Delete removes the product with the given id and persists. Deleting an
// absent id is a no-op.
func (s *Store) Delete(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Count returns the number of products in the catalog
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
