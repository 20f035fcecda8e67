package product

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinstore/admin-backend/internal/infrastructure/storage/memory"
)

const testKey = "jinstore_products"

func newTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	snapshots := memory.NewStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewStore(context.Background(), snapshots, testKey, logger), snapshots
}

func TestNewStoreFallsBackToSeed(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, 6, store.Count())

	p, found := store.Get(1)
	require.True(t, found)
	assert.Equal(t, "Simply Orange Pulp-Free Juice - 52 fl OZ", p.Name)
	assert.Equal(t, 499.90, p.Price)
}

func TestNewStoreIgnoresCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.NewStore()
	require.NoError(t, snapshots.Save(ctx, testKey, []byte("{not json")))

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	store := NewStore(ctx, snapshots, testKey, logger)

	// Corrupt data is treated as no data
	assert.Equal(t, 6, store.Count())
}

func TestAddAssignsNextID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created := store.Add(ctx, Draft{Name: "Cold Brew", Price: 12.50, Category: "beverages", Color: "black"})
	assert.Equal(t, 7, created.ID)

	// Defaults fill in when the draft leaves them empty
	assert.Equal(t, 4.0, created.Rating)
	assert.Equal(t, 0, created.Reviews)

	// Every id stays unique and the new id exceeds all prior ids
	seen := make(map[int]bool)
	for _, p := range store.All() {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestAddAfterDeletingMaxReusesID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Delete(ctx, 6)
	created := store.Add(ctx, Draft{Name: "Replacement", Price: 5, Category: "food", Color: "red"})

	// max+1 over the current collection: the freed id comes back
	assert.Equal(t, 6, created.ID)
}

func TestAddKeepsExplicitRating(t *testing.T) {
	store, _ := newTestStore(t)

	created := store.Add(context.Background(), Draft{Name: "Rated", Price: 5, Category: "food", Color: "red", Rating: 2, Reviews: 11})
	assert.Equal(t, 2.0, created.Rating)
	assert.Equal(t, 11, created.Reviews)
}

func TestUpdateMergesPatch(t *testing.T) {
	store, _ := newTestStore(t)

	price := 550.00
	updated, found := store.Update(context.Background(), 1, Patch{Price: &price})
	require.True(t, found)
	assert.Equal(t, 550.00, updated.Price)
	assert.Equal(t, "Simply Orange Pulp-Free Juice - 52 fl OZ", updated.Name)
	assert.Equal(t, "beverages", updated.Category)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	before := store.All()

	name := "Ghost"
	_, found := store.Update(context.Background(), 999, Patch{Name: &name})
	assert.False(t, found)
	assert.Equal(t, before, store.All())
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Delete(ctx, 3)
	assert.Equal(t, 5, store.Count())

	before := store.All()
	store.Delete(ctx, 3)
	store.Delete(ctx, 999)
	assert.Equal(t, before, store.All())
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, snapshots := newTestStore(t)

	price := 42.00
	store.Add(ctx, Draft{Name: "Sparkling Water 12-pack", Price: 8.99, Category: "beverages", Color: "clear"})
	store.Update(ctx, 2, Patch{Price: &price})
	store.Delete(ctx, 4)

	// A fresh store over the same backend reproduces the collection
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	reloaded := NewStore(ctx, snapshots, testKey, logger)

	assert.Equal(t, store.All(), reloaded.All())
}

// failingSnapshot rejects every write
type failingSnapshot struct{}

func (failingSnapshot) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (failingSnapshot) Save(context.Context, string, []byte) error {
	return errors.New("backend unavailable")
}

func (failingSnapshot) Delete(context.Context, string) error {
	return errors.New("backend unavailable")
}

func TestMutationsSurviveFailedPersistence(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	store := NewStore(ctx, failingSnapshot{}, testKey, logger)

	// Failed writes degrade to memory-only operation, never an error
	created := store.Add(ctx, Draft{Name: "Unsaved", Price: 1, Category: "food", Color: "red"})
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, 7, store.Count())

	store.Delete(ctx, created.ID)
	assert.Equal(t, 6, store.Count())
}
