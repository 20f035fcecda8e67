// internal/infrastructure/storage/memory/memory_test.go
package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingKey(t *testing.T) {
	store := NewStore()

	data, found, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "blob", []byte(`{"hello":"world"}`)))

	data, found, err := store.Load(ctx, "blob")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"hello":"world"}`), data)
}

func TestStoredBlobIsIsolated(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Save(ctx, "blob", original))

	// Mutating the caller's slice must not change what was stored.
	original[0] = 'x'

	data, _, err := store.Load(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	// Nor should mutating a loaded copy.
	data[0] = 'z'
	again, _, err := store.Load(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "blob", []byte("abc")))
	require.NoError(t, store.Delete(ctx, "blob"))

	_, found, err := store.Load(ctx, "blob")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is a no-op.
	require.NoError(t, store.Delete(ctx, "blob"))
}
