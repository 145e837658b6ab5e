package recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCollection(t *testing.T) {
	store := NewStore()
	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, 3, store.Count())

	seen := make(map[int]bool)
	for _, r := range all {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
	for id := 1; id <= 3; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestGetByID(t *testing.T) {
	store := NewStore()
	for _, want := range store.All() {
		got, err := store.GetByID(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Description, got.Description)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	store := NewStore()
	for _, id := range []int{0, -1, 4, 999} {
		_, err := store.GetByID(id)
		assert.ErrorIs(t, err, ErrRecipeNotFound, "id %d", id)
	}
}

func TestAllReturnsCopies(t *testing.T) {
	store := NewStore()
	store.All()[0].Name = "changed"

	fresh, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Adobo", fresh.Name)
}
