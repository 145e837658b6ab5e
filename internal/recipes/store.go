// Package recipes provides the fixed in-memory recipe collection for go-panlasa
package recipes

import (
	"errors"

	"github.com/panlasa/go-panlasa/internal/models"
)

// ErrRecipeNotFound is returned when no recipe matches the requested ID
var ErrRecipeNotFound = errors.New("recipe not found")

// Store holds the seeded recipe collection. The collection is defined once
// at startup and never mutated afterwards, so reads need no locking.
type Store struct {
	recipes []*models.Recipe
}

// NewStore creates a Store seeded with the built-in recipe collection
func NewStore() *Store {
	return &Store{recipes: seedRecipes()}
}

// seedRecipes returns the fixed collection. In a real deployment this data
// would come from a database.
func seedRecipes() []*models.Recipe {
	return []*models.Recipe{
		{
			ID:          1,
			Name:        "Adobo",
			Category:    "Main Course",
			Description: "A savoury dish of marinated pork or chicken simmered in soy sauce, vinegar, and garlic.",
		},
		{
			ID:          2,
			Name:        "Kare-Kare",
			Category:    "Main Course",
			Description: "A rich peanut-based stew with oxtail, beef, or pork, served with a side of shrimp paste (bagoong).",
		},
		{
			ID:          3,
			Name:        "Lumpia",
			Category:    "Main Course",
			Description: "A crispy, golden fried spring roll filled with seasoned ground pork and vegetables, often served with sweet and sour dipping sauce.",
		},
	}
}

// All returns every recipe in seed order. Callers get copies so the seeded
// collection cannot be modified through the returned slice.
func (s *Store) All() []*models.Recipe {
	out := make([]*models.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		cp := *r
		out[i] = &cp
	}
	return out
}

// GetByID returns the first recipe whose ID matches, or ErrRecipeNotFound
func (s *Store) GetByID(id int) (*models.Recipe, error) {
	for _, r := range s.recipes {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrRecipeNotFound
}

// Count returns the number of recipes in the collection
func (s *Store) Count() int {
	return len(s.recipes)
}
