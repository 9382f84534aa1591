// Package store holds the session's recipes in insertion order.
package store

import "github.com/pageza/recipebook/backend/internal/model"

// RecipeStore is an insertion-ordered collection of recipes. It owns the recipes it
// holds: Add stores a copy and every read returns copies. It is not safe for
// concurrent use; callers serialize access.
type RecipeStore struct {
	recipes []*model.Recipe
}

// New returns an empty store.
func New() *RecipeStore {
	return &RecipeStore{}
}

// Add appends a copy of recipe.
func (s *RecipeStore) Add(recipe *model.Recipe) {
	s.recipes = append(s.recipes, recipe.Clone())
}

// All returns a snapshot of every recipe in insertion order.
func (s *RecipeStore) All() []*model.Recipe {
	out := make([]*model.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Get returns a copy of the first recipe whose name matches, ignoring case.
func (s *RecipeStore) Get(name string) (*model.Recipe, bool) {
	i := s.index(name)
	if i < 0 {
		return nil, false
	}
	return s.recipes[i].Clone(), true
}

// Update applies fn to the first matching stored recipe and returns a copy of the
// result.
func (s *RecipeStore) Update(name string, fn func(*model.Recipe)) (*model.Recipe, bool) {
	i := s.index(name)
	if i < 0 {
		return nil, false
	}
	fn(s.recipes[i])
	return s.recipes[i].Clone(), true
}

// Delete removes the first matching recipe. It reports whether one was removed.
func (s *RecipeStore) Delete(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	return true
}

// Clear removes every recipe.
func (s *RecipeStore) Clear() {
	s.recipes = nil
}

// Len returns the number of stored recipes.
func (s *RecipeStore) Len() int {
	return len(s.recipes)
}

func (s *RecipeStore) index(name string) int {
	for i, r := range s.recipes {
		if r.HasName(name) {
			return i
		}
	}
	return -1
}
