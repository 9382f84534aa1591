package service

import (
	"sort"
	"strings"

	"github.com/pageza/recipebook/backend/internal/model"
)

// RecipeFilter selects recipes. Empty text criteria and a non-positive
// MaxCalories are ignored.
type RecipeFilter struct {
	// Ingredient matches recipes with an ingredient whose name contains it.
	Ingredient string
	// FoodGroup matches recipes with an ingredient whose food group contains it.
	FoodGroup   string
	MaxCalories float64
	SortByName  bool
}

// Matches reports whether r satisfies every criterion set on f.
func (f RecipeFilter) Matches(r *model.Recipe) bool {
	if f.Ingredient != "" && !anyIngredient(r, f.Ingredient, func(i model.Ingredient) string { return i.Name }) {
		return false
	}
	if f.FoodGroup != "" && !anyIngredient(r, f.FoodGroup, func(i model.Ingredient) string { return i.FoodGroup }) {
		return false
	}
	if f.MaxCalories > 0 && r.TotalCalories > f.MaxCalories {
		return false
	}
	return true
}

// Apply returns the matching recipes in their given order, or sorted by name when
// SortByName is set.
func (f RecipeFilter) Apply(recipes []*model.Recipe) []*model.Recipe {
	out := make([]*model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	if f.SortByName {
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

func anyIngredient(r *model.Recipe, needle string, field func(model.Ingredient) string) bool {
	needle = strings.ToLower(needle)
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(field(ing)), needle) {
			return true
		}
	}
	return false
}
