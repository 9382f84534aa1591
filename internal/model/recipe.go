package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CalorieThreshold is the total above which a recipe raises a calorie warning.
const CalorieThreshold = 300.0

// Recipe is a named list of ingredients and preparation steps. Name is the lookup
// key and is compared case-insensitively.
type Recipe struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Ingredients   []Ingredient `json:"ingredients"`
	Steps         []string     `json:"steps"`
	TotalCalories float64      `json:"total_calories"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewRecipe builds a recipe and computes its total calories.
func NewRecipe(name string, ingredients []Ingredient, steps []string) *Recipe {
	r := &Recipe{
		Name:        name,
		Ingredients: ingredients,
		Steps:       steps,
	}
	r.EnsureOriginalQuantities()
	r.Recalculate()
	return r
}

// Recalculate recomputes TotalCalories from the current ingredient quantities.
func (r *Recipe) Recalculate() {
	r.TotalCalories = TotalCalories(r.Ingredients)
}

// EnsureOriginalQuantities gives every ingredient that has no original quantity
// its current quantity as the original.
func (r *Recipe) EnsureOriginalQuantities() {
	for i := range r.Ingredients {
		r.Ingredients[i].ensureOriginal()
	}
}

// IsFinite reports whether every quantity, calorie rate and the total are finite.
func (r *Recipe) IsFinite() bool {
	if !isFinite(r.TotalCalories) {
		return false
	}
	for _, ing := range r.Ingredients {
		if !ing.finite() {
			return false
		}
	}
	return true
}

// ExceedsCalorieThreshold reports whether the derived total is above CalorieThreshold.
func (r *Recipe) ExceedsCalorieThreshold() bool {
	return r.TotalCalories > CalorieThreshold
}

// Scale multiplies every ingredient quantity by factor and recomputes the total.
func (r *Recipe) Scale(factor float64) {
	for i := range r.Ingredients {
		r.Ingredients[i].Scale(factor)
	}
	r.Recalculate()
}

// Reset restores every ingredient to its original quantity and recomputes the total.
func (r *Recipe) Reset() {
	for i := range r.Ingredients {
		r.Ingredients[i].Reset()
	}
	r.Recalculate()
}

// HasName reports whether the recipe is called name, ignoring case.
func (r *Recipe) HasName(name string) bool {
	return strings.EqualFold(r.Name, name)
}

// Clone returns a deep copy so callers cannot reach the stored ingredients or steps.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	if r.Ingredients != nil {
		c.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(c.Ingredients, r.Ingredients)
	}
	if r.Steps != nil {
		c.Steps = make([]string, len(r.Steps))
		copy(c.Steps, r.Steps)
	}
	return &c
}
