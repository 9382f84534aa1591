package model

import (
	"encoding/json"
	"math"
)

// Ingredient is a named quantity of a food item. Calories is a rate per unit of
// Unit, so the calories an ingredient contributes depend on its current quantity.
type Ingredient struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Calories  float64 `json:"calories"`
	FoodGroup string  `json:"food_group"`

	originalQuantity float64
}

// NewIngredient creates an ingredient and snapshots quantity as its original quantity.
func NewIngredient(name string, quantity float64, unit string, calories float64, foodGroup string) Ingredient {
	return Ingredient{
		Name:             name,
		Quantity:         quantity,
		Unit:             unit,
		Calories:         calories,
		FoodGroup:        foodGroup,
		originalQuantity: quantity,
	}
}

// OriginalQuantity returns the quantity the ingredient was created with.
func (i Ingredient) OriginalQuantity() float64 {
	return i.originalQuantity
}

// TotalCalories returns the calories contributed at the current quantity.
func (i Ingredient) TotalCalories() float64 {
	return i.Calories * i.Quantity
}

// Scale multiplies the current quantity by factor.
func (i *Ingredient) Scale(factor float64) {
	i.Quantity *= factor
}

// Reset restores the original quantity.
func (i *Ingredient) Reset() {
	i.Quantity = i.originalQuantity
}

// MarshalJSON includes the original quantity alongside the exported fields.
func (i Ingredient) MarshalJSON() ([]byte, error) {
	type ingredient Ingredient
	return json.Marshal(struct {
		ingredient
		OriginalQuantity float64 `json:"original_quantity"`
	}{
		ingredient:       ingredient(i),
		OriginalQuantity: i.originalQuantity,
	})
}

// UnmarshalJSON reads original_quantity when present and otherwise takes the
// decoded quantity as the original.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	type ingredient Ingredient
	var aux struct {
		ingredient
		OriginalQuantity *float64 `json:"original_quantity"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*i = Ingredient(aux.ingredient)
	i.originalQuantity = i.Quantity
	if aux.OriginalQuantity != nil {
		i.originalQuantity = *aux.OriginalQuantity
	}
	return nil
}

// ensureOriginal snapshots Quantity for ingredients built without NewIngredient.
func (i *Ingredient) ensureOriginal() {
	if i.originalQuantity == 0 && i.Quantity != 0 {
		i.originalQuantity = i.Quantity
	}
}

func (i Ingredient) finite() bool {
	return isFinite(i.Quantity) && isFinite(i.Calories) && isFinite(i.originalQuantity)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// TotalCalories sums calories x quantity over ingredients.
func TotalCalories(ingredients []Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		total += ing.TotalCalories()
	}
	return total
}
