package api

import (
	"strings"

	"github.com/pageza/recipebook/backend/internal/model"
)

// IngredientRequest is one ingredient of a CreateRecipeRequest
type IngredientRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0,lte=1000000"`
	Unit      string  `json:"unit" binding:"max=32"`
	Calories  float64 `json:"calories" binding:"gte=0,lte=100000"`
	FoodGroup string  `json:"food_group" binding:"required,foodgroup"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required,max=200"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
	Steps       []string            `json:"steps" binding:"dive,required"`
}

// ScaleRecipeRequest represents the request body for scaling a recipe
type ScaleRecipeRequest struct {
	Factor float64 `json:"factor" binding:"required"`
}

// RecipeResponse wraps a recipe returned by a mutating endpoint
type RecipeResponse struct {
	Recipe         *model.Recipe `json:"recipe"`
	CalorieWarning bool          `json:"calorie_warning"`
	Warning        string        `json:"warning,omitempty"`
}

// ToModel converts the request into a recipe with original quantities snapshotted.
func (r CreateRecipeRequest) ToModel() *model.Recipe {
	ingredients := make([]model.Ingredient, 0, len(r.Ingredients))
	for _, in := range r.Ingredients {
		ingredients = append(ingredients, model.NewIngredient(
			strings.TrimSpace(in.Name),
			in.Quantity,
			strings.TrimSpace(in.Unit),
			in.Calories,
			strings.TrimSpace(in.FoodGroup),
		))
	}
	steps := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	return model.NewRecipe(strings.TrimSpace(r.Name), ingredients, steps)
}
