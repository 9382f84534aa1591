package service

import (
	"context"

	"github.com/pageza/recipebook/backend/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	AddRecipe(ctx context.Context, recipe *model.Recipe) (*RecipeResult, error)
	ListRecipes(ctx context.Context) []*model.Recipe
	GetRecipe(ctx context.Context, name string) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, name string) bool
	ClearRecipes(ctx context.Context)
	ScaleRecipe(ctx context.Context, name string, factor float64) (*RecipeResult, error)
	ResetRecipe(ctx context.Context, name string) (*RecipeResult, error)
	FilterRecipes(ctx context.Context, filter RecipeFilter) []*model.Recipe
	ScaleFactors() []float64
}

var _ IRecipeService = (*RecipeService)(nil)
