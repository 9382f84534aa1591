package mocks

import (
	"context"

	"github.com/pageza/recipebook/backend/internal/model"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// AddRecipe mocks the AddRecipe method
func (m *MockRecipeService) AddRecipe(ctx context.Context, recipe *model.Recipe) (*service.RecipeResult, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecipeResult), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) []*model.Recipe {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Recipe)
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, name string) (*model.Recipe, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, name string) bool {
	args := m.Called(ctx, name)
	return args.Bool(0)
}

// ClearRecipes mocks the ClearRecipes method
func (m *MockRecipeService) ClearRecipes(ctx context.Context) {
	m.Called(ctx)
}

// ScaleRecipe mocks the ScaleRecipe method
func (m *MockRecipeService) ScaleRecipe(ctx context.Context, name string, factor float64) (*service.RecipeResult, error) {
	args := m.Called(ctx, name, factor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecipeResult), args.Error(1)
}

// ResetRecipe mocks the ResetRecipe method
func (m *MockRecipeService) ResetRecipe(ctx context.Context, name string) (*service.RecipeResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecipeResult), args.Error(1)
}

// FilterRecipes mocks the FilterRecipes method
func (m *MockRecipeService) FilterRecipes(ctx context.Context, filter service.RecipeFilter) []*model.Recipe {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Recipe)
}

// ScaleFactors mocks the ScaleFactors method
func (m *MockRecipeService) ScaleFactors() []float64 {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]float64)
}

var _ service.IRecipeService = (*MockRecipeService)(nil)
