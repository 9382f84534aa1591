// Package seed loads initial recipes from a YAML fixture. Nothing is written back.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pageza/recipebook/backend/internal/model"
	"github.com/pageza/recipebook/backend/internal/service"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSeed = errors.New("invalid seed file")

type ingredientEntry struct {
	Name      string  `yaml:"name"`
	Quantity  float64 `yaml:"quantity"`
	Unit      string  `yaml:"unit"`
	Calories  float64 `yaml:"calories"`
	FoodGroup string  `yaml:"food_group"`
}

type recipeEntry struct {
	Name        string            `yaml:"name"`
	Ingredients []ingredientEntry `yaml:"ingredients"`
	Steps       []string          `yaml:"steps"`
}

type file struct {
	Recipes []recipeEntry `yaml:"recipes"`
}

// Recipes is the subset of the recipe service the loader needs.
type Recipes interface {
	AddRecipe(ctx context.Context, recipe *model.Recipe) (*service.RecipeResult, error)
}

// Load reads and parses the fixture at path.
func Load(path string) ([]*model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture. Unknown keys are rejected.
func Parse(data []byte) ([]*model.Recipe, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	recipes := make([]*model.Recipe, 0, len(f.Recipes))
	for i, entry := range f.Recipes {
		r, err := entry.toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: recipe %d: %v", ErrInvalidSeed, i+1, err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func (e recipeEntry) toModel() (*model.Recipe, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	ingredients := make([]model.Ingredient, 0, len(e.Ingredients))
	for _, ing := range e.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return nil, fmt.Errorf("%s: ingredient name is required", name)
		}
		if ing.Quantity <= 0 {
			return nil, fmt.Errorf("%s: quantity of %s must be positive", name, ing.Name)
		}
		if ing.Calories < 0 {
			return nil, fmt.Errorf("%s: calories of %s must not be negative", name, ing.Name)
		}
		ingredients = append(ingredients, model.NewIngredient(
			strings.TrimSpace(ing.Name), ing.Quantity, strings.TrimSpace(ing.Unit),
			ing.Calories, strings.TrimSpace(ing.FoodGroup),
		))
	}
	return model.NewRecipe(name, ingredients, e.Steps), nil
}

// Apply adds recipes to the service in order and returns how many were added.
func Apply(ctx context.Context, recipes Recipes, seeded []*model.Recipe) (int, error) {
	for i, r := range seeded {
		if _, err := recipes.AddRecipe(ctx, r); err != nil {
			return i, fmt.Errorf("failed to seed recipe %q: %w", r.Name, err)
		}
	}
	return len(seeded), nil
}
