package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salad() *Recipe {
	return NewRecipe("Salad",
		[]Ingredient{NewIngredient("Lettuce", 2, "cups", 100, "Vegetables and fruits")},
		[]string{"Wash", "Toss"},
	)
}

func TestNewRecipeComputesTotal(t *testing.T) {
	r := NewRecipe("Toast", []Ingredient{
		NewIngredient("Bread", 2, "slices", 80, "Starchy foods"),
		NewIngredient("Butter", 1.5, "tsp", 34, "Fats and oil"),
	}, nil)

	assert.InDelta(t, 2*80+1.5*34, r.TotalCalories, 1e-9)
	assert.False(t, r.ExceedsCalorieThreshold())
}

func TestScaleAndReset(t *testing.T) {
	r := salad()
	assert.Equal(t, 200.0, r.TotalCalories)

	r.Scale(2)
	assert.Equal(t, 4.0, r.Ingredients[0].Quantity)
	assert.Equal(t, 400.0, r.TotalCalories)
	assert.True(t, r.ExceedsCalorieThreshold())

	r.Scale(0.5)
	r.Scale(3)
	assert.InDelta(t, 2*2*0.5*3, r.Ingredients[0].Quantity, 1e-9)

	r.Reset()
	assert.Equal(t, 2.0, r.Ingredients[0].Quantity)
	assert.Equal(t, 200.0, r.TotalCalories)
	assert.Equal(t, 2.0, r.Ingredients[0].OriginalQuantity())

	r.Reset()
	assert.Equal(t, 2.0, r.Ingredients[0].Quantity)
}

func TestThresholdIsExclusive(t *testing.T) {
	r := NewRecipe("Exact", []Ingredient{NewIngredient("Rice", 3, "cups", 100, "Starchy foods")}, nil)
	assert.Equal(t, CalorieThreshold, r.TotalCalories)
	assert.False(t, r.ExceedsCalorieThreshold())
}

func TestCloneIsDeep(t *testing.T) {
	r := salad()
	c := r.Clone()

	c.Ingredients[0].Scale(10)
	c.Steps[0] = "Skip"

	assert.Equal(t, 2.0, r.Ingredients[0].Quantity)
	assert.Equal(t, "Wash", r.Steps[0])
	assert.Equal(t, 2.0, c.Ingredients[0].OriginalQuantity())
	assert.Nil(t, (*Recipe)(nil).Clone())
}

func TestHasName(t *testing.T) {
	r := salad()
	assert.True(t, r.HasName("salad"))
	assert.True(t, r.HasName("SALAD"))
	assert.False(t, r.HasName("Sal"))
}

func TestTotalCaloriesEmpty(t *testing.T) {
	assert.Zero(t, TotalCalories(nil))
}

func TestIngredientJSONIncludesOriginalQuantity(t *testing.T) {
	ing := NewIngredient("Egg", 2, "", 70, "Chicken, fish, meat and eggs")
	ing.Scale(3)

	data, err := json.Marshal(ing)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 6.0, out["quantity"])
	assert.Equal(t, 2.0, out["original_quantity"])
	assert.Equal(t, "Egg", out["name"])
	assert.Equal(t, "Chicken, fish, meat and eggs", out["food_group"])
}

func TestIsFoodGroup(t *testing.T) {
	assert.True(t, IsFoodGroup("water"))
	assert.True(t, IsFoodGroup(" Starchy foods "))
	assert.False(t, IsFoodGroup("Candy"))
	assert.False(t, IsFoodGroup(""))
}

func TestIngredientJSONRoundTripKeepsOriginal(t *testing.T) {
	ing := NewIngredient("Rice", 2, "cup", 200, "Starchy foods")
	ing.Scale(3)

	data, err := json.Marshal(ing)
	require.NoError(t, err)

	var decoded Ingredient
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 6.0, decoded.Quantity)
	assert.Equal(t, 2.0, decoded.OriginalQuantity())

	decoded.Reset()
	assert.Equal(t, 2.0, decoded.Quantity)
}

func TestIngredientUnmarshalWithoutOriginal(t *testing.T) {
	var ing Ingredient
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Rice","quantity":4,"calories":10}`), &ing))
	assert.Equal(t, 4.0, ing.OriginalQuantity())

	assert.Error(t, json.Unmarshal([]byte(`{"quantity":"four"}`), &ing))
}

func TestLiteralIngredientsGetOriginalQuantity(t *testing.T) {
	r := NewRecipe("Toast", []Ingredient{{Name: "Bread", Quantity: 2, Calories: 100}}, nil)
	assert.Equal(t, 2.0, r.Ingredients[0].OriginalQuantity())

	r.Scale(2)
	r.Reset()
	assert.Equal(t, 2.0, r.Ingredients[0].Quantity)
	assert.Equal(t, 200.0, r.TotalCalories)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, salad().IsFinite())
	assert.True(t, NewRecipe("Empty", nil, nil).IsFinite())

	huge := NewRecipe("Huge", []Ingredient{NewIngredient("Salt", 1e200, "g", 1e200, "Fats and oil")}, nil)
	assert.False(t, huge.IsFinite())

	big := NewRecipe("Big", []Ingredient{NewIngredient("Salt", 1e308, "g", 0, "Fats and oil")}, nil)
	require.True(t, big.IsFinite())
	big.Scale(2)
	assert.False(t, big.IsFinite())
}
