package model

import "strings"

// FoodGroups lists the groups offered when entering an ingredient.
var FoodGroups = []string{
	"Starchy foods",
	"Vegetables and fruits",
	"Dry beans, peas, lentils and soya",
	"Chicken, fish, meat and eggs",
	"Milk and dairy products",
	"Fats and oil",
	"Water",
}

// IsFoodGroup reports whether name is one of FoodGroups, ignoring case.
func IsFoodGroup(name string) bool {
	for _, g := range FoodGroups {
		if strings.EqualFold(g, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}
