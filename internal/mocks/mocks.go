package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCalorieNotifier records calorie-exceeded notifications.
type MockCalorieNotifier struct {
	mock.Mock
}

func (m *MockCalorieNotifier) CalorieExceeded(ctx context.Context, recipeName string, totalCalories float64) {
	m.Called(ctx, recipeName, totalCalories)
}
