package service

import (
	"context"
	"log/slog"

	"github.com/pageza/recipebook/backend/internal/model"
)

// CalorieNotifier receives a synchronous notification whenever a recipe's total
// calories are computed to exceed model.CalorieThreshold.
type CalorieNotifier interface {
	CalorieExceeded(ctx context.Context, recipeName string, totalCalories float64)
}

// NotifierFunc adapts a function to CalorieNotifier.
type NotifierFunc func(ctx context.Context, recipeName string, totalCalories float64)

func (f NotifierFunc) CalorieExceeded(ctx context.Context, recipeName string, totalCalories float64) {
	f(ctx, recipeName, totalCalories)
}

// LogNotifier writes a warning for every notification.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) CalorieExceeded(ctx context.Context, recipeName string, totalCalories float64) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "recipe exceeds calorie threshold",
		"name", recipeName,
		"totalCalories", totalCalories,
		"threshold", model.CalorieThreshold,
	)
}
