package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipebook/backend/internal/metrics"
	"github.com/pageza/recipebook/backend/internal/model"
	"github.com/pageza/recipebook/backend/internal/store"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidRecipe      = errors.New("invalid recipe")
	ErrInvalidScaleFactor = errors.New("invalid scale factor")
)

// RecipeResult is the outcome of an operation that recomputes a recipe's calories.
// CalorieWarning is set when the new total exceeded model.CalorieThreshold and a
// notification was sent.
type RecipeResult struct {
	Recipe         *model.Recipe `json:"recipe"`
	CalorieWarning bool          `json:"calorie_warning"`
}

// RecipeService handles recipe operations
type RecipeService struct {
	mu           sync.Mutex
	store        *store.RecipeStore
	notifier     CalorieNotifier
	policy       ScalePolicy
	checkOnReset bool
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures a RecipeService.
type Option func(*RecipeService)

// WithNotifier sets the receiver of calorie-exceeded notifications.
func WithNotifier(n CalorieNotifier) Option {
	return func(s *RecipeService) { s.notifier = n }
}

// WithScalePolicy restricts the factors accepted by ScaleRecipe.
func WithScalePolicy(p ScalePolicy) Option {
	return func(s *RecipeService) { s.policy = p }
}

// WithResetThresholdCheck makes ResetRecipe notify when the restored total is over
// the threshold.
func WithResetThresholdCheck(enabled bool) Option {
	return func(s *RecipeService) { s.checkOnReset = enabled }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *RecipeService) { s.logger = l }
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(st *store.RecipeStore, opts ...Option) *RecipeService {
	if st == nil {
		st = store.New()
	}
	s := &RecipeService{
		store:  st,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TotalCalories returns the sum of calories x quantity over ingredients.
func (s *RecipeService) TotalCalories(ingredients []model.Ingredient) float64 {
	return model.TotalCalories(ingredients)
}

// AddRecipe appends recipe to the store and notifies when its total exceeds the
// calorie threshold.
func (s *RecipeService) AddRecipe(ctx context.Context, recipe *model.Recipe) (*RecipeResult, error) {
	if recipe == nil || strings.TrimSpace(recipe.Name) == "" {
		metrics.RecipeOperations.WithLabelValues("add", "invalid").Inc()
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRecipe)
	}

	r := recipe.Clone()
	r.EnsureOriginalQuantities()
	r.Recalculate()
	if !r.IsFinite() {
		metrics.RecipeOperations.WithLabelValues("add", "invalid").Inc()
		return nil, fmt.Errorf("%w: quantities and calories must be finite", ErrInvalidRecipe)
	}

	s.mu.Lock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}
	s.store.Add(r)
	metrics.RecipesStored.Set(float64(s.store.Len()))
	s.mu.Unlock()

	metrics.RecipeOperations.WithLabelValues("add", "ok").Inc()
	s.logger.InfoContext(ctx, "recipe added",
		"name", r.Name,
		"ingredients", len(r.Ingredients),
		"totalCalories", r.TotalCalories,
	)

	return &RecipeResult{Recipe: r, CalorieWarning: s.checkThreshold(ctx, "add", r)}, nil
}

// ListRecipes returns a snapshot of every recipe in insertion order.
func (s *RecipeService) ListRecipes(ctx context.Context) []*model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.All()
}

// GetRecipe retrieves a recipe by name, ignoring case
func (s *RecipeService) GetRecipe(ctx context.Context, name string) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.store.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
	}
	return r, nil
}

// DeleteRecipe removes the first recipe matching name. Deleting an absent recipe is
// a no-op; the result reports whether anything was removed.
func (s *RecipeService) DeleteRecipe(ctx context.Context, name string) bool {
	s.mu.Lock()
	deleted := s.store.Delete(name)
	metrics.RecipesStored.Set(float64(s.store.Len()))
	s.mu.Unlock()

	if deleted {
		metrics.RecipeOperations.WithLabelValues("delete", "ok").Inc()
		s.logger.InfoContext(ctx, "recipe deleted", "name", name)
	} else {
		metrics.RecipeOperations.WithLabelValues("delete", "not_found").Inc()
	}
	return deleted
}

// ClearRecipes empties the store.
func (s *RecipeService) ClearRecipes(ctx context.Context) {
	s.mu.Lock()
	n := s.store.Len()
	s.store.Clear()
	metrics.RecipesStored.Set(0)
	s.mu.Unlock()

	metrics.RecipeOperations.WithLabelValues("clear", "ok").Inc()
	s.logger.InfoContext(ctx, "recipes cleared", "count", n)
}

// ScaleRecipe multiplies every ingredient quantity of the named recipe by factor
// and recomputes its calories. Nothing changes when the recipe is missing or the
// factor is rejected by the scale policy.
func (s *RecipeService) ScaleRecipe(ctx context.Context, name string, factor float64) (*RecipeResult, error) {
	if err := s.policy.Validate(factor); err != nil {
		metrics.RecipeOperations.WithLabelValues("scale", "invalid").Inc()
		return nil, err
	}

	s.mu.Lock()
	current, ok := s.store.Get(name)
	if !ok {
		s.mu.Unlock()
		metrics.RecipeOperations.WithLabelValues("scale", "not_found").Inc()
		return nil, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
	}
	current.Scale(factor)
	if !current.IsFinite() {
		s.mu.Unlock()
		metrics.RecipeOperations.WithLabelValues("scale", "invalid").Inc()
		return nil, fmt.Errorf("%w: scaling %q by %g overflows", ErrInvalidScaleFactor, name, factor)
	}
	r, _ := s.store.Update(name, func(r *model.Recipe) { r.Scale(factor) })
	s.mu.Unlock()

	metrics.RecipeOperations.WithLabelValues("scale", "ok").Inc()
	s.logger.InfoContext(ctx, "recipe scaled",
		"name", r.Name,
		"factor", factor,
		"totalCalories", r.TotalCalories,
	)

	return &RecipeResult{Recipe: r, CalorieWarning: s.checkThreshold(ctx, "scale", r)}, nil
}

// ResetRecipe restores every ingredient of the named recipe to its original
// quantity and recomputes its calories.
func (s *RecipeService) ResetRecipe(ctx context.Context, name string) (*RecipeResult, error) {
	s.mu.Lock()
	r, ok := s.store.Update(name, func(r *model.Recipe) { r.Reset() })
	s.mu.Unlock()
	if !ok {
		metrics.RecipeOperations.WithLabelValues("reset", "not_found").Inc()
		return nil, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
	}

	metrics.RecipeOperations.WithLabelValues("reset", "ok").Inc()
	s.logger.InfoContext(ctx, "recipe reset", "name", r.Name, "totalCalories", r.TotalCalories)

	res := &RecipeResult{Recipe: r}
	if s.checkOnReset {
		res.CalorieWarning = s.checkThreshold(ctx, "reset", r)
	}
	return res, nil
}

// FilterRecipes returns the recipes matching every criterion set in filter.
func (s *RecipeService) FilterRecipes(ctx context.Context, filter RecipeFilter) []*model.Recipe {
	return filter.Apply(s.ListRecipes(ctx))
}

// ScaleFactors returns the factors accepted by ScaleRecipe, or nil when any
// positive factor is accepted.
func (s *RecipeService) ScaleFactors() []float64 {
	return s.policy.Factors()
}

// checkThreshold notifies outside the lock so a notifier may call back into the
// service.
func (s *RecipeService) checkThreshold(ctx context.Context, operation string, r *model.Recipe) bool {
	if !r.ExceedsCalorieThreshold() {
		return false
	}
	metrics.CalorieWarnings.WithLabelValues(operation).Inc()
	if s.notifier != nil {
		s.notifier.CalorieExceeded(ctx, r.Name, r.TotalCalories)
	}
	return true
}
