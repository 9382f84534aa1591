package api

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/internal/model"
	"github.com/pageza/recipebook/backend/internal/service"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *slog.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, logger *slog.Logger) *RecipeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if err := RegisterValidations(); err != nil {
		logger.Error("failed to register request validations", "error", err)
	}
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.DELETE("", h.ClearRecipes)
		recipes.GET("/:name", h.GetRecipe)
		recipes.DELETE("/:name", h.DeleteRecipe)
		recipes.POST("/:name/scale", h.ScaleRecipe)
		recipes.POST("/:name/reset", h.ResetRecipe)
	}
	router.GET("/food-groups", h.ListFoodGroups)
	router.GET("/scale-factors", h.ListScaleFactors)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.RecipeFilter{
		Ingredient: strings.TrimSpace(c.Query("ingredient")),
		FoodGroup:  strings.TrimSpace(c.Query("food_group")),
		SortByName: c.Query("sort") == "name",
	}

	if raw := strings.TrimSpace(c.Query("max_calories")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_calories must be a non-negative number"})
			return
		}
		filter.MaxCalories = v
	}

	recipes := h.recipes.FilterRecipes(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.recipes.AddRecipe(c.Request.Context(), req.ToModel())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRecipeResponse(res))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	name := c.Param("name")
	if !h.recipes.DeleteRecipe(c.Request.Context(), name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Recipe '%s' deleted successfully.", name),
		"name":    name,
	})
}

func (h *RecipeHandler) ClearRecipes(c *gin.Context) {
	h.recipes.ClearRecipes(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared."})
}

func (h *RecipeHandler) ScaleRecipe(c *gin.Context) {
	var req ScaleRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.recipes.ScaleRecipe(c.Request.Context(), c.Param("name"), req.Factor)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(res))
}

func (h *RecipeHandler) ResetRecipe(c *gin.Context) {
	res, err := h.recipes.ResetRecipe(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(res))
}

func (h *RecipeHandler) ListFoodGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"food_groups": model.FoodGroups})
}

func (h *RecipeHandler) ListScaleFactors(c *gin.Context) {
	factors := h.recipes.ScaleFactors()
	c.JSON(http.StatusOK, gin.H{
		"factors":      factors,
		"unrestricted": len(factors) == 0,
	})
}

func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrInvalidScaleFactor), errors.Is(err, service.ErrInvalidRecipe):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.ErrorContext(c.Request.Context(), "recipe request failed",
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

func newRecipeResponse(res *service.RecipeResult) RecipeResponse {
	out := RecipeResponse{Recipe: res.Recipe, CalorieWarning: res.CalorieWarning}
	if res.CalorieWarning {
		out.Warning = fmt.Sprintf("Warning: Total calories of %s exceed %g!", res.Recipe.Name, model.CalorieThreshold)
	}
	return out
}
