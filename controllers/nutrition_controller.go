package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/TaniaW777/zenfit/models"
	"github.com/TaniaW777/zenfit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NutritionController struct {
	Svc *services.MealService
}

func NewNutritionController(svc *services.MealService) *NutritionController {
	return &NutritionController{Svc: svc}
}

func (h *NutritionController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var (
		meals []models.Meal
		err   error
	)
	if dateStr := c.Query("date"); dateStr != "" {
		day, perr := parseDate(dateStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		meals, err = h.Svc.ListByDate(userID, day)
	} else {
		meals, err = h.Svc.List(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

type CreateMealInput struct {
	MealType string                 `json:"meal_type" binding:"required"`
	Notes    string                 `json:"notes"`
	Date     *time.Time             `json:"date"`
	Foods    []services.FoodRequest `json:"foods" binding:"omitempty,dive"`
}

func (h *NutritionController) CreateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal type is required"})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal type"})
		return
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	meal, err := h.Svc.Create(userID, input.MealType, input.Notes, date, input.Foods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal created successfully",
		"meal":    meal,
	})
}

func (h *NutritionController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mealID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	meal, err := h.Svc.Get(userID, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *NutritionController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mealID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	if err := h.Svc.Delete(userID, mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

// DailySummary defaults to the current server-time UTC day when no date
// is supplied.
func (h *NutritionController) DailySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		date = parsed
	}

	summary, err := h.Svc.Summary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
