package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/TaniaW777/zenfit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workouts, err := h.Svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load workouts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

type CreateWorkoutInput struct {
	Title     string                     `json:"title" binding:"required"`
	Notes     string                     `json:"notes"`
	Date      *time.Time                 `json:"date"`
	Duration  int                        `json:"duration"`
	Exercises []services.ExerciseRequest `json:"exercises" binding:"omitempty,dive"`
}

func (h *WorkoutController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	workout, err := h.Svc.Create(userID, input.Title, input.Notes, date, input.Duration, input.Exercises)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create workout"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout created successfully",
		"workout": workout,
	})
}

func (h *WorkoutController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workoutID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	workout, err := h.Svc.Get(userID, workoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load workout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

func (h *WorkoutController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workoutID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	if err := h.Svc.Delete(userID, workoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete workout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
