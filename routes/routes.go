package routes

import (
	"net/http"

	"github.com/TaniaW777/zenfit/controllers"
	"github.com/TaniaW777/zenfit/middlewares"
	"github.com/TaniaW777/zenfit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Tokens   *services.TokenService
	Auth     *controllers.AuthController
	Workouts *controllers.WorkoutController
	Meals    *controllers.NutritionController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Zenfit API is running!", "status": "success"})
	})
	r.GET("/api/health", func(c *gin.Context) {
		database := "connected"
		if sqlDB, err := d.DB.DB(); err != nil || sqlDB.Ping() != nil {
			database = "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": database})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}

	workouts := r.Group("/api/workouts")
	workouts.Use(middlewares.AuthRequired(d.Tokens))
	{
		workouts.GET("/", d.Workouts.List)
		workouts.POST("/", d.Workouts.Create)
		workouts.GET("/:id", d.Workouts.Get)
		workouts.DELETE("/:id", d.Workouts.Delete)
	}

	nutrition := r.Group("/api/nutrition")
	nutrition.Use(middlewares.AuthRequired(d.Tokens))
	{
		nutrition.GET("/", d.Meals.ListMeals)
		nutrition.POST("/", d.Meals.CreateMeal)
		nutrition.GET("/daily-summary", d.Meals.DailySummary)
		nutrition.GET("/:id", d.Meals.GetMeal)
		nutrition.DELETE("/:id", d.Meals.DeleteMeal)
	}

	return r
}
