package main

import (
	"log"
	"net/http"

	"github.com/TaniaW777/zenfit/config"
	"github.com/TaniaW777/zenfit/controllers"
	"github.com/TaniaW777/zenfit/routes"
	"github.com/TaniaW777/zenfit/services"
	"github.com/TaniaW777/zenfit/utils"

	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	hasher := utils.NewPasswordHasher(cfg.BcryptCost)
	tokens := services.NewTokenService(cfg.JWTSecret, services.TokenTTL)

	authSvc := services.NewAuthService(db, hasher, tokens)
	workoutSvc := services.NewWorkoutService(db)
	mealSvc := services.NewMealService(db)

	r := routes.SetupRouter(routes.Deps{
		DB:       db,
		Tokens:   tokens,
		Auth:     controllers.NewAuthController(authSvc),
		Workouts: controllers.NewWorkoutController(workoutSvc),
		Meals:    controllers.NewNutritionController(mealSvc),
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
