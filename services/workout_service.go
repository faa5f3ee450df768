package services

import (
	"time"

	"github.com/TaniaW777/zenfit/models"

	"gorm.io/gorm"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type ExerciseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration int     `json:"duration"`
	Notes    string  `json:"notes"`
}

func (s *WorkoutService) List(userID uint) ([]models.Workout, error) {
	workouts := []models.Workout{} // an empty list serializes as [], not null
	err := s.db.
		Preload("Exercises").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	return workouts, err
}

// Create writes the workout and its exercises as one unit; a failed
// exercise insert rolls the whole thing back.
func (s *WorkoutService) Create(userID uint, title, notes string, date time.Time, duration int, exercises []ExerciseRequest) (*models.Workout, error) {
	workout := models.Workout{
		UserID:   userID,
		Title:    title,
		Notes:    notes,
		Date:     date,
		Duration: duration,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		for _, ex := range exercises {
			e := models.Exercise{
				WorkoutID: workout.ID,
				Name:      ex.Name,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				Weight:    ex.Weight,
				Duration:  ex.Duration,
				Notes:     ex.Notes,
			}
			if err := tx.Create(&e).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.Workout
	if err := s.db.Preload("Exercises").First(&populated, workout.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// Get looks the workout up scoped to its owner. A workout that exists
// but belongs to someone else surfaces as ErrRecordNotFound, same as a
// missing one.
func (s *WorkoutService) Get(userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.
		Preload("Exercises").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout and its exercises. Same ownership-blind
// not-found rule as Get.
func (s *WorkoutService) Delete(userID, workoutID uint) error {
	var workout models.Workout
	if err := s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
}
