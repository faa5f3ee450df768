package services

import (
	"time"

	"github.com/TaniaW777/zenfit/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type FoodRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type DailySummary struct {
	Date       time.Time     `json:"date"`
	Summary    models.Totals `json:"summary"`
	MealsCount int           `json:"meals_count"`
}

// DayWindow normalizes t to its [start-of-day, start-of-day+24h) range.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

func (s *MealService) List(userID uint) ([]models.Meal, error) {
	meals := []models.Meal{} // an empty list serializes as [], not null
	err := s.db.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	fillTotals(meals)
	return meals, nil
}

func (s *MealService) ListByDate(userID uint, day time.Time) ([]models.Meal, error) {
	start, end := DayWindow(day)
	meals := []models.Meal{}
	err := s.db.
		Preload("Foods").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	fillTotals(meals)
	return meals, nil
}

// Create writes the meal and its foods atomically.
func (s *MealService) Create(userID uint, mealType, notes string, date time.Time, foods []FoodRequest) (*models.Meal, error) {
	meal := models.Meal{
		UserID:   userID,
		MealType: mealType,
		Date:     date,
		Notes:    notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meal).Error; err != nil {
			return err
		}
		for _, f := range foods {
			food := models.Food{
				MealID:   meal.ID,
				Name:     f.Name,
				Quantity: f.Quantity,
				Unit:     f.Unit,
				Calories: f.Calories,
				Protein:  f.Protein,
				Carbs:    f.Carbs,
				Fats:     f.Fats,
			}
			if err := tx.Create(&food).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.Meal
	if err := s.db.Preload("Foods").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	populated.Totals = populated.CalculateTotals()
	return &populated, nil
}

// Get is ownership-blind about other users' meals: not yours reads the
// same as not there.
func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Foods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	meal.Totals = meal.CalculateTotals()
	return &meal, nil
}

func (s *MealService) Delete(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.Food{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}

// Summary folds the per-meal totals for one day into a grand total,
// each field rounded to one decimal place.
func (s *MealService) Summary(userID uint, date time.Time) (*DailySummary, error) {
	meals, err := s.ListByDate(userID, date)
	if err != nil {
		return nil, err
	}

	var total models.Totals
	for _, m := range meals {
		total.Calories += m.Totals.Calories
		total.Protein += m.Totals.Protein
		total.Carbs += m.Totals.Carbs
		total.Fats += m.Totals.Fats
	}
	total.Calories = models.Round1(total.Calories)
	total.Protein = models.Round1(total.Protein)
	total.Carbs = models.Round1(total.Carbs)
	total.Fats = models.Round1(total.Fats)

	return &DailySummary{
		Date:       date,
		Summary:    total,
		MealsCount: len(meals),
	}, nil
}

func fillTotals(meals []models.Meal) {
	for i := range meals {
		meals[i].Totals = meals[i].CalculateTotals()
	}
}
