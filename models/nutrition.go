package models

import (
	"math"
	"time"
)

// Meal types accepted on logging.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// One logged meal with its foods. Foods are a nutrition snapshot taken
// at logging time and are deleted with their meal.
type Meal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	MealType  string    `json:"meal_type" gorm:"size:20;not null"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	Foods     []Food    `json:"foods" gorm:"constraint:OnDelete:CASCADE"`
	Totals    Totals    `json:"totals" gorm:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Food struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	MealID   uint    `json:"-" gorm:"index;not null"`
	Name     string  `json:"name" gorm:"size:100;not null"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit" gorm:"size:20"` // g, ml, cup, piece, ...
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`   // grams
	Fats     float64 `json:"fats"`    // grams
}

type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// CalculateTotals sums the macros across the meal's foods, each total
// rounded to one decimal place.
func (m *Meal) CalculateTotals() Totals {
	var t Totals
	for _, f := range m.Foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fats += f.Fats
	}
	t.Calories = Round1(t.Calories)
	t.Protein = Round1(t.Protein)
	t.Carbs = Round1(t.Carbs)
	t.Fats = Round1(t.Fats)
	return t
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
