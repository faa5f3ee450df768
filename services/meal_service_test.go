package services

import (
	"testing"
	"time"

	"github.com/TaniaW777/zenfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMealCreateWithFoods(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "a@b.com")

	meal, err := svc.Create(user.ID, models.MealBreakfast, "", time.Now().UTC(), []FoodRequest{
		{Name: "Oats", Quantity: 80, Unit: "g", Calories: 300, Protein: 10, Carbs: 54, Fats: 6},
		{Name: "Banana", Quantity: 1, Unit: "piece", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4},
	})
	require.NoError(t, err)
	require.Len(t, meal.Foods, 2)
	assert.Equal(t, 405.0, meal.Totals.Calories)
	assert.Equal(t, 11.3, meal.Totals.Protein)
	assert.Equal(t, 81.0, meal.Totals.Carbs)
	assert.Equal(t, 6.4, meal.Totals.Fats)
}

func TestMealDateWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "a@b.com")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	inside := []time.Time{
		day,                                 // midnight, inclusive
		day.Add(12 * time.Hour),             // noon
		day.Add(24*time.Hour - time.Second), // last second of the day
	}
	outside := []time.Time{
		day.Add(-time.Second),   // previous day
		day.Add(24 * time.Hour), // next midnight, exclusive
	}

	for _, ts := range append(inside, outside...) {
		_, err := svc.Create(user.ID, models.MealSnack, "", ts, nil)
		require.NoError(t, err)
	}

	// any instant inside the day names the same window
	meals, err := svc.ListByDate(user.ID, day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Len(t, meals, len(inside))
}

func TestMealOwnershipBlindNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	alice := createTestUser(t, db, "alice@b.com")
	bob := createTestUser(t, db, "bob@b.com")

	meal, err := svc.Create(alice.ID, models.MealLunch, "", time.Now().UTC(), nil)
	require.NoError(t, err)

	_, err = svc.Get(bob.ID, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(bob.ID, meal.ID), gorm.ErrRecordNotFound)

	_, err = svc.Get(alice.ID, meal.ID)
	require.NoError(t, err)
}

func TestMealCreateRollsBackOnFoodFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "a@b.com")

	require.NoError(t, db.Migrator().DropTable(&models.Food{}))

	_, err := svc.Create(user.ID, models.MealBreakfast, "", time.Now().UTC(), []FoodRequest{
		{Name: "Oats", Calories: 300},
	})
	require.Error(t, err)

	var parents int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&parents).Error)
	assert.Zero(t, parents, "no meal row may survive a failed food insert")
}

func TestMealDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "a@b.com")

	meal, err := svc.Create(user.ID, models.MealDinner, "", time.Now().UTC(), []FoodRequest{
		{Name: "Rice", Calories: 200},
		{Name: "Chicken", Calories: 330},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, meal.ID))

	var orphans int64
	require.NoError(t, db.Model(&models.Food{}).Where("meal_id = ?", meal.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestDailySummaryRounding(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "a@b.com")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	calories := []float64{100.25, 200.74, 50.0}
	mealTypes := []string{models.MealBreakfast, models.MealLunch, models.MealDinner}
	for i, cal := range calories {
		_, err := svc.Create(user.ID, mealTypes[i], "", day.Add(time.Duration(i)*time.Hour), []FoodRequest{
			{Name: "food", Calories: cal, Protein: 10.04, Carbs: 20.06, Fats: 5.55},
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.MealsCount)
	// 100.3 + 200.7 + 50.0, not 350.99
	assert.Equal(t, 351.0, summary.Summary.Calories)
	assert.Equal(t, 30.0, summary.Summary.Protein)
	assert.Equal(t, 60.3, summary.Summary.Carbs)
	assert.Equal(t, 16.8, summary.Summary.Fats)
}

func TestDailySummaryEmptyDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "a@b.com")

	summary, err := svc.Summary(user.ID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, summary.MealsCount)
	assert.Equal(t, models.Totals{}, summary.Summary)
}

func TestDailySummaryScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	alice := createTestUser(t, db, "alice@b.com")
	bob := createTestUser(t, db, "bob@b.com")

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(alice.ID, models.MealBreakfast, "", day, []FoodRequest{{Name: "Toast", Calories: 150}})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, models.MealBreakfast, "", day, []FoodRequest{{Name: "Eggs", Calories: 210}})
	require.NoError(t, err)

	summary, err := svc.Summary(alice.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MealsCount)
	assert.Equal(t, 150.0, summary.Summary.Calories)
}
