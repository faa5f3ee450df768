package models

import "time"

// Workout is a training session owned by one user. Its exercises have
// no lifecycle of their own and go away with the workout.
type Workout struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	Title     string     `json:"title" gorm:"size:100;not null"`
	Notes     string     `json:"notes"`
	Date      time.Time  `json:"date"`
	Duration  int        `json:"duration"` // minutes
	Exercises []Exercise `json:"exercises" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
}

type Exercise struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	WorkoutID uint    `json:"-" gorm:"index;not null"`
	Name      string  `json:"name" gorm:"size:100;not null"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`   // kg
	Duration  int     `json:"duration"` // seconds, for cardio
	Notes     string  `json:"notes"`
}
