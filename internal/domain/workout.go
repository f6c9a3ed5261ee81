package domain

import "context"

// Exercise is a single movement logged inside a workout.
// Total is the tonnage contribution: Sets * Reps * Weight.
// JSON field names match the persisted blob format exactly.
type Exercise struct {
	Name   string  `json:"name"`
	Sets   float64 `json:"sets"`
	Reps   float64 `json:"reps"`
	Weight float64 `json:"weight"`
	Total  float64 `json:"total"`
}

// ComputeTotal returns Sets * Reps * Weight. A zero (absent) input
// zeroes the product, which matches the stored invariant.
func (e Exercise) ComputeTotal() float64 {
	return e.Sets * e.Reps * e.Weight
}

// Workout is a logged training session. Date is a calendar date in
// YYYY-MM-DD form; TotalWeight is the sum of exercise totals.
type Workout struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	Exercises   []Exercise `json:"exercises"`
	TotalWeight float64    `json:"totalWeight"`
}

// SumExerciseTotals recomputes the workout tonnage from its exercises.
func (w Workout) SumExerciseTotals() float64 {
	var sum float64
	for _, ex := range w.Exercises {
		sum += ex.Total
	}
	return sum
}

// ExerciseDraft is boundary input for one exercise, validated before
// it is admitted into the store.
type ExerciseDraft struct {
	Name   string  `json:"name" validate:"required"`
	Sets   float64 `json:"sets" validate:"required,gt=0"`
	Reps   float64 `json:"reps" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// WorkoutDraft is boundary input for creating or replacing a workout.
type WorkoutDraft struct {
	Name      string          `json:"name" validate:"required"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Exercises []ExerciseDraft `json:"exercises" validate:"required,min=1,dive"`
}

// WorkoutRepository owns the persisted workout collection. Every
// mutation synchronously rewrites the whole collection blob.
type WorkoutRepository interface {
	// Load returns the full collection. A missing or malformed blob
	// yields an empty collection, not an error.
	Load(ctx context.Context) ([]Workout, error)
	// Add assigns a fresh ID, appends and persists. Returns the stored record.
	Add(ctx context.Context, workout Workout) (Workout, error)
	// Update replaces the record with a matching ID. No-op if absent.
	Update(ctx context.Context, workout Workout) (Workout, error)
	// Delete removes the record with a matching ID. No-op if absent.
	Delete(ctx context.Context, id int64) error
}

// GoalRepository owns the year -> target tonnage map. Entries are only
// ever created or overwritten, never deleted.
type GoalRepository interface {
	Load(ctx context.Context) (map[int]float64, error)
	Save(ctx context.Context, goals map[int]float64) error
}
