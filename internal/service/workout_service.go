package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mansoorceksport/tonnage/internal/domain"
)

// WorkoutService validates drafts at the boundary and turns them into
// stored records. Invalid input never reaches the repository.
type WorkoutService struct {
	repo     domain.WorkoutRepository
	validate *validator.Validate
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List returns the full stored collection.
func (s *WorkoutService) List(ctx context.Context) ([]domain.Workout, error) {
	return s.repo.Load(ctx)
}

// ListByYear returns one year's workouts, most recent first.
func (s *WorkoutService) ListByYear(ctx context.Context, year int) ([]domain.Workout, error) {
	workouts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndSortByYear(workouts, year), nil
}

// Create validates the draft, materializes totals and persists the new
// workout. The store assigns the ID.
func (s *WorkoutService) Create(ctx context.Context, draft domain.WorkoutDraft) (domain.Workout, error) {
	workout, err := s.materialize(draft)
	if err != nil {
		return domain.Workout{}, err
	}
	return s.repo.Add(ctx, workout)
}

// Replace validates the draft and replaces the record with the given
// ID, preserving identity. A missing target stays a silent no-op.
func (s *WorkoutService) Replace(ctx context.Context, id int64, draft domain.WorkoutDraft) (domain.Workout, error) {
	workout, err := s.materialize(draft)
	if err != nil {
		return domain.Workout{}, err
	}
	workout.ID = id
	return s.repo.Update(ctx, workout)
}

// Delete removes the workout with the given ID. Missing targets are a
// silent no-op.
func (s *WorkoutService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Suggestions returns stored exercise names matching the typed prefix.
func (s *WorkoutService) Suggestions(ctx context.Context, prefix string) ([]string, error) {
	workouts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ExerciseNameSuggestions(workouts, prefix), nil
}

// materialize turns a validated draft into a storable workout:
// title-cased exercise names, per-exercise totals and the workout sum.
func (s *WorkoutService) materialize(draft domain.WorkoutDraft) (domain.Workout, error) {
	if err := s.validate.Struct(draft); err != nil {
		return domain.Workout{}, fmt.Errorf("%w: %v", domain.ErrInvalidWorkout, err)
	}

	exercises := make([]domain.Exercise, len(draft.Exercises))
	for i, ed := range draft.Exercises {
		ex := domain.Exercise{
			Name:   titleCase(strings.TrimSpace(ed.Name)),
			Sets:   ed.Sets,
			Reps:   ed.Reps,
			Weight: ed.Weight,
		}
		ex.Total = ex.ComputeTotal()
		exercises[i] = ex
	}

	workout := domain.Workout{
		Name:      draft.Name,
		Date:      draft.Date,
		Exercises: exercises,
	}
	workout.TotalWeight = workout.SumExerciseTotals()
	return workout, nil
}

// titleCase lowercases the whole name, then capitalizes the first
// letter of each space-separated word ("bench press" -> "Bench Press").
func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
