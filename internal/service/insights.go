package service

import (
	"context"
	"time"

	"github.com/mansoorceksport/tonnage/internal/domain"
	"golang.org/x/sync/errgroup"
)

// topExerciseCount is how many leaderboard rows the insights view shows.
const topExerciseCount = 5

// YearOverview is the progress-ring view for one year.
type YearOverview struct {
	Year      int     `json:"year"`
	Total     float64 `json:"total"`
	Goal      float64 `json:"goal"`
	GoalSet   bool    `json:"goal_set"`
	Progress  float64 `json:"progress"`
	Remaining float64 `json:"remaining"`
	Years     []int   `json:"years"`
}

// InsightsReport is the insights-tab payload: streak, leaderboard and
// the selected time-bucket series.
type InsightsReport struct {
	Streak       int            `json:"streak"`
	TopExercises []ExerciseRank `json:"top_exercises"`
	View         Granularity    `json:"view"`
	Series       []Bucket       `json:"series"`
}

// ExerciseComparison pits two exercises against each other by total
// tonnage lifted across all time.
type ExerciseComparison struct {
	First       string  `json:"first"`
	FirstTotal  float64 `json:"first_total"`
	Second      string  `json:"second,omitempty"`
	SecondTotal float64 `json:"second_total,omitempty"`
}

// InsightsService assembles derived statistics from a fresh snapshot on
// every call. It never mutates; the stores stay the single writers.
type InsightsService struct {
	workoutRepo domain.WorkoutRepository
	goalRepo    domain.GoalRepository
}

// NewInsightsService creates a new insights service.
func NewInsightsService(workoutRepo domain.WorkoutRepository, goalRepo domain.GoalRepository) *InsightsService {
	return &InsightsService{
		workoutRepo: workoutRepo,
		goalRepo:    goalRepo,
	}
}

// Overview computes the yearly total, goal progress and the year tabs.
// The two persistence keys are independent, so they load concurrently.
func (s *InsightsService) Overview(ctx context.Context, year int) (*YearOverview, error) {
	var (
		workouts []domain.Workout
		goals    map[int]float64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workouts, err = s.workoutRepo.Load(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.Load(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := TotalForYear(workouts, year)
	goal, goalSet := goals[year]

	overview := &YearOverview{
		Year:     year,
		Total:    total,
		Goal:     goal,
		GoalSet:  goalSet,
		Progress: Progress(total, goal),
		Years:    DistinctYears(workouts),
	}
	if goalSet && goal > total {
		overview.Remaining = goal - total
	}
	return overview, nil
}

// Insights builds the insights-tab report for the given bucket view,
// anchored at now.
func (s *InsightsService) Insights(ctx context.Context, view Granularity, now time.Time) (*InsightsReport, error) {
	workouts, err := s.workoutRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &InsightsReport{
		Streak:       CurrentStreak(workouts, now),
		TopExercises: TopExercises(workouts, topExerciseCount),
		View:         view,
		Series:       TimeBucketSeries(workouts, view, now),
	}, nil
}

// Compare totals two exercises by name. The second name is optional.
func (s *InsightsService) Compare(ctx context.Context, first, second string) (*ExerciseComparison, error) {
	workouts, err := s.workoutRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	cmp := &ExerciseComparison{
		First:      first,
		FirstTotal: ExerciseTotal(workouts, first),
	}
	if second != "" {
		cmp.Second = second
		cmp.SecondTotal = ExerciseTotal(workouts, second)
	}
	return cmp, nil
}
