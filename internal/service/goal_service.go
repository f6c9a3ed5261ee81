package service

import (
	"context"

	"github.com/mansoorceksport/tonnage/internal/domain"
)

// GoalService manages yearly tonnage targets.
type GoalService struct {
	repo domain.GoalRepository
}

// NewGoalService creates a new goal service.
func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

// SetGoal records the target for a year, overwriting any existing
// entry. Non-positive amounts are rejected at the boundary.
func (s *GoalService) SetGoal(ctx context.Context, year int, amount float64) error {
	if amount <= 0 {
		return domain.ErrInvalidGoal
	}

	goals, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	goals[year] = amount
	return s.repo.Save(ctx, goals)
}

// Goal returns the target for a year and whether one is set. Absence
// means "no goal", not zero.
func (s *GoalService) Goal(ctx context.Context, year int) (float64, bool, error) {
	goals, err := s.repo.Load(ctx)
	if err != nil {
		return 0, false, err
	}
	amount, ok := goals[year]
	return amount, ok, nil
}

// Progress computes the percentage of goal reached, clamped to
// [0, 100] so the progress ring never overdraws. No goal means 0.
func Progress(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := total / goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}
