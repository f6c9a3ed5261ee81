package domain

import "errors"

// Common errors
var (
	ErrInvalidWorkout = errors.New("invalid workout draft")
	ErrInvalidGoal    = errors.New("goal amount must be positive")
)
