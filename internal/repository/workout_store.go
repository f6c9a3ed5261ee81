package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mansoorceksport/tonnage/internal/domain"
)

// RedisWorkoutRepository persists the workout collection as a single
// JSON blob. Every mutation rewrites the whole blob synchronously.
type RedisWorkoutRepository struct {
	store *RedisBlobStore
	key   string
	// now is swappable so tests control ID assignment
	now func() time.Time
}

// NewRedisWorkoutRepository creates a workout repository over the blob store.
func NewRedisWorkoutRepository(store *RedisBlobStore, key string) *RedisWorkoutRepository {
	return &RedisWorkoutRepository{
		store: store,
		key:   key,
		now:   time.Now,
	}
}

// Load returns the persisted collection. A missing or malformed blob
// yields an empty collection; the store fails soft, never fatal.
func (r *RedisWorkoutRepository) Load(ctx context.Context) ([]domain.Workout, error) {
	var workouts []domain.Workout
	if err := r.store.Get(ctx, r.key, &workouts); err != nil {
		if errors.Is(err, ErrKeyMissing) || errors.Is(err, ErrMalformedBlob) {
			return []domain.Workout{}, nil
		}
		return nil, err
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

// Add assigns a clock-derived ID, appends the record and persists the
// full collection. If the millisecond clock has not advanced past the
// newest record, the ID is bumped so IDs stay unique and increasing.
func (r *RedisWorkoutRepository) Add(ctx context.Context, workout domain.Workout) (domain.Workout, error) {
	workouts, err := r.Load(ctx)
	if err != nil {
		return domain.Workout{}, err
	}

	id := r.now().UnixMilli()
	for _, w := range workouts {
		if w.ID >= id {
			id = w.ID + 1
		}
	}
	workout.ID = id
	workouts = append(workouts, workout)

	if err := r.store.Set(ctx, r.key, workouts); err != nil {
		return domain.Workout{}, err
	}
	return workout, nil
}

// Update replaces the record whose ID matches. A missing target is a
// silent no-op; the returned record is whatever was passed in.
func (r *RedisWorkoutRepository) Update(ctx context.Context, workout domain.Workout) (domain.Workout, error) {
	workouts, err := r.Load(ctx)
	if err != nil {
		return domain.Workout{}, err
	}

	for i := range workouts {
		if workouts[i].ID == workout.ID {
			workouts[i] = workout
			break
		}
	}

	if err := r.store.Set(ctx, r.key, workouts); err != nil {
		return domain.Workout{}, err
	}
	return workout, nil
}

// Delete removes the record whose ID matches. A missing target is a
// silent no-op.
func (r *RedisWorkoutRepository) Delete(ctx context.Context, id int64) error {
	workouts, err := r.Load(ctx)
	if err != nil {
		return err
	}

	kept := workouts[:0]
	for _, w := range workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}

	return r.store.Set(ctx, r.key, kept)
}
