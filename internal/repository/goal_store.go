package repository

import (
	"context"
	"errors"
)

// RedisGoalRepository persists the year -> target tonnage map as a
// single JSON blob under its own key.
type RedisGoalRepository struct {
	store *RedisBlobStore
	key   string
}

// NewRedisGoalRepository creates a goal repository over the blob store.
func NewRedisGoalRepository(store *RedisBlobStore, key string) *RedisGoalRepository {
	return &RedisGoalRepository{
		store: store,
		key:   key,
	}
}

// Load returns the persisted goal map. Missing or malformed blobs fail
// soft to an empty map.
func (r *RedisGoalRepository) Load(ctx context.Context) (map[int]float64, error) {
	var goals map[int]float64
	if err := r.store.Get(ctx, r.key, &goals); err != nil {
		if errors.Is(err, ErrKeyMissing) || errors.Is(err, ErrMalformedBlob) {
			return map[int]float64{}, nil
		}
		return nil, err
	}
	if goals == nil {
		goals = map[int]float64{}
	}
	return goals, nil
}

// Save overwrites the full goal map.
func (r *RedisGoalRepository) Save(ctx context.Context, goals map[int]float64) error {
	return r.store.Set(ctx, r.key, goals)
}
