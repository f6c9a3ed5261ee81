package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalStoreLoadEmpty(t *testing.T) {
	store, _ := setupBlobStore(t)
	repo := NewRedisGoalRepository(store, "yearlyGoals")

	goals, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalStoreMalformedBlobFailsSoft(t *testing.T) {
	store, mr := setupBlobStore(t)
	repo := NewRedisGoalRepository(store, "yearlyGoals")

	require.NoError(t, mr.Set("yearlyGoals", "[[["))

	goals, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalStoreSaveRoundTrips(t *testing.T) {
	store, _ := setupBlobStore(t)
	repo := NewRedisGoalRepository(store, "yearlyGoals")
	ctx := context.Background()

	want := map[int]float64{2023: 800000, 2024: 1000000.5}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got, "numeric precision survives the blob")
}
