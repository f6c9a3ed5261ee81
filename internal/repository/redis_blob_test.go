package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStoreGetMissingKey(t *testing.T) {
	store, _ := setupBlobStore(t)

	var dest []string
	err := store.Get(context.Background(), "absent", &dest)
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestBlobStoreDeleteClearsKey(t *testing.T) {
	store, _ := setupBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "workouts", []string{"a", "b"}))

	require.NoError(t, store.Delete(ctx, "workouts"))

	var dest []string
	err := store.Get(ctx, "workouts", &dest)
	assert.True(t, errors.Is(err, ErrKeyMissing))

	// deleting nothing is a no-op
	require.NoError(t, store.Delete(ctx))
}
