package tests

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/tonnage/internal/config"
	"github.com/mansoorceksport/tonnage/internal/server"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// SetupTestApp builds the full application against a fresh miniredis.
func SetupTestApp(t *testing.T) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { redisClient.Close() })

	cfg := &config.Config{}
	cfg.Storage.WorkoutsKey = "workouts"
	cfg.Storage.GoalsKey = "yearlyGoals"

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		RedisClient: redisClient,
	})
	return app, mr
}
