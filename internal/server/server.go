package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/tonnage/internal/config"
	"github.com/mansoorceksport/tonnage/internal/handler"
	"github.com/mansoorceksport/tonnage/internal/repository"
	"github.com/mansoorceksport/tonnage/internal/service"
	"github.com/mansoorceksport/tonnage/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	blobStore := repository.NewRedisBlobStore(deps.RedisClient)
	workoutRepo := repository.NewRedisWorkoutRepository(blobStore, deps.Config.Storage.WorkoutsKey)
	goalRepo := repository.NewRedisGoalRepository(blobStore, deps.Config.Storage.GoalsKey)

	// Initialize services
	workoutService := service.NewWorkoutService(workoutRepo)
	goalService := service.NewGoalService(goalRepo)
	insightsService := service.NewInsightsService(workoutRepo, goalRepo)

	// Initialize handlers
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	goalHandler := handler.NewGoalHandler(goalService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Tonnage Tracker API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "tonnage",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Workout diary
	workouts := v1.Group("/workouts")
	workouts.Get("/", workoutHandler.List)
	workouts.Post("/", workoutHandler.Create)
	workouts.Put("/:id", workoutHandler.Replace)
	workouts.Delete("/:id", workoutHandler.Delete)

	// Yearly goals
	goals := v1.Group("/goals")
	goals.Put("/:year", goalHandler.Set)
	goals.Get("/:year", goalHandler.Get)

	// Progress & insights
	v1.Get("/overview", insightsHandler.GetOverview)
	v1.Get("/insights", insightsHandler.GetInsights)

	// Exercise tools
	exercises := v1.Group("/exercises")
	exercises.Get("/compare", insightsHandler.Compare)
	exercises.Get("/suggestions", workoutHandler.Suggestions)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
