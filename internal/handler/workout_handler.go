package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/tonnage/internal/domain"
	"github.com/mansoorceksport/tonnage/internal/service"
)

// WorkoutHandler handles HTTP requests for the workout diary
type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

// NewWorkoutHandler creates a new workout handler
func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

// List handles GET /v1/workouts?year=
// With a year it returns that year's workouts, most recent first.
func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	yearStr := c.Query("year")
	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year"})
		}
		workouts, err := h.workoutService.ListByYear(c.Context(), year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(workouts)
	}

	workouts, err := h.workoutService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(workouts)
}

// Create handles POST /v1/workouts
func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	var draft domain.WorkoutDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.Create(c.Context(), draft)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWorkout) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// Replace handles PUT /v1/workouts/:id. Full replace; identity kept.
func (h *WorkoutHandler) Replace(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var draft domain.WorkoutDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.Replace(c.Context(), id, draft)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWorkout) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(workout)
}

// Delete handles DELETE /v1/workouts/:id. A missing target is a no-op.
func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.workoutService.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Suggestions handles GET /v1/exercises/suggestions?q=
func (h *WorkoutHandler) Suggestions(c *fiber.Ctx) error {
	names, err := h.workoutService.Suggestions(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}
