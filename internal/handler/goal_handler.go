package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/tonnage/internal/domain"
	"github.com/mansoorceksport/tonnage/internal/service"
)

// GoalHandler handles HTTP requests for yearly tonnage goals
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type setGoalRequest struct {
	Amount float64 `json:"amount"`
}

// Set handles PUT /v1/goals/:year
func (h *GoalHandler) Set(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year"})
	}

	var req setGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if err := h.goalService.SetGoal(c.Context(), year, req.Amount); err != nil {
		if errors.Is(err, domain.ErrInvalidGoal) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"year": year, "amount": req.Amount})
}

// Get handles GET /v1/goals/:year
func (h *GoalHandler) Get(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year"})
	}

	amount, ok, err := h.goalService.Goal(c.Context(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no goal set"})
	}

	return c.JSON(fiber.Map{"year": year, "amount": amount})
}
