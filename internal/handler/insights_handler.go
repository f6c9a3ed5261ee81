package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/tonnage/internal/service"
)

// InsightsHandler handles HTTP requests for derived statistics
type InsightsHandler struct {
	insightsService *service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetOverview handles GET /v1/overview?year= (default: current year)
func (h *InsightsHandler) GetOverview(c *fiber.Ctx) error {
	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "invalid year",
			})
		}
		year = parsed
	}

	overview, err := h.insightsService.Overview(c.Context(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to build overview: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    overview,
	})
}

// GetInsights handles GET /v1/insights?view=daily|weekly|monthly
// The weekly view is the default, matching the UI.
func (h *InsightsHandler) GetInsights(c *fiber.Ctx) error {
	view := service.Granularity(c.Query("view", string(service.GranularityWeekly)))
	switch view {
	case service.GranularityDaily, service.GranularityWeekly, service.GranularityMonthly:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "view must be daily, weekly or monthly",
		})
	}

	report, err := h.insightsService.Insights(c.Context(), view, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to build insights: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// Compare handles GET /v1/exercises/compare?first=&second=
func (h *InsightsHandler) Compare(c *fiber.Ctx) error {
	first := c.Query("first")
	if first == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "first exercise name is required",
		})
	}

	cmp, err := h.insightsService.Compare(c.Context(), first, c.Query("second"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to compare exercises: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    cmp,
	})
}
