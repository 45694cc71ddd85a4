package handlers

import (
	"time"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type KpiMetricRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Metric string    `json:"metric" validate:"required"`
	Points int       `json:"points" validate:"required"`
}

func RecordKpiMetric(c *fiber.Ctx) error {
	var req KpiMetricRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	metric := models.KpiMetric{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Metric:     req.Metric,
		Points:     req.Points,
		RecordedAt: time.Now(),
	}
	if err := database.DB.Create(&metric).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record metric"})
	}

	return c.Status(fiber.StatusCreated).JSON(metric)
}

func GetUserKpiMetrics(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var metrics []models.KpiMetric
	err := database.DB.Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&metrics).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load metrics"})
	}

	return c.JSON(metrics)
}

type KpiSummaryRow struct {
	Metric string `json:"metric"`
	Total  int    `json:"total"`
}

// GetUserKpiSummary aggregates a user's points per metric for the
// dashboard tiles.
func GetUserKpiSummary(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var summary []KpiSummaryRow
	err := database.DB.Model(&models.KpiMetric{}).
		Select("metric, sum(points) as total").
		Where("user_id = ?", userID).
		Group("metric").
		Order("metric ASC").
		Scan(&summary).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate metrics"})
	}

	return c.JSON(summary)
}
