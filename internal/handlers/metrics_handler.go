package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type metricsProvider interface {
	ComputeMetrics(ctx context.Context, companyID int64) (*models.CompanyMetrics, error)
}

type MetricsHandler struct {
	service metricsProvider
}

func NewMetricsHandler(service metricsProvider) *MetricsHandler {
	return &MetricsHandler{service: service}
}

func (h *MetricsHandler) GetCompanyMetrics(c *fiber.Ctx) error {
	if actorRole(c) != "company_admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company id"})
	}

	metrics, err := h.service.ComputeMetrics(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to compute company metrics"})
	}

	return c.JSON(fiber.Map{"metrics": metrics})
}
