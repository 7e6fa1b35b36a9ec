package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
	"github.com/segunqa2/next-peptok-sub000/internal/repository"
)

type requestStore interface {
	Create(ctx context.Context, input repository.CreateMatchingRequestInput) (*models.MatchingRequest, error)
	GetByID(ctx context.Context, requestID int64) (*models.MatchingRequest, error)
	ListByCompany(ctx context.Context, companyID int64) ([]models.MatchingRequest, error)
}

type RequestHandler struct {
	requests requestStore
}

func NewRequestHandler(requests requestStore) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type createRequestBody struct {
	CompanyID       int64     `json:"company_id" validate:"required,gt=0"`
	Title           string    `json:"title" validate:"required"`
	Description     *string   `json:"description"`
	RequiredSkills  []string  `json:"required_skills" validate:"required,min=1"`
	ExperienceLevel string    `json:"experience_level"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	Frequency       string    `json:"frequency" validate:"required,oneof=weekly bi-weekly biweekly bi_weekly monthly"`
	HoursPerSession float64   `json:"hours_per_session" validate:"required,gt=0"`
}

func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	role := actorRole(c)
	if role != "company_admin" && role != "employee" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	requesterID, err := parseActorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var body createRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !body.StartDate.Before(body.EndDate) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "start_date must be before end_date"})
	}

	request, err := h.requests.Create(c.Context(), repository.CreateMatchingRequestInput{
		CompanyID:       body.CompanyID,
		RequesterID:     requesterID,
		Title:           body.Title,
		Description:     body.Description,
		RequiredSkills:  body.RequiredSkills,
		ExperienceLevel: body.ExperienceLevel,
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		Frequency:       body.Frequency,
		HoursPerSession: body.HoursPerSession,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create matching request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": request})
}

func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	request, err := h.requests.GetByID(c.Context(), requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Matching request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load matching request"})
	}

	return c.JSON(fiber.Map{"request": request})
}

func (h *RequestHandler) ListCompanyRequests(c *fiber.Ctx) error {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company id"})
	}

	requests, err := h.requests.ListByCompany(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list matching requests"})
	}

	return c.JSON(fiber.Map{"requests": requests})
}
