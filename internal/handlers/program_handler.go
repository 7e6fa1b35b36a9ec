package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
	"github.com/segunqa2/next-peptok-sub000/internal/services"
)

type programCoordinator interface {
	GenerateSessions(ctx context.Context, input services.GenerateSessionsInput) ([]models.Session, error)
	ListProgramSessions(ctx context.Context, programID int64) ([]models.Session, error)
}

type ProgramHandler struct {
	service  programCoordinator
	requests requestGetter
}

func NewProgramHandler(service programCoordinator, requests requestGetter) *ProgramHandler {
	return &ProgramHandler{service: service, requests: requests}
}

type generateSessionsBody struct {
	ParticipantCount int `json:"participant_count" validate:"omitempty,gte=1"`
}

func (h *ProgramHandler) GenerateSessions(c *fiber.Ctx) error {
	if actorRole(c) != "company_admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	programID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var body generateSessionsBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	request, err := h.requests.GetByID(c.Context(), programID)
	if err != nil {
		return mapProgramError(c, err)
	}
	if request.CoachID == nil || request.CoachHourlyRate == nil {
		return c.Status(fiber.StatusConflict).
			JSON(fiber.Map{"error": "No coach assigned to this request yet"})
	}

	sessions, err := h.service.GenerateSessions(c.Context(), services.GenerateSessionsInput{
		ProgramID:        request.ID,
		StartDate:        request.StartDate,
		EndDate:          request.EndDate,
		Frequency:        request.Frequency,
		HoursPerSession:  request.HoursPerSession,
		CoachID:          *request.CoachID,
		CoachRate:        *request.CoachHourlyRate,
		ParticipantCount: body.ParticipantCount,
	})
	if err != nil {
		var batchErr *services.SessionBatchError
		if errors.As(err, &batchErr) {
			// Partial batches stay persisted; report what got through.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":     "Session generation failed partway",
				"persisted": batchErr.Persisted,
				"total":     batchErr.Total,
				"sessions":  sessions,
			})
		}
		return mapProgramError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessions": sessions})
}

func (h *ProgramHandler) ListProgramSessions(c *fiber.Ctx) error {
	programID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	sessions, err := h.service.ListProgramSessions(c.Context(), programID)
	if err != nil {
		return mapProgramError(c, err)
	}

	return c.JSON(fiber.Map{"sessions": sessions})
}

func mapProgramError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProgramNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"error": "Matching request not found"})
	case errors.Is(err, services.ErrInvalidTimeline):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Start date must be before end date"})
	case errors.Is(err, services.ErrInvalidFrequency):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Frequency must be weekly, bi-weekly or monthly"})
	case errors.Is(err, services.ErrNoSessionDates):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Timeline yields no session dates"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"error": "Matching request not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process session generation"})
	}
}
