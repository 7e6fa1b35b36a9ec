package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
	"github.com/segunqa2/next-peptok-sub000/internal/services"
)

type matchingCoordinator interface {
	GenerateMatches(ctx context.Context, profile models.RequestProfile) ([]models.Match, error)
	GetMatchesForRequest(ctx context.Context, requestID int64) ([]models.Match, error)
	SearchCoaches(ctx context.Context, requestID int64, filters services.CoachSearchFilters) ([]models.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID int64, requestedStatus string) (*models.Match, error)
}

type requestGetter interface {
	GetByID(ctx context.Context, requestID int64) (*models.MatchingRequest, error)
}

type MatchingHandler struct {
	service  matchingCoordinator
	requests requestGetter
}

func NewMatchingHandler(service matchingCoordinator, requests requestGetter) *MatchingHandler {
	return &MatchingHandler{service: service, requests: requests}
}

func (h *MatchingHandler) GenerateMatches(c *fiber.Ctx) error {
	if actorRole(c) != "company_admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	request, err := h.requests.GetByID(c.Context(), requestID)
	if err != nil {
		return mapMatchError(c, err)
	}

	matches, err := h.service.GenerateMatches(c.Context(), request.Profile())
	if err != nil {
		return mapMatchError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"matches": matches})
}

func (h *MatchingHandler) ListMatches(c *fiber.Ctx) error {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	matches, err := h.service.GetMatchesForRequest(c.Context(), requestID)
	if err != nil {
		return mapMatchError(c, err)
	}

	return c.JSON(fiber.Map{"matches": matches})
}

type searchCoachesBody struct {
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	MinRating       *float64 `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
}

func (h *MatchingHandler) SearchCoaches(c *fiber.Ctx) error {
	if actorRole(c) != "company_admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var body searchCoachesBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.requests.GetByID(c.Context(), requestID); err != nil {
		return mapMatchError(c, err)
	}

	matches, err := h.service.SearchCoaches(c.Context(), requestID, services.CoachSearchFilters{
		Skills:          body.Skills,
		ExperienceLevel: body.ExperienceLevel,
		MinRating:       body.MinRating,
	})
	if err != nil {
		return mapMatchError(c, err)
	}

	return c.JSON(fiber.Map{"matches": matches})
}

type updateMatchStatusBody struct {
	Status string `json:"status" validate:"required"`
}

func (h *MatchingHandler) UpdateMatchStatus(c *fiber.Ctx) error {
	if actorRole(c) != "company_admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	matchID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid match id"})
	}

	var body updateMatchStatusBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	match, err := h.service.UpdateMatchStatus(c.Context(), matchID, body.Status)
	if err != nil {
		return mapMatchError(c, err)
	}

	return c.JSON(fiber.Map{"match": match})
}

func mapMatchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Status must be accept or reject"})
	case errors.Is(err, services.ErrInvalidStateTransition):
		return c.Status(fiber.StatusConflict).
			JSON(fiber.Map{"error": "Match is no longer pending"})
	case errors.Is(err, services.ErrCoachNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"error": "Match or request not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process matching request"})
	}
}
