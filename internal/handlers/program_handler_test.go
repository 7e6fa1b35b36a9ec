package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
	"github.com/segunqa2/next-peptok-sub000/internal/services"
)

type stubProgramService struct {
	generateResult []models.Session
	generateErr    error
	listResult     []models.Session
	listErr        error
	lastInput      services.GenerateSessionsInput
	lastProgramID  int64
}

func (s *stubProgramService) GenerateSessions(_ context.Context, input services.GenerateSessionsInput) ([]models.Session, error) {
	s.lastInput = input
	return s.generateResult, s.generateErr
}

func (s *stubProgramService) ListProgramSessions(_ context.Context, programID int64) ([]models.Session, error) {
	s.lastProgramID = programID
	return s.listResult, s.listErr
}

func matchedRequest() *models.MatchingRequest {
	coachID := int64(7)
	rate := 150.0
	return &models.MatchingRequest{
		ID:              11,
		CompanyID:       3,
		RequesterID:     9,
		StartDate:       time.Date(2030, time.July, 17, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2030, time.July, 31, 0, 0, 0, 0, time.UTC),
		Frequency:       "weekly",
		HoursPerSession: 1,
		CoachID:         &coachID,
		CoachHourlyRate: &rate,
		Status:          "matched",
	}
}

func newProgramTestApp(handler *ProgramHandler, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Post("/api/v1/matching-requests/:id/sessions", handler.GenerateSessions)
	app.Get("/api/v1/matching-requests/:id/sessions", handler.ListProgramSessions)
	return app
}

func TestGenerateSessionsUsesAssignedCoachAndTimeline(t *testing.T) {
	service := &stubProgramService{
		generateResult: []models.Session{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	app := newProgramTestApp(
		NewProgramHandler(service, &stubRequestGetter{request: matchedRequest()}),
		"company_admin",
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching-requests/11/sessions", strings.NewReader(`{"participant_count": 3}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastInput.ProgramID != 11 || service.lastInput.CoachID != 7 {
		t.Fatalf("unexpected input: %+v", service.lastInput)
	}
	if service.lastInput.CoachRate != 150 || service.lastInput.Frequency != "weekly" {
		t.Fatalf("unexpected input: %+v", service.lastInput)
	}
	if service.lastInput.ParticipantCount != 3 {
		t.Fatalf("expected participant count 3, got %d", service.lastInput.ParticipantCount)
	}

	var body struct {
		Sessions []models.Session `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(body.Sessions))
	}
}

func TestGenerateSessionsConflictWithoutAssignedCoach(t *testing.T) {
	request := matchedRequest()
	request.CoachID = nil
	request.CoachHourlyRate = nil
	app := newProgramTestApp(
		NewProgramHandler(&stubProgramService{}, &stubRequestGetter{request: request}),
		"company_admin",
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/matching-requests/11/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestGenerateSessionsReportsPartialBatch(t *testing.T) {
	service := &stubProgramService{
		generateResult: []models.Session{{ID: 1}},
		generateErr: &services.SessionBatchError{
			Persisted: 1,
			Total:     3,
			Err:       context.DeadlineExceeded,
		},
	}
	app := newProgramTestApp(
		NewProgramHandler(service, &stubRequestGetter{request: matchedRequest()}),
		"company_admin",
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/matching-requests/11/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body struct {
		Persisted int              `json:"persisted"`
		Total     int              `json:"total"`
		Sessions  []models.Session `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Persisted != 1 || body.Total != 3 || len(body.Sessions) != 1 {
		t.Fatalf("unexpected partial batch payload: %+v", body)
	}
}

func TestGenerateSessionsMapsTimelineError(t *testing.T) {
	service := &stubProgramService{generateErr: services.ErrInvalidTimeline}
	app := newProgramTestApp(
		NewProgramHandler(service, &stubRequestGetter{request: matchedRequest()}),
		"company_admin",
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/matching-requests/11/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListProgramSessionsNotFound(t *testing.T) {
	service := &stubProgramService{listErr: services.ErrProgramNotFound}
	app := newProgramTestApp(NewProgramHandler(service, &stubRequestGetter{}), "company_admin")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/matching-requests/99/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
