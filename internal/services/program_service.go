package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/segunqa2/next-peptok-sub000/internal/logger"
	"github.com/segunqa2/next-peptok-sub000/internal/models"
	"github.com/segunqa2/next-peptok-sub000/internal/repository"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrInvalidTimeline = errors.New("start date must be before end date")
	ErrNoSessionDates  = errors.New("no valid session dates")
)

// SessionBatchError reports a mid-batch persistence failure. Sessions
// written before the failure stay persisted; Persisted tells the caller how
// far the batch got.
type SessionBatchError struct {
	Persisted int
	Total     int
	Err       error
}

func (e *SessionBatchError) Error() string {
	return fmt.Sprintf("persisted %d of %d sessions: %v", e.Persisted, e.Total, e.Err)
}

func (e *SessionBatchError) Unwrap() error {
	return e.Err
}

type programReader interface {
	GetByID(ctx context.Context, requestID int64) (*models.MatchingRequest, error)
}

type sessionStore interface {
	Create(ctx context.Context, input repository.CreateSessionInput) (*models.Session, error)
	ListByProgram(ctx context.Context, programID int64) ([]models.Session, error)
}

type tierReader interface {
	GetByTier(ctx context.Context, tierName string) (*models.ServiceChargeTier, error)
}

type companyReader interface {
	GetByID(ctx context.Context, companyID int64) (*models.Company, error)
}

type GenerateSessionsInput struct {
	ProgramID        int64
	StartDate        time.Time
	EndDate          time.Time
	Frequency        string
	HoursPerSession  float64
	CoachID          int64
	CoachRate        float64
	ParticipantCount int
}

type ProgramService struct {
	requestRepo programReader
	sessionRepo sessionStore
	tierRepo    tierReader
	companyRepo companyReader
	defaultTier models.ServiceChargeTier
	log         *zap.Logger
}

func NewProgramService(
	requestRepo programReader,
	sessionRepo sessionStore,
	tierRepo tierReader,
	companyRepo companyReader,
	defaultTier models.ServiceChargeTier,
) *ProgramService {
	return &ProgramService{
		requestRepo: requestRepo,
		sessionRepo: sessionRepo,
		tierRepo:    tierRepo,
		companyRepo: companyRepo,
		defaultTier: defaultTier,
		log:         logger.Get(),
	}
}

// GenerateSessions expands the agreed timeline into concrete priced session
// records. Pricing is computed once and reused for every session in the
// batch; financial fields are fixed at creation time and never recomputed.
// Rows are written one at a time: a failure at row k leaves rows 1..k-1
// persisted and returns them alongside a SessionBatchError.
func (s *ProgramService) GenerateSessions(
	ctx context.Context,
	input GenerateSessionsInput,
) ([]models.Session, error) {
	if input.HoursPerSession <= 0 || input.CoachID <= 0 || input.CoachRate <= 0 {
		return nil, ErrInvalidInput
	}

	request, err := s.requestRepo.GetByID(ctx, input.ProgramID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if !input.StartDate.Before(input.EndDate) {
		return nil, ErrInvalidTimeline
	}

	dates, err := ExpandSessionDates(input.StartDate, input.EndDate, input.Frequency)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, ErrNoSessionDates
	}

	durationMinutes := int(input.HoursPerSession * 60)

	tier := s.resolveTier(ctx, request.CompanyID)
	participantCount := input.ParticipantCount
	if participantCount < 1 {
		participantCount = 1
	}
	additional := AdditionalParticipants(participantCount, tier)
	cost := CalculateSessionCost(input.CoachRate, durationMinutes, additional, tier)

	total := len(dates)
	sessions := make([]models.Session, 0, total)
	for i, date := range dates {
		session, err := s.sessionRepo.Create(ctx, repository.CreateSessionInput{
			ProgramID:                request.ID,
			SessionNumber:            i + 1,
			Title:                    fmt.Sprintf("Session %d of %d", i+1, total),
			Description:              fmt.Sprintf("Coaching session %d of %d for %s", i+1, total, request.Title),
			ScheduledAt:              date,
			DurationMinutes:          durationMinutes,
			CoachID:                  input.CoachID,
			EmployeeID:               request.RequesterID,
			CompanyID:                request.CompanyID,
			CoachRate:                input.CoachRate,
			TotalAmount:              cost.TotalAmount,
			ServiceCharge:            cost.ServiceCharge,
			Commission:               cost.Commission,
			ParticipantCount:         participantCount,
			AdditionalParticipants:   additional,
			AdditionalParticipantFee: cost.AdditionalParticipantFee,
		})
		if err != nil {
			s.log.Error("session batch write failed",
				zap.Int64("program_id", request.ID),
				zap.Int("persisted", len(sessions)),
				zap.Int("total", total),
				zap.Error(err),
			)
			return sessions, &SessionBatchError{Persisted: len(sessions), Total: total, Err: err}
		}
		sessions = append(sessions, *session)
	}

	s.log.Info("session generation complete",
		zap.Int64("program_id", request.ID),
		zap.Int("sessions", len(sessions)),
		zap.String("frequency", input.Frequency),
		zap.Float64("total_amount", cost.TotalAmount),
	)

	return sessions, nil
}

func (s *ProgramService) ListProgramSessions(
	ctx context.Context,
	programID int64,
) ([]models.Session, error) {
	if _, err := s.requestRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return s.sessionRepo.ListByProgram(ctx, programID)
}

// resolveTier looks up the company's rate card, falling back to the platform
// default tier when the company or its tier is absent.
func (s *ProgramService) resolveTier(ctx context.Context, companyID int64) models.ServiceChargeTier {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return s.defaultTier
	}

	tier, err := s.tierRepo.GetByTier(ctx, company.SubscriptionTier)
	if err != nil {
		return s.defaultTier
	}
	return *tier
}
