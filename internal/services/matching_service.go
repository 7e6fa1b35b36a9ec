package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/segunqa2/next-peptok-sub000/internal/logger"
	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

var (
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidInput           = errors.New("invalid input")
	ErrCoachNotFound          = errors.New("coach not found")
)

type coachReader interface {
	ListAll(ctx context.Context) ([]models.CoachProfile, error)
	GetByID(ctx context.Context, coachID int64) (*models.CoachProfile, error)
}

type matchStore interface {
	ReplaceForRequest(ctx context.Context, requestID int64, matches []models.Match) ([]models.Match, error)
	ListByRequest(ctx context.Context, requestID int64) ([]models.Match, error)
	GetByID(ctx context.Context, matchID int64) (*models.Match, error)
	UpdateStatusIfCurrent(ctx context.Context, matchID int64, currentStatus, nextStatus string) (*models.Match, error)
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type coachAssigner interface {
	AssignCoach(ctx context.Context, requestID, coachID int64, hourlyRate float64) (*models.MatchingRequest, error)
}

type CoachSearchFilters struct {
	Skills          []string
	ExperienceLevel string
	MinRating       *float64
}

type MatchingService struct {
	coachRepo   coachReader
	matchRepo   matchStore
	requestRepo coachAssigner
	weights     ScoreWeights
	log         *zap.Logger
}

func NewMatchingService(
	coachRepo coachReader,
	matchRepo matchStore,
	requestRepo coachAssigner,
	weights ScoreWeights,
) *MatchingService {
	return &MatchingService{
		coachRepo:   coachRepo,
		matchRepo:   matchRepo,
		requestRepo: requestRepo,
		weights:     weights,
		log:         logger.Get(),
	}
}

// GenerateMatches scores the full roster against the request, ranks the
// result and persists it as one batch, superseding any prior generation for
// the same request. Ties keep roster order. The batch write is all or
// nothing; on failure no matches are persisted and the call fails whole.
func (s *MatchingService) GenerateMatches(
	ctx context.Context,
	profile models.RequestProfile,
) ([]models.Match, error) {
	coaches, err := s.coachRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	scored := make([]models.Match, 0, len(coaches))
	for _, coach := range coaches {
		result := ScoreCoach(coach, profile, s.weights)
		scored = append(scored, models.Match{
			BatchID:   batchID,
			RequestID: profile.RequestID,
			CoachID:   coach.ID,
			Score:     math.Round(result.Score*100) / 100,
			Reasons:   result.Reasons,
			Status:    models.MatchStatusPending,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	persisted, err := s.matchRepo.ReplaceForRequest(ctx, profile.RequestID, scored)
	if err != nil {
		return nil, err
	}

	s.log.Info("match generation complete",
		zap.Int64("request_id", profile.RequestID),
		zap.String("batch_id", batchID),
		zap.Int("coaches_scored", len(coaches)),
		zap.Int("matches", len(persisted)),
	)

	return persisted, nil
}

func (s *MatchingService) GetMatchesForRequest(
	ctx context.Context,
	requestID int64,
) ([]models.Match, error) {
	return s.matchRepo.ListByRequest(ctx, requestID)
}

// SearchCoaches synthesizes a request profile from ad-hoc filters and runs a
// full generation for the request, superseding its current match set.
func (s *MatchingService) SearchCoaches(
	ctx context.Context,
	requestID int64,
	filters CoachSearchFilters,
) ([]models.Match, error) {
	return s.GenerateMatches(ctx, models.RequestProfile{
		RequestID:          requestID,
		RequiredSkills:     filters.Skills,
		RequiredExperience: filters.ExperienceLevel,
		MinRating:          filters.MinRating,
	})
}

// UpdateMatchStatus applies an accept/decline action. Only pending matches
// transition; accepting also assigns the coach (and the rate agreed now) to
// the request.
func (s *MatchingService) UpdateMatchStatus(
	ctx context.Context,
	matchID int64,
	requestedStatus string,
) (*models.Match, error) {
	nextStatus, err := normalizeMatchStatus(requestedStatus)
	if err != nil {
		return nil, err
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.MatchStatusPending {
		return nil, ErrInvalidStateTransition
	}

	updated, err := s.matchRepo.UpdateStatusIfCurrent(ctx, matchID, models.MatchStatusPending, nextStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	if nextStatus == models.MatchStatusAccepted {
		coach, err := s.coachRepo.GetByID(ctx, updated.CoachID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrCoachNotFound
			}
			return nil, err
		}
		if _, err := s.requestRepo.AssignCoach(ctx, updated.RequestID, coach.ID, floatValue(coach.HourlyRate)); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// ExpireStaleMatches moves pending matches older than the cutoff to expired.
func (s *MatchingService) ExpireStaleMatches(
	ctx context.Context,
	olderThan time.Duration,
) (int64, error) {
	expired, err := s.matchRepo.ExpirePendingBefore(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		s.log.Info("expired stale matches", zap.Int64("count", expired))
	}
	return expired, nil
}

func normalizeMatchStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "accept", "accepted":
		return models.MatchStatusAccepted, nil
	case "reject", "rejected", "decline", "declined":
		return models.MatchStatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}
