package services

import (
	"context"
	"math"
	"time"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type companySessionLister interface {
	ListByCompany(ctx context.Context, companyID int64) ([]models.Session, error)
}

type companyRequestLister interface {
	ListByCompany(ctx context.Context, companyID int64) ([]models.MatchingRequest, error)
}

type ratingLister interface {
	ListRatingsByCompany(ctx context.Context, companyID int64) ([]float64, error)
}

// MetricsService aggregates per-company dashboard figures from sessions,
// matching requests and reviews. It holds no state of its own.
type MetricsService struct {
	sessionRepo companySessionLister
	requestRepo companyRequestLister
	reviewRepo  ratingLister
	companyRepo companyReader
	now         func() time.Time
}

func NewMetricsService(
	sessionRepo companySessionLister,
	requestRepo companyRequestLister,
	reviewRepo ratingLister,
	companyRepo companyReader,
) *MetricsService {
	return &MetricsService{
		sessionRepo: sessionRepo,
		requestRepo: requestRepo,
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

func (s *MetricsService) ComputeMetrics(ctx context.Context, companyID int64) (*models.CompanyMetrics, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.reviewRepo.ListRatingsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	metrics := &models.CompanyMetrics{
		CompanyID:        companyID,
		TotalRequests:    len(requests),
		TotalSessions:    len(sessions),
		SessionsByStatus: make(map[string]int),
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	allParticipants := make(map[int64]struct{})
	activeParticipants := make(map[int64]struct{})
	var completedHours float64
	var monthlySpend float64

	for _, session := range sessions {
		metrics.SessionsByStatus[session.Status]++

		allParticipants[session.EmployeeID] = struct{}{}
		if !sessionStatusTerminal(session.Status) {
			activeParticipants[session.EmployeeID] = struct{}{}
		}

		if session.Status == models.SessionStatusCompleted {
			metrics.CompletedSessions++
			completedHours += float64(session.DurationMinutes) / 60
		}

		if (session.Status == models.SessionStatusCompleted ||
			session.Status == models.SessionStatusInProgress) &&
			!session.CreatedAt.Before(monthStart) && session.CreatedAt.Before(monthEnd) {
			monthlySpend += session.TotalAmount
		}
	}

	metrics.TotalCompletedHours = math.Round(completedHours*100) / 100
	metrics.MonthlySpend = math.Round(monthlySpend*100) / 100
	metrics.GoalsProgressPercent = pct(metrics.CompletedSessions, metrics.TotalSessions)
	metrics.EngagementRate = pct(len(allParticipants), company.EmployeeCount)
	metrics.RetentionRate = pct(len(activeParticipants), len(allParticipants))

	if len(ratings) > 0 {
		var sum float64
		for _, r := range ratings {
			sum += r
		}
		metrics.AverageRating = math.Round(sum/float64(len(ratings))*100) / 100
	}

	return metrics, nil
}

func sessionStatusTerminal(status string) bool {
	switch status {
	case models.SessionStatusCompleted, models.SessionStatusCancelled, models.SessionStatusNoShow:
		return true
	}
	return false
}

func pct(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}
