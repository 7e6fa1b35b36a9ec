package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

var ErrForbidden = errors.New("forbidden")

type sessionStatusStore interface {
	GetByID(ctx context.Context, sessionID int64) (*models.Session, error)
	ListByCompany(ctx context.Context, companyID int64) ([]models.Session, error)
	UpdateStatusIfCurrent(ctx context.Context, sessionID int64, currentStatus, nextStatus string) (*models.Session, error)
}

type SessionService struct {
	sessionRepo sessionStatusStore
	now         func() time.Time
}

func NewSessionService(sessionRepo sessionStatusStore) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, now: time.Now}
}

func (s *SessionService) GetSession(
	ctx context.Context,
	actorID int64,
	role string,
	sessionID int64,
) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !canAccessSession(role, actorID, session) {
		return nil, ErrForbidden
	}
	return session, nil
}

func (s *SessionService) ListCompanySessions(
	ctx context.Context,
	companyID int64,
) ([]models.Session, error) {
	return s.sessionRepo.ListByCompany(ctx, companyID)
}

// UpdateStatus applies an accept/start/complete/cancel/no-show action from
// an external actor. Financial fields are never touched; only the status
// moves, and only along the allowed transitions.
func (s *SessionService) UpdateStatus(
	ctx context.Context,
	actorID int64,
	role string,
	sessionID int64,
	requestedStatus string,
) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !canAccessSession(role, actorID, session) {
		return nil, ErrForbidden
	}

	nextStatus, err := normalizeSessionStatus(requestedStatus)
	if err != nil {
		return nil, err
	}
	if err := validateSessionTransition(role, session, nextStatus, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.sessionRepo.UpdateStatusIfCurrent(ctx, sessionID, session.Status, nextStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}
	return updated, nil
}

func canAccessSession(role string, actorID int64, session *models.Session) bool {
	switch role {
	case "coach":
		return session.CoachID == actorID
	case "employee":
		return session.EmployeeID == actorID
	case "company_admin":
		return true
	default:
		return false
	}
}

func normalizeSessionStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "confirm", "confirmed":
		return models.SessionStatusConfirmed, nil
	case "start", "in_progress", "in-progress":
		return models.SessionStatusInProgress, nil
	case "complete", "completed":
		return models.SessionStatusCompleted, nil
	case "cancel", "cancelled", "canceled":
		return models.SessionStatusCancelled, nil
	case "no_show", "no-show", "noshow":
		return models.SessionStatusNoShow, nil
	default:
		return "", ErrInvalidStatus
	}
}

func validateSessionTransition(
	role string,
	session *models.Session,
	nextStatus string,
	now time.Time,
) error {
	switch nextStatus {
	case models.SessionStatusConfirmed:
		if role != "coach" {
			return ErrForbidden
		}
		if session.Status != models.SessionStatusScheduled {
			return ErrInvalidStateTransition
		}
	case models.SessionStatusInProgress:
		if role != "coach" {
			return ErrForbidden
		}
		if session.Status != models.SessionStatusConfirmed {
			return ErrInvalidStateTransition
		}
	case models.SessionStatusCompleted:
		if role != "coach" {
			return ErrForbidden
		}
		if session.Status != models.SessionStatusConfirmed &&
			session.Status != models.SessionStatusInProgress {
			return ErrInvalidStateTransition
		}
	case models.SessionStatusCancelled:
		if session.Status != models.SessionStatusScheduled &&
			session.Status != models.SessionStatusConfirmed {
			return ErrInvalidStateTransition
		}
	case models.SessionStatusNoShow:
		if role != "coach" {
			return ErrForbidden
		}
		if session.Status != models.SessionStatusScheduled &&
			session.Status != models.SessionStatusConfirmed {
			return ErrInvalidStateTransition
		}
		if session.ScheduledAt.After(now) {
			return ErrInvalidStateTransition
		}
	default:
		return ErrInvalidStatus
	}
	return nil
}
