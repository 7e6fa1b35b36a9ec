package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type stubSessionStatusRepo struct {
	session      *models.Session
	getErr       error
	listResult   []models.Session
	updateResult *models.Session
	updateErr    error
	lastCurrent  string
	lastNext     string
}

func (r *stubSessionStatusRepo) GetByID(_ context.Context, _ int64) (*models.Session, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.session, nil
}

func (r *stubSessionStatusRepo) ListByCompany(_ context.Context, _ int64) ([]models.Session, error) {
	return r.listResult, nil
}

func (r *stubSessionStatusRepo) UpdateStatusIfCurrent(_ context.Context, _ int64, currentStatus, nextStatus string) (*models.Session, error) {
	r.lastCurrent = currentStatus
	r.lastNext = nextStatus
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	return r.updateResult, nil
}

func testSession(status string) *models.Session {
	return &models.Session{
		ID:          1,
		ProgramID:   5,
		CoachID:     7,
		EmployeeID:  9,
		CompanyID:   3,
		ScheduledAt: time.Date(2024, time.July, 17, 10, 0, 0, 0, time.UTC),
		Status:      status,
	}
}

func newTestSessionService(repo *stubSessionStatusRepo, now time.Time) *SessionService {
	return &SessionService{sessionRepo: repo, now: func() time.Time { return now }}
}

func TestSessionServiceCoachConfirmsScheduledSession(t *testing.T) {
	repo := &stubSessionStatusRepo{
		session:      testSession(models.SessionStatusScheduled),
		updateResult: testSession(models.SessionStatusConfirmed),
	}
	service := newTestSessionService(repo, time.Now())

	updated, err := service.UpdateStatus(context.Background(), 7, "coach", 1, "confirm")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.SessionStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", updated.Status)
	}
	if repo.lastCurrent != models.SessionStatusScheduled || repo.lastNext != models.SessionStatusConfirmed {
		t.Fatalf("unexpected transition %q -> %q", repo.lastCurrent, repo.lastNext)
	}
}

func TestSessionServiceEmployeeCannotConfirm(t *testing.T) {
	repo := &stubSessionStatusRepo{session: testSession(models.SessionStatusScheduled)}
	service := newTestSessionService(repo, time.Now())

	if _, err := service.UpdateStatus(context.Background(), 9, "employee", 1, "confirm"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSessionServiceCompleteRequiresConfirmedOrInProgress(t *testing.T) {
	repo := &stubSessionStatusRepo{
		session:      testSession(models.SessionStatusInProgress),
		updateResult: testSession(models.SessionStatusCompleted),
	}
	service := newTestSessionService(repo, time.Now())

	if _, err := service.UpdateStatus(context.Background(), 7, "coach", 1, "complete"); err != nil {
		t.Fatalf("UpdateStatus from in_progress: %v", err)
	}

	repo.session = testSession(models.SessionStatusScheduled)
	if _, err := service.UpdateStatus(context.Background(), 7, "coach", 1, "complete"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestSessionServiceCompanyAdminCancelsConfirmedSession(t *testing.T) {
	repo := &stubSessionStatusRepo{
		session:      testSession(models.SessionStatusConfirmed),
		updateResult: testSession(models.SessionStatusCancelled),
	}
	service := newTestSessionService(repo, time.Now())

	updated, err := service.UpdateStatus(context.Background(), 99, "company_admin", 1, "cancel")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.SessionStatusCancelled {
		t.Fatalf("expected cancelled, got %q", updated.Status)
	}
}

func TestSessionServiceCancelRejectedAfterCompletion(t *testing.T) {
	repo := &stubSessionStatusRepo{session: testSession(models.SessionStatusCompleted)}
	service := newTestSessionService(repo, time.Now())

	if _, err := service.UpdateStatus(context.Background(), 7, "coach", 1, "cancel"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestSessionServiceNoShowOnlyAfterScheduledTime(t *testing.T) {
	session := testSession(models.SessionStatusConfirmed)
	repo := &stubSessionStatusRepo{
		session:      session,
		updateResult: testSession(models.SessionStatusNoShow),
	}

	before := newTestSessionService(repo, session.ScheduledAt.Add(-time.Hour))
	if _, err := before.UpdateStatus(context.Background(), 7, "coach", 1, "no_show"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition before scheduled time, got %v", err)
	}

	after := newTestSessionService(repo, session.ScheduledAt.Add(time.Hour))
	updated, err := after.UpdateStatus(context.Background(), 7, "coach", 1, "no_show")
	if err != nil {
		t.Fatalf("UpdateStatus after scheduled time: %v", err)
	}
	if updated.Status != models.SessionStatusNoShow {
		t.Fatalf("expected no_show, got %q", updated.Status)
	}
}

func TestSessionServiceRejectsUnknownStatus(t *testing.T) {
	repo := &stubSessionStatusRepo{session: testSession(models.SessionStatusScheduled)}
	service := newTestSessionService(repo, time.Now())

	if _, err := service.UpdateStatus(context.Background(), 7, "coach", 1, "postponed"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSessionServiceLostUpdateRace(t *testing.T) {
	repo := &stubSessionStatusRepo{
		session:   testSession(models.SessionStatusScheduled),
		updateErr: pgx.ErrNoRows,
	}
	service := newTestSessionService(repo, time.Now())

	if _, err := service.UpdateStatus(context.Background(), 7, "coach", 1, "confirm"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestSessionServiceGetSessionAccessControl(t *testing.T) {
	repo := &stubSessionStatusRepo{session: testSession(models.SessionStatusScheduled)}
	service := newTestSessionService(repo, time.Now())

	if _, err := service.GetSession(context.Background(), 7, "coach", 1); err != nil {
		t.Fatalf("coach access: %v", err)
	}
	if _, err := service.GetSession(context.Background(), 9, "employee", 1); err != nil {
		t.Fatalf("employee access: %v", err)
	}
	if _, err := service.GetSession(context.Background(), 1, "company_admin", 1); err != nil {
		t.Fatalf("company_admin access: %v", err)
	}
	if _, err := service.GetSession(context.Background(), 8, "coach", 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other coach, got %v", err)
	}
	if _, err := service.GetSession(context.Background(), 2, "employee", 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other employee, got %v", err)
	}
}
