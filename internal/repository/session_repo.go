package repository

import (
	"context"
	"time"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type CreateSessionInput struct {
	ProgramID                int64
	SessionNumber            int
	Title                    string
	Description              string
	ScheduledAt              time.Time
	DurationMinutes          int
	CoachID                  int64
	EmployeeID               int64
	CompanyID                int64
	CoachRate                float64
	TotalAmount              float64
	ServiceCharge            float64
	Commission               float64
	ParticipantCount         int
	AdditionalParticipants   int
	AdditionalParticipantFee float64
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, program_id, session_number, title, description, scheduled_at,
		   duration_minutes, coach_id, employee_id, company_id, coach_rate,
		   total_amount, service_charge, commission, participant_count,
		   additional_participants, additional_participant_fee, status,
		   created_at, updated_at`

func (r *SessionRepository) Create(
	ctx context.Context,
	input CreateSessionInput,
) (*models.Session, error) {
	query := `
		INSERT INTO sessions
			(program_id, session_number, title, description, scheduled_at,
			 duration_minutes, coach_id, employee_id, company_id, coach_rate,
			 total_amount, service_charge, commission, participant_count,
			 additional_participants, additional_participant_fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 'scheduled')
		RETURNING ` + sessionColumns

	var session models.Session
	err := r.db.QueryRow(
		ctx,
		query,
		input.ProgramID,
		input.SessionNumber,
		input.Title,
		input.Description,
		input.ScheduledAt,
		input.DurationMinutes,
		input.CoachID,
		input.EmployeeID,
		input.CompanyID,
		input.CoachRate,
		input.TotalAmount,
		input.ServiceCharge,
		input.Commission,
		input.ParticipantCount,
		input.AdditionalParticipants,
		input.AdditionalParticipantFee,
	).Scan(sessionScanTargets(&session)...)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID int64) (*models.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(sessionScanTargets(&session)...)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) ListByProgram(
	ctx context.Context,
	programID int64,
) ([]models.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE program_id = $1
		ORDER BY session_number ASC
	`
	return r.list(ctx, query, programID)
}

func (r *SessionRepository) ListByCompany(
	ctx context.Context,
	companyID int64,
) ([]models.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE company_id = $1
		ORDER BY scheduled_at ASC, id ASC
	`
	return r.list(ctx, query, companyID)
}

func (r *SessionRepository) list(ctx context.Context, query string, args ...any) ([]models.Session, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(sessionScanTargets(&session)...); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SessionRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	sessionID int64,
	currentStatus string,
	nextStatus string,
) (*models.Session, error) {
	query := `
		UPDATE sessions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + sessionColumns

	var session models.Session
	err := r.db.QueryRow(ctx, query, sessionID, currentStatus, nextStatus).
		Scan(sessionScanTargets(&session)...)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func sessionScanTargets(session *models.Session) []any {
	return []any{
		&session.ID,
		&session.ProgramID,
		&session.SessionNumber,
		&session.Title,
		&session.Description,
		&session.ScheduledAt,
		&session.DurationMinutes,
		&session.CoachID,
		&session.EmployeeID,
		&session.CompanyID,
		&session.CoachRate,
		&session.TotalAmount,
		&session.ServiceCharge,
		&session.Commission,
		&session.ParticipantCount,
		&session.AdditionalParticipants,
		&session.AdditionalParticipantFee,
		&session.Status,
		&session.CreatedAt,
		&session.UpdatedAt,
	}
}
