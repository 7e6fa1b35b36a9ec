package repository

import (
	"context"
	"time"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type CreateMatchingRequestInput struct {
	CompanyID       int64
	RequesterID     int64
	Title           string
	Description     *string
	RequiredSkills  []string
	ExperienceLevel string
	StartDate       time.Time
	EndDate         time.Time
	Frequency       string
	HoursPerSession float64
}

type MatchingRequestRepository struct {
	db DBTX
}

func NewMatchingRequestRepository(db DBTX) *MatchingRequestRepository {
	return &MatchingRequestRepository{db: db}
}

const matchingRequestColumns = `id, company_id, requester_id, title, description, required_skills,
		   experience_level, start_date, end_date, frequency, hours_per_session,
		   coach_id, coach_hourly_rate, status, created_at, updated_at`

func (r *MatchingRequestRepository) Create(
	ctx context.Context,
	input CreateMatchingRequestInput,
) (*models.MatchingRequest, error) {
	query := `
		INSERT INTO matching_requests
			(company_id, requester_id, title, description, required_skills,
			 experience_level, start_date, end_date, frequency, hours_per_session, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'open')
		RETURNING ` + matchingRequestColumns

	var request models.MatchingRequest
	err := r.db.QueryRow(
		ctx,
		query,
		input.CompanyID,
		input.RequesterID,
		input.Title,
		input.Description,
		input.RequiredSkills,
		input.ExperienceLevel,
		input.StartDate,
		input.EndDate,
		input.Frequency,
		input.HoursPerSession,
	).Scan(requestScanTargets(&request)...)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *MatchingRequestRepository) GetByID(
	ctx context.Context,
	requestID int64,
) (*models.MatchingRequest, error) {
	query := `
		SELECT ` + matchingRequestColumns + `
		FROM matching_requests
		WHERE id = $1
	`
	var request models.MatchingRequest
	err := r.db.QueryRow(ctx, query, requestID).Scan(requestScanTargets(&request)...)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *MatchingRequestRepository) ListByCompany(
	ctx context.Context,
	companyID int64,
) ([]models.MatchingRequest, error) {
	query := `
		SELECT ` + matchingRequestColumns + `
		FROM matching_requests
		WHERE company_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.MatchingRequest, 0)
	for rows.Next() {
		var request models.MatchingRequest
		if err := rows.Scan(requestScanTargets(&request)...); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// AssignCoach records the accepted coach and the hourly rate agreed at
// acceptance time.
func (r *MatchingRequestRepository) AssignCoach(
	ctx context.Context,
	requestID int64,
	coachID int64,
	hourlyRate float64,
) (*models.MatchingRequest, error) {
	query := `
		UPDATE matching_requests
		SET coach_id = $2, coach_hourly_rate = $3, status = 'matched', updated_at = NOW()
		WHERE id = $1
		RETURNING ` + matchingRequestColumns

	var request models.MatchingRequest
	err := r.db.QueryRow(ctx, query, requestID, coachID, hourlyRate).
		Scan(requestScanTargets(&request)...)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func requestScanTargets(request *models.MatchingRequest) []any {
	return []any{
		&request.ID,
		&request.CompanyID,
		&request.RequesterID,
		&request.Title,
		&request.Description,
		&request.RequiredSkills,
		&request.ExperienceLevel,
		&request.StartDate,
		&request.EndDate,
		&request.Frequency,
		&request.HoursPerSession,
		&request.CoachID,
		&request.CoachHourlyRate,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	}
}
