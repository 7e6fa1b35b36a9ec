package repository

import (
	"context"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type CoachRepository struct {
	db DBTX
}

func NewCoachRepository(db DBTX) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) ListAll(ctx context.Context) ([]models.CoachProfile, error) {
	query := `
		SELECT id, user_id, full_name, title, bio, expertise, experience,
			   hourly_rate, rating, is_active, created_at, updated_at
		FROM coach_profiles
		WHERE is_active
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := make([]models.CoachProfile, 0)
	for rows.Next() {
		var coach models.CoachProfile
		if err := rows.Scan(
			&coach.ID,
			&coach.UserID,
			&coach.FullName,
			&coach.Title,
			&coach.Bio,
			&coach.Expertise,
			&coach.Experience,
			&coach.HourlyRate,
			&coach.Rating,
			&coach.IsActive,
			&coach.CreatedAt,
			&coach.UpdatedAt,
		); err != nil {
			return nil, err
		}
		coaches = append(coaches, coach)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coaches, nil
}

func (r *CoachRepository) GetByID(ctx context.Context, coachID int64) (*models.CoachProfile, error) {
	query := `
		SELECT id, user_id, full_name, title, bio, expertise, experience,
			   hourly_rate, rating, is_active, created_at, updated_at
		FROM coach_profiles
		WHERE id = $1
	`
	var coach models.CoachProfile
	err := r.db.QueryRow(ctx, query, coachID).Scan(
		&coach.ID,
		&coach.UserID,
		&coach.FullName,
		&coach.Title,
		&coach.Bio,
		&coach.Expertise,
		&coach.Experience,
		&coach.HourlyRate,
		&coach.Rating,
		&coach.IsActive,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}
