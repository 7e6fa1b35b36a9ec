package models

import "time"

type CoachProfile struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	FullName   *string   `json:"full_name"`
	Title      *string   `json:"title"`
	Bio        *string   `json:"bio"`
	Expertise  *[]string `json:"expertise"`
	Experience *string   `json:"experience"`
	HourlyRate *float64  `json:"hourly_rate"`
	Rating     *float64  `json:"rating"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RequestProfile is the scoring-side view of a coaching request. It is
// derived from a MatchingRequest or synthesized from ad-hoc search filters
// and never persisted.
type RequestProfile struct {
	RequestID          int64    `json:"request_id"`
	RequiredSkills     []string `json:"required_skills"`
	RequiredExperience string   `json:"required_experience"`
	MinRating          *float64 `json:"min_rating"`
}
