package models

import "time"

// MatchingRequest is a company's coaching engagement over a defined timeline.
// StartDate/EndDate are calendar dates; Frequency is one of weekly,
// bi-weekly, monthly. CoachID and CoachHourlyRate are set once a proposed
// match is accepted.
type MatchingRequest struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"company_id"`
	RequesterID     int64     `json:"requester_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	RequiredSkills  []string  `json:"required_skills"`
	ExperienceLevel string    `json:"experience_level"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Frequency       string    `json:"frequency"`
	HoursPerSession float64   `json:"hours_per_session"`
	CoachID         *int64    `json:"coach_id"`
	CoachHourlyRate *float64  `json:"coach_hourly_rate"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile derives the scoring-side view of the request.
func (r *MatchingRequest) Profile() RequestProfile {
	return RequestProfile{
		RequestID:          r.ID,
		RequiredSkills:     r.RequiredSkills,
		RequiredExperience: r.ExperienceLevel,
	}
}
