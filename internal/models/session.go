package models

import "time"

const (
	SessionStatusScheduled  = "scheduled"
	SessionStatusConfirmed  = "confirmed"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
	SessionStatusCancelled  = "cancelled"
	SessionStatusNoShow     = "no_show"
)

// Session is one concrete scheduled occurrence within a program's timeline.
// Financial fields are a snapshot taken at generation time and are never
// recomputed, even if the company's rate card changes later.
type Session struct {
	ID                       int64     `json:"id"`
	ProgramID                int64     `json:"program_id"`
	SessionNumber            int       `json:"session_number"`
	Title                    string    `json:"title"`
	Description              string    `json:"description"`
	ScheduledAt              time.Time `json:"scheduled_at"`
	DurationMinutes          int       `json:"duration_minutes"`
	CoachID                  int64     `json:"coach_id"`
	EmployeeID               int64     `json:"employee_id"`
	CompanyID                int64     `json:"company_id"`
	CoachRate                float64   `json:"coach_rate"`
	TotalAmount              float64   `json:"total_amount"`
	ServiceCharge            float64   `json:"service_charge"`
	Commission               float64   `json:"commission"`
	ParticipantCount         int       `json:"participant_count"`
	AdditionalParticipants   int       `json:"additional_participants"`
	AdditionalParticipantFee float64   `json:"additional_participant_fee"`
	Status                   string    `json:"status"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// CostBreakdown is the monetary split for a single session. Commission is
// deducted from the coach's amount platform-side, so TotalAmount (what the
// company pays) excludes it.
type CostBreakdown struct {
	CoachAmount              float64 `json:"coach_amount"`
	ServiceCharge            float64 `json:"service_charge"`
	Commission               float64 `json:"commission"`
	AdditionalParticipantFee float64 `json:"additional_participant_fee"`
	TotalAmount              float64 `json:"total_amount"`
	PlatformEarnings         float64 `json:"platform_earnings"`
}
