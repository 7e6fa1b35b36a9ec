package models

import "time"

const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
	MatchStatusExpired  = "expired"
)

// Match is one scored (request, coach) pairing. Matches are written in bulk,
// one batch per generation run; a new run for the same request supersedes the
// previous batch. Score is in [0.3, 1.0], rounded to two decimals.
type Match struct {
	ID        int64     `json:"id"`
	BatchID   string    `json:"batch_id"`
	RequestID int64     `json:"request_id"`
	CoachID   int64     `json:"coach_id"`
	Score     float64   `json:"score"`
	Reasons   []string  `json:"reasons"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
