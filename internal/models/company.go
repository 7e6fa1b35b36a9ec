package models

import "time"

type Company struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	SubscriptionTier string    `json:"subscription_tier"`
	EmployeeCount    int       `json:"employee_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SessionReview struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	CompanyID int64     `json:"company_id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
