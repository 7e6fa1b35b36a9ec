package models

// CompanyMetrics are the dashboard KPIs derived from a company's sessions,
// matching requests and reviews. Percentage fields are rounded to the
// nearest integer at this boundary; every ratio with a zero denominator is 0.
type CompanyMetrics struct {
	CompanyID            int64          `json:"company_id"`
	TotalRequests        int            `json:"total_requests"`
	TotalSessions        int            `json:"total_sessions"`
	SessionsByStatus     map[string]int `json:"sessions_by_status"`
	CompletedSessions    int            `json:"completed_sessions"`
	TotalCompletedHours  float64        `json:"total_completed_hours"`
	GoalsProgressPercent int            `json:"goals_progress_percent"`
	AverageRating        float64        `json:"average_rating"`
	MonthlySpend         float64        `json:"monthly_spend"`
	EngagementRate       int            `json:"engagement_rate"`
	RetentionRate        int            `json:"retention_rate"`
}
