package repository

import (
	"context"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type CompanyRepository struct {
	db DBTX
}

func NewCompanyRepository(db DBTX) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID int64) (*models.Company, error) {
	query := `
		SELECT id, name, subscription_tier, employee_count, created_at, updated_at
		FROM companies
		WHERE id = $1
	`
	var company models.Company
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&company.ID,
		&company.Name,
		&company.SubscriptionTier,
		&company.EmployeeCount,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &company, nil
}
