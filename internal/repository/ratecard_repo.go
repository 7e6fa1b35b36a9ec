package repository

import (
	"context"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type RateCardRepository struct {
	db DBTX
}

func NewRateCardRepository(db DBTX) *RateCardRepository {
	return &RateCardRepository{db: db}
}

func (r *RateCardRepository) GetByTier(
	ctx context.Context,
	tierName string,
) (*models.ServiceChargeTier, error) {
	query := `
		SELECT tier_name, service_charge_percentage, commission_percentage,
			   max_participants_included, additional_participant_fee, minimum_session_fee
		FROM service_charge_tiers
		WHERE tier_name = $1
	`
	var tier models.ServiceChargeTier
	err := r.db.QueryRow(ctx, query, tierName).Scan(
		&tier.TierName,
		&tier.ServiceChargePercentage,
		&tier.CommissionPercentage,
		&tier.MaxParticipantsIncluded,
		&tier.AdditionalParticipantFee,
		&tier.MinimumSessionFee,
	)
	if err != nil {
		return nil, err
	}
	return &tier, nil
}
