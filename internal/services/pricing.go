package services

import "github.com/segunqa2/next-peptok-sub000/internal/models"

// DefaultServiceChargeTier is the platform rate card applied when a company
// has no tier of its own: 10% service charge, 5% commission.
func DefaultServiceChargeTier() models.ServiceChargeTier {
	return models.ServiceChargeTier{
		TierName:                 "standard",
		ServiceChargePercentage:  10,
		CommissionPercentage:     5,
		MaxParticipantsIncluded:  1,
		AdditionalParticipantFee: 25,
		MinimumSessionFee:        5,
	}
}

// AdditionalParticipants is the billable headcount beyond what the tier
// includes.
func AdditionalParticipants(participantCount int, tier models.ServiceChargeTier) int {
	additional := participantCount - tier.MaxParticipantsIncluded
	if additional < 0 {
		return 0
	}
	return additional
}

// CalculateSessionCost computes the monetary breakdown for one session.
// The minimum session fee is a floor on the service charge, not an addition.
// Commission is deducted from the coach's amount platform-side, so it never
// enters TotalAmount. No intermediate rounding: historical sessions are
// reconciled against these exact float values.
func CalculateSessionCost(
	coachRate float64,
	durationMinutes int,
	additionalParticipants int,
	tier models.ServiceChargeTier,
) models.CostBreakdown {
	coachAmount := coachRate * float64(durationMinutes) / 60

	serviceCharge := coachAmount * tier.ServiceChargePercentage / 100
	if serviceCharge < tier.MinimumSessionFee {
		serviceCharge = tier.MinimumSessionFee
	}

	commission := coachAmount * tier.CommissionPercentage / 100

	if additionalParticipants < 0 {
		additionalParticipants = 0
	}
	additionalFee := float64(additionalParticipants) * tier.AdditionalParticipantFee

	return models.CostBreakdown{
		CoachAmount:              coachAmount,
		ServiceCharge:            serviceCharge,
		Commission:               commission,
		AdditionalParticipantFee: additionalFee,
		TotalAmount:              coachAmount + serviceCharge + additionalFee,
		PlatformEarnings:         serviceCharge + commission,
	}
}
