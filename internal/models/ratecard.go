package models

// ServiceChargeTier is the rate card controlling pricing for a subscription
// level. Read-only input to the pricing calculator.
type ServiceChargeTier struct {
	TierName                 string  `json:"tier_name"`
	ServiceChargePercentage  float64 `json:"service_charge_percentage"`
	CommissionPercentage     float64 `json:"commission_percentage"`
	MaxParticipantsIncluded  int     `json:"max_participants_included"`
	AdditionalParticipantFee float64 `json:"additional_participant_fee"`
	MinimumSessionFee        float64 `json:"minimum_session_fee"`
}
