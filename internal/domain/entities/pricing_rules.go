package entities

// MinimumCharges are per-category floors applied after the raw calculation.
type MinimumCharges struct {
	TimeChange     float64 `json:"time_change"`
	LocationChange float64 `json:"location_change"`
	EquipmentAdd   float64 `json:"equipment_add"`
}

// ApprovalThresholds are the monetary cut-offs for the approval workflow.
//
// AutoApprove and below needs no client payment; above RequireDeposit a 50%
// deposit applies; above RequireFullPayment the full amount is collected up
// front. Amounts between AutoApprove and RequireDeposit also collect the full
// amount (see the approval engine).
type ApprovalThresholds struct {
	AutoApprove        float64 `json:"auto_approve"`
	RequireDeposit     float64 `json:"require_deposit"`
	RequireFullPayment float64 `json:"require_full_payment"`
}

// PricingRules is the process-wide, read-only pricing configuration.
//
// Constructed once at service start from fixed defaults and never mutated, so
// it is safe for unbounded concurrent reads; all calculators share the same
// instance.

type PricingRules struct {
	BaseHourlyRate     float64 `json:"base_hourly_rate"`
	WeekendMultiplier  float64 `json:"weekend_multiplier"`
	HolidayMultiplier  float64 `json:"holiday_multiplier"`
	LocalMileageRate   float64 `json:"local_mileage_rate"`
	RegionalMileageRate float64 `json:"regional_mileage_rate"`
	DestinationDayRate float64 `json:"destination_day_rate"`
	PersonnelDayHours  float64 `json:"personnel_day_hours"`
	DefaultScopeHours  float64 `json:"default_scope_hours"`

	// Per-day rental rates by equipment identifier; unknown identifiers fall
	// back to DefaultEquipmentRate.
	EquipmentRates       map[string]float64 `json:"equipment_rates"`
	DefaultEquipmentRate float64            `json:"default_equipment_rate"`

	MinimumCharges MinimumCharges     `json:"minimum_charges"`
	Thresholds     ApprovalThresholds `json:"thresholds"`
}

// DefaultPricingRules returns the studio's standard rate card.
func DefaultPricingRules() *PricingRules {
	return &PricingRules{
		BaseHourlyRate:      150,
		WeekendMultiplier:   2.0,
		HolidayMultiplier:   2.5,
		LocalMileageRate:    0.70,
		RegionalMileageRate: 0.70,
		DestinationDayRate:  350,
		PersonnelDayHours:   8,
		DefaultScopeHours:   2,
		EquipmentRates: map[string]float64{
			"drone":        100,
			"lighting_kit": 75,
			"backdrop":     25,
			"prime_lens":   40,
			"camera_body":  85,
			"gimbal":       60,
		},
		DefaultEquipmentRate: 50,
		MinimumCharges: MinimumCharges{
			TimeChange:     25,
			LocationChange: 50,
			EquipmentAdd:   30,
		},
		Thresholds: ApprovalThresholds{
			AutoApprove:        50,
			RequireDeposit:     100,
			RequireFullPayment: 500,
		},
	}
}
