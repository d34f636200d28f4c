package entities

// BreakdownCategory classifies one cost line item.

type BreakdownCategory string

const (
	BreakdownCategoryTime      BreakdownCategory = "time"
	BreakdownCategoryTravel    BreakdownCategory = "travel"
	BreakdownCategoryEquipment BreakdownCategory = "equipment"
	BreakdownCategoryVendor    BreakdownCategory = "vendor"
	BreakdownCategoryOverhead  BreakdownCategory = "overhead"
)

// CostBreakdown is one human-auditable line item of a cost impact.
type CostBreakdown struct {
	Category      BreakdownCategory `json:"category"`
	Description   string            `json:"description"`
	Quantity      float64           `json:"quantity"`
	UnitCost      float64           `json:"unit_cost"`
	TotalCost     float64           `json:"total_cost"`
	Justification string            `json:"justification"`
}

// CostImpact is the computed financial effect of a change order.
//
// Breakdown ordering follows calculation order, not any sort; the sequence is
// part of the audit trail. Confidence is in [0,1] and is lower for categories
// with more estimation (scope) than for direct lookups (equipment).

type CostImpact struct {
	AdditionalHours float64         `json:"additional_hours"`
	HourlyRate      float64         `json:"hourly_rate"`
	TravelCosts     float64         `json:"travel_costs"`
	EquipmentCosts  float64         `json:"equipment_costs"`
	VendorCosts     float64         `json:"vendor_costs"`
	TotalAmount     float64         `json:"total_amount"`
	Breakdown       []CostBreakdown `json:"breakdown"`
	Confidence      float64         `json:"confidence"`
}
