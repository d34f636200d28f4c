package interfaces

import (
	"context"

	"aperture_studio/internal/domain/entities"
)

// HiddenCost is one extra line item suggested by the advisory service.
type HiddenCost struct {
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Justification string  `json:"justification"`
}

// AdvisoryAdjustment is the advisory service's suggested refinement of a cost
// impact. Nil pointer fields mean "no suggestion; keep the computed value".
type AdvisoryAdjustment struct {
	AdjustedTotal    *float64     `json:"adjusted_total,omitempty"`
	AdjustmentReason string       `json:"adjustment_reason,omitempty"`
	HiddenCosts      []HiddenCost `json:"hidden_costs,omitempty"`
	ConfidenceScore  *float64     `json:"confidence_score,omitempty"`
}

// IAdvisoryService abstracts the external cost-estimate advisor (an LLM in
// production). Any error from EnhanceEstimate means "no enhancement available".
type IAdvisoryService interface {
	EnhanceEstimate(ctx context.Context, order entities.ChangeOrder, impact entities.CostImpact) (AdvisoryAdjustment, error)
}
