package usecase

import (
	"context"
	"log"
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"
)

const advisoryTimeout = 10 * time.Second

// CostEnhancer optionally refines a computed CostImpact through the external
// advisory service. It never fails: any error, timeout or malformed response
// degrades to the unmodified input.

type CostEnhancer struct {
	advisory interfaces.IAdvisoryService
}

func NewCostEnhancer(advisory interfaces.IAdvisoryService) *CostEnhancer {
	return &CostEnhancer{advisory: advisory}
}

// Enhance merges the advisory adjustment into impact. Missing adjustment
// fields keep the computed values unchanged; no silent zeroing.
func (e *CostEnhancer) Enhance(ctx context.Context, order entities.ChangeOrder, impact entities.CostImpact) entities.CostImpact {
	if e == nil || e.advisory == nil {
		return impact
	}

	ctx, cancel := context.WithTimeout(ctx, advisoryTimeout)
	defer cancel()

	adj, err := e.advisory.EnhanceEstimate(ctx, order, impact)
	if err != nil {
		log.Printf("[enhancer][usecase] advisory unavailable change_order_id=%s err=%v", order.ID, err)
		return impact
	}

	enhanced := impact
	if adj.AdjustedTotal != nil && *adj.AdjustedTotal > 0 {
		enhanced.TotalAmount = *adj.AdjustedTotal
	}
	if adj.ConfidenceScore != nil && *adj.ConfidenceScore >= 0 && *adj.ConfidenceScore <= 1 {
		enhanced.Confidence = *adj.ConfidenceScore
	}
	if len(adj.HiddenCosts) > 0 {
		// Append-only: the computed breakdown keeps its calculation order.
		enhanced.Breakdown = append(append([]entities.CostBreakdown(nil), impact.Breakdown...), hiddenCostLines(adj.HiddenCosts)...)
	}
	log.Printf("[enhancer][usecase] advisory applied change_order_id=%s total=%.2f confidence=%.2f hidden_costs=%d",
		order.ID, enhanced.TotalAmount, enhanced.Confidence, len(adj.HiddenCosts))
	return enhanced
}

func hiddenCostLines(costs []interfaces.HiddenCost) []entities.CostBreakdown {
	lines := make([]entities.CostBreakdown, 0, len(costs))
	for _, hc := range costs {
		category := entities.BreakdownCategory(hc.Category)
		switch category {
		case entities.BreakdownCategoryTime, entities.BreakdownCategoryTravel,
			entities.BreakdownCategoryEquipment, entities.BreakdownCategoryVendor:
		default:
			category = entities.BreakdownCategoryOverhead
		}
		lines = append(lines, entities.CostBreakdown{
			Category:      category,
			Description:   hc.Description,
			Quantity:      1,
			UnitCost:      hc.Amount,
			TotalCost:     hc.Amount,
			Justification: hc.Justification,
		})
	}
	return lines
}
