package usecase

import (
	"fmt"
	"math"

	"aperture_studio/internal/domain/entities"
)

// SystemApprover marks auto-approved change orders.
const SystemApprover = "system:auto-approve"

// ApprovalDecision is the workflow outcome for an analyzed change order.
type ApprovalDecision struct {
	Approved        bool
	RequiresDeposit bool
	DepositAmount   float64
	Message         string
}

// DecideApproval applies the threshold rules to a cost impact. Pure decision,
// no side effects.
//
// Band behavior: amounts between AutoApprove and RequireDeposit collect a
// deposit equal to the full total, same as the RequireFullPayment band. Only
// the (RequireDeposit, RequireFullPayment] band gets the 50% deposit.
func DecideApproval(impact entities.CostImpact, thresholds entities.ApprovalThresholds) ApprovalDecision {
	total := impact.TotalAmount

	switch {
	case total <= thresholds.AutoApprove:
		return ApprovalDecision{
			Approved: true,
			Message:  fmt.Sprintf("Change order auto-approved: $%.2f is under the $%.0f threshold", total, thresholds.AutoApprove),
		}
	case total > thresholds.RequireFullPayment:
		return ApprovalDecision{
			RequiresDeposit: true,
			DepositAmount:   total,
			Message:         fmt.Sprintf("Change order requires full payment of $%.2f due to significant scope change", total),
		}
	case total > thresholds.RequireDeposit:
		deposit := math.Round(total * 0.5)
		return ApprovalDecision{
			RequiresDeposit: true,
			DepositAmount:   deposit,
			Message:         fmt.Sprintf("Change order requires a $%.2f deposit (50%% of $%.2f)", deposit, total),
		}
	default:
		return ApprovalDecision{
			RequiresDeposit: true,
			DepositAmount:   total,
			Message:         fmt.Sprintf("Change order requires payment of $%.2f before work proceeds", total),
		}
	}
}
