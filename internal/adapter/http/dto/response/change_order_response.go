package response

import (
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase"
)

type ChangeOrderResponse struct {
	ID             string                 `json:"id"`
	JobID          string                 `json:"job_id"`
	ClientID       string                 `json:"client_id"`
	Type           string                 `json:"type"`
	Description    string                 `json:"description,omitempty"`
	Details        entities.ChangeDetails `json:"details"`
	RequestedBy    string                 `json:"requested_by"`
	RequestedAt    time.Time              `json:"requested_at"`
	Status         string                 `json:"status"`
	CostImpact     *entities.CostImpact   `json:"cost_impact,omitempty"`
	MicroDepositID string                 `json:"micro_deposit_id,omitempty"`
	ApprovedAt     *time.Time             `json:"approved_at,omitempty"`
	ApprovedBy     string                 `json:"approved_by,omitempty"`
	Reason         string                 `json:"reason,omitempty"`
}

func FromChangeOrder(o entities.ChangeOrder) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:             o.ID,
		JobID:          o.JobID,
		ClientID:       o.ClientID,
		Type:           string(o.Type),
		Description:    o.Description,
		Details:        o.Details,
		RequestedBy:    string(o.RequestedBy),
		RequestedAt:    o.RequestedAt,
		Status:         string(o.Status),
		CostImpact:     o.CostImpact,
		MicroDepositID: o.MicroDepositID,
		ApprovedAt:     o.ApprovedAt,
		ApprovedBy:     o.ApprovedBy,
		Reason:         o.Reason,
	}
}

// WorkflowResultResponse is the body returned by the process endpoint; it is
// always renderable, including the orchestration-failure case.
type WorkflowResultResponse struct {
	Approved        bool                  `json:"approved"`
	RequiresDeposit bool                  `json:"requires_deposit"`
	MicroDeposit    *MicroDepositResponse `json:"micro_deposit,omitempty"`
	Message         string                `json:"message"`
}

func FromWorkflowResult(r usecase.WorkflowResult) WorkflowResultResponse {
	resp := WorkflowResultResponse{
		Approved:        r.Approved,
		RequiresDeposit: r.RequiresDeposit,
		Message:         r.Message,
	}
	if r.MicroDeposit != nil {
		d := FromMicroDeposit(*r.MicroDeposit)
		resp.MicroDeposit = &d
	}
	return resp
}
