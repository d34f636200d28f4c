package request

import (
	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase"
)

// ChangeOrderCreateRequest is the payload for submitting a change order. The
// details object must carry exactly the variant matching `type`.
type ChangeOrderCreateRequest struct {
	JobID       string                 `json:"job_id" binding:"required"`
	ClientID    string                 `json:"client_id" binding:"required"`
	Type        string                 `json:"type" binding:"required"`
	Description string                 `json:"description"`
	RequestedBy string                 `json:"requested_by"`
	Details     entities.ChangeDetails `json:"details" binding:"required"`
}

func (r ChangeOrderCreateRequest) ToCommand() usecase.CreateChangeOrderCommand {
	return usecase.CreateChangeOrderCommand{
		JobID:       r.JobID,
		ClientID:    r.ClientID,
		Type:        entities.ChangeOrderType(r.Type),
		Description: r.Description,
		Details:     r.Details,
		RequestedBy: entities.RequestedBy(r.RequestedBy),
	}
}

// ChangeOrderRejectRequest carries the manual-rejection reason.
type ChangeOrderRejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}
