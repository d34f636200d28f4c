package response

import (
	"time"

	"aperture_studio/internal/domain/entities"
)

type MicroDepositResponse struct {
	ID              string     `json:"id"`
	ChangeOrderID   string     `json:"change_order_id"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentIntentID string     `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	FailedAt        *time.Time `json:"failed_at,omitempty"`
	FailedReason    string     `json:"failed_reason,omitempty"`
}

func FromMicroDeposit(d entities.MicroDeposit) MicroDepositResponse {
	return MicroDepositResponse{
		ID:              d.ID,
		ChangeOrderID:   d.ChangeOrderID,
		Amount:          d.Amount,
		Currency:        d.Currency,
		Status:          string(d.Status),
		PaymentMethod:   string(d.PaymentMethod),
		PaymentIntentID: d.PaymentIntentID,
		CreatedAt:       d.CreatedAt,
		PaidAt:          d.PaidAt,
		FailedAt:        d.FailedAt,
		FailedReason:    d.FailedReason,
	}
}
