package request

import (
	"time"

	"aperture_studio/internal/usecase"
)

// PaymentWebhookRequest mirrors the processor's event envelope:
// {type, data: {object: {id, metadata, ...}}}.
type PaymentWebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			Metadata      map[string]string `json:"metadata,omitempty"`
			FailureReason string            `json:"failure_reason,omitempty"`
			Created       int64             `json:"created,omitempty"`
		} `json:"object"`
	} `json:"data"`
}

func (r PaymentWebhookRequest) ToEvent() usecase.PaymentEvent {
	evt := usecase.PaymentEvent{
		Type:          r.Type,
		IntentID:      r.Data.Object.ID,
		FailureReason: r.Data.Object.FailureReason,
	}
	if r.Data.Object.Created > 0 {
		evt.OccurredAt = time.Unix(r.Data.Object.Created, 0).UTC()
	}
	return evt
}
