package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentIntentRequest is the processor-agnostic "create payment intent" input.
// Amount is expressed in minor currency units (cents).
type PaymentIntentRequest struct {
	AmountMinorUnits int64             `json:"amount_minor_units"`
	Currency         string            `json:"currency"`
	Description      string            `json:"description"`
	Metadata         map[string]string `json:"metadata"`
}

// PaymentIntentResult carries the processor's opaque reference plus the raw
// response body for traceability/audit.
type PaymentIntentResult struct {
	IntentID string          `json:"intent_id"`
	Status   string          `json:"status"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Creating the intent is load-bearing: failures here must surface to the
// caller, unlike advisory failures which degrade gracefully.
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntentResult, error)
}
