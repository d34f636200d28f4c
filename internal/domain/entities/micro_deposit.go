package entities

import "time"

// MicroDepositStatus represents the deposit payment lifecycle.
//
// pending -> completed | failed; processing is reserved for processors that
// report an intermediate state; refunded is reachable only via an explicit
// refund action outside the core flow.

type MicroDepositStatus string

const (
	MicroDepositStatusPending    MicroDepositStatus = "pending"
	MicroDepositStatusProcessing MicroDepositStatus = "processing"
	MicroDepositStatusCompleted  MicroDepositStatus = "completed"
	MicroDepositStatusFailed     MicroDepositStatus = "failed"
	MicroDepositStatusRefunded   MicroDepositStatus = "refunded"
)

// IsTerminal reports whether no further payment-driven transition applies.
func (s MicroDepositStatus) IsTerminal() bool {
	switch s {
	case MicroDepositStatusCompleted, MicroDepositStatusFailed, MicroDepositStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod is how the client funds the deposit.

type PaymentMethod string

const (
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
)

// DepositCurrency is the single supported currency.
const DepositCurrency = "usd"

// MicroDeposit is a (possibly partial) payment request tied to one change order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_intent_id-index): payment_intent_id
//   - GSI2 (change_order_id-index): change_order_id
//
// PaymentIntentID is the processor's opaque reference, present once a payment
// request has been created; auto-approved deposits never contact the processor
// and are completed at creation with PaidAt == CreatedAt.

type MicroDeposit struct {
	ID            string             `json:"id"`
	ChangeOrderID string             `json:"change_order_id"`
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency"`
	Status        MicroDepositStatus `json:"status"`
	PaymentMethod PaymentMethod      `json:"payment_method"`

	PaymentIntentID string `json:"payment_intent_id,omitempty"`

	CreatedAt    time.Time  `json:"created_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	FailedAt     *time.Time `json:"failed_at,omitempty"`
	FailedReason string     `json:"failed_reason,omitempty"`
	RefundedAt   *time.Time `json:"refunded_at,omitempty"`
	RefundReason string     `json:"refund_reason,omitempty"`
}
