package usecase

import (
	"context"
	"log"
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"
)

// Payment processor webhook event types consumed by this service.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentEvent is the normalized webhook payload.
type PaymentEvent struct {
	Type          string
	IntentID      string
	FailureReason string
	OccurredAt    time.Time
}

// IPaymentWebhookUseCase applies asynchronous payment outcomes.

type IPaymentWebhookUseCase interface {
	ProcessEvent(ctx context.Context, evt PaymentEvent) error
}

// PaymentWebhookUseCase transitions deposits and their parent change orders to
// terminal states. It is idempotent: replaying an event against a deposit that
// is already terminal is a no-op, and events for unknown intent references are
// acknowledged (logged as an anomaly) so the processor does not retry forever.

type PaymentWebhookUseCase struct {
	orders   interfaces.IChangeOrderRepository
	deposits interfaces.IMicroDepositRepository
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(orders interfaces.IChangeOrderRepository, deposits interfaces.IMicroDepositRepository) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{orders: orders, deposits: deposits}
}

func (u *PaymentWebhookUseCase) ProcessEvent(ctx context.Context, evt PaymentEvent) error {
	switch evt.Type {
	case EventPaymentSucceeded, EventPaymentFailed:
	default:
		log.Printf("[webhook][usecase] ignoring event type=%s intent_id=%s", evt.Type, evt.IntentID)
		return nil
	}

	d, err := u.deposits.GetByPaymentIntentID(ctx, evt.IntentID)
	if err != nil {
		log.Printf("[webhook][usecase] deposit lookup failed intent_id=%s err=%v", evt.IntentID, err)
		return err
	}
	if d.ID == "" {
		// Anomaly: an event we cannot attribute. Acknowledge anyway.
		log.Printf("[webhook][usecase] no deposit for intent intent_id=%s type=%s", evt.IntentID, evt.Type)
		return nil
	}
	if d.Status.IsTerminal() {
		log.Printf("[webhook][usecase] replay ignored deposit_id=%s status=%s", d.ID, d.Status)
		return nil
	}

	occurred := evt.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}

	switch evt.Type {
	case EventPaymentSucceeded:
		d.Status = entities.MicroDepositStatusCompleted
		d.PaidAt = &occurred
		if _, err := u.deposits.Save(ctx, d); err != nil {
			log.Printf("[webhook][usecase] deposit save failed deposit_id=%s err=%v", d.ID, err)
			return err
		}
		if err := u.markOrderPaid(ctx, d.ChangeOrderID); err != nil {
			return err
		}
		log.Printf("[webhook][usecase] payment succeeded deposit_id=%s change_order_id=%s", d.ID, d.ChangeOrderID)

	case EventPaymentFailed:
		// The order stays pending so the client can retry payment.
		d.Status = entities.MicroDepositStatusFailed
		d.FailedAt = &occurred
		d.FailedReason = evt.FailureReason
		if _, err := u.deposits.Save(ctx, d); err != nil {
			log.Printf("[webhook][usecase] deposit save failed deposit_id=%s err=%v", d.ID, err)
			return err
		}
		log.Printf("[webhook][usecase] payment failed deposit_id=%s change_order_id=%s reason=%q", d.ID, d.ChangeOrderID, evt.FailureReason)
	}
	return nil
}

func (u *PaymentWebhookUseCase) markOrderPaid(ctx context.Context, changeOrderID string) error {
	o, err := u.orders.GetByID(ctx, changeOrderID)
	if err != nil {
		log.Printf("[webhook][usecase] order lookup failed change_order_id=%s err=%v", changeOrderID, err)
		return err
	}
	if o.ID == "" {
		log.Printf("[webhook][usecase] order missing for deposit change_order_id=%s", changeOrderID)
		return nil
	}
	if o.Status == entities.ChangeOrderStatusPaid {
		return nil
	}
	o.Status = entities.ChangeOrderStatusPaid
	if _, err := u.orders.Save(ctx, o); err != nil {
		log.Printf("[webhook][usecase] order save failed change_order_id=%s err=%v", o.ID, err)
		return err
	}
	return nil
}
