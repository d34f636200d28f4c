package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrChangeOrderNotFound    = errors.New("change order not found")
	ErrInvalidChangeOrderID   = errors.New("invalid change order id")
	ErrInvalidJobID           = errors.New("invalid job id")
	ErrInvalidClientID        = errors.New("invalid client id")
	ErrChangeOrderNotPending  = errors.New("change order already decided")
	ErrMicroDepositNotFound   = errors.New("micro deposit not found")
	ErrPaymentIntentCreation  = errors.New("payment intent creation failed")
	ErrInvalidRejectionReason = errors.New("invalid rejection reason")
)

const paymentIntentTimeout = 15 * time.Second

// CreateChangeOrderCommand is the domain input for submitting a change order.
type CreateChangeOrderCommand struct {
	JobID       string
	ClientID    string
	Type        entities.ChangeOrderType
	Description string
	Details     entities.ChangeDetails
	RequestedBy entities.RequestedBy
}

// WorkflowResult is what the process operation always hands back to callers,
// success or not, so a UI can render a message in every case.
type WorkflowResult struct {
	Approved        bool                   `json:"approved"`
	RequiresDeposit bool                   `json:"requires_deposit"`
	MicroDeposit    *entities.MicroDeposit `json:"micro_deposit,omitempty"`
	Message         string                 `json:"message"`
}

// IChangeOrderUseCase exposes the change-order cost-estimation workflow.
//
//   - Create      => submit a change order (validated typed payload)
//   - Process     => analyze -> enhance -> approve -> orchestrate deposit
//   - Reject      => manual rejection by the studio
//   - LatestDeposit => most recent deposit for an order

type IChangeOrderUseCase interface {
	Create(ctx context.Context, cmd CreateChangeOrderCommand) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	Process(ctx context.Context, id string) (WorkflowResult, error)
	Reject(ctx context.Context, id string, reason string) (entities.ChangeOrder, error)
	LatestDeposit(ctx context.Context, changeOrderID string) (entities.MicroDeposit, error)
}

type ChangeOrderUseCase struct {
	orders     interfaces.IChangeOrderRepository
	deposits   interfaces.IMicroDepositRepository
	gateway    interfaces.IPaymentGateway
	calculator *CostCalculator
	enhancer   *CostEnhancer
	rules      *entities.PricingRules
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(
	orders interfaces.IChangeOrderRepository,
	deposits interfaces.IMicroDepositRepository,
	gateway interfaces.IPaymentGateway,
	enhancer *CostEnhancer,
	rules *entities.PricingRules,
) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{
		orders:     orders,
		deposits:   deposits,
		gateway:    gateway,
		calculator: NewCostCalculator(rules),
		enhancer:   enhancer,
		rules:      rules,
	}
}

func (u *ChangeOrderUseCase) Create(ctx context.Context, cmd CreateChangeOrderCommand) (entities.ChangeOrder, error) {
	cmd.JobID = strings.TrimSpace(cmd.JobID)
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	if cmd.JobID == "" {
		return entities.ChangeOrder{}, ErrInvalidJobID
	}
	if cmd.ClientID == "" {
		return entities.ChangeOrder{}, ErrInvalidClientID
	}
	if err := cmd.Details.Validate(cmd.Type); err != nil {
		return entities.ChangeOrder{}, err
	}

	requestedBy := cmd.RequestedBy
	if requestedBy == "" {
		requestedBy = entities.RequestedByClient
	}

	o := entities.ChangeOrder{
		ID:          uuid.NewString(),
		JobID:       cmd.JobID,
		ClientID:    cmd.ClientID,
		Type:        cmd.Type,
		Description: strings.TrimSpace(cmd.Description),
		Details:     cmd.Details,
		RequestedBy: requestedBy,
		RequestedAt: time.Now().UTC(),
		Status:      entities.ChangeOrderStatusPending,
	}
	log.Printf("[changeorder][usecase] create change_order_id=%s job_id=%s type=%s", o.ID, o.JobID, o.Type)
	return u.orders.Create(ctx, o)
}

func (u *ChangeOrderUseCase) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if o.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return o, nil
}

// Process runs the full pipeline for a pending change order.
//
// Orchestration failures (payment intent creation) do not surface as Go
// errors: the result carries a user-facing failure message instead, per the
// workflow contract. Not-found and already-decided orders are real errors.
func (u *ChangeOrderUseCase) Process(ctx context.Context, id string) (WorkflowResult, error) {
	log.Printf("[changeorder][usecase] process start change_order_id=%s", id)
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return WorkflowResult{}, err
	}
	if o.Status != entities.ChangeOrderStatusPending {
		log.Printf("[changeorder][usecase] process rejected change_order_id=%s status=%s", o.ID, o.Status)
		return WorkflowResult{}, ErrChangeOrderNotPending
	}
	if o.CostImpact != nil {
		log.Printf("[changeorder][usecase] process rejected change_order_id=%s already analyzed", o.ID)
		return WorkflowResult{}, ErrChangeOrderNotPending
	}

	impact := u.calculator.Calculate(o)
	log.Printf("[changeorder][usecase] cost computed change_order_id=%s total=%.2f confidence=%.2f", o.ID, impact.TotalAmount, impact.Confidence)

	impact = u.enhancer.Enhance(ctx, o, impact)

	// The cost impact must be attached before any approval decision reads it.
	o.CostImpact = &impact
	if o, err = u.orders.Save(ctx, o); err != nil {
		log.Printf("[changeorder][usecase] save cost impact failed change_order_id=%s err=%v", o.ID, err)
		return u.failureResult(err), nil
	}

	decision := DecideApproval(impact, u.rules.Thresholds)

	deposit, err := u.orchestrateDeposit(ctx, o, decision)
	if err != nil {
		log.Printf("[changeorder][usecase] deposit orchestration failed change_order_id=%s err=%v", o.ID, err)
		return u.failureResult(err), nil
	}

	o.MicroDepositID = deposit.ID
	if decision.Approved {
		now := time.Now().UTC()
		o.Status = entities.ChangeOrderStatusApproved
		o.ApprovedAt = &now
		o.ApprovedBy = SystemApprover
		o.Reason = decision.Message
	}
	if _, err = u.orders.Save(ctx, o); err != nil {
		log.Printf("[changeorder][usecase] save decision failed change_order_id=%s err=%v", o.ID, err)
		return u.failureResult(err), nil
	}

	log.Printf("[changeorder][usecase] process success change_order_id=%s approved=%t requires_deposit=%t deposit_id=%s",
		o.ID, decision.Approved, decision.RequiresDeposit, deposit.ID)
	return WorkflowResult{
		Approved:        decision.Approved,
		RequiresDeposit: decision.RequiresDeposit,
		MicroDeposit:    &deposit,
		Message:         decision.Message,
	}, nil
}

// orchestrateDeposit realizes an approval decision as a MicroDeposit. The
// payment processor is contacted only when a payment is actually owed.
func (u *ChangeOrderUseCase) orchestrateDeposit(ctx context.Context, o entities.ChangeOrder, decision ApprovalDecision) (entities.MicroDeposit, error) {
	now := time.Now().UTC()
	d := entities.MicroDeposit{
		ID:            uuid.NewString(),
		ChangeOrderID: o.ID,
		Currency:      entities.DepositCurrency,
		PaymentMethod: entities.PaymentMethodCard,
		CreatedAt:     now,
	}

	if decision.Approved {
		d.Amount = 0
		d.Status = entities.MicroDepositStatusCompleted
		d.PaidAt = &d.CreatedAt
		log.Printf("[deposit][usecase] auto-approved zero deposit change_order_id=%s deposit_id=%s", o.ID, d.ID)
		return u.deposits.Create(ctx, d)
	}

	if u.gateway == nil {
		return entities.MicroDeposit{}, errors.New("payment gateway not configured")
	}

	intentCtx, cancel := context.WithTimeout(ctx, paymentIntentTimeout)
	defer cancel()

	req := interfaces.PaymentIntentRequest{
		AmountMinorUnits: int64(math.Round(decision.DepositAmount * 100)),
		Currency:         entities.DepositCurrency,
		Description:      fmt.Sprintf("Change order %s (%s) for job %s", o.ID, o.Type, o.JobID),
		Metadata: map[string]string{
			"change_order_id": o.ID,
			"job_id":          o.JobID,
			"client_id":       o.ClientID,
		},
	}
	log.Printf("[deposit][usecase] creating payment intent change_order_id=%s amount_minor=%d", o.ID, req.AmountMinorUnits)
	intent, err := u.gateway.CreatePaymentIntent(intentCtx, req)
	if err != nil {
		return entities.MicroDeposit{}, fmt.Errorf("%w: %v", ErrPaymentIntentCreation, err)
	}

	d.Amount = decision.DepositAmount
	d.Status = entities.MicroDepositStatusPending
	d.PaymentIntentID = intent.IntentID
	log.Printf("[deposit][usecase] payment intent created change_order_id=%s deposit_id=%s intent_id=%s", o.ID, d.ID, intent.IntentID)
	return u.deposits.Create(ctx, d)
}

func (u *ChangeOrderUseCase) failureResult(err error) WorkflowResult {
	return WorkflowResult{
		Approved:        false,
		RequiresDeposit: false,
		Message:         fmt.Sprintf("Error processing change order: %v", err),
	}
}

func (u *ChangeOrderUseCase) Reject(ctx context.Context, id string, reason string) (entities.ChangeOrder, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.ChangeOrder{}, ErrInvalidRejectionReason
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if o.Status != entities.ChangeOrderStatusPending {
		return entities.ChangeOrder{}, ErrChangeOrderNotPending
	}

	o.Status = entities.ChangeOrderStatusRejected
	o.Reason = reason
	log.Printf("[changeorder][usecase] rejected change_order_id=%s", o.ID)
	return u.orders.Save(ctx, o)
}

func (u *ChangeOrderUseCase) LatestDeposit(ctx context.Context, changeOrderID string) (entities.MicroDeposit, error) {
	changeOrderID = strings.TrimSpace(changeOrderID)
	if changeOrderID == "" {
		return entities.MicroDeposit{}, ErrInvalidChangeOrderID
	}

	deposits, err := u.deposits.ListByChangeOrderID(ctx, changeOrderID)
	if err != nil {
		return entities.MicroDeposit{}, err
	}
	if len(deposits) == 0 {
		return entities.MicroDeposit{}, ErrMicroDepositNotFound
	}

	latest := deposits[0]
	for _, d := range deposits[1:] {
		if d.CreatedAt.After(latest.CreatedAt) {
			latest = d
		}
	}
	return latest, nil
}
