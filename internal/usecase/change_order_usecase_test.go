package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"
	mock_interfaces "aperture_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type useCaseMocks struct {
	orders   *mock_interfaces.MockIChangeOrderRepository
	deposits *mock_interfaces.MockIMicroDepositRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newTestUseCase(t *testing.T) (*ChangeOrderUseCase, useCaseMocks) {
	ctrl := gomock.NewController(t)
	m := useCaseMocks{
		orders:   mock_interfaces.NewMockIChangeOrderRepository(ctrl),
		deposits: mock_interfaces.NewMockIMicroDepositRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewChangeOrderUseCase(m.orders, m.deposits, m.gateway, NewCostEnhancer(nil), entities.DefaultPricingRules())
	return uc, m
}

func echoOrderSave(m useCaseMocks, times int) {
	m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.ChangeOrder) (entities.ChangeOrder, error) {
			return o, nil
		}).Times(times)
}

func echoDepositCreate(m useCaseMocks) *gomock.Call {
	return m.deposits.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d entities.MicroDeposit) (entities.MicroDeposit, error) {
			return d, nil
		})
}

func pendingOrder(id string, t entities.ChangeOrderType, details entities.ChangeDetails) entities.ChangeOrder {
	return entities.ChangeOrder{
		ID:          id,
		JobID:       "job-1",
		ClientID:    "client-1",
		Type:        t,
		Details:     details,
		RequestedBy: entities.RequestedByClient,
		RequestedAt: time.Now().UTC(),
		Status:      entities.ChangeOrderStatusPending,
	}
}

func TestChangeOrderUseCase_Create(t *testing.T) {
	t.Run("missing job id", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		_, err := uc.Create(context.Background(), CreateChangeOrderCommand{ClientID: "client-1"})
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("payload must match declared type", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		cmd := CreateChangeOrderCommand{
			JobID:    "job-1",
			ClientID: "client-1",
			Type:     entities.ChangeOrderTypeTimeline,
			Details: entities.ChangeDetails{
				Equipment: &entities.EquipmentChange{AddedEquipment: []string{"drone"}},
			},
		}
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, entities.ErrInvalidChangePayload) {
			t.Fatalf("expected ErrInvalidChangePayload, got %v", err)
		}
	})

	t.Run("success defaults and persists", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.ChangeOrder) (entities.ChangeOrder, error) {
				return o, nil
			})

		created, err := uc.Create(context.Background(), CreateChangeOrderCommand{
			JobID:    "job-1",
			ClientID: "client-1",
			Type:     entities.ChangeOrderTypeEquipment,
			Details: entities.ChangeDetails{
				Equipment: &entities.EquipmentChange{AddedEquipment: []string{"drone"}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
		if created.Status != entities.ChangeOrderStatusPending {
			t.Fatalf("expected pending status, got %s", created.Status)
		}
		if created.RequestedBy != entities.RequestedByClient {
			t.Fatalf("expected requested_by default, got %s", created.RequestedBy)
		}
		if created.RequestedAt.IsZero() {
			t.Fatal("expected requested_at to be set")
		}
	})
}

func TestChangeOrderUseCase_Process_AutoApprove(t *testing.T) {
	uc, m := newTestUseCase(t)

	// A single backdrop computes to $30, under the $50 auto-approve threshold.
	o := pendingOrder("co-1", entities.ChangeOrderTypeEquipment, entities.ChangeDetails{
		Equipment: &entities.EquipmentChange{AddedEquipment: []string{"backdrop"}},
	})
	m.orders.EXPECT().GetByID(gomock.Any(), "co-1").Return(o, nil)
	echoOrderSave(m, 2)
	echoDepositCreate(m)
	// No gateway expectation: any CreatePaymentIntent call fails the test.

	result, err := uc.Process(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Approved || result.RequiresDeposit {
		t.Fatalf("expected auto-approval, got %+v", result)
	}
	if result.MicroDeposit == nil {
		t.Fatal("expected a deposit record")
	}
	if result.MicroDeposit.Amount != 0 {
		t.Fatalf("expected zero-amount deposit, got %v", result.MicroDeposit.Amount)
	}
	if result.MicroDeposit.Status != entities.MicroDepositStatusCompleted {
		t.Fatalf("expected completed deposit, got %s", result.MicroDeposit.Status)
	}
	if result.MicroDeposit.PaidAt == nil || !result.MicroDeposit.PaidAt.Equal(result.MicroDeposit.CreatedAt) {
		t.Fatalf("expected paid_at == created_at, got %+v", result.MicroDeposit)
	}
}

func TestChangeOrderUseCase_Process_FullPayment(t *testing.T) {
	uc, m := newTestUseCase(t)

	// 4 scope hours at base rate = $600, above the full-payment threshold.
	o := pendingOrder("co-2", entities.ChangeOrderTypeScope, entities.ChangeDetails{
		Scope: &entities.ScopeChange{EstimatedHours: 4},
	})
	m.orders.EXPECT().GetByID(gomock.Any(), "co-2").Return(o, nil)
	echoOrderSave(m, 2)
	echoDepositCreate(m)

	var captured interfaces.PaymentIntentRequest
	m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntentResult, error) {
			captured = req
			return interfaces.PaymentIntentResult{IntentID: "pi_123", Status: "pending"}, nil
		})

	result, err := uc.Process(context.Background(), "co-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Approved || !result.RequiresDeposit {
		t.Fatalf("expected deposit required, got %+v", result)
	}
	if result.MicroDeposit.Amount != 600 {
		t.Fatalf("expected full-payment deposit 600, got %v", result.MicroDeposit.Amount)
	}
	if result.MicroDeposit.Status != entities.MicroDepositStatusPending {
		t.Fatalf("expected pending deposit, got %s", result.MicroDeposit.Status)
	}
	if result.MicroDeposit.PaymentIntentID != "pi_123" {
		t.Fatalf("expected intent reference, got %q", result.MicroDeposit.PaymentIntentID)
	}
	if captured.AmountMinorUnits != 60000 {
		t.Fatalf("expected 60000 minor units, got %d", captured.AmountMinorUnits)
	}
	if captured.Metadata["change_order_id"] != "co-2" || captured.Metadata["job_id"] != "job-1" || captured.Metadata["client_id"] != "client-1" {
		t.Fatalf("unexpected intent metadata %+v", captured.Metadata)
	}
}

func TestChangeOrderUseCase_Process_PartialDeposit(t *testing.T) {
	uc, m := newTestUseCase(t)

	// Timeline weekday 2-hour shift = $300: the 50% deposit band.
	original := time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)
	o := pendingOrder("co-3", entities.ChangeOrderTypeTimeline, entities.ChangeDetails{
		Timeline: &entities.TimelineChange{OriginalStart: original, NewStart: original.Add(2 * time.Hour)},
	})
	m.orders.EXPECT().GetByID(gomock.Any(), "co-3").Return(o, nil)
	echoOrderSave(m, 2)
	echoDepositCreate(m)
	m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		Return(interfaces.PaymentIntentResult{IntentID: "pi_456", Status: "pending"}, nil)

	result, err := uc.Process(context.Background(), "co-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MicroDeposit.Amount != 150 {
		t.Fatalf("expected 50%% deposit 150, got %v", result.MicroDeposit.Amount)
	}
}

func TestChangeOrderUseCase_Process_GatewayFailure(t *testing.T) {
	uc, m := newTestUseCase(t)

	o := pendingOrder("co-4", entities.ChangeOrderTypeScope, entities.ChangeDetails{
		Scope: &entities.ScopeChange{EstimatedHours: 4},
	})
	m.orders.EXPECT().GetByID(gomock.Any(), "co-4").Return(o, nil)
	echoOrderSave(m, 1)
	m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		Return(interfaces.PaymentIntentResult{}, errors.New("processor unavailable"))

	result, err := uc.Process(context.Background(), "co-4")
	if err != nil {
		t.Fatalf("expected structured result, got error %v", err)
	}
	if result.Approved || result.RequiresDeposit {
		t.Fatalf("expected failure result, got %+v", result)
	}
	if !strings.Contains(result.Message, "Error processing change order") {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestChangeOrderUseCase_Process_Guards(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ChangeOrder{}, nil)

		_, err := uc.Process(context.Background(), "missing")
		if !errors.Is(err, ErrChangeOrderNotFound) {
			t.Fatalf("expected ErrChangeOrderNotFound, got %v", err)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		o := pendingOrder("co-5", entities.ChangeOrderTypeScope, entities.ChangeDetails{Scope: &entities.ScopeChange{}})
		o.Status = entities.ChangeOrderStatusApproved
		m.orders.EXPECT().GetByID(gomock.Any(), "co-5").Return(o, nil)

		_, err := uc.Process(context.Background(), "co-5")
		if !errors.Is(err, ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
	})

	t.Run("already analyzed", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		o := pendingOrder("co-6", entities.ChangeOrderTypeScope, entities.ChangeDetails{Scope: &entities.ScopeChange{}})
		o.CostImpact = &entities.CostImpact{TotalAmount: 10}
		m.orders.EXPECT().GetByID(gomock.Any(), "co-6").Return(o, nil)

		_, err := uc.Process(context.Background(), "co-6")
		if !errors.Is(err, ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
	})
}

func TestChangeOrderUseCase_Process_AutoApproveSetsApprovalFields(t *testing.T) {
	uc, m := newTestUseCase(t)

	o := pendingOrder("co-7", entities.ChangeOrderTypeEquipment, entities.ChangeDetails{
		Equipment: &entities.EquipmentChange{AddedEquipment: []string{"backdrop"}},
	})
	m.orders.EXPECT().GetByID(gomock.Any(), "co-7").Return(o, nil)

	var finalOrder entities.ChangeOrder
	gomock.InOrder(
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved entities.ChangeOrder) (entities.ChangeOrder, error) {
				if saved.CostImpact == nil {
					t.Fatal("cost impact must be attached before the decision")
				}
				return saved, nil
			}),
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved entities.ChangeOrder) (entities.ChangeOrder, error) {
				finalOrder = saved
				return saved, nil
			}),
	)
	echoDepositCreate(m)

	if _, err := uc.Process(context.Background(), "co-7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if finalOrder.Status != entities.ChangeOrderStatusApproved {
		t.Fatalf("expected approved status, got %s", finalOrder.Status)
	}
	if finalOrder.ApprovedBy != SystemApprover || finalOrder.ApprovedAt == nil {
		t.Fatalf("expected system approval fields, got %+v", finalOrder)
	}
	if finalOrder.MicroDepositID == "" {
		t.Fatal("expected deposit link on order")
	}
}

func TestChangeOrderUseCase_Reject(t *testing.T) {
	t.Run("requires reason", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		_, err := uc.Reject(context.Background(), "co-1", "  ")
		if !errors.Is(err, ErrInvalidRejectionReason) {
			t.Fatalf("expected ErrInvalidRejectionReason, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		o := pendingOrder("co-1", entities.ChangeOrderTypeScope, entities.ChangeDetails{Scope: &entities.ScopeChange{}})
		m.orders.EXPECT().GetByID(gomock.Any(), "co-1").Return(o, nil)
		echoOrderSave(m, 1)

		rejected, err := uc.Reject(context.Background(), "co-1", "client withdrew request")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rejected.Status != entities.ChangeOrderStatusRejected {
			t.Fatalf("expected rejected status, got %s", rejected.Status)
		}
		if rejected.Reason != "client withdrew request" {
			t.Fatalf("unexpected reason %q", rejected.Reason)
		}
	})
}

func TestChangeOrderUseCase_LatestDeposit(t *testing.T) {
	t.Run("none found", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.deposits.EXPECT().ListByChangeOrderID(gomock.Any(), "co-1").Return(nil, nil)

		_, err := uc.LatestDeposit(context.Background(), "co-1")
		if !errors.Is(err, ErrMicroDepositNotFound) {
			t.Fatalf("expected ErrMicroDepositNotFound, got %v", err)
		}
	})

	t.Run("returns newest", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		now := time.Now().UTC()
		m.deposits.EXPECT().ListByChangeOrderID(gomock.Any(), "co-1").Return([]entities.MicroDeposit{
			{ID: "dep-old", CreatedAt: now.Add(-time.Hour)},
			{ID: "dep-new", CreatedAt: now},
		}, nil)

		d, err := uc.LatestDeposit(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "dep-new" {
			t.Fatalf("expected newest deposit, got %s", d.ID)
		}
	})
}
