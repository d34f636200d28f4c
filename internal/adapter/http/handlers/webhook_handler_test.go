package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"aperture_studio/internal/adapter/http/handlers/mocks"
	"aperture_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentWebhookUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentWebhookUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc)

	r := gin.New()
	r.POST("/webhooks/payments", h.HandlePaymentEvent)
	return r, uc
}

func TestPaymentWebhookHandler_Succeeded(t *testing.T) {
	r, uc := newWebhookRouter(t)

	body := `{
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_123", "created": 1749571200}}
	}`

	uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, evt usecase.PaymentEvent) error {
			if evt.Type != usecase.EventPaymentSucceeded || evt.IntentID != "pi_123" {
				t.Fatalf("unexpected event %+v", evt)
			}
			if evt.OccurredAt != time.Unix(1749571200, 0).UTC() {
				t.Fatalf("unexpected occurred_at %v", evt.OccurredAt)
			}
			return nil
		})

	w := doRequest(r, http.MethodPost, "/webhooks/payments", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"received":true`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestPaymentWebhookHandler_Failed(t *testing.T) {
	r, uc := newWebhookRouter(t)

	body := `{
		"type": "payment_intent.payment_failed",
		"data": {"object": {"id": "pi_123", "failure_reason": "card_declined"}}
	}`

	uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, evt usecase.PaymentEvent) error {
			if evt.FailureReason != "card_declined" {
				t.Fatalf("unexpected event %+v", evt)
			}
			return nil
		})

	w := doRequest(r, http.MethodPost, "/webhooks/payments", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentWebhookHandler_BadJSON(t *testing.T) {
	r, _ := newWebhookRouter(t)

	w := doRequest(r, http.MethodPost, "/webhooks/payments", `{"type":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"received":false`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestPaymentWebhookHandler_UsecaseErrorStillAcknowledged(t *testing.T) {
	r, uc := newWebhookRouter(t)

	uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).Return(errors.New("db"))

	body := `{"type": "payment_intent.succeeded", "data": {"object": {"id": "pi_123"}}}`
	w := doRequest(r, http.MethodPost, "/webhooks/payments", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite usecase error, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"received":true`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
