package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"aperture_studio/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements IPaymentGateway over the Mercado Pago SDK.
//
// The processor-agnostic intent request arrives in minor units; Mercado Pago
// bills in major units, so the amount is converted here. The change-order id
// rides along as external_reference for webhook reconciliation.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentIntent(ctx context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntentResult, error) {
	if g != nil && g.mockMode {
		return g.mockIntent(req)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PaymentIntentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start amount_minor=%d currency=%s", req.AmountMinorUnits, req.Currency)

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	mpReq := payment.Request{
		TransactionAmount: float64(req.AmountMinorUnits) / 100,
		Description:       req.Description,
		ExternalReference: req.Metadata["change_order_id"],
		Metadata:          metadata,
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.PaymentIntentResult{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.PaymentIntentResult{}, err
	}
	log.Printf("[payment][gateway] create success intent_id=%d status=%s", resp.ID, resp.Status)

	return interfaces.PaymentIntentResult{
		IntentID: fmt.Sprintf("%d", resp.ID),
		Status:   resp.Status,
		Raw:      b,
	}, nil
}

func (g *MercadoPagoGateway) mockIntent(req interfaces.PaymentIntentRequest) (interfaces.PaymentIntentResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{
		"id":                 id,
		"status":             "pending",
		"transaction_amount": float64(req.AmountMinorUnits) / 100,
		"description":        req.Description,
		"external_reference": req.Metadata["change_order_id"],
		"date_created":       now,
	}
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.PaymentIntentResult{}, err
	}

	log.Printf("[payment][gateway] mock create success intent_id=%s", id)
	return interfaces.PaymentIntentResult{IntentID: id, Status: "pending", Raw: b}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
