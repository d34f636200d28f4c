package handlers

import (
	"log"
	"net/http"

	request "aperture_studio/internal/adapter/http/dto/request"
	"aperture_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler consumes asynchronous payment-outcome events.
//
// The processor retries undelivered events, so this handler acknowledges with
// 200 in every case it can parse; usecase-level failures are logged, not
// propagated to the transport.

type PaymentWebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
}

func NewPaymentWebhookHandler(uc usecase.IPaymentWebhookUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc}
}

func (h *PaymentWebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] unparseable event err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"received": false})
		return
	}
	log.Printf("[webhook][handler] event received type=%s intent_id=%s", payload.Type, payload.Data.Object.ID)

	if err := h.usecase.ProcessEvent(c.Request.Context(), payload.ToEvent()); err != nil {
		// Acknowledge anyway; a retry storm would not fix a state-update failure.
		log.Printf("[webhook][handler] event processing failed type=%s intent_id=%s err=%v", payload.Type, payload.Data.Object.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
