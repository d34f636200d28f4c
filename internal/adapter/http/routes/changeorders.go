package routes

import (
	"aperture_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChangeOrders = "/change-orders"
	PathWebhooks     = "/webhooks"
)

func addChangeOrderRoutes(rg *gin.RouterGroup, changeOrderHandler *handlers.ChangeOrderHandler, webhookHandler *handlers.PaymentWebhookHandler) {
	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.POST("", changeOrderHandler.CreateChangeOrder)
		changeOrders.GET("/:id", changeOrderHandler.GetChangeOrder)
		changeOrders.POST("/:id/process", changeOrderHandler.ProcessChangeOrder)
		changeOrders.PATCH("/:id/reject", changeOrderHandler.RejectChangeOrder)
		changeOrders.GET("/:id/deposit", changeOrderHandler.GetDeposit)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", webhookHandler.HandlePaymentEvent)
	}
}
