package routes

import (
	"log"
	"os"
	"strconv"

	_ "aperture_studio/docs" // swagger docs registration
	"aperture_studio/internal/adapter/http/handlers"
	"aperture_studio/internal/adapter/persistence/repository"
	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/infrastructure/advisory"
	"aperture_studio/internal/infrastructure/database"
	"aperture_studio/internal/infrastructure/payments"
	"aperture_studio/internal/usecase"
	"aperture_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewChangeOrderDynamoRepository(ddb)
	depositRepo := repository.NewMicroDepositDynamoRepository(ddb)

	rules := entities.DefaultPricingRules()

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var advisor interfaces.IAdvisoryService
	openaiAdvisor, err := advisory.NewOpenAIAdvisorFromEnv()
	if err != nil {
		// Enhancement is optional; the pipeline degrades to raw calculations.
		log.Printf("Advisory service not configured: %v", err)
	} else {
		advisor = openaiAdvisor
	}

	changeOrderUseCase := usecase.NewChangeOrderUseCase(
		orderRepo,
		depositRepo,
		gateway,
		usecase.NewCostEnhancer(advisor),
		rules,
	)
	webhookUseCase := usecase.NewPaymentWebhookUseCase(orderRepo, depositRepo)

	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(webhookUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChangeOrderRoutes(v1, changeOrderHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
