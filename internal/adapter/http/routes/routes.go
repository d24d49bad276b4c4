package routes

import (
	"log"
	"os"
	"strconv"

	_ "floorcraft/docs" // This will be auto-generated
	"floorcraft/internal/adapter/http/handlers"
	repository2 "floorcraft/internal/adapter/persistence/repository"
	"floorcraft/internal/infrastructure/database"
	"floorcraft/internal/infrastructure/notify"
	"floorcraft/internal/infrastructure/payments"
	"floorcraft/internal/usecase"
	"floorcraft/internal/usecase/interfaces"

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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	var notifier interfaces.IEstimateNotifier
	webhook, err := notify.NewWebhookNotifier(os.Getenv("ESTIMATE_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Estimate notifier not configured: %v", err)
	} else {
		notifier = webhook
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	projectUseCase := usecase.NewProjectUseCase(projectRepo, catalogRepo, notifier)
	paymentUseCase := usecase.NewPaymentUseCase(projectRepo, paymentGateway)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler, paymentHandler)
	addCatalogRoutes(v1, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
