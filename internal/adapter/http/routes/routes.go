package routes

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "assistec_quotes/docs" // swag-generated API docs
	"assistec_quotes/internal/adapter/http/handlers"
	"assistec_quotes/internal/adapter/persistence/repository"
	"assistec_quotes/internal/infrastructure/database"
	"assistec_quotes/internal/infrastructure/payments"
	"assistec_quotes/internal/infrastructure/renderer"
	"assistec_quotes/internal/usecase"
	"assistec_quotes/internal/usecase/interfaces"
	"assistec_quotes/pkg/logger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger.Setup(logger.Config{
		Env:   os.Getenv("APP_ENV"),
		Level: os.Getenv("LOG_LEVEL"),
	})

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	approvalRepo := repository.NewApprovalDynamoRepository(ddb)
	paymentRepo := repository.NewQuotePaymentDynamoRepository(ddb)

	artifactStore := renderer.NewS3ArtifactStore(database.ConnectS3())
	quoteRenderer := renderer.NewMarotoQuoteRenderer(artifactStore)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, approvalRepo, quoteRenderer)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, approvalRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, paymentHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
