package routes

import (
	"log"
	"net/http"
	"os"

	_ "polipay/docs"
	"polipay/internal/adapter/http/handlers"
	repository2 "polipay/internal/adapter/persistence/repository"
	"polipay/internal/infrastructure/database"
	"polipay/internal/infrastructure/email"
	"polipay/internal/usecase"
	"polipay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	balanceRepo := repository2.NewCustomerBalanceDynamoRepository(ddb)
	qrRepo := repository2.NewQRTransactionDynamoRepository(ddb)
	paymentLogRepo := repository2.NewPaymentLogDynamoRepository(ddb)

	// The notification step is capability-gated: without a configured sender
	// the pipeline runs identically, minus the confirmation emails.
	var mailer interfaces.IEmailSender
	if isEmailEnabled() {
		smtpSender, err := email.NewSMTPSenderFromEnv()
		if err != nil {
			log.Printf("Email sender not configured: %v", err)
		} else {
			mailer = smtpSender
		}
	}

	reconciler := usecase.NewReconciliationUseCase(balanceRepo, paymentLogRepo)
	qrSettlement := usecase.NewQRSettlementUseCase(qrRepo, mailer)
	callbackUseCase := usecase.NewPaymentCallbackUseCase(reconciler, qrSettlement, paymentLogRepo)

	callbackHandler := handlers.NewPaymentCallbackHandler(callbackUseCase)

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/payment/v1")
	addPaymentRoutes(api, callbackHandler)

	router.NoRoute(notFoundHandler)
}

func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isEmailEnabled() bool {
	switch os.Getenv("EMAIL_ENABLED") {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
