package routes

import (
	"polipay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathResponseCallback = "/response-callback"
)

func addPaymentRoutes(rg *gin.RouterGroup, callbackHandler *handlers.PaymentCallbackHandler) {
	rg.POST(PathResponseCallback, callbackHandler.ReceiveCallback)
}
