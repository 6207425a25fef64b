package handlers

import (
	"net/http"
	"time"

	response "polipay/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Health godoc
//
//	@Summary  Liveness probe
//	@Tags     ops
//	@Produce  json
//	@Success  200  {object}  response.HealthResponse
//	@Router   /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewHealth(time.Now()))
}
