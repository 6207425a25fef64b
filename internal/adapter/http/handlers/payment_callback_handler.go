package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	request "polipay/internal/adapter/http/dto/request"
	response "polipay/internal/adapter/http/dto/response"
	"polipay/internal/usecase"
	"polipay/pkg"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callbacksReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polipay_callbacks_received_total",
		Help: "Total payment gateway callbacks received.",
	})
	callbackOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polipay_callback_outcomes_total",
		Help: "Processed payment callbacks by internal outcome.",
	}, []string{"outcome"})
)

var (
	errMissingCallbackFields = pkg.NewDomainErrorSimple(
		"MISSING_REQUIRED_FIELDS",
		"Missing required fields: paymentStatusCode and transactionReference",
		http.StatusBadRequest,
	)
	errInvalidCallbackBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
)

// PaymentCallbackHandler handles payment gateway webhook callbacks.
//
// Contract with the gateway: only a malformed request (missing required
// fields) gets a 400; every processable callback is acknowledged with 200 no
// matter what happens internally, because the gateway retries any failure
// response indefinitely.

type PaymentCallbackHandler struct {
	usecase usecase.IPaymentCallbackUseCase
}

func NewPaymentCallbackHandler(uc usecase.IPaymentCallbackUseCase) *PaymentCallbackHandler {
	return &PaymentCallbackHandler{usecase: uc}
}

// ReceiveCallback godoc
//
//	@Summary      Payment gateway response callback
//	@Description  Receives the gateway payment notification and reconciles it against outstanding balances and pending QR transactions.
//	@Tags         payment
//	@Accept       json
//	@Produce      json
//	@Param        payload  body      request.PaymentCallbackRequest  true  "Gateway callback payload"
//	@Success      200      {object}  response.CallbackAckResponse
//	@Failure      400      {object}  pkg.HTTPError
//	@Router       /api/payment/v1/response-callback [post]
func (h *PaymentCallbackHandler) ReceiveCallback(c *gin.Context) {
	callbacksReceivedTotal.Inc()

	raw, err := c.GetRawData()
	if err != nil || len(strings.TrimSpace(string(raw))) == 0 {
		log.Printf("[callback][handler] unreadable or empty body err=%v", err)
		c.JSON(errInvalidCallbackBody.HTTPStatus, errInvalidCallbackBody.ToHTTPError())
		return
	}

	var payload request.PaymentCallbackRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("[callback][handler] body unmarshal failed err=%v", err)
		c.JSON(errInvalidCallbackBody.HTTPStatus, errInvalidCallbackBody.ToHTTPError())
		return
	}
	if !payload.HasRequiredFields() {
		log.Printf("[callback][handler] missing required fields status_code=%q", payload.PaymentStatusCode)
		c.JSON(errMissingCallbackFields.HTTPStatus, errMissingCallbackFields.ToHTTPError())
		return
	}

	result := h.usecase.Process(c.Request.Context(), payload.ToPaymentCallback(raw))
	callbackOutcomesTotal.WithLabelValues(string(result.Outcome)).Inc()
	log.Printf("[callback][handler] processed txn_ref=%s outcome=%s", payload.ResolveTransactionReference(), result.Outcome)

	c.JSON(http.StatusOK, response.NewCallbackAck())
}
