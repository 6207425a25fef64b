package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"polipay/internal/adapter/http/handlers/mocks"
	"polipay/internal/domain/entities"
	"polipay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCallbackTestRouter(uc usecase.IPaymentCallbackUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPaymentCallbackHandler(uc)
	router.POST("/api/payment/v1/response-callback", handler.ReceiveCallback)
	return router
}

func postCallback(router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payment/v1/response-callback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReceiveCallback_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)

	body := []byte(`{"paymentStatusCode":"ACSP","transactionReference":23666,"billNumber":"0000001190","amount":"1.20"}`)

	uc.EXPECT().Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb entities.PaymentCallback) usecase.CallbackResult {
			if cb.PaymentStatusCode != "ACSP" {
				t.Fatalf("expected status code ACSP, got %q", cb.PaymentStatusCode)
			}
			if cb.TransactionReference != "23666" {
				t.Fatalf("expected numeric reference resolved to 23666, got %q", cb.TransactionReference)
			}
			if cb.BillNumber != "0000001190" || cb.Amount != "1.20" {
				t.Fatalf("unexpected callback fields: %+v", cb)
			}
			if string(cb.Raw) != string(body) {
				t.Fatalf("expected raw body snapshot, got %s", cb.Raw)
			}
			return usecase.CallbackResult{Outcome: usecase.CallbackOutcomeReconciled}
		})

	rec := postCallback(newCallbackTestRouter(uc), body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"message":"Callback received successfully"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestReceiveCallback_AlwaysAcksProcessedCallbacks(t *testing.T) {
	outcomes := []usecase.CallbackOutcome{
		usecase.CallbackOutcomeReconciled,
		usecase.CallbackOutcomeQuickQR,
		usecase.CallbackOutcomeSkippedStatus,
		usecase.CallbackOutcomeNoMatch,
		usecase.CallbackOutcomeDuplicate,
		usecase.CallbackOutcomeFailed,
	}

	for _, outcome := range outcomes {
		t.Run(string(outcome), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
			uc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(usecase.CallbackResult{Outcome: outcome})

			body := []byte(`{"paymentStatusCode":"RJCT","transactionReference":"23666"}`)
			rec := postCallback(newCallbackTestRouter(uc), body)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200 for outcome %s, got %d", outcome, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unexpected body: %v", err)
			}
			if resp["message"] != "Callback received successfully" {
				t.Fatalf("unexpected message: %q", resp["message"])
			}
		})
	}
}

func TestReceiveCallback_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no transaction reference", `{"paymentStatusCode":"ACSP","billNumber":"0000001190"}`},
		{"null transaction reference", `{"paymentStatusCode":"ACSP","transactionReference":null}`},
		{"no status code", `{"transactionReference":23666}`},
		{"blank status code", `{"paymentStatusCode":"  ","transactionReference":23666}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No Process expectation: validation rejects before the usecase runs.
			uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)

			rec := postCallback(newCallbackTestRouter(uc), []byte(tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
			if rec.Body.String() != `{"error":"Missing required fields: paymentStatusCode and transactionReference"}` {
				t.Fatalf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}

func TestReceiveCallback_InvalidBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"paymentStatusCode":`},
		{"empty body", ``},
		{"whitespace body", `   `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)

			rec := postCallback(newCallbackTestRouter(uc), []byte(tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
			if rec.Body.String() != `{"error":"Invalid request body"}` {
				t.Fatalf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}
