package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	if got := e.Error(); got != "INVALID_REQUEST: Invalid request body" {
		t.Fatalf("unexpected error string: %q", got)
	}

	cause := errors.New("unexpected EOF")
	wrapped := NewDomainError("INVALID_REQUEST", "Invalid request body", cause, http.StatusBadRequest)
	if got := wrapped.Error(); got != "INVALID_REQUEST: Invalid request body: unexpected EOF" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	e := NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing required fields: paymentStatusCode and transactionReference", http.StatusBadRequest)
	body := e.ToHTTPError()
	if body.Error != e.Message {
		t.Fatalf("expected %q, got %q", e.Message, body.Error)
	}
}
