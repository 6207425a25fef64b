package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"polipay/internal/domain/entities"
)

// PaymentCallbackRequest is the gateway webhook payload.
//
// transactionReference arrives as an arbitrary JSON scalar (some gateways
// send it quoted, some as a bare number), so it is kept raw and resolved on
// demand. The label fields at the bottom are accepted and ignored.

type PaymentCallbackRequest struct {
	PaymentStatusCode    string          `json:"paymentStatusCode"`
	EndToEndReference    string          `json:"endToEndReference"`
	Amount               string          `json:"amount"`
	TransactionReference json.RawMessage `json:"transactionReference"`
	BillNumber           string          `json:"billNumber"`
	MobileNumber         string          `json:"mobileNumber"`

	PayerName string `json:"payerName"`
	BankCode  string `json:"bankCode"`
	Remarks   string `json:"remarks"`
}

// ResolveTransactionReference renders the reference scalar as a string.
// Returns "" for absent, null, empty or non-scalar values.
func (r PaymentCallbackRequest) ResolveTransactionReference() string {
	raw := strings.TrimSpace(string(r.TransactionReference))
	if raw == "" || raw == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal([]byte(raw), &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal([]byte(raw), &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// HasRequiredFields reports whether the two mandatory callback fields are
// present and non-empty.
func (r PaymentCallbackRequest) HasRequiredFields() bool {
	return strings.TrimSpace(r.PaymentStatusCode) != "" && r.ResolveTransactionReference() != ""
}

// ToPaymentCallback converts the request into the domain callback, attaching
// the raw body so the settlement path can keep a byte-exact snapshot.
func (r PaymentCallbackRequest) ToPaymentCallback(raw json.RawMessage) entities.PaymentCallback {
	return entities.PaymentCallback{
		PaymentStatusCode:    strings.TrimSpace(r.PaymentStatusCode),
		TransactionReference: r.ResolveTransactionReference(),
		EndToEndReference:    strings.TrimSpace(r.EndToEndReference),
		Amount:               strings.TrimSpace(r.Amount),
		BillNumber:           strings.TrimSpace(r.BillNumber),
		MobileNumber:         strings.TrimSpace(r.MobileNumber),
		Raw:                  raw,
	}
}
