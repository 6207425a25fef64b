package entities

import "encoding/json"

// PaymentCallback is the validated gateway callback handed to the processing
// pipeline. BillNumber is the sanitized policy number as received; Amount is
// kept as the raw decimal string until the reconciler validates it.
//
// Raw preserves the original request body so the settled QR transaction can
// store a byte-exact snapshot of what the gateway sent.

type PaymentCallback struct {
	PaymentStatusCode    string
	TransactionReference string
	EndToEndReference    string
	Amount               string
	BillNumber           string
	MobileNumber         string
	Raw                  json.RawMessage
}
