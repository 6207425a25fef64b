package entities

import "time"

// SelectionReason records why a particular balance record was chosen for a
// payment, for audit purposes.
//
//   - single_record: exactly one candidate matched the policy number
//   - latest_month_priority: several candidates matched; the chronologically
//     latest assigned month won
//   - quick_qr_payment: no balance record existed, the payment settled a
//     quick-QR transaction only

type SelectionReason string

const (
	SelectionReasonSingleRecord   SelectionReason = "single_record"
	SelectionReasonLatestMonth    SelectionReason = "latest_month_priority"
	SelectionReasonQuickQRPayment SelectionReason = "quick_qr_payment"
)

// PaymentLog is the immutable audit record of one applied payment, persisted
// in the payment_logs table. Entries are created exactly once per processed
// callback that reaches reconciliation and are never mutated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (transaction_reference-index): transaction_reference
//
// CustomerID is empty for quick-QR payments that have no backing customer
// record; OldBalance and NewBalance are both zero in that case.

type PaymentLog struct {
	ID                   string          `json:"id"`
	CustomerID           string          `json:"customer_id,omitempty"`
	PolicyNumber         string          `json:"policy_number"`
	TransactionReference string          `json:"transaction_reference"`
	EndToEndReference    string          `json:"end_to_end_reference,omitempty"`
	AmountApplied        float64         `json:"amount_applied"`
	OldBalance           float64         `json:"old_balance"`
	NewBalance           float64         `json:"new_balance"`
	PaymentStatusCode    string          `json:"payment_status_code"`
	SelectionReason      SelectionReason `json:"selection_reason"`
	CandidateCount       int             `json:"candidate_count"`
	AlternativeCount     int             `json:"alternative_count"`
	CreatedAt            time.Time       `json:"created_at"`
}
