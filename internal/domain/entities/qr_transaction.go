package entities

import "time"

// QRVariant distinguishes how a QR payment request was generated.
//
//   - "quick": ad-hoc QR with only a policy number, no customer record backing it
//   - "customer-detail": QR generated from a full customer profile

type QRVariant string

const (
	QRVariantQuick          QRVariant = "quick"
	QRVariantCustomerDetail QRVariant = "customer-detail"
)

// QRTransactionStatus is the settlement state of a QR payment request.
// Transitions are one-way: pending -> paid. A paid transaction is never
// reverted by this service.

type QRTransactionStatus string

const (
	QRTransactionStatusPending QRTransactionStatus = "pending"
	QRTransactionStatusPaid    QRTransactionStatus = "paid"
)

// QRTransaction is a promotional QR-originated payment request persisted in
// the qr_transactions table.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Well-formed data has at most one pending transaction per policy number; when
// multiples exist the matcher picks the most recently created one.
//
// RawPayload keeps the QR payload string that was encoded into the image, so a
// callback that carries the payload back can be matched even without a policy
// number. PaymentSnapshot stores the serialized callback body at settlement
// time for forensic replay.

type QRTransaction struct {
	ID               string              `json:"id"`
	PolicyNumber     string              `json:"policy_number"`
	Variant          QRVariant           `json:"variant"`
	Status           QRTransactionStatus `json:"status"`
	CustomerName     string              `json:"customer_name"`
	CustomerEmail    string              `json:"customer_email"`
	AgentName        string              `json:"agent_name"`
	AgentEmail       string              `json:"agent_email"`
	LineOfBusiness   string              `json:"line_of_business"`
	CreatedAt        time.Time           `json:"created_at"`
	RawPayload       string              `json:"raw_payload,omitempty"`
	PaidAt           time.Time           `json:"paid_at"`
	PaymentReference string              `json:"payment_reference,omitempty"`
	PaymentAmount    float64             `json:"payment_amount,omitempty"`
	PaymentSnapshot  string              `json:"payment_snapshot,omitempty"`
}
