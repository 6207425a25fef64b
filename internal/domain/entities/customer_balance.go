package entities

import "time"

// BalanceStatus represents the collection state of an outstanding balance.
//
// Open states ("pending", "overdue") are owned by the upstream collection
// process; this service only ever transitions a record to resolved when a
// payment clears the full outstanding amount.

type BalanceStatus string

const (
	BalanceStatusPending  BalanceStatus = "pending"
	BalanceStatusOverdue  BalanceStatus = "overdue"
	BalanceStatusResolved BalanceStatus = "resolved"
)

// CustomerBalance is one policy's outstanding-balance entry for one billing
// month, maintained in the customer_balances table.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A policy number can appear on several records at once (one per assigned
// month). Well-formed data has at most one record per (policy_number,
// assigned_month) pair, but the store does not enforce it and the selection
// logic must tolerate violations.

type CustomerBalance struct {
	ID              string        `json:"id"`
	PolicyNumber    string        `json:"policy_number"`
	HolderName      string        `json:"holder_name"`
	Email           string        `json:"email"`
	AmountDue       float64       `json:"amount_due"`
	Status          BalanceStatus `json:"status"`
	AssignedMonth   string        `json:"assigned_month"` // "MMM-YY", e.g. "Jan-25"
	LastContactDate time.Time     `json:"last_contact_date"`
}
