package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"polipay/internal/domain/entities"
	"polipay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPolicyNumber   = errors.New("invalid policy number")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrBalanceRecordNotFound = errors.New("balance record not found")
	ErrDuplicatePayment      = errors.New("payment already applied for this transaction reference")
)

// PaymentMeta carries the payer-supplied identifiers of one callback through
// the pipeline. RawQRPayload is only set by callers that hold the original QR
// payload string; the webhook path leaves it empty. CallbackSnapshot is the
// serialized callback body stamped on a settled QR transaction.
type PaymentMeta struct {
	TransactionReference string
	EndToEndReference    string
	PaymentStatusCode    string
	Amount               string
	RawQRPayload         string
	CallbackSnapshot     string
}

// BalanceSelection is the audited result of picking one balance record among
// the candidates matching a policy number.
type BalanceSelection struct {
	Record       entities.CustomerBalance
	Reason       entities.SelectionReason
	Candidates   int
	Alternatives []entities.CustomerBalance
}

// ReconciliationOutcome summarizes one applied payment.
type ReconciliationOutcome struct {
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	OldBalance      float64
	NewBalance      float64
	AmountApplied   float64
	FullyPaid       bool
	AssignedMonth   string
	SelectionReason entities.SelectionReason
	CandidateCount  int
}

// IReconciliationUseCase applies a gateway payment to the outstanding balance
// of the policy it references.

type IReconciliationUseCase interface {
	ApplyPayment(ctx context.Context, policyNumber, amount string, meta PaymentMeta) (ReconciliationOutcome, error)
}

type ReconciliationUseCase struct {
	balanceRepo interfaces.ICustomerBalanceRepository
	logRepo     interfaces.IPaymentLogRepository
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(balanceRepo interfaces.ICustomerBalanceRepository, logRepo interfaces.IPaymentLogRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{balanceRepo: balanceRepo, logRepo: logRepo}
}

// ApplyPayment normalizes the policy number, selects the target balance
// record, clamps the new balance at zero and persists the update plus an
// audit entry.
//
// Ordering matters: the balance update is the primary mutation and aborts the
// operation on failure, while the audit entry is written after it on a
// best-effort basis and never rolls the update back.
func (u *ReconciliationUseCase) ApplyPayment(ctx context.Context, policyNumber, amount string, meta PaymentMeta) (ReconciliationOutcome, error) {
	policyNumber = strings.TrimSpace(policyNumber)
	if policyNumber == "" {
		return ReconciliationOutcome{}, ErrInvalidPolicyNumber
	}
	normalized := entities.NormalizePolicyNumber(policyNumber)
	log.Printf("[reconcile][usecase] apply start policy_number=%s txn_ref=%s amount=%q", normalized, meta.TransactionReference, amount)

	applied, err := parsePaymentAmount(amount)
	if err != nil {
		log.Printf("[reconcile][usecase] invalid amount policy_number=%s amount=%q err=%v", normalized, amount, err)
		return ReconciliationOutcome{}, ErrInvalidPaymentAmount
	}

	// Duplicate-delivery guard: gateways retry webhooks with the same
	// transaction reference, and a second application would reduce the
	// balance again.
	if meta.TransactionReference != "" {
		exists, err := u.logRepo.ExistsByTransactionReference(ctx, meta.TransactionReference, normalized)
		if err != nil {
			log.Printf("[reconcile][usecase] duplicate check failed policy_number=%s txn_ref=%s err=%v", normalized, meta.TransactionReference, err)
			return ReconciliationOutcome{}, err
		}
		if exists {
			log.Printf("[reconcile][usecase] duplicate payment skipped policy_number=%s txn_ref=%s", normalized, meta.TransactionReference)
			return ReconciliationOutcome{}, ErrDuplicatePayment
		}
	}

	sel, err := u.SelectBalanceRecord(ctx, normalized)
	if err != nil {
		return ReconciliationOutcome{}, err
	}
	log.Printf("[reconcile][usecase] record selected policy_number=%s record_id=%s reason=%s candidates=%d",
		normalized, sel.Record.ID, sel.Reason, sel.Candidates)

	oldBalance := sel.Record.AmountDue
	newBalance := oldBalance - applied
	if newBalance < 0 {
		// Overpayment is absorbed; balances never go negative.
		newBalance = 0
	}
	status := sel.Record.Status
	if newBalance == 0 {
		status = entities.BalanceStatusResolved
	}

	updated, err := u.balanceRepo.UpdateBalance(ctx, sel.Record.ID, interfaces.CustomerBalancePatch{
		AmountDue:       newBalance,
		Status:          status,
		LastContactDate: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[reconcile][usecase] balance update failed record_id=%s err=%v", sel.Record.ID, err)
		return ReconciliationOutcome{}, err
	}
	if updated.ID == "" {
		log.Printf("[reconcile][usecase] balance record disappeared before update record_id=%s", sel.Record.ID)
		return ReconciliationOutcome{}, ErrBalanceRecordNotFound
	}

	entry := entities.PaymentLog{
		ID:                   uuid.NewString(),
		CustomerID:           sel.Record.ID,
		PolicyNumber:         normalized,
		TransactionReference: meta.TransactionReference,
		EndToEndReference:    meta.EndToEndReference,
		AmountApplied:        applied,
		OldBalance:           oldBalance,
		NewBalance:           newBalance,
		PaymentStatusCode:    meta.PaymentStatusCode,
		SelectionReason:      sel.Reason,
		CandidateCount:       sel.Candidates,
		AlternativeCount:     len(sel.Alternatives),
		CreatedAt:            time.Now().UTC(),
	}
	if _, err := u.logRepo.Create(ctx, entry); err != nil {
		// Best effort: the balance write already succeeded and is not rolled back.
		log.Printf("[reconcile][usecase] payment log create failed policy_number=%s txn_ref=%s err=%v", normalized, meta.TransactionReference, err)
	}

	log.Printf("[reconcile][usecase] apply success policy_number=%s old_balance=%.2f new_balance=%.2f fully_paid=%t",
		normalized, oldBalance, newBalance, newBalance == 0)

	return ReconciliationOutcome{
		CustomerID:      sel.Record.ID,
		CustomerName:    sel.Record.HolderName,
		CustomerEmail:   sel.Record.Email,
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
		AmountApplied:   applied,
		FullyPaid:       newBalance == 0,
		AssignedMonth:   sel.Record.AssignedMonth,
		SelectionReason: sel.Reason,
		CandidateCount:  sel.Candidates,
	}, nil
}

// SelectBalanceRecord fetches the balance set and picks the record a payment
// for the given (already normalized) policy number applies to.
//
// Matching is exact and case-sensitive. With several matches the record with
// the chronologically latest assigned month wins; candidates without a
// parseable month stay in the candidate set but do not compete. When no
// candidate has a parseable month the first one in fetch order is used, and
// equal months also fall back to fetch order.
func (u *ReconciliationUseCase) SelectBalanceRecord(ctx context.Context, policyNumber string) (BalanceSelection, error) {
	records, err := u.balanceRepo.List(ctx)
	if err != nil {
		log.Printf("[reconcile][usecase] balance list failed err=%v", err)
		return BalanceSelection{}, err
	}

	var candidates []entities.CustomerBalance
	for _, rec := range records {
		if rec.PolicyNumber == policyNumber {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 0 {
		return BalanceSelection{}, ErrBalanceRecordNotFound
	}
	if len(candidates) == 1 {
		return BalanceSelection{
			Record:     candidates[0],
			Reason:     entities.SelectionReasonSingleRecord,
			Candidates: 1,
		}, nil
	}

	winner := -1
	var winnerMonth time.Time
	for i, c := range candidates {
		month, ok := entities.ParseBillingMonth(c.AssignedMonth)
		if !ok {
			continue
		}
		if winner == -1 || month.After(winnerMonth) {
			winner = i
			winnerMonth = month
		}
	}
	if winner == -1 {
		// No candidate has a parseable assigned month; fall back to fetch order.
		winner = 0
	}

	alternatives := make([]entities.CustomerBalance, 0, len(candidates)-1)
	for i, c := range candidates {
		if i != winner {
			alternatives = append(alternatives, c)
		}
	}

	return BalanceSelection{
		Record:       candidates[winner],
		Reason:       entities.SelectionReasonLatestMonth,
		Candidates:   len(candidates),
		Alternatives: alternatives,
	}, nil
}

// parsePaymentAmount validates the decimal-as-string amount field before any
// arithmetic touches a stored balance.
func parsePaymentAmount(amount string) (float64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, errors.New("amount is empty")
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("amount is not a finite number")
	}
	if v < 0 {
		return 0, errors.New("amount is negative")
	}
	return v, nil
}
