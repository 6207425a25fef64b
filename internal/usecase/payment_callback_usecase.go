package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"polipay/internal/domain/entities"
	"polipay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PaymentStatusCodeSuccess is the single gateway status code that represents
// a completed payment. Every other code acknowledges without reconciling.
const PaymentStatusCodeSuccess = "ACSP"

// CallbackOutcome labels how a callback was handled, for logs and metrics.
// The HTTP response is a success acknowledgment in every case.
type CallbackOutcome string

const (
	CallbackOutcomeReconciled    CallbackOutcome = "reconciled"
	CallbackOutcomeQuickQR       CallbackOutcome = "quick_qr"
	CallbackOutcomeSkippedStatus CallbackOutcome = "skipped_status"
	CallbackOutcomeSkippedNoBill CallbackOutcome = "skipped_no_bill_number"
	CallbackOutcomeNoMatch       CallbackOutcome = "no_match"
	CallbackOutcomeDuplicate     CallbackOutcome = "duplicate"
	CallbackOutcomeFailed        CallbackOutcome = "failed"
)

// CallbackResult reports the internal outcome of one processed callback.
type CallbackResult struct {
	Outcome        CallbackOutcome
	Reconciliation *ReconciliationOutcome
	QRSettlement   *QRSettlement
}

// IPaymentCallbackUseCase processes validated gateway callbacks.
//
// Process never returns an error: the gateway retries any non-success
// response indefinitely, so every internal failure is absorbed here and left
// in the logs and the audit trail.

type IPaymentCallbackUseCase interface {
	Process(ctx context.Context, cb entities.PaymentCallback) CallbackResult
}

type PaymentCallbackUseCase struct {
	reconciler IReconciliationUseCase
	qr         IQRSettlementUseCase
	logRepo    interfaces.IPaymentLogRepository
}

var _ IPaymentCallbackUseCase = (*PaymentCallbackUseCase)(nil)

func NewPaymentCallbackUseCase(reconciler IReconciliationUseCase, qr IQRSettlementUseCase, logRepo interfaces.IPaymentLogRepository) *PaymentCallbackUseCase {
	return &PaymentCallbackUseCase{reconciler: reconciler, qr: qr, logRepo: logRepo}
}

// Process runs the QR branch and the balance branch for one callback. The two
// branches are independent: a missing QR transaction does not block
// reconciliation and vice versa. A payment that settles a QR transaction but
// has no balance record is the quick-QR case and gets a degraded audit entry
// built from the QR fields.
func (u *PaymentCallbackUseCase) Process(ctx context.Context, cb entities.PaymentCallback) CallbackResult {
	log.Printf("[callback][usecase] process start status_code=%s txn_ref=%s bill_number=%q",
		cb.PaymentStatusCode, cb.TransactionReference, cb.BillNumber)

	if cb.PaymentStatusCode != PaymentStatusCodeSuccess {
		log.Printf("[callback][usecase] non-success status acknowledged status_code=%s txn_ref=%s", cb.PaymentStatusCode, cb.TransactionReference)
		return CallbackResult{Outcome: CallbackOutcomeSkippedStatus}
	}

	billNumber := strings.TrimSpace(cb.BillNumber)
	if billNumber == "" {
		log.Printf("[callback][usecase] no bill number, nothing to reconcile txn_ref=%s", cb.TransactionReference)
		return CallbackResult{Outcome: CallbackOutcomeSkippedNoBill}
	}
	policyNumber := entities.NormalizePolicyNumber(billNumber)

	meta := PaymentMeta{
		TransactionReference: cb.TransactionReference,
		EndToEndReference:    cb.EndToEndReference,
		PaymentStatusCode:    cb.PaymentStatusCode,
		Amount:               cb.Amount,
		CallbackSnapshot:     string(cb.Raw),
	}

	settlement, qrErr := u.qr.MatchAndSettle(ctx, policyNumber, meta)
	if qrErr != nil && !errors.Is(qrErr, ErrQRTransactionNotFound) {
		log.Printf("[callback][usecase] qr branch failed policy_number=%s err=%v", policyNumber, qrErr)
	}

	outcome, recErr := u.reconciler.ApplyPayment(ctx, billNumber, cb.Amount, meta)
	switch {
	case recErr == nil:
		result := CallbackResult{Outcome: CallbackOutcomeReconciled, Reconciliation: &outcome}
		if qrErr == nil {
			result.QRSettlement = &settlement
		}
		return result

	case errors.Is(recErr, ErrBalanceRecordNotFound):
		if qrErr == nil {
			u.logQuickQRPayment(ctx, policyNumber, settlement.Transaction, meta)
			return CallbackResult{Outcome: CallbackOutcomeQuickQR, QRSettlement: &settlement}
		}
		log.Printf("[callback][usecase] no balance record and no qr transaction policy_number=%s txn_ref=%s", policyNumber, cb.TransactionReference)
		return CallbackResult{Outcome: CallbackOutcomeNoMatch}

	case errors.Is(recErr, ErrDuplicatePayment):
		return CallbackResult{Outcome: CallbackOutcomeDuplicate}

	default:
		log.Printf("[callback][usecase] balance branch failed policy_number=%s err=%v", policyNumber, recErr)
		return CallbackResult{Outcome: CallbackOutcomeFailed}
	}
}

// logQuickQRPayment writes the degraded audit entry for a payment that only
// settled a QR transaction: no customer link and both balances zero.
func (u *PaymentCallbackUseCase) logQuickQRPayment(ctx context.Context, policyNumber string, txn entities.QRTransaction, meta PaymentMeta) {
	entry := entities.PaymentLog{
		ID:                   uuid.NewString(),
		PolicyNumber:         policyNumber,
		TransactionReference: meta.TransactionReference,
		EndToEndReference:    meta.EndToEndReference,
		AmountApplied:        parseLenientAmount(meta.Amount),
		PaymentStatusCode:    meta.PaymentStatusCode,
		SelectionReason:      entities.SelectionReasonQuickQRPayment,
		CreatedAt:            time.Now().UTC(),
	}
	if _, err := u.logRepo.Create(ctx, entry); err != nil {
		log.Printf("[callback][usecase] quick-qr payment log create failed qr_id=%s txn_ref=%s err=%v", txn.ID, meta.TransactionReference, err)
		return
	}
	log.Printf("[callback][usecase] quick-qr payment logged qr_id=%s policy_number=%s", txn.ID, policyNumber)
}
