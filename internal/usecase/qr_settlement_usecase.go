package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"polipay/internal/domain/entities"
	"polipay/internal/usecase/interfaces"
)

var ErrQRTransactionNotFound = errors.New("qr transaction not found")

// QRSettlement is the result of matching a payment to a pending QR
// transaction and marking it paid.
type QRSettlement struct {
	Transaction entities.QRTransaction
	WasSettled  bool
}

// IQRSettlementUseCase settles pending QR-originated transactions against
// incoming payments.

type IQRSettlementUseCase interface {
	MatchAndSettle(ctx context.Context, policyNumber string, meta PaymentMeta) (QRSettlement, error)
}

type QRSettlementUseCase struct {
	repo   interfaces.IQRTransactionRepository
	mailer interfaces.IEmailSender // nil disables confirmation emails
}

var _ IQRSettlementUseCase = (*QRSettlementUseCase)(nil)

func NewQRSettlementUseCase(repo interfaces.IQRTransactionRepository, mailer interfaces.IEmailSender) *QRSettlementUseCase {
	return &QRSettlementUseCase{repo: repo, mailer: mailer}
}

// MatchAndSettle locates the pending QR transaction for a (normalized) policy
// number and transitions it to paid, stamping the payer reference, amount and
// a snapshot of the callback body.
//
// A payment without any pending QR transaction is the normal case for non-QR
// collections, so callers treat ErrQRTransactionNotFound as an expected
// outcome rather than a failure. Confirmation emails are dispatched after the
// settlement is persisted; their failure never affects the settled state.
func (u *QRSettlementUseCase) MatchAndSettle(ctx context.Context, policyNumber string, meta PaymentMeta) (QRSettlement, error) {
	policyNumber = strings.TrimSpace(policyNumber)
	log.Printf("[qr][usecase] match start policy_number=%s txn_ref=%s", policyNumber, meta.TransactionReference)

	transactions, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[qr][usecase] list failed err=%v", err)
		return QRSettlement{}, err
	}

	var pending []entities.QRTransaction
	for _, txn := range transactions {
		if txn.Status == entities.QRTransactionStatusPending && policyNumber != "" && txn.PolicyNumber == policyNumber {
			pending = append(pending, txn)
		}
	}
	if len(pending) == 0 && meta.RawQRPayload != "" {
		// Secondary match on the raw QR payload. Dormant on the webhook path,
		// which never carries the payload, but kept for callers that do.
		for _, txn := range transactions {
			if txn.Status == entities.QRTransactionStatusPending && txn.RawPayload == meta.RawQRPayload {
				pending = append(pending, txn)
			}
		}
	}
	if len(pending) == 0 {
		return QRSettlement{}, ErrQRTransactionNotFound
	}

	match := pending[0]
	for _, txn := range pending[1:] {
		if txn.CreatedAt.After(match.CreatedAt) {
			match = txn
		}
	}
	log.Printf("[qr][usecase] match found policy_number=%s qr_id=%s variant=%s pending=%d", policyNumber, match.ID, match.Variant, len(pending))

	amount := parseLenientAmount(meta.Amount)
	settled, err := u.repo.MarkPaid(ctx, match.ID, interfaces.QRSettlementPatch{
		PaidAt:           time.Now().UTC(),
		PaymentReference: meta.TransactionReference,
		PaymentAmount:    amount,
		PaymentSnapshot:  meta.CallbackSnapshot,
	})
	if err != nil {
		log.Printf("[qr][usecase] settle failed qr_id=%s err=%v", match.ID, err)
		return QRSettlement{}, err
	}
	if settled.ID == "" {
		// Lost a race: the transaction is no longer pending.
		log.Printf("[qr][usecase] transaction no longer pending qr_id=%s", match.ID)
		return QRSettlement{}, ErrQRTransactionNotFound
	}
	log.Printf("[qr][usecase] settle success qr_id=%s amount=%.2f", settled.ID, amount)

	u.dispatchConfirmations(ctx, settled, amount)

	return QRSettlement{Transaction: settled, WasSettled: true}, nil
}

func (u *QRSettlementUseCase) dispatchConfirmations(ctx context.Context, txn entities.QRTransaction, amount float64) {
	if u.mailer == nil {
		return
	}

	if txn.CustomerEmail != "" {
		msg := buildCustomerReceiptEmail(txn, amount)
		if id, err := u.mailer.Send(ctx, msg); err != nil {
			log.Printf("[qr][usecase] customer email failed qr_id=%s recipient=%s err=%v", txn.ID, txn.CustomerEmail, err)
		} else {
			log.Printf("[qr][usecase] customer email sent qr_id=%s message_id=%s", txn.ID, id)
		}
	}
	if txn.AgentEmail != "" {
		msg := buildAgentSettlementEmail(txn, amount)
		if id, err := u.mailer.Send(ctx, msg); err != nil {
			log.Printf("[qr][usecase] agent email failed qr_id=%s recipient=%s err=%v", txn.ID, txn.AgentEmail, err)
		} else {
			log.Printf("[qr][usecase] agent email sent qr_id=%s message_id=%s", txn.ID, id)
		}
	}
}

// parseLenientAmount is used where the amount is informational (QR stamps,
// degraded audit entries) rather than arithmetic input: bad values become 0
// instead of failing the settlement.
func parseLenientAmount(amount string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return 0
	}
	return v
}
