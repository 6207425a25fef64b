package interfaces

import (
	"context"
	"time"

	"polipay/internal/domain/entities"
)

// QRSettlementPatch is the update stamped on a pending QR transaction when a
// matching payment arrives. PaymentSnapshot carries the serialized callback
// body for forensic replay.
type QRSettlementPatch struct {
	PaidAt           time.Time
	PaymentReference string
	PaymentAmount    float64
	PaymentSnapshot  string
}

// IQRTransactionRepository abstracts persistence for QRTransaction.

type IQRTransactionRepository interface {
	List(ctx context.Context) ([]entities.QRTransaction, error)
	MarkPaid(ctx context.Context, id string, patch QRSettlementPatch) (entities.QRTransaction, error)
}
