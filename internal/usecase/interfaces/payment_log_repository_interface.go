package interfaces

import (
	"context"

	"polipay/internal/domain/entities"
)

// IPaymentLogRepository abstracts persistence for the payment audit trail.
//
// ExistsByTransactionReference backs the duplicate-delivery guard: webhook
// retries reuse the gateway transaction reference, so a prior log entry for
// the same (reference, policy number) pair means the payment was applied.

type IPaymentLogRepository interface {
	Create(ctx context.Context, entry entities.PaymentLog) (entities.PaymentLog, error)
	ExistsByTransactionReference(ctx context.Context, transactionReference, policyNumber string) (bool, error)
}
