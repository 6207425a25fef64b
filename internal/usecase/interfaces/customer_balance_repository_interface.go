package interfaces

import (
	"context"
	"time"

	"polipay/internal/domain/entities"
)

// CustomerBalancePatch is the single balance update issued after a payment is
// applied. The store owns every other attribute of the record.
type CustomerBalancePatch struct {
	AmountDue       float64
	Status          entities.BalanceStatus
	LastContactDate time.Time
}

// ICustomerBalanceRepository abstracts persistence for CustomerBalance.
//
// The callback pipeline only needs to:
//   - fetch the full balance set so the selector can match policy numbers
//   - patch amount/status/last-contact-date on the record a payment applied to

type ICustomerBalanceRepository interface {
	List(ctx context.Context) ([]entities.CustomerBalance, error)
	UpdateBalance(ctx context.Context, id string, patch CustomerBalancePatch) (entities.CustomerBalance, error)
}
