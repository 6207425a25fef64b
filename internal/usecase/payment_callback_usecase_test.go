package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"polipay/internal/domain/entities"
	mock_interfaces "polipay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type callbackFixture struct {
	usecase     *PaymentCallbackUseCase
	balanceRepo *mock_interfaces.MockICustomerBalanceRepository
	qrRepo      *mock_interfaces.MockIQRTransactionRepository
	logRepo     *mock_interfaces.MockIPaymentLogRepository
}

func newCallbackFixture(t *testing.T) callbackFixture {
	ctrl := gomock.NewController(t)
	balanceRepo := mock_interfaces.NewMockICustomerBalanceRepository(ctrl)
	qrRepo := mock_interfaces.NewMockIQRTransactionRepository(ctrl)
	logRepo := mock_interfaces.NewMockIPaymentLogRepository(ctrl)

	reconciler := NewReconciliationUseCase(balanceRepo, logRepo)
	qr := NewQRSettlementUseCase(qrRepo, nil)

	return callbackFixture{
		usecase:     NewPaymentCallbackUseCase(reconciler, qr, logRepo),
		balanceRepo: balanceRepo,
		qrRepo:      qrRepo,
		logRepo:     logRepo,
	}
}

func successCallback() entities.PaymentCallback {
	raw := json.RawMessage(`{"paymentStatusCode":"ACSP","transactionReference":23666,"billNumber":"0000001190","amount":"1.20"}`)
	return entities.PaymentCallback{
		PaymentStatusCode:    "ACSP",
		TransactionReference: "23666",
		Amount:               "1.20",
		BillNumber:           "0000001190",
		Raw:                  raw,
	}
}

func TestProcess_NonSuccessStatusSkipsEverything(t *testing.T) {
	// No repository expectations: a rejected payment must not touch the store.
	f := newCallbackFixture(t)

	cb := successCallback()
	cb.PaymentStatusCode = "RJCT"

	result := f.usecase.Process(context.Background(), cb)
	if result.Outcome != CallbackOutcomeSkippedStatus {
		t.Fatalf("expected %s, got %s", CallbackOutcomeSkippedStatus, result.Outcome)
	}
	if result.Reconciliation != nil || result.QRSettlement != nil {
		t.Fatalf("expected empty result details, got %+v", result)
	}
}

func TestProcess_MissingBillNumberSkipsEverything(t *testing.T) {
	f := newCallbackFixture(t)

	cb := successCallback()
	cb.BillNumber = "   "

	result := f.usecase.Process(context.Background(), cb)
	if result.Outcome != CallbackOutcomeSkippedNoBill {
		t.Fatalf("expected %s, got %s", CallbackOutcomeSkippedNoBill, result.Outcome)
	}
}

func TestProcess_ReconciledWithoutQRTransaction(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	record := entities.CustomerBalance{
		ID:           "cust-1",
		PolicyNumber: "0000001190",
		AmountDue:    5.00,
		Status:       entities.BalanceStatusPending,
	}

	f.qrRepo.EXPECT().List(ctx).Return(nil, nil)
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(false, nil)
	f.balanceRepo.EXPECT().List(ctx).Return([]entities.CustomerBalance{record}, nil)
	f.balanceRepo.EXPECT().UpdateBalance(ctx, "cust-1", gomock.Any()).Return(record, nil)
	f.logRepo.EXPECT().Create(ctx, gomock.Any()).Return(entities.PaymentLog{}, nil)

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeReconciled {
		t.Fatalf("expected %s, got %s", CallbackOutcomeReconciled, result.Outcome)
	}
	if result.Reconciliation == nil {
		t.Fatal("expected reconciliation details")
	}
	if result.Reconciliation.NewBalance != 3.80 {
		t.Fatalf("expected new balance 3.80, got %.2f", result.Reconciliation.NewBalance)
	}
	if result.QRSettlement != nil {
		t.Fatal("expected no settlement without a pending QR transaction")
	}
}

func TestProcess_ReconciledWithQRSettlement(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	record := entities.CustomerBalance{
		ID:           "cust-1",
		PolicyNumber: "0000001190",
		AmountDue:    1.20,
		Status:       entities.BalanceStatusPending,
	}
	txn := entities.QRTransaction{
		ID:           "qr-1",
		PolicyNumber: "0000001190",
		Status:       entities.QRTransactionStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	f.qrRepo.EXPECT().List(ctx).Return([]entities.QRTransaction{txn}, nil)
	f.qrRepo.EXPECT().MarkPaid(ctx, "qr-1", gomock.Any()).Return(txn, nil)
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(false, nil)
	f.balanceRepo.EXPECT().List(ctx).Return([]entities.CustomerBalance{record}, nil)
	f.balanceRepo.EXPECT().UpdateBalance(ctx, "cust-1", gomock.Any()).Return(record, nil)
	f.logRepo.EXPECT().Create(ctx, gomock.Any()).Return(entities.PaymentLog{}, nil)

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeReconciled {
		t.Fatalf("expected %s, got %s", CallbackOutcomeReconciled, result.Outcome)
	}
	if result.Reconciliation == nil || !result.Reconciliation.FullyPaid {
		t.Fatalf("expected fully paid reconciliation, got %+v", result.Reconciliation)
	}
	if result.QRSettlement == nil || !result.QRSettlement.WasSettled {
		t.Fatalf("expected QR settlement alongside reconciliation, got %+v", result.QRSettlement)
	}
}

func TestProcess_QuickQRPayment(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	txn := entities.QRTransaction{
		ID:           "qr-1",
		PolicyNumber: "0000001190",
		Variant:      entities.QRVariantQuick,
		Status:       entities.QRTransactionStatusPending,
	}

	f.qrRepo.EXPECT().List(ctx).Return([]entities.QRTransaction{txn}, nil)
	f.qrRepo.EXPECT().MarkPaid(ctx, "qr-1", gomock.Any()).Return(txn, nil)
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(false, nil)
	f.balanceRepo.EXPECT().List(ctx).Return(nil, nil)

	var entry entities.PaymentLog
	f.logRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e entities.PaymentLog) (entities.PaymentLog, error) {
			entry = e
			return e, nil
		})

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeQuickQR {
		t.Fatalf("expected %s, got %s", CallbackOutcomeQuickQR, result.Outcome)
	}
	if result.QRSettlement == nil || result.QRSettlement.Transaction.ID != "qr-1" {
		t.Fatalf("expected settlement details, got %+v", result.QRSettlement)
	}
	if entry.SelectionReason != entities.SelectionReasonQuickQRPayment {
		t.Fatalf("expected selection reason %s, got %s", entities.SelectionReasonQuickQRPayment, entry.SelectionReason)
	}
	if entry.CustomerID != "" {
		t.Fatalf("expected no customer link on quick QR entry, got %q", entry.CustomerID)
	}
	if entry.OldBalance != 0 || entry.NewBalance != 0 {
		t.Fatalf("expected zero balances on quick QR entry, got %+v", entry)
	}
	if entry.AmountApplied != 1.20 {
		t.Fatalf("expected applied amount 1.20, got %.2f", entry.AmountApplied)
	}
}

func TestProcess_NoMatchAnywhere(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	f.qrRepo.EXPECT().List(ctx).Return(nil, nil)
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(false, nil)
	f.balanceRepo.EXPECT().List(ctx).Return(nil, nil)

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeNoMatch {
		t.Fatalf("expected %s, got %s", CallbackOutcomeNoMatch, result.Outcome)
	}
}

func TestProcess_DuplicateDelivery(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	f.qrRepo.EXPECT().List(ctx).Return(nil, nil)
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(true, nil)

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeDuplicate {
		t.Fatalf("expected %s, got %s", CallbackOutcomeDuplicate, result.Outcome)
	}
}

func TestProcess_StoreFailureIsAbsorbed(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	f.qrRepo.EXPECT().List(ctx).Return(nil, errors.New("scan failed"))
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(false, errors.New("query failed"))

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeFailed {
		t.Fatalf("expected %s, got %s", CallbackOutcomeFailed, result.Outcome)
	}
}

func TestProcess_QRFailureDoesNotBlockReconciliation(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	record := entities.CustomerBalance{
		ID:           "cust-1",
		PolicyNumber: "0000001190",
		AmountDue:    5.00,
		Status:       entities.BalanceStatusPending,
	}

	f.qrRepo.EXPECT().List(ctx).Return(nil, errors.New("scan failed"))
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "0000001190").Return(false, nil)
	f.balanceRepo.EXPECT().List(ctx).Return([]entities.CustomerBalance{record}, nil)
	f.balanceRepo.EXPECT().UpdateBalance(ctx, "cust-1", gomock.Any()).Return(record, nil)
	f.logRepo.EXPECT().Create(ctx, gomock.Any()).Return(entities.PaymentLog{}, nil)

	result := f.usecase.Process(ctx, successCallback())
	if result.Outcome != CallbackOutcomeReconciled {
		t.Fatalf("expected %s, got %s", CallbackOutcomeReconciled, result.Outcome)
	}
	if result.QRSettlement != nil {
		t.Fatal("expected no settlement details when the QR branch failed")
	}
}

func TestProcess_SanitizedBillNumberMatchesStoredPolicy(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()

	record := entities.CustomerBalance{
		ID:           "cust-1",
		PolicyNumber: "LIFE/0001190/25",
		AmountDue:    5.00,
		Status:       entities.BalanceStatusPending,
	}

	f.qrRepo.EXPECT().List(ctx).Return(nil, nil)
	f.logRepo.EXPECT().ExistsByTransactionReference(ctx, "23666", "LIFE/0001190/25").Return(false, nil)
	f.balanceRepo.EXPECT().List(ctx).Return([]entities.CustomerBalance{record}, nil)
	f.balanceRepo.EXPECT().UpdateBalance(ctx, "cust-1", gomock.Any()).Return(record, nil)
	f.logRepo.EXPECT().Create(ctx, gomock.Any()).Return(entities.PaymentLog{}, nil)

	cb := successCallback()
	cb.BillNumber = "LIFE.0001190.25"

	result := f.usecase.Process(ctx, cb)
	if result.Outcome != CallbackOutcomeReconciled {
		t.Fatalf("expected %s, got %s", CallbackOutcomeReconciled, result.Outcome)
	}
}
