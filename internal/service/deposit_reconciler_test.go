package service

import (
	"context"
	"math/big"
	"testing"
	"time"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"
	"eth-hot-wallet/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerTestDeps struct {
	svc         *DepositReconcilerImpl
	addressRepo *mocks.MockAddressRepository
	ledger      *mocks.MockTransactionLedger
	gateway     *mocks.MockChainGateway
	marks       *mocks.MockDepositMarkStore
	ctrl        *gomock.Controller
}

func setupDepositReconciler(t *testing.T) *reconcilerTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconcilerTestDeps{
		addressRepo: mocks.NewMockAddressRepository(ctrl),
		ledger:      mocks.NewMockTransactionLedger(ctrl),
		gateway:     mocks.NewMockChainGateway(ctrl),
		marks:       mocks.NewMockDepositMarkStore(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewDepositReconciler(
		d.addressRepo, d.ledger, d.gateway, d.marks,
		NewWorkerPool(4), testParams(), zerolog.Nop(),
	)
	return d
}

// waitDone fails the test if the signal does not arrive in time.
func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event processing")
	}
}

func TestDepositReconciler_ConfirmedDeposit(t *testing.T) {
	d := setupDepositReconciler(t)
	defer d.svc.Close()

	accountID := uuid.New()
	events := make(chan ports.DepositEvent, 1)
	done := make(chan struct{})

	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), "0xaddr").Return((<-chan ports.DepositEvent)(events), nil)
	d.marks.EXPECT().Seen(gomock.Any(), "0xhash").Return(false, nil)
	d.gateway.EXPECT().GetTransaction(gomock.Any(), "0xhash").
		Return(&ports.ChainTransaction{Amount: big.NewInt(777)}, nil)
	d.gateway.EXPECT().GetReceipt(gomock.Any(), "0xhash").
		Return(&ports.ChainReceipt{Success: true, GasUsed: big.NewInt(21000)}, nil)

	var recorded *domain.Transaction
	d.ledger.EXPECT().UpsertByHash(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			recorded = txn
			return txn, nil
		})
	d.marks.EXPECT().Mark(gomock.Any(), "0xhash", depositMarkTTL).DoAndReturn(
		func(context.Context, string, time.Duration) error {
			close(done)
			return nil
		})

	require.NoError(t, d.svc.Watch(accountID, "0xaddr"))
	events <- ports.DepositEvent{Hash: "0xhash"}
	waitDone(t, done)

	assert.Equal(t, "0xhash", recorded.Hash)
	assert.Equal(t, domain.TransactionTypeDeposit, recorded.Type)
	assert.Equal(t, domain.TransactionStatusConfirmed, recorded.Status)
	assert.Equal(t, big.NewInt(777), recorded.Amount)
	assert.Equal(t, big.NewInt(0), recorded.Fee, "deposits never carry a fee")
	assert.Equal(t, accountID, recorded.AccountID)
	assert.Equal(t, "ETH", recorded.Token)
	assert.Equal(t, "0xaddr", recorded.Destination)
}

func TestDepositReconciler_NoReceiptMeansPending(t *testing.T) {
	d := setupDepositReconciler(t)
	defer d.svc.Close()

	events := make(chan ports.DepositEvent, 1)
	done := make(chan struct{})

	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), "0xaddr").Return((<-chan ports.DepositEvent)(events), nil)
	d.marks.EXPECT().Seen(gomock.Any(), "0xhash").Return(false, nil)
	d.gateway.EXPECT().GetTransaction(gomock.Any(), "0xhash").
		Return(&ports.ChainTransaction{Amount: big.NewInt(5)}, nil)
	d.gateway.EXPECT().GetReceipt(gomock.Any(), "0xhash").Return(nil, nil)

	var recorded *domain.Transaction
	d.ledger.EXPECT().UpsertByHash(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			recorded = txn
			close(done)
			return txn, nil
		})
	// A pending deposit is never marked settled.

	require.NoError(t, d.svc.Watch(uuid.New(), "0xaddr"))
	events <- ports.DepositEvent{Hash: "0xhash"}
	waitDone(t, done)

	assert.Equal(t, domain.TransactionStatusPending, recorded.Status)
}

func TestDepositReconciler_FailedReceipt(t *testing.T) {
	d := setupDepositReconciler(t)
	defer d.svc.Close()

	events := make(chan ports.DepositEvent, 1)
	done := make(chan struct{})

	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), "0xaddr").Return((<-chan ports.DepositEvent)(events), nil)
	d.marks.EXPECT().Seen(gomock.Any(), "0xhash").Return(false, nil)
	d.gateway.EXPECT().GetTransaction(gomock.Any(), "0xhash").
		Return(&ports.ChainTransaction{Amount: big.NewInt(5)}, nil)
	d.gateway.EXPECT().GetReceipt(gomock.Any(), "0xhash").
		Return(&ports.ChainReceipt{Success: false}, nil)

	var recorded *domain.Transaction
	d.ledger.EXPECT().UpsertByHash(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			recorded = txn
			close(done)
			return txn, nil
		})

	require.NoError(t, d.svc.Watch(uuid.New(), "0xaddr"))
	events <- ports.DepositEvent{Hash: "0xhash"}
	waitDone(t, done)

	assert.Equal(t, domain.TransactionStatusFailed, recorded.Status)
}

func TestDepositReconciler_SeenHashSkipsLedger(t *testing.T) {
	d := setupDepositReconciler(t)

	events := make(chan ports.DepositEvent, 1)
	done := make(chan struct{})

	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), "0xaddr").Return((<-chan ports.DepositEvent)(events), nil)
	d.marks.EXPECT().Seen(gomock.Any(), "0xhash").DoAndReturn(
		func(context.Context, string) (bool, error) {
			defer close(done)
			return true, nil
		})
	// No further calls: re-delivered settled hash is dropped.

	require.NoError(t, d.svc.Watch(uuid.New(), "0xaddr"))
	events <- ports.DepositEvent{Hash: "0xhash"}
	waitDone(t, done)
	d.svc.Close()
}

func TestDepositReconciler_UnknownTransactionDropped(t *testing.T) {
	d := setupDepositReconciler(t)

	events := make(chan ports.DepositEvent, 1)
	done := make(chan struct{})

	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), "0xaddr").Return((<-chan ports.DepositEvent)(events), nil)
	d.marks.EXPECT().Seen(gomock.Any(), "0xhash").Return(false, nil)
	d.gateway.EXPECT().GetTransaction(gomock.Any(), "0xhash").DoAndReturn(
		func(context.Context, string) (*ports.ChainTransaction, error) {
			defer close(done)
			return nil, nil
		})

	require.NoError(t, d.svc.Watch(uuid.New(), "0xaddr"))
	events <- ports.DepositEvent{Hash: "0xhash"}
	waitDone(t, done)
	d.svc.Close()
}

func TestDepositReconciler_WatchTwiceIsNoop(t *testing.T) {
	d := setupDepositReconciler(t)
	defer d.svc.Close()

	events := make(chan ports.DepositEvent)
	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), "0xaddr").
		Return((<-chan ports.DepositEvent)(events), nil).
		Times(1)

	accountID := uuid.New()
	require.NoError(t, d.svc.Watch(accountID, "0xaddr"))
	require.NoError(t, d.svc.Watch(accountID, "0xaddr"))
}

func TestDepositReconciler_Restore(t *testing.T) {
	d := setupDepositReconciler(t)
	defer d.svc.Close()

	ctx := context.Background()
	good := "0xgood"
	bad := "0xbad"
	rows := []domain.Address{
		{ID: uuid.New(), AccountID: uuid.New(), Address: &good},
		{ID: uuid.New(), AccountID: uuid.New(), Address: &bad},
		{ID: uuid.New(), AccountID: uuid.New()}, // pending, skipped
	}
	d.addressRepo.EXPECT().ListRegistered(ctx).Return(rows, nil)

	events := make(chan ports.DepositEvent)
	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), good).Return((<-chan ports.DepositEvent)(events), nil)
	d.gateway.EXPECT().SubscribeDeposits(gomock.Any(), bad).Return(nil, assert.AnError)

	failures, err := d.svc.Restore(ctx)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, bad, failures[0].Address)
	assert.Error(t, failures[0].Err)
}
