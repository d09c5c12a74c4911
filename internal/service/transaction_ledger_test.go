package service

import (
	"context"
	"math/big"
	"testing"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc    *TransactionLedgerImpl
	txRepo *mocks.MockTransactionRepository
	ctrl   *gomock.Controller
}

func setupTransactionLedger(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		txRepo: mocks.NewMockTransactionRepository(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewTransactionLedger(d.txRepo, zerolog.Nop())
	return d
}

func TestTransactionLedger_UpsertByHash_FillsDefaults(t *testing.T) {
	d := setupTransactionLedger(t)
	ctx := context.Background()

	var passed *domain.Transaction
	d.txRepo.EXPECT().UpsertByHash(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			passed = txn
			return txn, nil
		})

	result, err := d.svc.UpsertByHash(ctx, &domain.Transaction{
		Hash:   "0xhash",
		Type:   domain.TransactionTypeDeposit,
		Status: domain.TransactionStatusConfirmed,
		Amount: big.NewInt(500),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, passed.ID, "missing id must be assigned")
	assert.False(t, passed.CreatedAt.IsZero())
	assert.False(t, passed.UpdatedAt.IsZero())
	assert.Equal(t, big.NewInt(0), passed.Fee, "missing fee must default to zero")
	assert.Equal(t, passed, result)
}

func TestTransactionLedger_UpsertByHash_RejectsPlaceholder(t *testing.T) {
	d := setupTransactionLedger(t)

	_, err := d.svc.UpsertByHash(context.Background(), &domain.Transaction{Hash: domain.PlaceholderHash})
	assertAppErrorCode(t, err, "SYS_001")

	_, err = d.svc.UpsertByHash(context.Background(), &domain.Transaction{Hash: ""})
	assertAppErrorCode(t, err, "SYS_001")
}

func TestTransactionLedger_UpsertByHash_ReturnsWinningRow(t *testing.T) {
	d := setupTransactionLedger(t)
	ctx := context.Background()

	// The repository reports that an earlier CONFIRMED row won the merge.
	winner := &domain.Transaction{
		Hash:   "0xhash",
		Status: domain.TransactionStatusConfirmed,
		Amount: big.NewInt(500),
	}
	d.txRepo.EXPECT().UpsertByHash(ctx, gomock.Any()).Return(winner, nil)

	result, err := d.svc.UpsertByHash(ctx, &domain.Transaction{
		Hash:   "0xhash",
		Status: domain.TransactionStatusPending,
		Amount: big.NewInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusConfirmed, result.Status)
}

func TestTransactionLedger_FindByHash_NotFound(t *testing.T) {
	d := setupTransactionLedger(t)
	ctx := context.Background()

	d.txRepo.EXPECT().GetByHash(ctx, "0xmissing").Return(nil, nil)

	_, err := d.svc.FindByHash(ctx, "0xmissing")
	assertAppErrorCode(t, err, "TXN_003")
}

func TestTransactionLedger_FindByID_Success(t *testing.T) {
	d := setupTransactionLedger(t)
	ctx := context.Background()
	id := uuid.New()

	d.txRepo.EXPECT().GetByID(ctx, id).Return(&domain.Transaction{ID: id}, nil)

	txn, err := d.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, txn.ID)
}

func TestTransactionLedger_ListByAccountAndToken_ClampsPaging(t *testing.T) {
	d := setupTransactionLedger(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.txRepo.EXPECT().ListByAccountAndToken(ctx, accountID, "ETH", 1, 50).
		Return([]domain.Transaction{}, nil)

	_, err := d.svc.ListByAccountAndToken(ctx, accountID, "ETH", 0, -1)
	require.NoError(t, err)
}
