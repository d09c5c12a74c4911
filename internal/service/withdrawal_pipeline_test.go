package service

import (
	"context"
	"math/big"
	"testing"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"
	"eth-hot-wallet/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pipelineTestDeps struct {
	svc      *WithdrawalPipelineImpl
	registry *mocks.MockAccountRegistry
	ledger   *mocks.MockTransactionLedger
	txRepo   *mocks.MockTransactionRepository
	gateway  *mocks.MockChainGateway
	ctrl     *gomock.Controller
}

func setupWithdrawalPipeline(t *testing.T) *pipelineTestDeps {
	ctrl := gomock.NewController(t)
	d := &pipelineTestDeps{
		registry: mocks.NewMockAccountRegistry(ctrl),
		ledger:   mocks.NewMockTransactionLedger(ctrl),
		txRepo:   mocks.NewMockTransactionRepository(ctrl),
		gateway:  mocks.NewMockChainGateway(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewWithdrawalPipeline(
		d.registry, d.ledger, d.txRepo, d.gateway,
		testParams(), "passphrase", zerolog.Nop(),
	)
	return d
}

func testCredential() *domain.SigningCredential {
	return &domain.SigningCredential{Address: "0xacct", PrivateKey: []byte{1, 2, 3}}
}

// ==================== Send: validation ====================

func TestWithdrawalPipeline_Send_InvalidSymbol(t *testing.T) {
	d := setupWithdrawalPipeline(t)

	_, err := d.svc.Send(context.Background(), "BTC", uuid.New(), "0xdest", "100")
	assertAppErrorCode(t, err, "TXN_001")
}

func TestWithdrawalPipeline_Send_InvalidAmount(t *testing.T) {
	d := setupWithdrawalPipeline(t)

	for _, amount := range []string{"", "abc", "0", "-5", "1.5"} {
		_, err := d.svc.Send(context.Background(), "ETH", uuid.New(), "0xdest", amount)
		assertAppErrorCode(t, err, "TXN_002")
	}
}

// ==================== Send: happy path ====================

func TestWithdrawalPipeline_Send_Success(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.registry.EXPECT().DecryptForSigning(ctx, accountID, "passphrase").Return(testCredential(), nil)
	d.gateway.EXPECT().BuildAndSign(ctx, gomock.Any(), "0xdest", big.NewInt(1000),
		testParams().TransferGasPrice, testParams().TransferGasLimit).
		Return("0xsigned", nil)

	var saves []domain.Transaction
	d.txRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			saves = append(saves, *txn)
			return nil
		}).Times(2)

	d.gateway.EXPECT().Broadcast(ctx, "0xsigned").Return("0xhash", nil)
	// Receipt not out yet; the sweeper settles it later.
	d.gateway.EXPECT().GetReceipt(ctx, "0xhash").Return(nil, nil)

	id, err := d.svc.Send(ctx, "ETH", accountID, "0xdest", "1000")
	require.NoError(t, err)
	require.Len(t, saves, 2)

	signed := saves[0]
	assert.Equal(t, id, signed.ID)
	assert.Equal(t, domain.PlaceholderHash, signed.Hash, "pre-broadcast row carries the placeholder hash")
	assert.Equal(t, domain.TransactionStatusSigned, signed.Status)
	assert.Equal(t, domain.TransactionTypeWithdrawal, signed.Type)
	assert.Equal(t, big.NewInt(1000), signed.Amount)
	assert.Equal(t, accountID, signed.AccountID)

	submitted := saves[1]
	assert.Equal(t, id, submitted.ID)
	assert.Equal(t, "0xhash", submitted.Hash)
	assert.Equal(t, domain.TransactionStatusSubmitted, submitted.Status)
}

func TestWithdrawalPipeline_Send_ImmediateReceiptSettles(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.registry.EXPECT().DecryptForSigning(ctx, accountID, "passphrase").Return(testCredential(), nil)
	d.gateway.EXPECT().BuildAndSign(ctx, gomock.Any(), "0xdest", big.NewInt(1000),
		gomock.Any(), gomock.Any()).Return("0xsigned", nil)
	d.txRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
	d.gateway.EXPECT().Broadcast(ctx, "0xsigned").Return("0xhash", nil)

	d.gateway.EXPECT().GetReceipt(ctx, "0xhash").
		Return(&ports.ChainReceipt{Success: true, GasUsed: big.NewInt(21_000)}, nil)
	d.gateway.EXPECT().GetTransaction(ctx, "0xhash").
		Return(&ports.ChainTransaction{GasPrice: big.NewInt(20_000_000_000)}, nil)

	var settled *domain.Transaction
	d.ledger.EXPECT().UpsertByHash(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			settled = txn
			return txn, nil
		})

	_, err := d.svc.Send(ctx, "ETH", accountID, "0xdest", "1000")
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionStatusConfirmed, settled.Status)
	wantFee := new(big.Int).Mul(big.NewInt(21_000), big.NewInt(20_000_000_000))
	assert.Equal(t, wantFee, settled.Fee, "fee is gasUsed times observed gas price")
}

// ==================== Send: failures ====================

func TestWithdrawalPipeline_Send_SigningFailureLeavesNoRow(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.registry.EXPECT().DecryptForSigning(ctx, accountID, "passphrase").Return(testCredential(), nil)
	d.gateway.EXPECT().BuildAndSign(ctx, gomock.Any(), "0xdest", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", assert.AnError)
	// No Save: nothing was signed, nothing is recorded.

	_, err := d.svc.Send(ctx, "ETH", accountID, "0xdest", "1000")
	assertAppErrorCode(t, err, "CRYPTO_001")
}

func TestWithdrawalPipeline_Send_BroadcastRejected(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.registry.EXPECT().DecryptForSigning(ctx, accountID, "passphrase").Return(testCredential(), nil)
	d.gateway.EXPECT().BuildAndSign(ctx, gomock.Any(), "0xdest", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("0xsigned", nil)

	var saves []domain.Transaction
	d.txRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) error {
			saves = append(saves, *txn)
			return nil
		}).Times(2)

	// Empty hash with nil error: the network refused the transaction.
	d.gateway.EXPECT().Broadcast(ctx, "0xsigned").Return("", nil)

	_, err := d.svc.Send(ctx, "ETH", accountID, "0xdest", "1000")
	assertAppErrorCode(t, err, "CHAIN_002")

	require.Len(t, saves, 2)
	assert.Equal(t, domain.TransactionStatusSigned, saves[0].Status)
	assert.Equal(t, domain.TransactionStatusFailed, saves[1].Status)
	assert.Equal(t, domain.PlaceholderHash, saves[1].Hash, "rejected withdrawal never gets a hash")
}

func TestWithdrawalPipeline_Send_BroadcastError(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()
	accountID := uuid.New()

	d.registry.EXPECT().DecryptForSigning(ctx, accountID, "passphrase").Return(testCredential(), nil)
	d.gateway.EXPECT().BuildAndSign(ctx, gomock.Any(), "0xdest", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("0xsigned", nil)
	d.txRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
	d.gateway.EXPECT().Broadcast(ctx, "0xsigned").Return("", assert.AnError)

	_, err := d.svc.Send(ctx, "ETH", accountID, "0xdest", "1000")
	assertAppErrorCode(t, err, "CHAIN_002")
}

// ==================== Sweep ====================

func TestWithdrawalPipeline_Sweep_SettlesSubmitted(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()

	rows := []domain.Transaction{
		{ID: uuid.New(), Hash: "0xone", Type: domain.TransactionTypeWithdrawal,
			Status: domain.TransactionStatusSubmitted, Amount: big.NewInt(10), AccountID: uuid.New(), Token: "ETH"},
		{ID: uuid.New(), Hash: "0xtwo", Type: domain.TransactionTypeWithdrawal,
			Status: domain.TransactionStatusSubmitted, Amount: big.NewInt(20), AccountID: uuid.New(), Token: "ETH"},
	}
	d.txRepo.EXPECT().ListByStatus(ctx, domain.TransactionStatusSubmitted, domain.TransactionTypeWithdrawal).
		Return(rows, nil)

	// First row confirmed, second still has no receipt.
	d.gateway.EXPECT().GetReceipt(ctx, "0xone").
		Return(&ports.ChainReceipt{Success: true, GasUsed: big.NewInt(21_000)}, nil)
	d.gateway.EXPECT().GetTransaction(ctx, "0xone").
		Return(&ports.ChainTransaction{GasPrice: big.NewInt(1)}, nil)
	d.gateway.EXPECT().GetReceipt(ctx, "0xtwo").Return(nil, nil)

	var settled *domain.Transaction
	d.ledger.EXPECT().UpsertByHash(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			settled = txn
			return txn, nil
		})

	require.NoError(t, d.svc.Sweep(ctx))
	assert.Equal(t, "0xone", settled.Hash)
	assert.Equal(t, domain.TransactionStatusConfirmed, settled.Status)
	assert.Equal(t, big.NewInt(21_000), settled.Fee)
}

func TestWithdrawalPipeline_Sweep_FailedReceipt(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()

	rows := []domain.Transaction{
		{ID: uuid.New(), Hash: "0xone", Type: domain.TransactionTypeWithdrawal,
			Status: domain.TransactionStatusSubmitted, Amount: big.NewInt(10), Token: "ETH"},
	}
	d.txRepo.EXPECT().ListByStatus(ctx, domain.TransactionStatusSubmitted, domain.TransactionTypeWithdrawal).
		Return(rows, nil)
	d.gateway.EXPECT().GetReceipt(ctx, "0xone").
		Return(&ports.ChainReceipt{Success: false, GasUsed: big.NewInt(21_000)}, nil)
	d.gateway.EXPECT().GetTransaction(ctx, "0xone").Return(nil, nil)

	var settled *domain.Transaction
	d.ledger.EXPECT().UpsertByHash(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			settled = txn
			return txn, nil
		})

	require.NoError(t, d.svc.Sweep(ctx))
	assert.Equal(t, domain.TransactionStatusFailed, settled.Status)
	// Transaction body unavailable: fee falls back to the configured price.
	wantFee := new(big.Int).Mul(big.NewInt(21_000), testParams().TransferGasPrice)
	assert.Equal(t, wantFee, settled.Fee)
}

func TestWithdrawalPipeline_Sweep_ListFails(t *testing.T) {
	d := setupWithdrawalPipeline(t)
	ctx := context.Background()

	d.txRepo.EXPECT().ListByStatus(ctx, domain.TransactionStatusSubmitted, domain.TransactionTypeWithdrawal).
		Return(nil, assert.AnError)

	err := d.svc.Sweep(ctx)
	assertAppErrorCode(t, err, "SYS_001")
}
