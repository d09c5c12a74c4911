package postgres

import (
	"context"
	"math/big"
	"testing"
	"time"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(accountID uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:          uuid.New(),
		Hash:        "0xabc123",
		Type:        domain.TransactionTypeDeposit,
		Status:      domain.TransactionStatusConfirmed,
		Amount:      big.NewInt(1_000_000),
		Fee:         big.NewInt(0),
		AccountID:   accountID,
		Token:       "ETH",
		Destination: "0x00112233445566778899aabbccddeeff00112233",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func transactionCols() []string {
	return []string{"id", "hash", "type", "status", "amount", "fee",
		"account_id", "token", "destination", "created_at", "updated_at"}
}

func transactionRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(transactionCols()).AddRow(
		t.ID, t.Hash, t.Type, t.Status, bigToNumeric(t.Amount), bigToNumeric(t.Fee),
		t.AccountID, t.Token, t.Destination, t.CreatedAt, t.UpdatedAt,
	)
}

func TestTransactionRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.Hash, txn.Type, txn.Status,
			bigToNumeric(txn.Amount), bigToNumeric(txn.Fee),
			txn.AccountID, txn.Token, txn.Destination, txn.CreatedAt, txn.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpsertByHash_InsertsNewRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(txn.ID, txn.Hash, txn.Type, txn.Status,
			bigToNumeric(txn.Amount), bigToNumeric(txn.Fee),
			txn.AccountID, txn.Token, txn.Destination, txn.CreatedAt, txn.UpdatedAt).
		WillReturnRows(transactionRow(txn))

	got, err := repo.UpsertByHash(context.Background(), txn)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)
	assert.Equal(t, domain.TransactionStatusConfirmed, got.Status)
	assert.Equal(t, "1000000", got.Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpsertByHash_StickyConfirmed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	accountID := uuid.New()

	// Re-observation with a lower-confidence status.
	stale := newTestTransaction(accountID)
	stale.Status = domain.TransactionStatusSubmitted

	confirmed := newTestTransaction(accountID)
	confirmed.Hash = stale.Hash

	// The guarded upsert updates nothing, so RETURNING yields no row and the
	// repo re-reads the winning CONFIRMED row.
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(stale.ID, stale.Hash, stale.Type, stale.Status,
			bigToNumeric(stale.Amount), bigToNumeric(stale.Fee),
			stale.AccountID, stale.Token, stale.Destination, stale.CreatedAt, stale.UpdatedAt).
		WillReturnRows(pgxmock.NewRows(transactionCols()))
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE hash").
		WithArgs(stale.Hash).
		WillReturnRows(transactionRow(confirmed))

	got, err := repo.UpsertByHash(context.Background(), stale)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusConfirmed, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByHash_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE hash").
		WithArgs("0xmissing").
		WillReturnRows(pgxmock.NewRows(transactionCols()))

	got, err := repo.GetByHash(context.Background(), "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByAccountAndToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	accountID := uuid.New()
	t1 := newTestTransaction(accountID)
	t2 := newTestTransaction(accountID)
	t2.Hash = "0xdef456"

	rows := pgxmock.NewRows(transactionCols()).
		AddRow(t2.ID, t2.Hash, t2.Type, t2.Status, bigToNumeric(t2.Amount), bigToNumeric(t2.Fee),
			t2.AccountID, t2.Token, t2.Destination, t2.CreatedAt, t2.UpdatedAt).
		AddRow(t1.ID, t1.Hash, t1.Type, t1.Status, bigToNumeric(t1.Amount), bigToNumeric(t1.Fee),
			t1.AccountID, t1.Token, t1.Destination, t1.CreatedAt, t1.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(accountID, "ETH", 20, 0).
		WillReturnRows(rows)

	got, err := repo.ListByAccountAndToken(context.Background(), accountID, "ETH", 1, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0xdef456", got[0].Hash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNumericRoundTrip(t *testing.T) {
	wei, ok := new(big.Int).SetString("1000000000000000000", 10)
	require.True(t, ok)

	n := bigToNumeric(wei)
	back, err := numericToBig(n)
	require.NoError(t, err)
	assert.Zero(t, wei.Cmp(back))

	// Positive exponent form (1 * 10^18) must decode to the same value.
	exp := pgtype.Numeric{Int: big.NewInt(1), Exp: 18, Valid: true}
	back, err = numericToBig(exp)
	require.NoError(t, err)
	assert.Zero(t, wei.Cmp(back))

	// Fractional values are a corruption signal, not a rounding case.
	_, err = numericToBig(pgtype.Numeric{Int: big.NewInt(15), Exp: -1, Valid: true})
	assert.Error(t, err)

	// Invalid numeric decodes as zero.
	back, err = numericToBig(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Zero(t, back.Sign())
}
