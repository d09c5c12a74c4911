package postgres

import (
	"context"
	"errors"
	"fmt"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// TransactionRepo implements ports.TransactionRepository.
//
// Uniqueness of non-placeholder hashes is enforced by a partial unique index:
//
//	CREATE UNIQUE INDEX transactions_hash_key ON transactions (hash) WHERE hash <> '0x0'
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, hash, type, status, amount, fee, account_id, token, destination, created_at, updated_at`

// Save inserts or replaces a transaction by id.
func (r *TransactionRepo) Save(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			hash = EXCLUDED.hash, status = EXCLUDED.status,
			fee = EXCLUDED.fee, updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Hash, t.Type, t.Status, bigToNumeric(t.Amount), bigToNumeric(t.Fee),
		t.AccountID, t.Token, t.Destination, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

// UpsertByHash inserts a row for an unseen hash or merges status and fee into
// the existing one. The CONFIRMED-sticky guard runs inside the statement, so
// the check-then-write is atomic with respect to concurrent deliveries of the
// same hash.
func (r *TransactionRepo) UpsertByHash(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (hash) WHERE hash <> '0x0' DO UPDATE SET
			status = EXCLUDED.status, fee = EXCLUDED.fee, updated_at = EXCLUDED.updated_at
		WHERE transactions.status <> 'CONFIRMED'
		RETURNING ` + transactionColumns

	row := r.pool.QueryRow(ctx, query,
		t.ID, t.Hash, t.Type, t.Status, bigToNumeric(t.Amount), bigToNumeric(t.Fee),
		t.AccountID, t.Token, t.Destination, t.CreatedAt, t.UpdatedAt,
	)
	result, err := scanTransactionRow(row)
	if err != nil {
		return nil, fmt.Errorf("upsert transaction by hash: %w", err)
	}
	if result != nil {
		return result, nil
	}

	// The update was suppressed by the sticky guard; the CONFIRMED row wins.
	existing, err := r.GetByHash(ctx, t.Hash)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("upsert transaction by hash: row for %s vanished", t.Hash)
	}
	return existing, nil
}

// GetByID fetches a transaction by UUID. Returns nil when absent.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransactionRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// GetByHash fetches a transaction by its on-chain hash. Returns nil when absent.
func (r *TransactionRepo) GetByHash(ctx context.Context, hash string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE hash = $1 AND hash <> '0x0'`
	t, err := scanTransactionRow(r.pool.QueryRow(ctx, query, hash))
	if err != nil {
		return nil, fmt.Errorf("get transaction by hash: %w", err)
	}
	return t, nil
}

// ListByAccountAndToken fetches transactions newest first.
func (r *TransactionRepo) ListByAccountAndToken(ctx context.Context, accountID uuid.UUID, token string, page, size int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE account_id = $1 AND token = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`

	offset := (page - 1) * size
	rows, err := r.pool.Query(ctx, query, accountID, token, size, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return collectTransactions(rows)
}

// ListByStatus fetches transactions of one type in one status, oldest first.
func (r *TransactionRepo) ListByStatus(ctx context.Context, status domain.TransactionStatus, txType domain.TransactionType) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE status = $1 AND type = $2 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, status, txType)
	if err != nil {
		return nil, fmt.Errorf("list transactions by status: %w", err)
	}
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t           domain.Transaction
		amount, fee pgtype.Numeric
	)
	err := row.Scan(&t.ID, &t.Hash, &t.Type, &t.Status, &amount, &fee,
		&t.AccountID, &t.Token, &t.Destination, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if t.Amount, err = numericToBig(amount); err != nil {
		return nil, fmt.Errorf("amount column: %w", err)
	}
	if t.Fee, err = numericToBig(fee); err != nil {
		return nil, fmt.Errorf("fee column: %w", err)
	}
	return &t, nil
}
