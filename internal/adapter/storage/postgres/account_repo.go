package postgres

import (
	"context"
	"errors"
	"fmt"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Save inserts or replaces an account record by id.
func (r *AccountRepo) Save(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, encrypted_seed, spec, salt, address, label, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET enabled = EXCLUDED.enabled, label = EXCLUDED.label`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.EncryptedSeed, a.Spec, a.Salt, a.Address, a.Label, a.Enabled, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

// GetByID fetches an account by UUID. Returns nil when absent.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, encrypted_seed, spec, salt, address, label, enabled, created_at
		FROM accounts WHERE id = $1`

	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

// ListEnabled fetches enabled accounts ordered by creation time ascending.
func (r *AccountRepo) ListEnabled(ctx context.Context, page, size int) ([]domain.Account, error) {
	query := `SELECT id, encrypted_seed, spec, salt, address, label, enabled, created_at
		FROM accounts WHERE enabled = TRUE ORDER BY created_at ASC LIMIT $1 OFFSET $2`

	offset := (page - 1) * size
	rows, err := r.pool.Query(ctx, query, size, offset)
	if err != nil {
		return nil, fmt.Errorf("list enabled accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.EncryptedSeed, &a.Spec, &a.Salt,
			&a.Address, &a.Label, &a.Enabled, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.EncryptedSeed, &a.Spec, &a.Salt,
		&a.Address, &a.Label, &a.Enabled, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &a, nil
}
