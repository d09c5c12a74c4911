package postgres

import (
	"context"
	"errors"
	"fmt"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AddressRepo implements ports.AddressRepository.
type AddressRepo struct {
	pool Pool
}

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(pool Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

// Save inserts or replaces an address record by id. The on-chain address is
// only ever written once; the update branch covers the registration callback.
func (r *AddressRepo) Save(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (id, account_id, address, label, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET address = EXCLUDED.address
		WHERE addresses.address IS NULL`

	_, err := r.pool.Exec(ctx, query, a.ID, a.AccountID, a.Address, a.Label, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save address: %w", err)
	}
	return nil
}

// GetByID fetches an address by UUID. Returns nil when absent.
func (r *AddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	query := `SELECT id, account_id, address, label, created_at FROM addresses WHERE id = $1`

	var a domain.Address
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.AccountID, &a.Address, &a.Label, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan address: %w", err)
	}
	return &a, nil
}

// ListRegistered fetches every address whose on-chain address is set.
func (r *AddressRepo) ListRegistered(ctx context.Context) ([]domain.Address, error) {
	query := `SELECT id, account_id, address, label, created_at
		FROM addresses WHERE address IS NOT NULL ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list registered addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Address, &a.Label, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return addresses, nil
}
