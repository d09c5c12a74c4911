package ports

import (
	"context"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// AccountRepository defines persistence operations for account records.
type AccountRepository interface {
	Save(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// ListEnabled returns enabled accounts ordered by creation time ascending.
	// page is 1-based.
	ListEnabled(ctx context.Context, page, size int) ([]domain.Account, error)
}

// AddressRepository defines persistence operations for receiving addresses.
type AddressRepository interface {
	Save(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)
	// ListRegistered returns every address whose on-chain address is set.
	ListRegistered(ctx context.Context) ([]domain.Address, error)
}

// TransactionRepository defines persistence for the transaction ledger.
type TransactionRepository interface {
	// Save inserts or replaces a row keyed by id. Used for the pre-broadcast
	// SIGNED row and its id-keyed status transitions.
	Save(ctx context.Context, txn *domain.Transaction) error
	// UpsertByHash inserts a row for an unseen hash or merges status and fee
	// into the existing row, atomically skipping the merge when the existing
	// status is already CONFIRMED. Returns the resulting row.
	UpsertByHash(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByHash(ctx context.Context, hash string) (*domain.Transaction, error)
	// ListByAccountAndToken returns rows ordered by creation time descending.
	// page is 1-based.
	ListByAccountAndToken(ctx context.Context, accountID uuid.UUID, token string, page, size int) ([]domain.Transaction, error)
	// ListByStatus returns rows of one type in one status, oldest first.
	ListByStatus(ctx context.Context, status domain.TransactionStatus, txType domain.TransactionType) ([]domain.Transaction, error)
}
