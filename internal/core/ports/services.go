package ports

import (
	"context"
	"math/big"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// AccountRegistry owns encrypted account records and the process-wide
// decrypted-on-demand cache. It is the sole writer of account state.
type AccountRegistry interface {
	// CreateAccount generates, encrypts and persists a fresh account and adds
	// it to the cache. enabled defaults to true when nil.
	CreateAccount(ctx context.Context, symbol, label string, enabled *bool) (*domain.Account, error)
	// GetAccount returns the cached account; the cache is the sole source of
	// truth for account usability during the process lifetime.
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetAccountAddress(ctx context.Context, id uuid.UUID) (string, error)
	GetBalances(ctx context.Context, id uuid.UUID, tokens []string) (map[string]*big.Int, error)
	ListAccounts(ctx context.Context, page, size int) ([]domain.Account, error)
	// DecryptForSigning decrypts on demand. The returned credential is the
	// only plaintext key material in the process and must be zeroed by the
	// caller as soon as the signing call that needed it returns.
	DecryptForSigning(ctx context.Context, id uuid.UUID, passphrase string) (*domain.SigningCredential, error)
}

// AddressDirectory owns receiving-address records and their asynchronous
// on-chain registration.
type AddressDirectory interface {
	// RequestAddress persists a pending row and returns its id immediately;
	// registration completes in the background.
	RequestAddress(ctx context.Context, symbol string, accountID uuid.UUID, label string) (uuid.UUID, error)
	GetAddress(ctx context.Context, id uuid.UUID) (*domain.Address, error)
}

// TransactionLedger is the authoritative record of every deposit and
// withdrawal and enforces the status state machine.
type TransactionLedger interface {
	UpsertByHash(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByHash(ctx context.Context, hash string) (*domain.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByAccountAndToken(ctx context.Context, accountID uuid.UUID, token string, page, size int) ([]domain.Transaction, error)
}

// DepositWatcher consumes chain events for registered addresses and
// reconciles them into the ledger.
type DepositWatcher interface {
	// Watch establishes a live deposit subscription for one address.
	Watch(accountID uuid.UUID, address string) error
}

// WithdrawalPipeline builds, signs, persists and broadcasts outbound
// transfers. Only one withdrawal is mid-flight per process at a time.
type WithdrawalPipeline interface {
	Send(ctx context.Context, symbol string, accountID uuid.UUID, destination, amount string) (uuid.UUID, error)
}
