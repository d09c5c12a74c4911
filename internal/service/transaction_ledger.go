package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"
	"eth-hot-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionLedgerImpl implements ports.TransactionLedger on top of the
// transaction repository, which enforces the per-hash state machine.
type TransactionLedgerImpl struct {
	txRepo ports.TransactionRepository
	log    zerolog.Logger
}

// NewTransactionLedger creates a new TransactionLedgerImpl.
func NewTransactionLedger(txRepo ports.TransactionRepository, log zerolog.Logger) *TransactionLedgerImpl {
	return &TransactionLedgerImpl{txRepo: txRepo, log: log}
}

// UpsertByHash records one observation of an on-chain transaction, inserting
// or merging by hash. The returned row reflects what the ledger holds after
// the write, which may be an earlier CONFIRMED observation winning the race.
func (s *TransactionLedgerImpl) UpsertByHash(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	if txn.Hash == "" || txn.Hash == domain.PlaceholderHash {
		return nil, apperror.InternalError(fmt.Errorf("upsert requires an on-chain hash, got %q", txn.Hash))
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now().UTC()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now
	if txn.Fee == nil {
		txn.Fee = big.NewInt(0)
	}

	result, err := s.txRepo.UpsertByHash(ctx, txn)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("upserting transaction %s: %w", txn.Hash, err))
	}
	if result.Status != txn.Status {
		s.log.Debug().
			Str("hash", txn.Hash).
			Str("observed", string(txn.Status)).
			Str("kept", string(result.Status)).
			Msg("ledger kept higher-confidence status")
	}
	return result, nil
}

// FindByHash returns the row for an on-chain hash.
func (s *TransactionLedgerImpl) FindByHash(ctx context.Context, hash string) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByHash(ctx, hash)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reading transaction %s: %w", hash, err))
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound(hash)
	}
	return txn, nil
}

// FindByID returns the row for a ledger id.
func (s *TransactionLedgerImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reading transaction %s: %w", id, err))
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound(id.String())
	}
	return txn, nil
}

// ListByAccountAndToken pages the account's history, newest first. page is
// 1-based.
func (s *TransactionLedgerImpl) ListByAccountAndToken(ctx context.Context, accountID uuid.UUID, token string, page, size int) ([]domain.Transaction, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}
	txns, err := s.txRepo.ListByAccountAndToken(ctx, accountID, token, page, size)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing transactions: %w", err))
	}
	return txns, nil
}
