package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"
	"eth-hot-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// depositMarkTTL bounds how long a settled-hash mark lives. Re-observations
// after expiry fall through to the ledger upsert, which stays correct.
const depositMarkTTL = 24 * time.Hour

// RestoreFailure records one address whose subscription could not be
// re-established at startup. The remaining addresses are unaffected.
type RestoreFailure struct {
	AddressID uuid.UUID
	Address   string
	Err       error
}

// DepositReconcilerImpl implements ports.DepositWatcher. It holds one
// subscription per registered address and reconciles every delivered event
// into the ledger through the per-hash upsert, so duplicate deliveries and
// restarts never double-count a deposit.
type DepositReconcilerImpl struct {
	addressRepo ports.AddressRepository
	ledger      ports.TransactionLedger
	gateway     ports.ChainGateway
	marks       ports.DepositMarkStore // optional; nil disables the fast path
	pool        *WorkerPool
	token       string
	log         zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	subs map[string]context.CancelFunc
}

// NewDepositReconciler creates a new DepositReconcilerImpl. marks may be nil.
func NewDepositReconciler(
	addressRepo ports.AddressRepository,
	ledger ports.TransactionLedger,
	gateway ports.ChainGateway,
	marks ports.DepositMarkStore,
	pool *WorkerPool,
	params *ChainParams,
	log zerolog.Logger,
) *DepositReconcilerImpl {
	ctx, cancel := context.WithCancel(context.Background())
	return &DepositReconcilerImpl{
		addressRepo: addressRepo,
		ledger:      ledger,
		gateway:     gateway,
		marks:       marks,
		pool:        pool,
		token:       params.Symbol,
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
		subs:        make(map[string]context.CancelFunc),
	}
}

// Watch establishes a live deposit subscription for one address. Watching an
// address twice is a no-op.
func (s *DepositReconcilerImpl) Watch(accountID uuid.UUID, address string) error {
	s.mu.Lock()
	if _, ok := s.subs[address]; ok {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(s.ctx)
	events, err := s.gateway.SubscribeDeposits(ctx, address)
	if err != nil {
		cancel()
		return apperror.InternalError(fmt.Errorf("subscribing to %s: %w", address, err))
	}

	s.mu.Lock()
	if _, ok := s.subs[address]; ok {
		// Lost the race to a concurrent Watch for the same address.
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.subs[address] = cancel
	s.mu.Unlock()

	go s.consume(ctx, accountID, address, events)

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("address", address).
		Msg("deposit subscription established")
	return nil
}

// Restore re-establishes subscriptions for every registered address. One
// failing address does not stop the others; failures come back per address.
func (s *DepositReconcilerImpl) Restore(ctx context.Context) ([]RestoreFailure, error) {
	addresses, err := s.addressRepo.ListRegistered(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing registered addresses: %w", err))
	}

	var failures []RestoreFailure
	for i := range addresses {
		addr := addresses[i]
		if !addr.IsRegistered() {
			continue
		}
		if err := s.Watch(addr.AccountID, *addr.Address); err != nil {
			s.log.Error().
				Err(err).
				Str("address_id", addr.ID.String()).
				Str("address", *addr.Address).
				Msg("failed to restore deposit subscription")
			failures = append(failures, RestoreFailure{
				AddressID: addr.ID,
				Address:   *addr.Address,
				Err:       err,
			})
		}
	}
	s.log.Info().
		Int("watched", len(addresses)-len(failures)).
		Int("failed", len(failures)).
		Msg("deposit subscriptions restored")
	return failures, nil
}

// Close cancels every subscription and waits for in-flight events to drain.
func (s *DepositReconcilerImpl) Close() {
	s.cancel()
	s.pool.Wait()
}

func (s *DepositReconcilerImpl) consume(ctx context.Context, accountID uuid.UUID, address string, events <-chan ports.DepositEvent) {
	for ev := range events {
		hash := ev.Hash
		if err := s.pool.Go(ctx, func() {
			s.handleEvent(ctx, accountID, address, hash)
		}); err != nil {
			return
		}
	}
	s.mu.Lock()
	delete(s.subs, address)
	s.mu.Unlock()
	s.log.Warn().Str("address", address).Msg("deposit subscription closed")
}

// handleEvent reconciles one delivered hash. Failures are logged and dropped;
// the chain will re-deliver or the hash stays unreconciled until it does.
func (s *DepositReconcilerImpl) handleEvent(ctx context.Context, accountID uuid.UUID, address, hash string) {
	if s.marks != nil {
		seen, err := s.marks.Seen(ctx, hash)
		if err != nil {
			s.log.Warn().Err(err).Str("hash", hash).Msg("deposit mark lookup failed, falling through to ledger")
		} else if seen {
			s.log.Debug().Str("hash", hash).Msg("skipping re-delivered settled deposit")
			return
		}
	}

	chainTxn, err := s.gateway.GetTransaction(ctx, hash)
	if err != nil {
		s.log.Warn().Err(err).Str("hash", hash).Msg("fetching deposit transaction failed")
		return
	}
	if chainTxn == nil {
		s.log.Warn().Str("hash", hash).Msg("deposit event for unknown transaction")
		return
	}
	receipt, err := s.gateway.GetReceipt(ctx, hash)
	if err != nil {
		s.log.Warn().Err(err).Str("hash", hash).Msg("fetching deposit receipt failed")
		return
	}

	status := receiptStatus(receipt)
	result, err := s.ledger.UpsertByHash(ctx, &domain.Transaction{
		Hash:        hash,
		Type:        domain.TransactionTypeDeposit,
		Status:      status,
		Amount:      chainTxn.Amount,
		Fee:         big.NewInt(0),
		AccountID:   accountID,
		Token:       s.token,
		Destination: address,
	})
	if err != nil {
		s.log.Error().Err(err).Str("hash", hash).Msg("recording deposit failed")
		return
	}

	if result.Status == domain.TransactionStatusConfirmed && s.marks != nil {
		if err := s.marks.Mark(ctx, hash, depositMarkTTL); err != nil {
			s.log.Warn().Err(err).Str("hash", hash).Msg("marking settled deposit failed")
		}
	}

	s.log.Info().
		Str("hash", hash).
		Str("address", address).
		Str("status", string(result.Status)).
		Msg("deposit reconciled")
}

// receiptStatus maps a chain receipt to a ledger status. No receipt yet means
// the transaction is still in flight.
func receiptStatus(r *ports.ChainReceipt) domain.TransactionStatus {
	switch {
	case r == nil:
		return domain.TransactionStatusPending
	case r.Success:
		return domain.TransactionStatusConfirmed
	default:
		return domain.TransactionStatusFailed
	}
}
