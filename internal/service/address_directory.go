package service

import (
	"context"
	"fmt"
	"time"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"
	"eth-hot-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// registrationTimeout bounds one background on-chain registration. Contract
// deployment is slow; the caller is not waiting on this.
const registrationTimeout = 10 * time.Minute

// RegistrationResult reports the outcome of one background address
// registration.
type RegistrationResult struct {
	AddressID uuid.UUID
	AccountID uuid.UUID
	Address   string
	Err       error
}

// AddressDirectoryImpl implements ports.AddressDirectory. RequestAddress
// persists a pending row and returns immediately; a pool worker performs the
// on-chain registration, sets the address exactly once and hands the new
// address to the deposit watcher.
type AddressDirectoryImpl struct {
	addressRepo ports.AddressRepository
	registry    ports.AccountRegistry
	gateway     ports.ChainGateway
	watcher     ports.DepositWatcher
	pool        *WorkerPool
	params      *ChainParams
	passphrase  string
	log         zerolog.Logger

	// results receives registration outcomes. Sends never block: a slow or
	// absent consumer drops outcomes, the row and the log line remain.
	results chan RegistrationResult
}

// NewAddressDirectory creates a new AddressDirectoryImpl.
func NewAddressDirectory(
	addressRepo ports.AddressRepository,
	registry ports.AccountRegistry,
	gateway ports.ChainGateway,
	watcher ports.DepositWatcher,
	pool *WorkerPool,
	params *ChainParams,
	passphrase string,
	log zerolog.Logger,
) *AddressDirectoryImpl {
	return &AddressDirectoryImpl{
		addressRepo: addressRepo,
		registry:    registry,
		gateway:     gateway,
		watcher:     watcher,
		pool:        pool,
		params:      params,
		passphrase:  passphrase,
		log:         log,
		results:     make(chan RegistrationResult, 64),
	}
}

// Results exposes registration outcomes for operators that want to wait on
// them.
func (s *AddressDirectoryImpl) Results() <-chan RegistrationResult {
	return s.results
}

// RequestAddress persists a pending row for an existing account and schedules
// its on-chain registration. The returned id is immediately queryable.
func (s *AddressDirectoryImpl) RequestAddress(ctx context.Context, symbol string, accountID uuid.UUID, label string) (uuid.UUID, error) {
	if !s.params.ValidSymbol(symbol) {
		return uuid.Nil, apperror.ErrInvalidSymbol(symbol)
	}
	if _, err := s.registry.GetAccount(ctx, accountID); err != nil {
		return uuid.Nil, err
	}

	row := &domain.Address{
		ID:        uuid.New(),
		AccountID: accountID,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.addressRepo.Save(ctx, row); err != nil {
		return uuid.Nil, apperror.ErrDatabaseError(fmt.Errorf("saving address request: %w", err))
	}

	// Detached from the request context: the registration outlives the call.
	if err := s.pool.Go(context.Background(), func() {
		s.register(row.ID, accountID)
	}); err != nil {
		return uuid.Nil, apperror.InternalError(fmt.Errorf("scheduling registration: %w", err))
	}

	s.log.Info().
		Str("address_id", row.ID.String()).
		Str("account_id", accountID.String()).
		Msg("address requested, registration scheduled")
	return row.ID, nil
}

// GetAddress returns the row; Address stays nil until registration completes.
func (s *AddressDirectoryImpl) GetAddress(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	row, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reading address: %w", err))
	}
	if row == nil {
		return nil, apperror.ErrAddressNotFound(id.String())
	}
	return row, nil
}

func (s *AddressDirectoryImpl) register(addressID, accountID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), registrationTimeout)
	defer cancel()

	address, err := s.doRegister(ctx, addressID, accountID)
	if err != nil {
		s.log.Error().
			Err(err).
			Str("address_id", addressID.String()).
			Str("account_id", accountID.String()).
			Msg("address registration failed, row stays pending")
	}
	s.publish(RegistrationResult{
		AddressID: addressID,
		AccountID: accountID,
		Address:   address,
		Err:       err,
	})
}

func (s *AddressDirectoryImpl) doRegister(ctx context.Context, addressID, accountID uuid.UUID) (string, error) {
	cred, err := s.registry.DecryptForSigning(ctx, accountID, s.passphrase)
	if err != nil {
		return "", err
	}
	defer cred.Zero()

	address, err := s.gateway.RegisterAddress(ctx, cred, s.params.ContractGasPrice, s.params.ContractGasLimit)
	if err != nil {
		return "", apperror.ErrChainRegistrationFailed(err)
	}
	if address == "" {
		return "", apperror.ErrChainRegistrationFailed(fmt.Errorf("chain returned empty address"))
	}

	row, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("reading address row: %w", err))
	}
	if row == nil {
		// The registration succeeded on chain but its row is gone. Log the
		// orphaned address; nothing else can own it.
		s.log.Error().
			Str("address_id", addressID.String()).
			Str("address", address).
			Msg("registration callback for missing address row")
		return "", apperror.ErrAddressNotFound(addressID.String())
	}

	row.Address = &address
	if err := s.addressRepo.Save(ctx, row); err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("saving registered address: %w", err))
	}

	if err := s.watcher.Watch(accountID, address); err != nil {
		// The address is live and persisted; only the subscription failed.
		// Restore picks it up on the next start.
		s.log.Error().
			Err(err).
			Str("address", address).
			Msg("failed to watch freshly registered address")
	}

	s.log.Info().
		Str("address_id", addressID.String()).
		Str("address", address).
		Msg("address registered")
	return address, nil
}

func (s *AddressDirectoryImpl) publish(r RegistrationResult) {
	select {
	case s.results <- r:
	default:
	}
}
