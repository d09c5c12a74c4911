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

// WithdrawalPipelineImpl implements ports.WithdrawalPipeline. Send is a
// global critical section: one withdrawal at a time signs and broadcasts, so
// nonce allocation at the signer stays strictly ordered.
type WithdrawalPipelineImpl struct {
	registry   ports.AccountRegistry
	ledger     ports.TransactionLedger
	txRepo     ports.TransactionRepository
	gateway    ports.ChainGateway
	params     *ChainParams
	passphrase string
	log        zerolog.Logger

	sendMu sync.Mutex
}

// NewWithdrawalPipeline creates a new WithdrawalPipelineImpl.
func NewWithdrawalPipeline(
	registry ports.AccountRegistry,
	ledger ports.TransactionLedger,
	txRepo ports.TransactionRepository,
	gateway ports.ChainGateway,
	params *ChainParams,
	passphrase string,
	log zerolog.Logger,
) *WithdrawalPipelineImpl {
	return &WithdrawalPipelineImpl{
		registry:   registry,
		ledger:     ledger,
		txRepo:     txRepo,
		gateway:    gateway,
		params:     params,
		passphrase: passphrase,
		log:        log,
	}
}

// Send signs, persists and broadcasts one withdrawal and returns the ledger
// row id. The row exists from the moment signing succeeds, so a crash between
// signing and broadcast leaves an auditable SIGNED row rather than silence.
func (s *WithdrawalPipelineImpl) Send(ctx context.Context, symbol string, accountID uuid.UUID, destination, amount string) (uuid.UUID, error) {
	if !s.params.ValidSymbol(symbol) {
		return uuid.Nil, apperror.ErrInvalidSymbol(symbol)
	}
	value, ok := new(big.Int).SetString(amount, 10)
	if !ok || value.Sign() <= 0 {
		return uuid.Nil, apperror.ErrInvalidAmount(amount)
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	cred, err := s.registry.DecryptForSigning(ctx, accountID, s.passphrase)
	if err != nil {
		return uuid.Nil, err
	}
	defer cred.Zero()

	signedHex, err := s.gateway.BuildAndSign(ctx, cred, destination, value, s.params.TransferGasPrice, s.params.TransferGasLimit)
	if err != nil {
		return uuid.Nil, apperror.ErrCryptoFault(fmt.Errorf("signing withdrawal: %w", err))
	}

	now := time.Now().UTC()
	row := &domain.Transaction{
		ID:          uuid.New(),
		Hash:        domain.PlaceholderHash,
		Type:        domain.TransactionTypeWithdrawal,
		Status:      domain.TransactionStatusSigned,
		Amount:      value,
		Fee:         big.NewInt(0),
		AccountID:   accountID,
		Token:       symbol,
		Destination: destination,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.txRepo.Save(ctx, row); err != nil {
		return uuid.Nil, apperror.ErrDatabaseError(fmt.Errorf("persisting signed withdrawal: %w", err))
	}

	hash, err := s.gateway.Broadcast(ctx, signedHex)
	if err != nil || hash == "" {
		row.Status = domain.TransactionStatusFailed
		row.UpdatedAt = time.Now().UTC()
		if saveErr := s.txRepo.Save(ctx, row); saveErr != nil {
			s.log.Error().Err(saveErr).Str("id", row.ID.String()).Msg("failed to mark rejected withdrawal")
		}
		if err == nil {
			err = fmt.Errorf("network returned no transaction hash")
		}
		return uuid.Nil, apperror.ErrBroadcastRejected(err)
	}

	row.Hash = hash
	row.Status = domain.TransactionStatusSubmitted
	row.UpdatedAt = time.Now().UTC()
	if err := s.txRepo.Save(ctx, row); err != nil {
		// Money is in flight under a hash we failed to persist. The SIGNED
		// row still exists; log the hash so the funds stay traceable.
		s.log.Error().
			Err(err).
			Str("id", row.ID.String()).
			Str("hash", hash).
			Msg("broadcast succeeded but hash was not persisted")
		return uuid.Nil, apperror.ErrDatabaseError(fmt.Errorf("persisting broadcast hash: %w", err))
	}

	s.log.Info().
		Str("id", row.ID.String()).
		Str("hash", hash).
		Str("account_id", accountID.String()).
		Str("amount", value.String()).
		Msg("withdrawal broadcast")

	// Best effort: the receipt is usually not out yet; the sweeper settles
	// the row later if it is not.
	s.settle(ctx, row)

	return row.ID, nil
}

// RunSweeper periodically settles SUBMITTED withdrawals whose receipts have
// since appeared. It blocks until ctx is cancelled; an interval of zero
// disables sweeping.
func (s *WithdrawalPipelineImpl) RunSweeper(ctx context.Context) {
	if s.params.SweepInterval <= 0 {
		s.log.Info().Msg("withdrawal sweeper disabled")
		return
	}
	ticker := time.NewTicker(s.params.SweepInterval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.params.SweepInterval).Msg("withdrawal sweeper started")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.log.Error().Err(err).Msg("withdrawal sweep failed")
			}
		}
	}
}

// Sweep settles every SUBMITTED withdrawal with an available receipt.
func (s *WithdrawalPipelineImpl) Sweep(ctx context.Context) error {
	rows, err := s.txRepo.ListByStatus(ctx, domain.TransactionStatusSubmitted, domain.TransactionTypeWithdrawal)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("listing submitted withdrawals: %w", err))
	}
	for i := range rows {
		s.settle(ctx, &rows[i])
	}
	return nil
}

// settle checks one submitted withdrawal for a receipt and merges the final
// status and observed fee into the ledger. No receipt yet means no change.
func (s *WithdrawalPipelineImpl) settle(ctx context.Context, row *domain.Transaction) {
	receipt, err := s.gateway.GetReceipt(ctx, row.Hash)
	if err != nil {
		s.log.Warn().Err(err).Str("hash", row.Hash).Msg("fetching withdrawal receipt failed")
		return
	}
	if receipt == nil {
		return
	}

	fee := s.observedFee(ctx, row.Hash, receipt)
	status := receiptStatus(receipt)

	result, err := s.ledger.UpsertByHash(ctx, &domain.Transaction{
		ID:          row.ID,
		Hash:        row.Hash,
		Type:        domain.TransactionTypeWithdrawal,
		Status:      status,
		Amount:      row.Amount,
		Fee:         fee,
		AccountID:   row.AccountID,
		Token:       row.Token,
		Destination: row.Destination,
		CreatedAt:   row.CreatedAt,
	})
	if err != nil {
		s.log.Error().Err(err).Str("hash", row.Hash).Msg("settling withdrawal failed")
		return
	}
	s.log.Info().
		Str("hash", row.Hash).
		Str("status", string(result.Status)).
		Str("fee", fee.String()).
		Msg("withdrawal settled")
}

// observedFee is gasUsed times the gas price the network actually recorded,
// falling back to the configured transfer gas price when the transaction body
// cannot be fetched.
func (s *WithdrawalPipelineImpl) observedFee(ctx context.Context, hash string, receipt *ports.ChainReceipt) *big.Int {
	if receipt.GasUsed == nil {
		return big.NewInt(0)
	}
	gasPrice := s.params.TransferGasPrice
	chainTxn, err := s.gateway.GetTransaction(ctx, hash)
	if err != nil {
		s.log.Warn().Err(err).Str("hash", hash).Msg("fetching transaction for fee failed")
	} else if chainTxn != nil && chainTxn.GasPrice != nil {
		gasPrice = chainTxn.GasPrice
	}
	return new(big.Int).Mul(receipt.GasUsed, gasPrice)
}
