package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
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

const (
	seedEntropyBits  = 256
	seedChecksumBits = 8

	restorePageSize = 100
)

// AccountRegistryImpl implements ports.AccountRegistry. It keeps every usable
// account in an in-process cache; reads go to the cache, writes go to the
// repository first and the cache second.
type AccountRegistryImpl struct {
	accountRepo ports.AccountRepository
	crypto      ports.CryptoProvider
	gateway     ports.ChainGateway
	params      *ChainParams
	serviceID   string
	passphrase  string
	log         zerolog.Logger

	mu    sync.RWMutex
	cache map[uuid.UUID]*domain.Account
}

// NewAccountRegistry creates a new AccountRegistryImpl. The cache starts
// empty; call RestoreCache before serving traffic.
func NewAccountRegistry(
	accountRepo ports.AccountRepository,
	crypto ports.CryptoProvider,
	gateway ports.ChainGateway,
	params *ChainParams,
	serviceID string,
	passphrase string,
	log zerolog.Logger,
) *AccountRegistryImpl {
	return &AccountRegistryImpl{
		accountRepo: accountRepo,
		crypto:      crypto,
		gateway:     gateway,
		params:      params,
		serviceID:   serviceID,
		passphrase:  passphrase,
		log:         log,
		cache:       make(map[uuid.UUID]*domain.Account),
	}
}

// RestoreCache loads every enabled account into the cache. Disabled accounts
// stay out, which is what makes them unusable without deleting their rows.
func (s *AccountRegistryImpl) RestoreCache(ctx context.Context) error {
	restored := 0
	for page := 1; ; page++ {
		accounts, err := s.accountRepo.ListEnabled(ctx, page, restorePageSize)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("listing enabled accounts: %w", err))
		}
		if len(accounts) == 0 {
			break
		}
		s.mu.Lock()
		for i := range accounts {
			acc := accounts[i]
			s.cache[acc.ID] = &acc
		}
		s.mu.Unlock()
		restored += len(accounts)
		if len(accounts) < restorePageSize {
			break
		}
	}
	s.log.Info().Int("accounts", restored).Msg("account cache restored")
	return nil
}

// CreateAccount generates a seed, encrypts it, derives the address and
// persists the record. The plaintext seed lives only inside this call.
func (s *AccountRegistryImpl) CreateAccount(ctx context.Context, symbol, label string, enabled *bool) (*domain.Account, error) {
	if !s.params.ValidSymbol(symbol) {
		return nil, apperror.ErrInvalidSymbol(symbol)
	}

	seed, err := s.crypto.GenerateSeed(s.serviceID, seedEntropyBits, seedChecksumBits)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("generating seed: %w", err))
	}
	defer zeroBytes(seed)

	salt, err := s.crypto.GenerateSalt()
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("generating salt: %w", err))
	}
	iv, err := s.crypto.GenerateIV()
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("generating iv: %w", err))
	}

	ciphertext, err := s.crypto.Encrypt(s.passphrase, seed, iv, salt)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("encrypting seed: %w", err))
	}
	address, err := s.crypto.DeriveAddress(seed)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("deriving address: %w", err))
	}

	account := &domain.Account{
		ID:            uuid.New(),
		EncryptedSeed: ciphertext,
		Spec:          base64.StdEncoding.EncodeToString(iv),
		Salt:          base64.StdEncoding.EncodeToString(salt),
		Address:       address,
		Label:         label,
		Enabled:       enabled == nil || *enabled,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("saving account: %w", err))
	}

	if account.Enabled {
		s.mu.Lock()
		s.cache[account.ID] = account
		s.mu.Unlock()
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("address", account.Address).
		Bool("enabled", account.Enabled).
		Msg("account created")
	return account, nil
}

// GetAccount returns the cached account. An account absent from the cache is
// not usable, whether it is disabled or does not exist at all.
func (s *AccountRegistryImpl) GetAccount(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	account, ok := s.cache[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.ErrAccountNotFound(id.String())
	}
	return account, nil
}

// GetAccountAddress returns the cached account's base address.
func (s *AccountRegistryImpl) GetAccountAddress(ctx context.Context, id uuid.UUID) (string, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return "", err
	}
	return account.Address, nil
}

// GetBalances queries the chain for the account's balance per token. Every
// requested token must be the supported coin.
func (s *AccountRegistryImpl) GetBalances(ctx context.Context, id uuid.UUID, tokens []string) (map[string]*big.Int, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, token := range tokens {
		if !s.params.ValidSymbol(token) {
			return nil, apperror.ErrInvalidSymbol(token)
		}
	}
	balances, err := s.gateway.GetBalance(ctx, account.Address, tokens)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("querying balance: %w", err))
	}
	return balances, nil
}

// ListAccounts pages through the enabled accounts. page is 1-based.
func (s *AccountRegistryImpl) ListAccounts(ctx context.Context, page, size int) ([]domain.Account, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = restorePageSize
	}
	accounts, err := s.accountRepo.ListEnabled(ctx, page, size)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing accounts: %w", err))
	}
	return accounts, nil
}

// DecryptForSigning decrypts the seed, cross-checks the derived address
// against the stored one and returns the signing credential. A mismatch means
// the stored record is corrupt and nothing may sign with it.
func (s *AccountRegistryImpl) DecryptForSigning(ctx context.Context, id uuid.UUID, passphrase string) (*domain.SigningCredential, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	iv, err := base64.StdEncoding.DecodeString(account.Spec)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("decoding iv: %w", err))
	}
	salt, err := base64.StdEncoding.DecodeString(account.Salt)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("decoding salt: %w", err))
	}

	seed, err := s.crypto.Decrypt(passphrase, account.EncryptedSeed, iv, salt)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("decrypting seed: %w", err))
	}
	defer zeroBytes(seed)

	derived, err := s.crypto.DeriveAddress(seed)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("deriving address: %w", err))
	}
	if subtle.ConstantTimeCompare([]byte(derived), []byte(account.Address)) != 1 {
		s.log.Error().
			Str("account_id", id.String()).
			Str("stored", account.Address).
			Str("derived", derived).
			Msg("derived address does not match stored address")
		return nil, apperror.ErrCryptoFault(fmt.Errorf("address mismatch for account %s", id))
	}

	cred, err := s.crypto.DeriveSigningCredential(seed, passphrase)
	if err != nil {
		return nil, apperror.ErrCryptoFault(fmt.Errorf("deriving signing key: %w", err))
	}
	return cred, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
