package ports

import (
	"context"
	"math/big"
	"time"

	"eth-hot-wallet/internal/core/domain"
)

// CryptoProvider supplies the cryptographic primitives the custody core
// orchestrates: seed generation, symmetric seed encryption and key/address
// derivation. Any failure surfaces as a CryptoFault with no partial state.
type CryptoProvider interface {
	// GenerateSeed produces fresh root seed material. entropySourceID salts
	// the derivation so two deployments never share a seed space.
	GenerateSeed(entropySourceID string, bits, checksumBits int) ([]byte, error)
	GenerateSalt() ([]byte, error)
	GenerateIV() ([]byte, error)
	// Encrypt returns hex ciphertext of plaintext under a key stretched from
	// passphrase and salt, using iv as the nonce.
	Encrypt(passphrase string, plaintext, iv, salt []byte) (string, error)
	Decrypt(passphrase, ciphertext string, iv, salt []byte) ([]byte, error)
	// DeriveAddress deterministically maps a decrypted seed to its public
	// address.
	DeriveAddress(seed []byte) (string, error)
	DeriveSigningCredential(seed []byte, passphrase string) (*domain.SigningCredential, error)
}

// DepositEvent is one chain-delivered deposit notification.
type DepositEvent struct {
	Hash string
}

// ChainTransaction is the on-chain transaction body.
type ChainTransaction struct {
	Amount   *big.Int
	Gas      *big.Int
	GasPrice *big.Int
}

// ChainReceipt is the chain-provided outcome record for a submitted
// transaction.
type ChainReceipt struct {
	Success bool
	GasUsed *big.Int
}

// ChainGateway is the single configured chain endpoint. Subscriptions are
// restartable: re-issuing SubscribeDeposits after a failure establishes a
// fresh stream without historical replay.
type ChainGateway interface {
	GetBalance(ctx context.Context, address string, tokens []string) (map[string]*big.Int, error)
	// SubscribeDeposits returns a live event channel for one address. The
	// channel closes when ctx is cancelled or the subscription fails.
	SubscribeDeposits(ctx context.Context, address string) (<-chan DepositEvent, error)
	// GetTransaction returns nil when the hash is unknown to the network.
	GetTransaction(ctx context.Context, hash string) (*ChainTransaction, error)
	// GetReceipt returns nil when no receipt is available yet.
	GetReceipt(ctx context.Context, hash string) (*ChainReceipt, error)
	// RegisterAddress deploys/links a receiving sub-account on chain and
	// returns its address.
	RegisterAddress(ctx context.Context, cred *domain.SigningCredential, gasPrice, gasLimit *big.Int) (string, error)
	BuildAndSign(ctx context.Context, cred *domain.SigningCredential, destination string, amount, gasPrice, gasLimit *big.Int) (string, error)
	// Broadcast submits a signed transaction. An empty hash with a nil error
	// means the network rejected it.
	Broadcast(ctx context.Context, signedHex string) (string, error)
}

// DepositMarkStore is an advisory fast path for skipping re-delivered chain
// events whose hash already settled. Only settled (CONFIRMED) hashes get
// marked, so a pending first observation never suppresses the confirming
// re-observation. Correctness never depends on it; the ledger upsert is the
// authoritative idempotency layer.
type DepositMarkStore interface {
	Seen(ctx context.Context, hash string) (bool, error)
	Mark(ctx context.Context, hash string, ttl time.Duration) error
}
