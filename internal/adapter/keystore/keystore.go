package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"eth-hot-wallet/internal/core/domain"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/sha3"
)

const (
	saltSize = 16
	ivSize   = 12 // AES-GCM standard nonce size

	// pbkdf2 work factor for stretching the custody passphrase into an
	// AES-256 key.
	keyIterations = 16384
	keySize       = 32
)

// Keystore implements ports.CryptoProvider. Seeds come from BIP-39 entropy,
// addresses and signing keys from the BIP-32 master key over secp256k1 with
// a Keccak-256 Ethereum address, and seeds rest under AES-256-GCM keyed by a
// PBKDF2-stretched passphrase.
type Keystore struct{}

// New creates a Keystore.
func New() *Keystore {
	return &Keystore{}
}

// GenerateSeed produces fresh root seed material. bits selects the entropy
// size (BIP-39: 128–256, multiple of 32; the checksum length follows from it,
// checksumBits is accepted for interface parity and validated only).
// entropySourceID salts the mnemonic-to-seed derivation so two deployments
// never share a seed space.
func (k *Keystore) GenerateSeed(entropySourceID string, bits, checksumBits int) ([]byte, error) {
	if bits < 128 || bits > 256 || bits%32 != 0 {
		return nil, fmt.Errorf("seed entropy must be 128-256 bits in steps of 32, got %d", bits)
	}
	if checksumBits < 0 {
		return nil, fmt.Errorf("invalid checksum bits %d", checksumBits)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return nil, fmt.Errorf("generating entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("building mnemonic: %w", err)
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, entropySourceID)
	if err != nil {
		return nil, fmt.Errorf("deriving seed: %w", err)
	}
	return seed, nil
}

// GenerateSalt returns a fresh random salt.
func (k *Keystore) GenerateSalt() ([]byte, error) {
	return randomBytes(saltSize)
}

// GenerateIV returns a fresh random GCM nonce.
func (k *Keystore) GenerateIV() ([]byte, error) {
	return randomBytes(ivSize)
}

// Encrypt seals plaintext under AES-256-GCM and returns hex ciphertext.
func (k *Keystore) Encrypt(passphrase string, plaintext, iv, salt []byte) (string, error) {
	aead, err := newAEAD(passphrase, iv, salt)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(aead.Seal(nil, iv, plaintext, nil)), nil
}

// Decrypt is the inverse of Encrypt.
func (k *Keystore) Decrypt(passphrase, ciphertext string, iv, salt []byte) ([]byte, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decoding ciphertext: %w", err)
	}
	aead, err := newAEAD(passphrase, iv, salt)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, iv, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	return plaintext, nil
}

// DeriveAddress deterministically maps a seed to its Ethereum address.
func (k *Keystore) DeriveAddress(seed []byte) (string, error) {
	priv, err := masterPrivateKey(seed)
	if err != nil {
		return "", err
	}
	defer priv.Zero()
	return addressFromKey(priv), nil
}

// DeriveSigningCredential returns the usable signing key for a decrypted
// seed. The seed is already plaintext here; the passphrase is not mixed into
// derivation, or the stored address would stop matching the seed.
func (k *Keystore) DeriveSigningCredential(seed []byte, _ string) (*domain.SigningCredential, error) {
	priv, err := masterPrivateKey(seed)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	return &domain.SigningCredential{
		Address:    addressFromKey(priv),
		PrivateKey: priv.Serialize(),
	}, nil
}

func masterPrivateKey(seed []byte) (*secp256k1.PrivateKey, error) {
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("deriving master key: %w", err)
	}
	return secp256k1.PrivKeyFromBytes(master.Key), nil
}

func addressFromKey(priv *secp256k1.PrivateKey) string {
	pub := priv.PubKey().SerializeUncompressed()
	h := sha3.NewLegacyKeccak256()
	h.Write(pub[1:]) // drop the 0x04 prefix
	digest := h.Sum(nil)
	return "0x" + hex.EncodeToString(digest[12:])
}

func newAEAD(passphrase string, iv, salt []byte) (cipher.AEAD, error) {
	if len(iv) != ivSize {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", ivSize, len(iv))
	}
	key := pbkdf2.Key([]byte(passphrase), salt, keyIterations, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aead, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}
	return b, nil
}
