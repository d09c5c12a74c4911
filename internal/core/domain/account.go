package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the encrypted-at-rest record of a custody account. The seed is
// AES-256-GCM ciphertext; Spec (IV) and Salt are non-secret encryption
// parameters. Accounts are immutable after creation except for Enabled and
// are never physically deleted.
type Account struct {
	ID            uuid.UUID `json:"id"`
	EncryptedSeed string    `json:"-"` // hex ciphertext, never exposed
	Spec          string    `json:"-"` // base64 IV
	Salt          string    `json:"-"` // base64 salt
	Address       string    `json:"address"`
	Label         string    `json:"label,omitempty"`
	Enabled       bool      `json:"enabled"`
	CreatedAt     time.Time `json:"created_at"`
}

// SigningCredential is decrypted key material usable for signing. It exists
// only for the duration of the operation that needed it; callers must Zero it
// when done.
type SigningCredential struct {
	Address    string
	PrivateKey []byte
}

// Zero wipes the private key bytes in place.
func (c *SigningCredential) Zero() {
	if c == nil {
		return
	}
	for i := range c.PrivateKey {
		c.PrivateKey[i] = 0
	}
	c.PrivateKey = nil
}
