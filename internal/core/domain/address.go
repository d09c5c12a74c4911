package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address is a per-account receiving address. Address is nil while on-chain
// registration is pending and is set exactly once when it succeeds; after
// that it is immutable. Rows are never deleted.
type Address struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Address   *string   `json:"address,omitempty"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsRegistered reports whether on-chain registration has completed.
func (a *Address) IsRegistered() bool {
	return a.Address != nil && *a.Address != ""
}
