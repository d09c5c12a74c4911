package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// PlaceholderHash marks a withdrawal row persisted before broadcast, when the
// on-chain hash is not yet known.
const PlaceholderHash = "0x0"

// TransactionType represents the direction of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// TransactionStatus represents the lifecycle state of a transaction.
//
//	SIGNED    -> SUBMITTED          broadcast accepted, hash known
//	SIGNED    -> FAILED             broadcast rejected
//	SUBMITTED -> CONFIRMED | FAILED receipt observed
//	PENDING   -> CONFIRMED | FAILED deposit receipt observed later
//
// CONFIRMED is sticky: once reached it is never overwritten by a
// lower-confidence observation.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusSigned    TransactionStatus = "SIGNED"
	TransactionStatusSubmitted TransactionStatus = "SUBMITTED"
	TransactionStatusConfirmed TransactionStatus = "CONFIRMED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is the durable audit record of one deposit or withdrawal. The
// row id is distinct from the on-chain hash; amount and type are immutable
// after creation. Rows are never deleted.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	Hash        string            `json:"hash"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Amount      *big.Int          `json:"amount"`
	Fee         *big.Int          `json:"fee"`
	AccountID   uuid.UUID         `json:"account_id"`
	Token       string            `json:"token"`
	Destination string            `json:"destination"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusConfirmed || t.Status == TransactionStatusFailed
}

// HasHash reports whether the on-chain hash is known.
func (t *Transaction) HasHash() bool {
	return t.Hash != "" && t.Hash != PlaceholderHash
}

// AcceptsUpdate reports whether a re-observed status may overwrite the
// current one. CONFIRMED wins any race against a stale re-observation.
func (t *Transaction) AcceptsUpdate() bool {
	return t.Status != TransactionStatusConfirmed
}
