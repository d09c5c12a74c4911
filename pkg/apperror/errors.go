package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses in the
// operator-facing API layer consuming these operations.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Accounts & Addresses (ACC / ADDR) ----

func ErrAccountNotFound(accountID string) *AppError {
	return New("ACC_001", fmt.Sprintf("account %s not found", accountID), http.StatusNotFound)
}

func ErrAccountDisabled(accountID string) *AppError {
	return New("ACC_002", fmt.Sprintf("account %s is disabled", accountID), http.StatusForbidden)
}

// ErrAddressNotFound covers the defensive branch where a registration callback
// arrives for an address row that no longer resolves.
func ErrAddressNotFound(addressID string) *AppError {
	return New("ADDR_001", fmt.Sprintf("address %s not found", addressID), http.StatusNotFound)
}

// ---- Transactions (TXN) ----

func ErrInvalidSymbol(symbol string) *AppError {
	return New("TXN_001", fmt.Sprintf("coin symbol %q is not valid", symbol), http.StatusBadRequest)
}

func ErrInvalidAmount(amount string) *AppError {
	return New("TXN_002", fmt.Sprintf("amount %q is not a valid positive integer", amount), http.StatusBadRequest)
}

func ErrTransactionNotFound(id string) *AppError {
	return New("TXN_003", fmt.Sprintf("transaction %s not found", id), http.StatusNotFound)
}

// ---- Crypto (CRYPTO) ----

// ErrCryptoFault wraps encryption, derivation or signing failures. The
// operation that hit it commits no partial state.
func ErrCryptoFault(err error) *AppError {
	return Wrap("CRYPTO_001", "crypto operation failed", http.StatusInternalServerError, err)
}

// ---- Chain interaction (CHAIN) ----

func ErrChainRegistrationFailed(err error) *AppError {
	return Wrap("CHAIN_001", "on-chain address registration failed", http.StatusBadGateway, err)
}

func ErrBroadcastRejected(err error) *AppError {
	return Wrap("CHAIN_002", "signed transaction was rejected by the network", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
