package integration

import (
	"context"
	"math/big"
	"sort"
	"sync"

	"eth-hot-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]domain.Account)}
}

func (r *inMemoryAccountRepo) Save(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = *account
	return nil
}

func (r *inMemoryAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *inMemoryAccountRepo) ListEnabled(_ context.Context, page, size int) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Account
	for _, a := range r.accounts {
		if a.Enabled {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return paginate(out, page, size), nil
}

// --- In-Memory Address Repo ---

type inMemoryAddressRepo struct {
	mu        sync.RWMutex
	addresses map[uuid.UUID]domain.Address
}

func newInMemoryAddressRepo() *inMemoryAddressRepo {
	return &inMemoryAddressRepo{addresses: make(map[uuid.UUID]domain.Address)}
}

// Save applies the on-chain address at most once, like the SQL guard that
// only updates rows whose address is still NULL.
func (r *inMemoryAddressRepo) Save(_ context.Context, address *domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.addresses[address.ID]; ok && existing.Address != nil {
		return nil
	}
	copied := *address
	if address.Address != nil {
		v := *address.Address
		copied.Address = &v
	}
	r.addresses[address.ID] = copied
	return nil
}

func (r *inMemoryAddressRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.addresses[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *inMemoryAddressRepo) ListRegistered(_ context.Context) ([]domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Address
	for _, a := range r.addresses {
		if a.Address != nil && *a.Address != "" {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{byID: make(map[uuid.UUID]domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Save(_ context.Context, txn *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[txn.ID] = copyTxn(txn)
	return nil
}

// UpsertByHash mirrors the SQL merge: insert for an unseen hash, merge status
// and fee otherwise, and never downgrade a CONFIRMED row.
func (r *inMemoryTransactionRepo) UpsertByHash(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.byID {
		if existing.Hash != txn.Hash || existing.Hash == domain.PlaceholderHash {
			continue
		}
		if existing.Status == domain.TransactionStatusConfirmed {
			out := existing
			return &out, nil
		}
		existing.Status = txn.Status
		if txn.Fee != nil && txn.Fee.Sign() > 0 {
			existing.Fee = new(big.Int).Set(txn.Fee)
		}
		existing.UpdatedAt = txn.UpdatedAt
		r.byID[id] = existing
		out := existing
		return &out, nil
	}

	r.byID[txn.ID] = copyTxn(txn)
	out := r.byID[txn.ID]
	return &out, nil
}

func (r *inMemoryTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *inMemoryTransactionRepo) GetByHash(_ context.Context, hash string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if t.Hash == hash {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) ListByAccountAndToken(_ context.Context, accountID uuid.UUID, token string, page, size int) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Transaction
	for _, t := range r.byID {
		if t.AccountID == accountID && t.Token == token {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, page, size), nil
}

func (r *inMemoryTransactionRepo) ListByStatus(_ context.Context, status domain.TransactionStatus, txType domain.TransactionType) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Transaction
	for _, t := range r.byID {
		if t.Status == status && t.Type == txType {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryTransactionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func copyTxn(txn *domain.Transaction) domain.Transaction {
	out := *txn
	if txn.Amount != nil {
		out.Amount = new(big.Int).Set(txn.Amount)
	}
	if txn.Fee != nil {
		out.Fee = new(big.Int).Set(txn.Fee)
	}
	return out
}

func paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
