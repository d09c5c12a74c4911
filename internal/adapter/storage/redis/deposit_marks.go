package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DepositMarkStore implements ports.DepositMarkStore using Redis SET NX.
// It is a best-effort fast path for duplicate chain-event deliveries; the
// ledger's per-hash upsert remains the authoritative idempotency layer.
type DepositMarkStore struct {
	client *goredis.Client
	prefix string
}

// NewDepositMarkStore creates a new Redis-backed deposit mark store.
func NewDepositMarkStore(client *goredis.Client) *DepositMarkStore {
	return &DepositMarkStore{
		client: client,
		prefix: "deposit:seen:",
	}
}

// Seen reports whether a settled mark exists for the hash.
func (s *DepositMarkStore) Seen(ctx context.Context, hash string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+hash).Result()
	if err != nil {
		return false, fmt.Errorf("redis deposit mark: %w", err)
	}
	return n > 0, nil
}

// Mark records a settled hash with the given TTL.
func (s *DepositMarkStore) Mark(ctx context.Context, hash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+hash, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis deposit mark: %w", err)
	}
	return nil
}
