package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// PinHintStore implements ports.PinHintStore using Redis. It stores one
// boolean per user: whether a transaction PIN exists. PIN digits are never
// written here in any form.
type PinHintStore struct {
	client *goredis.Client
	prefix string
}

// NewPinHintStore creates a Redis-backed PIN hint store.
func NewPinHintStore(client *goredis.Client) *PinHintStore {
	return &PinHintStore{
		client: client,
		prefix: "pinhint:",
	}
}

// Get returns the cached hint. known is false when nothing is stored.
func (s *PinHintStore) Get(ctx context.Context, userID string) (bool, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+userID).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, false, nil
		}
		return false, false, fmt.Errorf("redis pin hint get: %w", err)
	}
	return val == "1", true, nil
}

// Set stores the hint with a TTL.
func (s *PinHintStore) Set(ctx context.Context, userID string, hasPin bool, ttl time.Duration) error {
	val := "0"
	if hasPin {
		val = "1"
	}
	if err := s.client.Set(ctx, s.prefix+userID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis pin hint set: %w", err)
	}
	return nil
}

// Clear drops the hint, forcing the next bootstrap to re-derive it.
func (s *PinHintStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.prefix+userID).Err(); err != nil {
		return fmt.Errorf("redis pin hint clear: %w", err)
	}
	return nil
}
