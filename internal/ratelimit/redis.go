// internal/ratelimit/redis.go
package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs counters with a shared Redis instance so every API node
// sees the same window state. Atomicity of Update comes from an optimistic
// WATCH/MULTI transaction retried on contention.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

const updateRetries = 5

func (s *RedisStore) Get(ctx context.Context, key string) (Counter, bool, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return Counter{}, false, nil
	}
	if err != nil {
		return Counter{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var counter Counter
	if err := json.Unmarshal(payload, &counter); err != nil {
		return Counter{}, false, fmt.Errorf("corrupt counter for %s: %w", key, err)
	}
	return counter, true, nil
}

func (s *RedisStore) Update(ctx context.Context, key string, ttl time.Duration, fn func(Counter) Counter) (Counter, error) {
	var result Counter

	txn := func(tx *redis.Tx) error {
		var current Counter
		payload, err := tx.Get(ctx, key).Bytes()
		if err != nil && err != redis.Nil {
			return err
		}
		if err == nil {
			if err := json.Unmarshal(payload, &current); err != nil {
				// Treat a corrupt value as absent; the window restarts
				current = Counter{}
			}
		}

		next := fn(current)
		encoded, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, ttl)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for attempt := 0; attempt < updateRetries; attempt++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return result, nil
		}
		if err != redis.TxFailedErr {
			return Counter{}, fmt.Errorf("redis update failed: %w", err)
		}
		// Lost the race with a concurrent writer; retry
	}
	return Counter{}, fmt.Errorf("redis update for %s did not converge after %d attempts", key, updateRetries)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
