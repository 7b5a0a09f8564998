// internal/ratelimit/store.go
package ratelimit

import (
	"context"
	"time"
)

// Store is the counter persistence boundary. Update must apply fn atomically
// with respect to other updates of the same key; that atomicity is what keeps
// check-and-increment a single operation under concurrency.
type Store interface {
	// Get returns the live counter for key, reporting whether one exists.
	Get(ctx context.Context, key string) (Counter, bool, error)

	// Update applies fn to the current counter (zero value if absent) and
	// persists the result with the given TTL.
	Update(ctx context.Context, key string, ttl time.Duration, fn func(Counter) Counter) (Counter, error)

	// Delete removes the counter for key.
	Delete(ctx context.Context, key string) error
}
