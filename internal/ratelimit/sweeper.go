// internal/ratelimit/sweeper.go
package ratelimit

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically prunes expired counters from a MemoryStore. Redis
// handles its own key expiry, so only the in-process store needs this.
type Sweeper struct {
	store    *MemoryStore
	interval time.Duration
}

func NewSweeper(store *MemoryStore, interval time.Duration) *Sweeper {
	return &Sweeper{store: store, interval: interval}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.store.Sweep(time.Now()); removed > 0 {
				log.Printf("Swept %d expired rate-limit counters", removed)
			}
		case <-ctx.Done():
			return
		}
	}
}
