// internal/ratelimit/limiter.go
// Fixed-window rate limiting with block escalation, keyed by
// (identifier, action). The counter transition logic is pure; storage is
// behind the Store interface so multi-instance deployments can share state.

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrUnknownAction = errors.New("no rate limit configured for action")

// Config parameterizes one action kind
type Config struct {
	Window        time.Duration // count reset period
	MaxAttempts   int           // allowed actions per window
	BlockDuration time.Duration // lockout after exceeding
}

// Counter is the live window state for one (identifier, action) key. At most
// one counter is live per key; a counter whose window or block elapsed is
// superseded, not accumulated.
type Counter struct {
	Identifier  string    `json:"identifier"`
	Action      string    `json:"action"`
	WindowStart time.Time `json:"window_start"`
	Count       int       `json:"count"`
	Blocked     bool      `json:"blocked"`
	BlockUntil  time.Time `json:"block_until,omitempty"`
}

// Decision is the outcome of a single attempt. The limiter has no side
// channel beyond this value; callers handle logging and HTTP mapping.
type Decision struct {
	Allowed    bool          `json:"allowed"`
	Remaining  int           `json:"remaining"`
	RetryAfter time.Duration `json:"retry_after,omitempty"`
}

// advance applies one attempt to a counter and returns the successor state
// plus the decision. Pure function of (cfg, counter, now).
//
// State machine per key:
//   - blocked until BlockUntil, then reset to a fresh window
//   - window elapsed resets the count
//   - count below MaxAttempts increments and allows
//   - count at MaxAttempts blocks for BlockDuration; Count never exceeds
//     MaxAttempts
func advance(cfg Config, c Counter, now time.Time) (Counter, Decision) {
	if c.Blocked {
		if now.Before(c.BlockUntil) {
			return c, Decision{Allowed: false, RetryAfter: c.BlockUntil.Sub(now)}
		}
		c.Blocked = false
		c.BlockUntil = time.Time{}
		c.Count = 0
		c.WindowStart = now
	}

	if c.WindowStart.IsZero() || now.After(c.WindowStart.Add(cfg.Window)) {
		c.WindowStart = now
		c.Count = 0
	}

	if c.Count >= cfg.MaxAttempts {
		c.Blocked = true
		c.BlockUntil = now.Add(cfg.BlockDuration)
		return c, Decision{Allowed: false, RetryAfter: cfg.BlockDuration}
	}

	c.Count++
	return c, Decision{Allowed: true, Remaining: cfg.MaxAttempts - c.Count}
}

// Limiter evaluates attempts against per-action configurations
type Limiter struct {
	store   Store
	actions map[string]Config
	now     func() time.Time
}

func New(store Store, actions map[string]Config) *Limiter {
	return &Limiter{
		store:   store,
		actions: actions,
		now:     time.Now,
	}
}

// Allow records one attempt for (identifier, action) and reports whether it
// may proceed. The read-modify-write happens inside Store.Update, so two
// concurrent attempts cannot both consume the final slot.
func (l *Limiter) Allow(ctx context.Context, identifier, action string) (Decision, error) {
	cfg, ok := l.actions[action]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	var decision Decision
	ttl := cfg.Window + cfg.BlockDuration
	_, err := l.store.Update(ctx, counterKey(identifier, action), ttl, func(c Counter) Counter {
		c.Identifier = identifier
		c.Action = action
		next, d := advance(cfg, c, l.now())
		decision = d
		return next
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit store update failed: %w", err)
	}
	return decision, nil
}

// Reset clears the live counter for a key. Used by support tooling, not by
// the request path.
func (l *Limiter) Reset(ctx context.Context, identifier, action string) error {
	return l.store.Delete(ctx, counterKey(identifier, action))
}

func counterKey(identifier, action string) string {
	return "ratelimit:" + action + ":" + identifier
}
