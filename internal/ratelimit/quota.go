// internal/ratelimit/quota.go
// Daily like allowance. Built on the same Counter/Store primitives as the
// generic limiter, but the window is the calendar day rather than a rolling
// duration, and premium users bypass the store entirely.

package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/fairwaylink/fairwaylink-backend/internal/matching"
)

// ActionDailyLike is the counter action for like-quota tracking
const ActionDailyLike = "daily_like"

// QuotaDecision reports whether a like may be consumed
type QuotaDecision struct {
	Allowed   bool      `json:"allowed"`
	Unlimited bool      `json:"unlimited"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// DailyQuota tracks per-user like consumption per calendar day
type DailyQuota struct {
	store     Store
	freeLimit int
	now       func() time.Time
}

func NewDailyQuota(store Store, freeLimit int) *DailyQuota {
	return &DailyQuota{
		store:     store,
		freeLimit: freeLimit,
		now:       time.Now,
	}
}

// CanConsume reports quota state without consuming. Premium users never
// touch a counter; the bypass is structural, not a large limit.
func (q *DailyQuota) CanConsume(ctx context.Context, userID int64, tier matching.Tier) (QuotaDecision, error) {
	if tier == matching.TierPremium {
		// ResetAt is still reported so the decision serializes with a real
		// boundary rather than a zero timestamp.
		return QuotaDecision{Allowed: true, Unlimited: true, ResetAt: startOfNextDay(q.now())}, nil
	}

	now := q.now()
	counter, ok, err := q.store.Get(ctx, quotaKey(userID))
	if err != nil {
		return QuotaDecision{}, err
	}

	used := 0
	if ok && sameDay(counter.WindowStart, now) {
		used = counter.Count
	}

	remaining := q.freeLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return QuotaDecision{
		Allowed:   remaining > 0,
		Remaining: remaining,
		ResetAt:   startOfNextDay(now),
	}, nil
}

// Consume atomically takes one unit of quota. The limit check and the
// increment happen inside a single Store.Update, so two concurrent likes
// cannot both take the last unit.
func (q *DailyQuota) Consume(ctx context.Context, userID int64, tier matching.Tier) (QuotaDecision, error) {
	if tier == matching.TierPremium {
		return QuotaDecision{Allowed: true, Unlimited: true, ResetAt: startOfNextDay(q.now())}, nil
	}

	now := q.now()
	resetAt := startOfNextDay(now)
	decision := QuotaDecision{ResetAt: resetAt}

	// Counter stays readable slightly past the boundary for support tooling
	ttl := resetAt.Sub(now) + time.Hour

	_, err := q.store.Update(ctx, quotaKey(userID), ttl, func(c Counter) Counter {
		if !sameDay(c.WindowStart, now) {
			c = Counter{
				Identifier:  quotaKey(userID),
				Action:      ActionDailyLike,
				WindowStart: startOfDay(now),
			}
		}

		if c.Count >= q.freeLimit {
			decision.Allowed = false
			decision.Remaining = 0
			return c
		}

		c.Count++
		decision.Allowed = true
		decision.Remaining = q.freeLimit - c.Count
		return c
	})
	if err != nil {
		return QuotaDecision{}, err
	}
	return decision, nil
}

func quotaKey(userID int64) string {
	return counterKey("user:"+strconv.FormatInt(userID, 10), ActionDailyLike)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func startOfNextDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}
