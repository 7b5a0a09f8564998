// internal/engagement/safety.go
// Abuse prevention for the swipe surface. Quota limits how many likes a free
// user gets per day; this limits how fast anyone can swipe at all.

package engagement

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fairwaylink/fairwaylink-backend/internal/ratelimit"
)

// ActionSwipeBurst is the rate-limiter action for swipe flooding
const ActionSwipeBurst = "swipe_burst"

// RateLimitBlockedError is returned while an actor is locked out for
// swiping too fast
type RateLimitBlockedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitBlockedError) Error() string {
	return fmt.Sprintf("too many swipes, retry in %s", e.RetryAfter.Round(time.Second))
}

type SafetyService struct {
	limiter *ratelimit.Limiter
}

func NewSafetyService(limiter *ratelimit.Limiter) *SafetyService {
	return &SafetyService{limiter: limiter}
}

// CheckSwipe registers one swipe attempt against the burst limit
func (s *SafetyService) CheckSwipe(ctx context.Context, actorID int64) error {
	decision, err := s.limiter.Allow(ctx, strconv.FormatInt(actorID, 10), ActionSwipeBurst)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return &RateLimitBlockedError{RetryAfter: decision.RetryAfter}
	}
	return nil
}
