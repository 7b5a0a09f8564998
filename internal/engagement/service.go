// internal/engagement/service.go

package engagement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fairwaylink/fairwaylink-backend/internal/matching"
	"github.com/fairwaylink/fairwaylink-backend/internal/ratelimit"
)

var (
	ErrCannotSwipeSelf  = errors.New("cannot swipe on yourself")
	ErrInvalidDirection = errors.New("direction must be like or pass")
)

// QuotaExceededError is returned when a free-tier actor is out of daily
// likes. It carries the reset time so callers can surface retry guidance.
type QuotaExceededError struct {
	ResetAt time.Time
}

func (e *QuotaExceededError) Error() string {
	return "daily like limit reached"
}

// TierSource resolves a user's subscription tier; satisfied by the matching
// repository
type TierSource interface {
	GetSubscriptionTier(ctx context.Context, userID int64) (matching.Tier, error)
}

// Notifier receives match events; satisfied by the websocket Hub
type Notifier interface {
	NotifyMatch(match *Match)
}

type Service interface {
	Swipe(ctx context.Context, actorID, targetID int64, direction Direction) (*SwipeResult, error)
	GetMatches(ctx context.Context, userID int64) ([]*Match, error)
	LikeQuota(ctx context.Context, userID int64) (ratelimit.QuotaDecision, error)
}

type service struct {
	repo     Repository
	quota    *ratelimit.DailyQuota
	tiers    TierSource
	safety   *SafetyService
	notifier Notifier
}

func NewService(repo Repository, quota *ratelimit.DailyQuota, tiers TierSource, safety *SafetyService, notifier Notifier) Service {
	return &service{
		repo:     repo,
		quota:    quota,
		tiers:    tiers,
		safety:   safety,
		notifier: notifier,
	}
}

// Swipe records a like/pass decision. Likes consume quota atomically before
// anything is recorded, so a denied actor leaves no trace; the consume is a
// single check-and-increment, which keeps concurrent likes from overspending
// the last unit. A reciprocal like forms a match exactly once.
func (s *service) Swipe(ctx context.Context, actorID, targetID int64, direction Direction) (*SwipeResult, error) {
	if actorID == targetID {
		return nil, ErrCannotSwipeSelf
	}
	if direction != DirectionLike && direction != DirectionPass {
		return nil, ErrInvalidDirection
	}

	if s.safety != nil {
		if err := s.safety.CheckSwipe(ctx, actorID); err != nil {
			return nil, err
		}
	}

	result := &SwipeResult{Accepted: true, RemainingLikes: -1}

	if direction == DirectionLike {
		tier, err := s.tiers.GetSubscriptionTier(ctx, actorID)
		if err != nil {
			return nil, err
		}

		decision, err := s.quota.Consume(ctx, actorID, tier)
		if err != nil {
			return nil, fmt.Errorf("failed to consume like quota: %w", err)
		}
		if !decision.Allowed {
			RecordQuotaDenied()
			return nil, &QuotaExceededError{ResetAt: decision.ResetAt}
		}
		if !decision.Unlimited {
			result.RemainingLikes = decision.Remaining
		}
	}

	swipe := &Swipe{ActorID: actorID, TargetID: targetID, Direction: direction}
	if err := s.repo.CreateSwipe(ctx, swipe); err != nil {
		return nil, err
	}
	RecordSwipe(string(direction))

	if direction == DirectionLike {
		isMatch, err := s.detectMatch(ctx, actorID, targetID, result)
		if err != nil {
			return nil, err
		}
		result.IsMatch = isMatch
	}

	return result, nil
}

// detectMatch runs the deterministic reciprocal-like lookup and creates the
// match idempotently: an existing match for the pair is reported, never
// duplicated.
func (s *service) detectMatch(ctx context.Context, actorID, targetID int64, result *SwipeResult) (bool, error) {
	reciprocal, err := s.repo.HasLike(ctx, targetID, actorID)
	if err != nil {
		return false, err
	}
	if !reciprocal {
		return false, nil
	}

	exists, err := s.repo.MatchExists(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}
	if exists {
		match, err := s.repo.GetMatchForPair(ctx, actorID, targetID)
		if err != nil {
			return false, err
		}
		result.Match = match
		return true, nil
	}

	match := &Match{User1ID: actorID, User2ID: targetID}
	if err := s.repo.CreateMatch(ctx, match); err != nil {
		return false, err
	}
	result.Match = match
	RecordMatch()

	if s.notifier != nil {
		s.notifier.NotifyMatch(match)
	}
	return true, nil
}

func (s *service) GetMatches(ctx context.Context, userID int64) ([]*Match, error) {
	return s.repo.GetUserMatches(ctx, userID)
}

// LikeQuota reports the actor's remaining daily likes without consuming any
func (s *service) LikeQuota(ctx context.Context, userID int64) (ratelimit.QuotaDecision, error) {
	tier, err := s.tiers.GetSubscriptionTier(ctx, userID)
	if err != nil {
		return ratelimit.QuotaDecision{}, err
	}
	return s.quota.CanConsume(ctx, userID, tier)
}
