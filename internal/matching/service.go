// internal/matching/service.go

package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylink/fairwaylink-backend/internal/common/utils"
)

var (
	ErrInvalidPreferences = errors.New("invalid matching preferences")
	ErrCompareSelf        = errors.New("cannot compute compatibility with yourself")
)

// Options bound the discovery pipeline and encode tier entitlements
type Options struct {
	MaxCandidatePool int
	FreeMaxRadius    float64
	PremiumMaxRadius float64
	PageSize         int
}

type Service interface {
	Discover(ctx context.Context, userID int64, prefs *MatchingPreferences) ([]ScoredCandidate, error)
	Compatibility(ctx context.Context, userID, otherID int64) (*ScoredCandidate, error)
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	return &service{repo: repo, opts: opts}
}

// Discover runs the full pipeline: validate preferences, fetch a bounded
// candidate pool, filter on hard constraints, score, rank. Read-only; the
// seeker snapshot and preferences are not mutated.
func (s *service) Discover(ctx context.Context, userID int64, prefs *MatchingPreferences) ([]ScoredCandidate, error) {
	if err := validatePreferences(prefs); err != nil {
		// Fail closed: invalid preferences produce no results, never a
		// partially filtered list.
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}

	seeker, err := s.repo.GetGolfProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	effective := s.applyTierEntitlements(seeker.SubscriptionTier, prefs)

	pool, err := s.repo.FindCandidates(ctx, seeker, effective.MaxDistance, s.opts.MaxCandidatePool)
	if err != nil {
		return nil, err
	}
	ObserveCandidatePool(len(pool))

	admitted := FilterCandidates(seeker, effective, pool)

	scored := make([]ScoredCandidate, 0, len(admitted))
	for _, candidate := range admitted {
		score, breakdown := Score(seeker, candidate)
		RecordCompatibilityScore(score)
		scored = append(scored, ScoredCandidate{
			Profile:       candidate,
			Score:         score,
			DistanceMiles: Miles(seeker.Latitude, seeker.Longitude, candidate.Latitude, candidate.Longitude),
			Breakdown:     breakdown,
		})
	}

	ranked := RankByTier(seeker.SubscriptionTier, scored)

	if len(ranked) > s.opts.PageSize {
		ranked = ranked[:s.opts.PageSize]
	}
	RecordDiscovery(string(seeker.SubscriptionTier))
	return ranked, nil
}

func (s *service) Compatibility(ctx context.Context, userID, otherID int64) (*ScoredCandidate, error) {
	if userID == otherID {
		return nil, ErrCompareSelf
	}

	seeker, err := s.repo.GetGolfProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.repo.GetGolfProfile(ctx, otherID)
	if err != nil {
		return nil, err
	}

	score, breakdown := Score(seeker, other)
	return &ScoredCandidate{
		Profile:       other,
		Score:         score,
		DistanceMiles: Miles(seeker.Latitude, seeker.Longitude, other.Latitude, other.Longitude),
		Breakdown:     breakdown,
	}, nil
}

// applyTierEntitlements returns a copy of prefs with tier limits applied:
// free-tier seekers get a capped radius and no access to the premium-only
// style/pace/group filters. The caller's prefs value is left untouched.
func (s *service) applyTierEntitlements(tier Tier, prefs *MatchingPreferences) *MatchingPreferences {
	effective := *prefs

	maxRadius := s.opts.PremiumMaxRadius
	if tier != TierPremium {
		maxRadius = s.opts.FreeMaxRadius
		effective.PlayingStyle = nil
		effective.PaceOfPlay = nil
		effective.GroupSize = nil
	}
	if effective.MaxDistance > maxRadius {
		effective.MaxDistance = maxRadius
	}

	return &effective
}

func validatePreferences(prefs *MatchingPreferences) error {
	if prefs == nil {
		return errors.New("preferences are required")
	}
	if err := utils.ValidateStruct(prefs); err != nil {
		return err
	}
	if prefs.HandicapRange.Min > prefs.HandicapRange.Max {
		return errors.New("handicap range min must not exceed max")
	}
	return nil
}
