// internal/matching/ranking.go
package matching

import "sort"

// RankByTier orders scored candidates for presentation. Premium candidates
// get placement priority for every viewer tier, then verification, average
// rating and total rounds break ties. The sort is stable, so candidates tied
// on all four keys keep their relative input order, and the input multiset is
// never changed, only reordered.
func RankByTier(seekerTier Tier, scored []ScoredCandidate) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Profile, ranked[j].Profile

		if a.SubscriptionTier != b.SubscriptionTier {
			return a.SubscriptionTier == TierPremium
		}
		if a.IsVerified != b.IsVerified {
			return a.IsVerified
		}
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		return a.TotalRounds > b.TotalRounds
	})

	return ranked
}
