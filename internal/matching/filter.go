// internal/matching/filter.go
package matching

// FilterCandidates returns the subset of pool that satisfies every hard
// constraint in prefs. A candidate failing any single predicate is excluded;
// no score can re-admit it. Pure function, input order preserved.
func FilterCandidates(seeker *GolfProfile, prefs *MatchingPreferences, pool []*GolfProfile) []*GolfProfile {
	filtered := make([]*GolfProfile, 0, len(pool))
	for _, candidate := range pool {
		if admits(seeker, prefs, candidate) {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// admits checks all admission predicates for a single candidate. An empty
// preferred-time set is legal and does not filter on time overlap; overlap
// only affects scoring.
func admits(seeker *GolfProfile, prefs *MatchingPreferences, candidate *GolfProfile) bool {
	if candidate.ID == seeker.ID {
		return false
	}

	distance := Miles(seeker.Latitude, seeker.Longitude, candidate.Latitude, candidate.Longitude)
	if distance > prefs.MaxDistance {
		return false
	}

	if candidate.Handicap < prefs.HandicapRange.Min || candidate.Handicap > prefs.HandicapRange.Max {
		return false
	}

	if prefs.PlayingStyle != nil && candidate.PlayingStyle != *prefs.PlayingStyle {
		return false
	}

	if prefs.PaceOfPlay != nil && candidate.PaceOfPlay != *prefs.PaceOfPlay {
		return false
	}

	if prefs.GroupSize != nil && candidate.PreferredGroupSize != *prefs.GroupSize {
		return false
	}

	if prefs.OnlyVerified && !candidate.IsVerified {
		return false
	}

	if candidate.AvgRating < prefs.MinRating {
		return false
	}

	return true
}
