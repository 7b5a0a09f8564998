// internal/matching/scoring.go
package matching

import "math"

// Scoring weights. Each factor's contribution is floored at zero before
// summing; the total is rounded and capped at 100.
const (
	distanceWeight    = 20
	handicapWeight    = 15
	styleExactPoints  = 15
	styleCrossPoints  = 10
	paceExactPoints   = 15
	paceCrossPoints   = 10
	groupExactPoints  = 10
	groupFlexPoints   = 5
	timeOverlapWeight = 15

	distanceFalloffMiles = 25 // beyond this, distance contributes nothing
	handicapFalloff      = 10 // handicap gap at which similarity bottoms out
)

// Score computes the compatibility score between seeker and candidate on a
// 0..100 scale. Deterministic: identical inputs always produce the same
// score. The weights are direction-independent even though the breakdown is
// evaluated from the seeker's side.
func Score(seeker, candidate *GolfProfile) (int, *ScoreBreakdown) {
	b := &ScoreBreakdown{}

	distance := Miles(seeker.Latitude, seeker.Longitude, candidate.Latitude, candidate.Longitude)
	b.Distance = math.Max(0, distanceFalloffMiles-distance) / distanceFalloffMiles * distanceWeight

	gap := math.Abs(float64(seeker.Handicap - candidate.Handicap))
	b.Handicap = math.Max(0, handicapFalloff-gap) / handicapFalloff * handicapWeight

	b.Style = styleScore(seeker.PlayingStyle, candidate.PlayingStyle)
	b.Pace = paceScore(seeker.PaceOfPlay, candidate.PaceOfPlay)
	b.GroupSize = groupSizeScore(seeker.PreferredGroupSize, candidate.PreferredGroupSize)
	b.TimeOverlap = timeOverlapScore(seeker.PreferredTimes, candidate.PreferredTimes)
	b.Rating = ratingBonus(seeker.AvgRating, candidate.AvgRating)

	total := b.Distance + b.Handicap + b.Style + b.Pace + b.GroupSize + b.TimeOverlap + b.Rating
	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, b
}

func styleScore(a, b PlayingStyle) float64 {
	if a == b {
		return styleExactPoints
	}
	// Casual and beginner-friendly golfers pair well together
	if (a == StyleCasual && b == StyleBeginnerFriendly) || (a == StyleBeginnerFriendly && b == StyleCasual) {
		return styleCrossPoints
	}
	return 0
}

func paceScore(a, b PaceOfPlay) float64 {
	if a == b {
		return paceExactPoints
	}
	// Moderate and relaxed paces are close enough to share a round
	if (a == PaceModerate && b == PaceRelaxed) || (a == PaceRelaxed && b == PaceModerate) {
		return paceCrossPoints
	}
	return 0
}

func groupSizeScore(a, b GroupSize) float64 {
	if a == b {
		return groupExactPoints
	}
	if a == GroupFlexible || b == GroupFlexible {
		return groupFlexPoints
	}
	return 0
}

// timeOverlapScore scales with the share of overlapping tee-time windows
// relative to the larger of the two sets.
func timeOverlapScore(seekerTimes, candidateTimes []TimeSlot) float64 {
	larger := len(seekerTimes)
	if len(candidateTimes) > larger {
		larger = len(candidateTimes)
	}
	if larger == 0 {
		return 0
	}

	slots := make(map[TimeSlot]bool, len(seekerTimes))
	for _, slot := range seekerTimes {
		slots[slot] = true
	}

	overlap := 0
	for _, slot := range candidateTimes {
		if slots[slot] {
			overlap++
		}
	}

	return float64(overlap) / float64(larger) * timeOverlapWeight
}

// ratingBonus rewards pairs whose average peer rating sits above 3 stars.
func ratingBonus(seekerRating, candidateRating float64) float64 {
	above := (seekerRating+candidateRating)/2 - 3
	if above < 0 {
		return 0
	}
	return math.Min(10, above) * 2
}
