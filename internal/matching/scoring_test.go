package matching

import "testing"

func TestScoreBounds(t *testing.T) {
	profiles := []*GolfProfile{
		sfProfile(1),
		{ID: 2, Latitude: 40.7, Longitude: -74.0, Handicap: -10, AvgRating: 0},
		{ID: 3, Latitude: 37.7749, Longitude: -122.4194, Handicap: 54, AvgRating: 5,
			PreferredTimes: []TimeSlot{TimeMorning, TimeAfternoon, TimeWeekendsOnly}},
	}

	for _, a := range profiles {
		for _, b := range profiles {
			score, _ := Score(a, b)
			if score < 0 || score > 100 {
				t.Errorf("score out of bounds: %d for %d vs %d", score, a.ID, b.ID)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	seeker := sfProfile(1)
	candidate := sfProfile(2)
	candidate.Handicap = 8

	first, _ := Score(seeker, candidate)
	second, _ := Score(seeker, candidate)
	if first != second {
		t.Errorf("score not deterministic: %d vs %d", first, second)
	}
}

func TestScorePerfectAlignment(t *testing.T) {
	seeker := sfProfile(1)
	twin := sfProfile(2)
	// Same location, handicap, style, pace, group size and time set; both
	// rated 4.2: 20+15+15+15+10+15 plus rating bonus (4.2-3)*2 = 2.4.
	score, b := Score(seeker, twin)
	if score != 92 {
		t.Errorf("expected 92 for an identical twin, got %d (%+v)", score, b)
	}
}

func TestScoreDistanceFalloff(t *testing.T) {
	seeker := sfProfile(1)
	far := sfProfile(2)
	far.Latitude = 38.2 // well beyond 25 miles

	_, b := Score(seeker, far)
	if b.Distance != 0 {
		t.Errorf("expected zero distance contribution beyond falloff, got %v", b.Distance)
	}
}

func TestScoreCrossCompatiblePairs(t *testing.T) {
	seeker := sfProfile(1)
	seeker.PlayingStyle = StyleCasual
	seeker.PaceOfPlay = PaceModerate

	candidate := sfProfile(2)
	candidate.PlayingStyle = StyleBeginnerFriendly
	candidate.PaceOfPlay = PaceRelaxed

	_, b := Score(seeker, candidate)
	if b.Style != 10 {
		t.Errorf("casual/beginner_friendly should score 10, got %v", b.Style)
	}
	if b.Pace != 10 {
		t.Errorf("moderate/relaxed should score 10, got %v", b.Pace)
	}

	// Competitive vs beginner-friendly gets nothing
	seeker.PlayingStyle = StyleCompetitive
	_, b = Score(seeker, candidate)
	if b.Style != 0 {
		t.Errorf("competitive/beginner_friendly should score 0, got %v", b.Style)
	}
}

func TestScoreGroupSizeFlexible(t *testing.T) {
	seeker := sfProfile(1)
	seeker.PreferredGroupSize = GroupTwosome
	candidate := sfProfile(2)
	candidate.PreferredGroupSize = GroupFlexible

	_, b := Score(seeker, candidate)
	if b.GroupSize != 5 {
		t.Errorf("flexible on one side should score 5, got %v", b.GroupSize)
	}
}

func TestScoreTimeOverlap(t *testing.T) {
	seeker := sfProfile(1)
	seeker.PreferredTimes = []TimeSlot{TimeMorning, TimeAfternoon}
	candidate := sfProfile(2)
	candidate.PreferredTimes = []TimeSlot{TimeMorning, TimeEvening, TimeWeekendsOnly}

	// 1 shared slot / max(2,3) * 15 = 5
	_, b := Score(seeker, candidate)
	if b.TimeOverlap != 5 {
		t.Errorf("expected 5 points of time overlap, got %v", b.TimeOverlap)
	}

	candidate.PreferredTimes = nil
	_, b = Score(seeker, candidate)
	if b.TimeOverlap != 0 {
		t.Errorf("no shared times should score 0, got %v", b.TimeOverlap)
	}
}

func TestScoreRatingBonusOnlyAboveThree(t *testing.T) {
	seeker := sfProfile(1)
	seeker.AvgRating = 2.5
	candidate := sfProfile(2)
	candidate.AvgRating = 3.0

	_, b := Score(seeker, candidate)
	if b.Rating != 0 {
		t.Errorf("average rating below 3 must not contribute, got %v", b.Rating)
	}

	seeker.AvgRating = 5
	candidate.AvgRating = 5
	_, b = Score(seeker, candidate)
	if b.Rating != 4 {
		t.Errorf("expected rating bonus 4 for two 5-star players, got %v", b.Rating)
	}
}
