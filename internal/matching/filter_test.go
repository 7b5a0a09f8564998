package matching

import "testing"

// sfProfile builds a baseline candidate near San Francisco
func sfProfile(id int64) *GolfProfile {
	return &GolfProfile{
		ID:                 id,
		Latitude:           37.7749,
		Longitude:          -122.4194,
		Handicap:           12,
		PreferredTimes:     []TimeSlot{TimeMorning},
		PlayingStyle:       StyleCasual,
		PaceOfPlay:         PaceModerate,
		PreferredGroupSize: GroupFoursome,
		IsVerified:         true,
		AvgRating:          4.2,
		SubscriptionTier:   TierFree,
	}
}

func basePrefs() *MatchingPreferences {
	return &MatchingPreferences{
		MaxDistance:   10,
		HandicapRange: HandicapRange{Min: 0, Max: 30},
	}
}

func TestFilterExcludesSelf(t *testing.T) {
	seeker := sfProfile(1)
	out := FilterCandidates(seeker, basePrefs(), []*GolfProfile{sfProfile(1), sfProfile(2)})
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected only candidate 2, got %v", out)
	}
}

func TestFilterExcludesBeyondRadius(t *testing.T) {
	seeker := sfProfile(1)
	far := sfProfile(2)
	far.Latitude = 38.0 // ~15.5 miles north, outside a 10-mile radius
	far.AvgRating = 5   // a perfect rating cannot re-admit it

	out := FilterCandidates(seeker, basePrefs(), []*GolfProfile{far})
	if len(out) != 0 {
		t.Fatalf("expected candidate at ~15 miles excluded, got %v", out)
	}
}

func TestFilterHandicapRange(t *testing.T) {
	seeker := sfProfile(1)
	prefs := basePrefs()
	prefs.HandicapRange = HandicapRange{Min: 5, Max: 15}

	inside := sfProfile(2)
	inside.Handicap = 15
	below := sfProfile(3)
	below.Handicap = 4
	above := sfProfile(4)
	above.Handicap = 16

	out := FilterCandidates(seeker, prefs, []*GolfProfile{inside, below, above})
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected only the in-range candidate, got %v", out)
	}
}

func TestFilterOptionalPredicates(t *testing.T) {
	seeker := sfProfile(1)

	style := StyleCompetitive
	pace := PaceFast
	size := GroupTwosome

	tests := []struct {
		name  string
		prefs func(*MatchingPreferences)
		tweak func(*GolfProfile)
		want  int
	}{
		{"style mismatch", func(p *MatchingPreferences) { p.PlayingStyle = &style }, func(c *GolfProfile) {}, 0},
		{"style match", func(p *MatchingPreferences) { p.PlayingStyle = &style }, func(c *GolfProfile) { c.PlayingStyle = StyleCompetitive }, 1},
		{"pace mismatch", func(p *MatchingPreferences) { p.PaceOfPlay = &pace }, func(c *GolfProfile) {}, 0},
		{"pace match", func(p *MatchingPreferences) { p.PaceOfPlay = &pace }, func(c *GolfProfile) { c.PaceOfPlay = PaceFast }, 1},
		{"group mismatch", func(p *MatchingPreferences) { p.GroupSize = &size }, func(c *GolfProfile) {}, 0},
		{"group match", func(p *MatchingPreferences) { p.GroupSize = &size }, func(c *GolfProfile) { c.PreferredGroupSize = GroupTwosome }, 1},
		{"verified only vs unverified", func(p *MatchingPreferences) { p.OnlyVerified = true }, func(c *GolfProfile) { c.IsVerified = false }, 0},
		{"min rating too low", func(p *MatchingPreferences) { p.MinRating = 4.5 }, func(c *GolfProfile) { c.AvgRating = 4.0 }, 0},
		{"min rating satisfied", func(p *MatchingPreferences) { p.MinRating = 4.0 }, func(c *GolfProfile) { c.AvgRating = 4.0 }, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prefs := basePrefs()
			tc.prefs(prefs)
			candidate := sfProfile(2)
			tc.tweak(candidate)

			out := FilterCandidates(seeker, prefs, []*GolfProfile{candidate})
			if len(out) != tc.want {
				t.Errorf("got %d candidates, want %d", len(out), tc.want)
			}
		})
	}
}

func TestFilterEmptyTimeSetDoesNotFilter(t *testing.T) {
	seeker := sfProfile(1)
	candidate := sfProfile(2)
	candidate.PreferredTimes = []TimeSlot{TimeEvening} // no overlap with seeker

	prefs := basePrefs()
	prefs.PreferredTimes = nil

	out := FilterCandidates(seeker, prefs, []*GolfProfile{candidate})
	if len(out) != 1 {
		t.Fatal("time overlap must not affect admission")
	}
}

func TestFilterOutputIsSubset(t *testing.T) {
	seeker := sfProfile(1)
	pool := []*GolfProfile{sfProfile(2), sfProfile(3), sfProfile(4)}
	pool[1].Handicap = 50 // out of range

	out := FilterCandidates(seeker, basePrefs(), pool)

	inPool := make(map[int64]bool)
	for _, c := range pool {
		inPool[c.ID] = true
	}
	for _, c := range out {
		if !inPool[c.ID] {
			t.Errorf("candidate %d not in input pool", c.ID)
		}
	}
	if len(out) != 2 {
		t.Errorf("expected 2 admitted, got %d", len(out))
	}
}
