package matching

import "testing"

func scoredWith(id int64, tier Tier, verified bool, rating float64, rounds int) ScoredCandidate {
	return ScoredCandidate{
		Profile: &GolfProfile{
			ID:               id,
			SubscriptionTier: tier,
			IsVerified:       verified,
			AvgRating:        rating,
			TotalRounds:      rounds,
		},
		Score: 50,
	}
}

func ids(scored []ScoredCandidate) []int64 {
	out := make([]int64, len(scored))
	for i, c := range scored {
		out[i] = c.Profile.ID
	}
	return out
}

func TestRankPremiumFirstForAnyViewer(t *testing.T) {
	input := []ScoredCandidate{
		scoredWith(1, TierFree, true, 5, 100),
		scoredWith(2, TierPremium, false, 1, 0),
	}

	for _, viewer := range []Tier{TierFree, TierPremium} {
		ranked := RankByTier(viewer, input)
		if ranked[0].Profile.ID != 2 {
			t.Errorf("viewer %s: premium candidate should rank first, got %v", viewer, ids(ranked))
		}
	}
}

func TestRankTieBreakOrder(t *testing.T) {
	input := []ScoredCandidate{
		scoredWith(1, TierFree, false, 4.0, 20),
		scoredWith(2, TierFree, true, 3.0, 10), // verified beats rating
		scoredWith(3, TierFree, true, 4.5, 5),  // higher rating beats rounds
		scoredWith(4, TierFree, true, 4.5, 50), // more rounds wins the last tie
		scoredWith(5, TierPremium, false, 2.0, 1),
	}

	ranked := RankByTier(TierFree, input)
	want := []int64{5, 4, 3, 2, 1}
	got := ids(ranked)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRankStableOnFullTie(t *testing.T) {
	input := []ScoredCandidate{
		scoredWith(10, TierFree, true, 4.0, 30),
		scoredWith(11, TierFree, true, 4.0, 30),
		scoredWith(12, TierFree, true, 4.0, 30),
	}

	ranked := RankByTier(TierPremium, input)
	got := ids(ranked)
	want := []int64{10, 11, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("full ties must keep input order, got %v", got)
		}
	}
}

func TestRankPreservesMultiset(t *testing.T) {
	input := []ScoredCandidate{
		scoredWith(1, TierPremium, false, 2, 5),
		scoredWith(2, TierFree, true, 5, 99),
		scoredWith(3, TierFree, false, 1, 0),
	}

	ranked := RankByTier(TierFree, input)
	if len(ranked) != len(input) {
		t.Fatalf("ranker changed element count: %d vs %d", len(ranked), len(input))
	}

	seen := make(map[int64]int)
	for _, c := range input {
		seen[c.Profile.ID]++
	}
	for _, c := range ranked {
		seen[c.Profile.ID]--
	}
	for id, n := range seen {
		if n != 0 {
			t.Errorf("element %d count mismatch", id)
		}
	}

	// Input slice itself is untouched
	if input[0].Profile.ID != 1 || input[2].Profile.ID != 3 {
		t.Error("ranker mutated its input")
	}
}
