package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fairwaylink/fairwaylink-backend/internal/matching"
)

func testQuota(limit int) (*DailyQuota, *time.Time) {
	now := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)
	quota := NewDailyQuota(NewMemoryStore(), limit)
	quota.now = func() time.Time { return now }
	return quota, &now
}

func TestQuotaFreeTierExhaustion(t *testing.T) {
	quota, _ := testQuota(15)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		d, err := quota.Consume(ctx, 7, matching.TierFree)
		if err != nil {
			t.Fatal(err)
		}
		if !d.Allowed {
			t.Fatalf("like %d should be allowed", i)
		}
		if d.Remaining != 15-i {
			t.Errorf("like %d: remaining %d, want %d", i, d.Remaining, 15-i)
		}
	}

	d, err := quota.CanConsume(ctx, 7, matching.TierFree)
	if err != nil {
		t.Fatal(err)
	}
	if d.Allowed {
		t.Fatal("16th like should be denied")
	}
	if d.Remaining != 0 {
		t.Errorf("remaining %d, want 0", d.Remaining)
	}

	if d, _ := quota.Consume(ctx, 7, matching.TierFree); d.Allowed {
		t.Fatal("consume past the limit must be denied")
	}
}

func TestQuotaPremiumBypassesStore(t *testing.T) {
	store := NewMemoryStore()
	quota := NewDailyQuota(store, 15)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		d, err := quota.Consume(ctx, 9, matching.TierPremium)
		if err != nil {
			t.Fatal(err)
		}
		if !d.Allowed || !d.Unlimited {
			t.Fatalf("premium like %d should be allowed and unlimited: %+v", i, d)
		}
	}

	// The bypass is structural: no counter was ever written
	if store.Len() != 0 {
		t.Fatalf("premium consumption wrote %d counters", store.Len())
	}
}

func TestQuotaResetsAtCalendarDayBoundary(t *testing.T) {
	quota, now := testQuota(2)
	ctx := context.Background()

	quota.Consume(ctx, 3, matching.TierFree)
	quota.Consume(ctx, 3, matching.TierFree)
	if d, _ := quota.CanConsume(ctx, 3, matching.TierFree); d.Allowed {
		t.Fatal("quota should be exhausted")
	}

	// 90 minutes later crosses midnight; the reset is the day boundary, not
	// a rolling 24 hours from first use
	*now = now.Add(90 * time.Minute)
	d, _ := quota.CanConsume(ctx, 3, matching.TierFree)
	if !d.Allowed || d.Remaining != 2 {
		t.Fatalf("quota should reset at midnight: %+v", d)
	}

	consumed, _ := quota.Consume(ctx, 3, matching.TierFree)
	if !consumed.Allowed || consumed.Remaining != 1 {
		t.Fatalf("fresh day consume: %+v", consumed)
	}
}

func TestQuotaPremiumDecisionCarriesResetBoundary(t *testing.T) {
	quota, _ := testQuota(15)
	ctx := context.Background()
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	canConsume, err := quota.CanConsume(ctx, 9, matching.TierPremium)
	if err != nil {
		t.Fatal(err)
	}
	consume, err := quota.Consume(ctx, 9, matching.TierPremium)
	if err != nil {
		t.Fatal(err)
	}

	// Unlimited decisions still serialize with the real day boundary, not a
	// zero timestamp.
	for _, d := range []QuotaDecision{canConsume, consume} {
		if !d.ResetAt.Equal(want) {
			t.Fatalf("premium decision reset at %v, want %v", d.ResetAt, want)
		}
	}
}

func TestQuotaResetAtIsNextMidnight(t *testing.T) {
	quota, now := testQuota(15)
	d, err := quota.CanConsume(context.Background(), 5, matching.TierFree)
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !d.ResetAt.Equal(want) {
		t.Fatalf("reset at %v, want %v (now %v)", d.ResetAt, want, *now)
	}
}

func TestQuotaConcurrentConsumeNeverOverspends(t *testing.T) {
	quota, _ := testQuota(5)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := quota.Consume(ctx, 11, matching.TierFree)
			if err != nil {
				t.Error(err)
				return
			}
			results <- d.Allowed
		}()
	}
	wg.Wait()
	close(results)

	allowed := 0
	for ok := range results {
		if ok {
			allowed++
		}
	}
	if allowed != 5 {
		t.Fatalf("exactly 5 likes should be consumed, got %d", allowed)
	}
}
