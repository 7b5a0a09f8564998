package matching

import (
	"math"
	"testing"
)

func TestMilesSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{37.7749, -122.4194, 37.8044, -122.2711},
		{40.7128, -74.0060, 34.0522, -118.2437},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 180},
	}

	for _, p := range pairs {
		ab := Miles(p[0], p[1], p[2], p[3])
		ba := Miles(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Miles not symmetric: %v vs %v for %v", ab, ba, p)
		}
		if ab < 0 {
			t.Errorf("Miles negative: %v for %v", ab, p)
		}
	}
}

func TestMilesZeroForSamePoint(t *testing.T) {
	if d := Miles(37.7749, -122.4194, 37.7749, -122.4194); d != 0 {
		t.Errorf("expected 0 for identical points, got %v", d)
	}
}

func TestMilesSanFranciscoToOakland(t *testing.T) {
	// SF downtown to Oakland downtown is roughly 8.4 miles great-circle
	d := Miles(37.7749, -122.4194, 37.8044, -122.2711)
	if d < 7.5 || d > 9.5 {
		t.Errorf("expected ~8.4 miles, got %v", d)
	}
}

func TestLongitudeSpanCoversRadius(t *testing.T) {
	// The span in degrees must always translate back to at least the radius
	// in miles, or the candidate bounding box cuts off users who are inside
	// the search radius. A degree of longitude at 57N is only ~37.6 miles,
	// so the required span there is much wider than at the equator.
	radius := 25.0
	for _, lat := range []float64{0, 37.7749, 57, 64.1} {
		span := longitudeSpan(lat, radius)
		coveredMiles := span * milesPerDegreeLat * math.Cos(lat*math.Pi/180)
		if coveredMiles < radius-1e-9 {
			t.Errorf("span at lat %v covers only %.1f miles, radius is %v", lat, coveredMiles, radius)
		}
	}

	if eq, high := longitudeSpan(0, radius), longitudeSpan(57, radius); high <= eq {
		t.Errorf("span must widen with latitude: %v at 57N vs %v at equator", high, eq)
	}
}

func TestLongitudeSpanClampedNearPoles(t *testing.T) {
	if span := longitudeSpan(89.9, 25); span != 180 {
		t.Errorf("expected full-hemisphere clamp near the pole, got %v", span)
	}
}
