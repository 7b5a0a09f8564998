// internal/matching/geo.go
package matching

import "math"

const (
	earthRadiusMiles  = 3959
	milesPerDegreeLat = 69.0
)

// Miles returns the great-circle distance in miles between two coordinates
// given in degrees. Coordinates are assumed valid; callers validate ranges.
func Miles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// longitudeSpan converts a radius in miles to a span of longitude degrees at
// the given latitude. A longitude degree shrinks toward the poles, so the
// span must widen with latitude or a bounding box built from it would cut
// off candidates that are inside the radius. Near the poles the span is
// clamped to cover every longitude.
func longitudeSpan(latDeg, radiusMiles float64) float64 {
	milesPerDegree := milesPerDegreeLat * math.Cos(latDeg*math.Pi/180)
	if milesPerDegree <= 0 || radiusMiles/milesPerDegree > 180 {
		return 180
	}
	return radiusMiles / milesPerDegree
}
