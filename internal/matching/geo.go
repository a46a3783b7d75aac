package matching

import "math"

const (
	// Mean Earth radius in kilometers (IUGG), spherical model.
	earthRadiusKm = 6371.009

	milesPerKm = 0.621371

	// Constant-speed drive time assumption. Not a routing estimate.
	assumedSpeedKmh = 50
)

// GreatCircleKm computes the great-circle distance in kilometers between
// two WGS 84 coordinates over a spherical Earth.
func GreatCircleKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// FilterByRadius returns the providers within maxDistanceKm of the member
// position (inclusive boundary), annotated with distance and drive-time
// metrics. Output order carries no meaning; an empty result is valid.
func FilterByRadius(memberLat, memberLon, maxDistanceKm float64, providers []Provider) []ScoredProvider {
	inRadius := make([]ScoredProvider, 0, len(providers))

	for _, provider := range providers {
		distKm := GreatCircleKm(memberLat, memberLon, provider.Latitude, provider.Longitude)
		if distKm > maxDistanceKm {
			continue
		}

		inRadius = append(inRadius, ScoredProvider{
			Provider:         provider,
			DistanceKm:       distKm,
			DistanceMiles:    distKm * milesPerKm,
			DriveTimeMinutes: (distKm / assumedSpeedKmh) * 60,
		})
	}

	return inRadius
}
