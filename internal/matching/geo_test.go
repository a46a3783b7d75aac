package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreatCircleKm(t *testing.T) {
	// One degree of longitude at the equator on a 6371.009 km sphere.
	dist := GreatCircleKm(0, 0, 0, 1)
	assert.InDelta(t, 111.195, dist, 0.01)

	assert.Zero(t, GreatCircleKm(40.7, -74.0, 40.7, -74.0))

	// Symmetric in its endpoints.
	assert.InDelta(t,
		GreatCircleKm(51.5, -0.12, 48.85, 2.35),
		GreatCircleKm(48.85, 2.35, 51.5, -0.12),
		1e-9)
}

func TestFilterByRadius(t *testing.T) {
	providers := []Provider{
		{ProviderID: "p-near", Latitude: 0, Longitude: 0.1},   // ~11 km
		{ProviderID: "p-mid", Latitude: 0, Longitude: 0.5},    // ~56 km
		{ProviderID: "p-far", Latitude: 0, Longitude: 2},      // ~222 km
		{ProviderID: "p-same", Latitude: 0, Longitude: 0},     // 0 km
	}

	got := FilterByRadius(0, 0, 100, providers)
	require.Len(t, got, 3)

	ids := make(map[string]ScoredProvider, len(got))
	for _, sp := range got {
		ids[sp.ProviderID] = sp
	}
	assert.Contains(t, ids, "p-near")
	assert.Contains(t, ids, "p-mid")
	assert.Contains(t, ids, "p-same")
	assert.NotContains(t, ids, "p-far")

	for _, sp := range got {
		assert.GreaterOrEqual(t, sp.DistanceKm, 0.0)
		assert.LessOrEqual(t, sp.DistanceKm, 100.0)
		assert.InDelta(t, sp.DistanceKm*0.621371, sp.DistanceMiles, 1e-9)
		assert.InDelta(t, sp.DistanceKm*1.2, sp.DriveTimeMinutes, 1e-9)
	}
}

func TestFilterByRadiusInclusiveBoundary(t *testing.T) {
	provider := Provider{ProviderID: "p-edge", Latitude: 0, Longitude: 1}
	dist := GreatCircleKm(0, 0, provider.Latitude, provider.Longitude)

	// A provider exactly at the travel limit is included.
	got := FilterByRadius(0, 0, dist, []Provider{provider})
	require.Len(t, got, 1)
	assert.Equal(t, "p-edge", got[0].ProviderID)

	got = FilterByRadius(0, 0, dist-1e-9, []Provider{provider})
	assert.Empty(t, got)
}

func TestFilterByRadiusEmptyResult(t *testing.T) {
	providers := []Provider{{ProviderID: "p-far", Latitude: 50, Longitude: 50}}
	got := FilterByRadius(0, 0, 25, providers)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
