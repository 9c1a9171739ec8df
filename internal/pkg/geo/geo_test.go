package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_ZeroForIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{12.9716, 77.5946},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		d := HaversineDistance(p[0], p[1], p[0], p[1])
		assert.InDelta(t, 0, d, 1e-9, "distance between identical points (%v) should be zero", p)
	}
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	cases := [][4]float64{
		{12.9716, 77.5946, 13.0000, 77.6000},
		{0, 0, 45, 90},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, c := range cases {
		ab := HaversineDistance(c[0], c[1], c[2], c[3])
		ba := HaversineDistance(c[2], c[3], c[0], c[1])
		assert.InDelta(t, ab, ba, 1e-6)
	}
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// Office in Bengaluru vs a point roughly 3.2 km away.
	d := HaversineDistance(12.9716, 77.5946, 13.0000, 77.6000)
	assert.Greater(t, d, 3000.0)
	assert.Less(t, d, 3400.0)
}

func TestGeofence_Enabled(t *testing.T) {
	assert.False(t, Geofence{OfficeLat: 0, OfficeLng: 0, RadiusM: 200}.Enabled())
	assert.True(t, Geofence{OfficeLat: 12.9716, OfficeLng: 0, RadiusM: 200}.Enabled())
	assert.True(t, Geofence{OfficeLat: 0, OfficeLng: 77.5946, RadiusM: 200}.Enabled())
	assert.True(t, Geofence{OfficeLat: 12.9716, OfficeLng: 77.5946, RadiusM: 200}.Enabled())
}

func TestGeofence_WithinBoundaryInclusive(t *testing.T) {
	g := Geofence{OfficeLat: 12.9716, OfficeLng: 77.5946, RadiusM: 200}

	assert.True(t, g.Within(0))
	assert.True(t, g.Within(199.99))
	assert.True(t, g.Within(200), "boundary distance should count as inside")
	assert.False(t, g.Within(200.01))
}

func TestGeofence_DistanceTo(t *testing.T) {
	g := Geofence{OfficeLat: 12.9716, OfficeLng: 77.5946, RadiusM: 200}

	assert.InDelta(t, 0, g.DistanceTo(12.9716, 77.5946), 1e-9)
	assert.False(t, g.Within(g.DistanceTo(13.0000, 77.6000)))
}
