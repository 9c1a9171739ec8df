package geo

import "math"

// HaversineDistance returns the great-circle distance between two
// coordinates in meters. Coordinates are taken as-is; no range checking.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000 // meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLng := (lng2 - lng1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Geofence is a circular radius around a fixed office coordinate. The zero
// value (both coordinates exactly 0) is the unset sentinel and disables
// evaluation entirely.
type Geofence struct {
	OfficeLat float64
	OfficeLng float64
	RadiusM   float64
}

// Enabled reports whether an office location is configured.
func (g Geofence) Enabled() bool {
	return g.OfficeLat != 0 || g.OfficeLng != 0
}

// DistanceTo returns the distance from the office to the given point in meters.
func (g Geofence) DistanceTo(lat, lng float64) float64 {
	return HaversineDistance(g.OfficeLat, g.OfficeLng, lat, lng)
}

// Within reports whether a distance falls inside the radius. The boundary
// is inclusive.
func (g Geofence) Within(distanceM float64) bool {
	return distanceM <= g.RadiusM
}
