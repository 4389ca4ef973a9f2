package geo

import (
	"fmt"
	"math"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Point is a GeoJSON-ordered coordinate pair. Longitude and latitude live in
// named fields so call sites can never swap them silently.
type Point struct {
	Lng float64 `json:"lng" firestore:"lng"`
	Lat float64 `json:"lat" firestore:"lat"`
}

// Valid reports whether the point is finite and within coordinate range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) || math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return false
	}
	return p.Lng >= -180 && p.Lng <= 180 && p.Lat >= -90 && p.Lat <= 90
}

// Haversine returns the great-circle distance between two points in meters.
func Haversine(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

// FormatDistance renders a distance for display: below 1 km in rounded meters,
// otherwise in kilometers with one decimal.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
