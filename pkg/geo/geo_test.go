package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKnownDistances(t *testing.T) {
	// Bangalore city center to Koramangala, roughly 5.8 km.
	center := Point{Lng: 77.5946, Lat: 12.9716}
	koramangala := Point{Lng: 77.6245, Lat: 12.9352}

	d := Haversine(center, koramangala)
	assert.InDelta(t, 5200, d, 800)

	// Same point is zero.
	assert.Equal(t, 0.0, Haversine(center, center))

	// Symmetric.
	assert.InDelta(t, d, Haversine(koramangala, center), 0.0001)
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.2 km regardless of longitude.
	a := Point{Lng: 77.0, Lat: 12.0}
	b := Point{Lng: 77.0, Lat: 13.0}

	assert.InDelta(t, 111195, Haversine(a, b), 100)
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lng: 77.59, Lat: 12.97}.Valid())
	assert.True(t, Point{Lng: -180, Lat: -90}.Valid())
	assert.True(t, Point{Lng: 180, Lat: 90}.Valid())
	assert.True(t, Point{}.Valid())

	assert.False(t, Point{Lng: 181, Lat: 0}.Valid())
	assert.False(t, Point{Lng: 0, Lat: 91}.Valid())
	assert.False(t, Point{Lng: -180.5, Lat: 0}.Valid())
	assert.False(t, Point{Lng: math.NaN(), Lat: 0}.Valid())
	assert.False(t, Point{Lng: 0, Lat: math.Inf(1)}.Valid())
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "42 m", FormatDistance(42.4))
	assert.Equal(t, "843 m", FormatDistance(842.7))
	assert.Equal(t, "1.0 km", FormatDistance(1000))
	assert.Equal(t, "1.5 km", FormatDistance(1480))
	assert.Equal(t, "12.3 km", FormatDistance(12345))
}
