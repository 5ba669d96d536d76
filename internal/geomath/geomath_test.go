package geomath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func TestHaversine(t *testing.T) {
	// São Paulo (Sé) -> Campinas (aprox. 88 km em linha reta)
	d := Haversine(-23.5505, -46.6333, -22.9056, -47.0608)
	assert.InDelta(t, 83000, d, 6000)

	assert.Zero(t, Haversine(-23.5505, -46.6333, -23.5505, -46.6333))
}

func TestIsNearby(t *testing.T) {
	assert.True(t, IsNearby(-23.5505, -46.6333, -23.5510, -46.6333, 100))
	assert.False(t, IsNearby(-23.5505, -46.6333, -23.5605, -46.6333, 100))
}

func TestDistanceTotalKm(t *testing.T) {
	assert.Zero(t, DistanceTotalKm(nil))
	assert.Zero(t, DistanceTotalKm([]maps.LatLng{{Lat: -23.5, Lng: -46.6}}))

	coords := []maps.LatLng{
		{Lat: -23.5505, Lng: -46.6333},
		{Lat: -23.5605, Lng: -46.6333},
		{Lat: -23.5705, Lng: -46.6333},
	}
	// dois trechos de ~1.11 km cada
	total := DistanceTotalKm(coords)
	assert.InDelta(t, 2.22, total, 0.05)
}

func TestProjectPointOnSegmentDegenerate(t *testing.T) {
	x, y, d := projectPointOnSegment(3, 4, 0, 0, 0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.InDelta(t, 5, d, 1e-9)
}

func TestProjectPointOnSegmentClamped(t *testing.T) {
	// ponto além do fim do segmento projeta no extremo B
	x, y, d := projectPointOnSegment(15, 0, 0, 0, 10, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	assert.InDelta(t, 5, d, 1e-9)

	// ponto acima do meio projeta perpendicular
	x, y, d = projectPointOnSegment(5, 3, 0, 0, 10, 0)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	assert.InDelta(t, 3, d, 1e-9)
}

func TestProjectPointOnPolyline(t *testing.T) {
	refLat := -23.55
	line := []maps.LatLng{
		{Lat: -23.5500, Lng: -46.6400},
		{Lat: -23.5500, Lng: -46.6300},
		{Lat: -23.5500, Lng: -46.6200},
	}

	// ponto ~111 m ao sul da linha projeta na própria linha
	projLat, projLng, dist := ProjectPointOnPolyline(-23.5510, -46.6350, line, refLat)
	assert.InDelta(t, -23.5500, projLat, 1e-4)
	assert.InDelta(t, -46.6350, projLng, 1e-4)
	assert.InDelta(t, 111.3, dist, 2)
}

func TestProjectPointOnPolylineEmpty(t *testing.T) {
	projLat, projLng, dist := ProjectPointOnPolyline(-23.55, -46.63, nil, -23.55)
	assert.InDelta(t, -23.55, projLat, 1e-9)
	assert.InDelta(t, -46.63, projLng, 1e-9)
	assert.True(t, math.IsInf(dist, 1))
}

func TestMinDistanceToLine(t *testing.T) {
	line := []maps.LatLng{
		{Lat: -23.5500, Lng: -46.6400},
		{Lat: -23.5500, Lng: -46.6300},
	}
	d := MinDistanceToLine(-23.5500, -46.6300, line)
	assert.InDelta(t, 0, d, 1e-6)

	assert.True(t, math.IsInf(MinDistanceToLine(-23.55, -46.63, nil), 1))
}
