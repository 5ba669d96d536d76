package geomath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestDecodePolylineKnownValue(t *testing.T) {
	// Exemplo da documentação do formato de polylines do Google
	points := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, points[0].Lng, 1e-5)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-5)
	assert.InDelta(t, -120.95, points[1].Lng, 1e-5)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-5)
	assert.InDelta(t, -126.453, points[2].Lng, 1e-5)
}

func TestEncodePolylineKnownValue(t *testing.T) {
	encoded := EncodePolyline([]maps.LatLng{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)
}

func TestPolylineRoundTrip(t *testing.T) {
	original := "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	assert.Equal(t, original, EncodePolyline(DecodePolyline(original)))
}

func TestPolylineDecodeEncodePrecision(t *testing.T) {
	points := []maps.LatLng{
		{Lat: -23.55052, Lng: -46.63331},
		{Lat: -23.56, Lng: -46.64},
		{Lat: -23.57211, Lng: -46.65987},
	}
	decoded := DecodePolyline(EncodePolyline(points))
	require.Len(t, decoded, len(points))
	for i := range points {
		assert.InDelta(t, points[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, points[i].Lng, decoded[i].Lng, 1e-5)
	}
}

func TestDecodePolylineEmpty(t *testing.T) {
	assert.Empty(t, DecodePolyline(""))
}
