package geomath

import (
	"strings"

	"googlemaps.github.io/maps"
)

// DecodePolyline decodifica uma polyline no formato do Google Maps
// (delta-encoded, precisão 1e5) para uma lista de pontos.
func DecodePolyline(encoded string) []maps.LatLng {
	var points []maps.LatLng
	index, lat, lng := 0, 0, 0
	for index < len(encoded) {
		var result, shift uint
		for {
			b := encoded[index] - 63
			index++
			result |= uint(b&0x1F) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		dlat := int(result)
		if dlat&1 != 0 {
			dlat = ^(dlat >> 1)
		} else {
			dlat = dlat >> 1
		}
		lat += dlat
		shift, result = 0, 0
		for {
			b := encoded[index] - 63
			index++
			result |= uint(b&0x1F) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		dlng := int(result)
		if dlng&1 != 0 {
			dlng = ^(dlng >> 1)
		} else {
			dlng = dlng >> 1
		}
		lng += dlng
		points = append(points, maps.LatLng{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}
	return points
}

// EncodePolyline codifica pontos no formato de polyline do Google Maps.
// Round-trip com DecodePolyline é exato na precisão de 1e-5.
func EncodePolyline(points []maps.LatLng) string {
	var sb strings.Builder
	prevLat, prevLng := 0, 0
	for _, p := range points {
		lat := round5(p.Lat)
		lng := round5(p.Lng)
		encodeValue(lat-prevLat, &sb)
		encodeValue(lng-prevLng, &sb)
		prevLat = lat
		prevLng = lng
	}
	return sb.String()
}

func round5(v float64) int {
	if v < 0 {
		return int(v*1e5 - 0.5)
	}
	return int(v*1e5 + 0.5)
}

func encodeValue(v int, sb *strings.Builder) {
	u := uint(v) << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		sb.WriteByte(byte((0x20|(u&0x1F))+63))
		u >>= 5
	}
	sb.WriteByte(byte(u + 63))
}
