package geomath

import (
	"math"

	"googlemaps.github.io/maps"
)

const earthRadiusMeters = 6371000

// metersPerDegree é a aproximação de metros por grau de latitude.
const metersPerDegree = 111320

// Haversine calcula a distância em metros entre dois pontos geográficos.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLng := (lon2 - lon1) * (math.Pi / 180)

	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsNearby verifica se dois pontos estão a até radius metros um do outro.
func IsNearby(lat1, lng1, lat2, lng2, radius float64) bool {
	return Haversine(lat1, lng1, lat2, lng2) <= radius
}

// DistanceTotalKm soma as distâncias consecutivas da polyline em km.
// Menos de 2 pontos resulta em 0.
func DistanceTotalKm(coords []maps.LatLng) float64 {
	if len(coords) < 2 {
		return 0
	}

	var total float64
	for i := 0; i < len(coords)-1; i++ {
		total += Haversine(coords[i].Lat, coords[i].Lng, coords[i+1].Lat, coords[i+1].Lng)
	}
	return total / 1000
}

// projectPointOnSegment projeta o ponto P no segmento AB em coordenadas
// planas (metros). Segmento degenerado colapsa para distância ao ponto A.
func projectPointOnSegment(px, py, ax, ay, bx, by float64) (float64, float64, float64) {
	dx := bx - ax
	dy := by - ay
	segLenSq := dx*dx + dy*dy
	if segLenSq < 1e-10 {
		return ax, ay, math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX := ax + t*dx
	projY := ay + t*dy
	return projX, projY, math.Hypot(px-projX, py-projY)
}

// ProjectPointOnPolyline encontra o ponto mais próximo na polyline para um
// dado lat/lng. Usa aproximação planar local com a longitude escalada por
// cos(refLat); válida apenas para rotas de escala urbana. Polyline vazia
// devolve o próprio ponto com distância infinita.
func ProjectPointOnPolyline(lat, lng float64, polyline []maps.LatLng, refLat float64) (float64, float64, float64) {
	cosRef := math.Cos(refLat * math.Pi / 180)
	px := lng * metersPerDegree * cosRef
	py := lat * metersPerDegree

	bestDist := math.Inf(1)
	bestX, bestY := px, py

	for i := 0; i < len(polyline)-1; i++ {
		ax := polyline[i].Lng * metersPerDegree * cosRef
		ay := polyline[i].Lat * metersPerDegree
		bx := polyline[i+1].Lng * metersPerDegree * cosRef
		by := polyline[i+1].Lat * metersPerDegree

		projX, projY, dist := projectPointOnSegment(px, py, ax, ay, bx, by)
		if dist < bestDist {
			bestDist = dist
			bestX = projX
			bestY = projY
		}
	}

	projLat := bestY / metersPerDegree
	projLng := bestX / (metersPerDegree * cosRef)
	return projLat, projLng, bestDist
}

// MinDistanceToLine devolve a menor distância em metros de um ponto para
// qualquer vértice da linha. Linha vazia devolve infinito.
func MinDistanceToLine(lat, lng float64, line []maps.LatLng) float64 {
	minDist := math.Inf(1)
	for _, c := range line {
		if d := Haversine(lat, lng, c.Lat, c.Lng); d < minDist {
			minDist = d
		}
	}
	return minDist
}
