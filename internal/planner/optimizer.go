package planner

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"googlemaps.github.io/maps"

	"roteirizador/internal/geomath"
	"roteirizador/internal/provider"
)

var ErrNoStops = errors.New("planner: no stops to optimize")

// Optimizer sequencia paradas chamando o provedor de direções, fatiando a
// requisição quando o grupo excede o limite de waypoints do provedor.
type Optimizer struct {
	provider provider.RoutingProvider
}

func NewOptimizer(p provider.RoutingProvider) *Optimizer {
	return &Optimizer{provider: p}
}

// Optimize sequencia as paradas até o destino. A parada mais distante do
// destino é sempre a origem da requisição, para o veículo partir da
// extremidade e seguir em direção ao destino.
func (o *Optimizer) Optimize(ctx context.Context, stops []StopPoint, destination maps.LatLng, departure time.Time) (*OptimizeResult, error) {
	if o.provider == nil || len(stops) == 0 {
		return nil, ErrNoStops
	}

	if len(stops) <= provider.MaxWaypoints {
		return o.singleRequest(ctx, stops, destination, departure)
	}
	return o.chunkedRequest(ctx, stops, destination, departure)
}

func (o *Optimizer) singleRequest(ctx context.Context, stops []StopPoint, destination maps.LatLng, departure time.Time) (*OptimizeResult, error) {
	if len(stops) == 1 {
		result, err := o.provider.Route(ctx, maps.LatLng{Lat: stops[0].Lat, Lng: stops[0].Lng}, destination)
		if err != nil {
			return nil, err
		}
		return buildResult(result, []int{0}), nil
	}

	farthestIdx := farthestFrom(stops, destination)
	origin := stops[farthestIdx]

	otherIndices := make([]int, 0, len(stops)-1)
	waypoints := make([]maps.LatLng, 0, len(stops)-1)
	for i, s := range stops {
		if i == farthestIdx {
			continue
		}
		otherIndices = append(otherIndices, i)
		waypoints = append(waypoints, maps.LatLng{Lat: s.Lat, Lng: s.Lng})
	}

	result, err := o.provider.OptimizeRoute(ctx,
		maps.LatLng{Lat: origin.Lat, Lng: origin.Lng}, destination, waypoints, departure)
	if err != nil {
		return nil, err
	}

	// A ordem devolvida é relativa aos waypoints; remapear para os índices
	// originais, com a origem forçada na frente.
	fullOrder := make([]int, 0, len(stops))
	fullOrder = append(fullOrder, farthestIdx)
	for _, j := range result.WaypointOrder {
		if j >= 0 && j < len(otherIndices) {
			fullOrder = append(fullOrder, otherIndices[j])
		}
	}

	return buildResult(result, fullOrder), nil
}

// chunkedRequest divide grupos acima do limite de waypoints em blocos
// pré-ordenados por distância decrescente ao destino, encadeando o destino
// de cada bloco na primeira parada do bloco seguinte. Apenas a polyline do
// primeiro bloco é mantida; a composta não seria contínua entre blocos.
func (o *Optimizer) chunkedRequest(ctx context.Context, stops []StopPoint, destination maps.LatLng, departure time.Time) (*OptimizeResult, error) {
	sorted := make([]StopPoint, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := geomath.Haversine(sorted[i].Lat, sorted[i].Lng, destination.Lat, destination.Lng)
		dj := geomath.Haversine(sorted[j].Lat, sorted[j].Lng, destination.Lat, destination.Lng)
		return di > dj
	})

	var chunks [][]StopPoint
	for i := 0; i < len(sorted); i += provider.MaxWaypoints {
		end := i + provider.MaxWaypoints
		if end > len(sorted) {
			end = len(sorted)
		}
		chunks = append(chunks, sorted[i:end])
	}

	indexByID := make(map[int64]int, len(stops))
	for i, s := range stops {
		indexByID[s.ID] = i
	}

	out := &OptimizeResult{}
	var totalDistKm float64
	var totalDurMin int

	for i, chunk := range chunks {
		var chunkDest maps.LatLng
		if i < len(chunks)-1 {
			next := chunks[i+1][0]
			chunkDest = maps.LatLng{Lat: next.Lat, Lng: next.Lng}
		} else {
			chunkDest = destination
		}

		result, err := o.Optimize(ctx, chunk, chunkDest, departure)
		if err != nil {
			return nil, err
		}

		for _, localIdx := range result.WaypointOrder {
			if localIdx >= 0 && localIdx < len(chunk) {
				out.WaypointOrder = append(out.WaypointOrder, indexByID[chunk[localIdx].ID])
			}
		}
		out.Legs = append(out.Legs, result.Legs...)
		totalDistKm += result.TotalDistanceKm
		totalDurMin += result.TotalDurationMin
		if out.Polyline == "" {
			out.Polyline = result.Polyline
		}
	}

	out.TotalDistanceKm = math.Round(totalDistKm*100) / 100
	out.TotalDurationMin = totalDurMin
	return out, nil
}

// OptimizeReturn sequencia a rota de volta: a origem é o destino da ida
// (empresa) e a parada mais distante é forçada como último desembarque.
func (o *Optimizer) OptimizeReturn(ctx context.Context, stops []StopPoint, origin maps.LatLng, departure time.Time) (*OptimizeResult, error) {
	if o.provider == nil || len(stops) == 0 {
		return nil, ErrNoStops
	}

	if len(stops) == 1 {
		result, err := o.provider.Route(ctx, origin, maps.LatLng{Lat: stops[0].Lat, Lng: stops[0].Lng})
		if err != nil {
			return nil, err
		}
		return buildResult(result, []int{0}), nil
	}

	farthestIdx := farthestFrom(stops, origin)
	finalStop := stops[farthestIdx]

	otherIndices := make([]int, 0, len(stops)-1)
	waypoints := make([]maps.LatLng, 0, len(stops)-1)
	for i, s := range stops {
		if i == farthestIdx {
			continue
		}
		otherIndices = append(otherIndices, i)
		waypoints = append(waypoints, maps.LatLng{Lat: s.Lat, Lng: s.Lng})
	}

	result, err := o.provider.OptimizeRoute(ctx, origin,
		maps.LatLng{Lat: finalStop.Lat, Lng: finalStop.Lng}, waypoints, departure)
	if err != nil {
		return nil, err
	}

	fullOrder := make([]int, 0, len(stops))
	for _, j := range result.WaypointOrder {
		if j >= 0 && j < len(otherIndices) {
			fullOrder = append(fullOrder, otherIndices[j])
		}
	}
	fullOrder = append(fullOrder, farthestIdx)

	return buildResult(result, fullOrder), nil
}

func farthestFrom(stops []StopPoint, ref maps.LatLng) int {
	farthestIdx := 0
	farthestDist := geomath.Haversine(stops[0].Lat, stops[0].Lng, ref.Lat, ref.Lng)
	for i := 1; i < len(stops); i++ {
		if d := geomath.Haversine(stops[i].Lat, stops[i].Lng, ref.Lat, ref.Lng); d > farthestDist {
			farthestIdx = i
			farthestDist = d
		}
	}
	return farthestIdx
}

func buildResult(result *provider.RouteResult, order []int) *OptimizeResult {
	return &OptimizeResult{
		WaypointOrder:    order,
		Legs:             result.Legs,
		TotalDistanceKm:  math.Round(float64(result.TotalDistanceMeters())/10) / 100,
		TotalDurationMin: int(math.Round(float64(result.TotalDurationSeconds()) / 60)),
		Polyline:         result.Polyline,
	}
}
