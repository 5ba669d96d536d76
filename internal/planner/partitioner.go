package planner

import (
	"context"
	"math"
	"sort"
	"time"

	"googlemaps.github.io/maps"
)

// maxSplitDepth limita a recursão da divisão por tempo. Um grupo que ainda
// excede o tempo máximo nesta profundidade é devolvido marcado como acima
// do orçamento em vez de dividir indefinidamente.
const maxSplitDepth = 4

// PartitionByCapacity divide as paradas em grupos que respeitam a
// capacidade do veículo, varrendo por ângulo polar ao redor do centróide
// geral para manter os grupos geograficamente contíguos. Uma parada cujo
// total de passageiros sozinho excede a capacidade vira um grupo próprio.
func PartitionByCapacity(stops []StopPoint, capacity int) [][]StopPoint {
	if len(stops) == 0 {
		return [][]StopPoint{}
	}

	if totalPassengers(stops) <= capacity {
		return [][]StopPoint{stops}
	}

	var centerLat, centerLng float64
	for _, s := range stops {
		centerLat += s.Lat
		centerLng += s.Lng
	}
	centerLat /= float64(len(stops))
	centerLng /= float64(len(stops))

	sorted := make([]StopPoint, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		ai := math.Atan2(sorted[i].Lat-centerLat, sorted[i].Lng-centerLng)
		aj := math.Atan2(sorted[j].Lat-centerLat, sorted[j].Lng-centerLng)
		return ai < aj
	})

	var groups [][]StopPoint
	var current []StopPoint
	currentCount := 0

	for _, s := range sorted {
		pax := len(s.PassengerIDs)
		if currentCount+pax > capacity && len(current) > 0 {
			groups = append(groups, current)
			current = nil
			currentCount = 0
		}
		current = append(current, s)
		currentCount += pax
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

// PartitionByTime verifica se a rota otimizada excede o tempo máximo e, se
// sim, divide as paradas na ordem otimizada no ponto em que o tempo
// acumulado atinge 90% do orçamento, re-otimiza cada metade e recorre. Cada
// re-otimização pode reordenar internamente a sua metade.
func (o *Optimizer) PartitionByTime(ctx context.Context, stops []StopPoint, result *OptimizeResult, maxMinutes int, destination maps.LatLng, departure time.Time) []TimeGroup {
	return o.partitionByTime(ctx, stops, result, maxMinutes, destination, departure, 0)
}

func (o *Optimizer) partitionByTime(ctx context.Context, stops []StopPoint, result *OptimizeResult, maxMinutes int, destination maps.LatLng, departure time.Time, depth int) []TimeGroup {
	if result.TotalDurationMin <= maxMinutes {
		return []TimeGroup{{Stops: stops, Result: result}}
	}
	if depth >= maxSplitDepth || len(stops) < 2 {
		return []TimeGroup{{Stops: stops, Result: result, OverBudget: true}}
	}

	ordered := make([]StopPoint, 0, len(stops))
	for _, idx := range result.WaypointOrder {
		if idx >= 0 && idx < len(stops) {
			ordered = append(ordered, stops[idx])
		}
	}

	// Ponto de corte: primeiro leg em que o acumulado chega a 90% do tempo
	// máximo. A última leg (parada -> destino) não conta.
	splitAt := len(ordered) / 2
	var accumulated float64
	for i := 0; i < len(result.Legs)-1; i++ {
		accumulated += float64(result.Legs[i].DurationSeconds) / 60
		if accumulated >= float64(maxMinutes)*0.9 {
			splitAt = i + 1
			if splitAt < 1 {
				splitAt = 1
			}
			break
		}
	}
	if splitAt < 1 {
		splitAt = 1
	} else if splitAt >= len(ordered) {
		splitAt = len(ordered) - 1
	}

	var out []TimeGroup
	for _, half := range [][]StopPoint{ordered[:splitAt], ordered[splitAt:]} {
		if len(half) == 0 {
			continue
		}
		res, err := o.Optimize(ctx, half, destination, departure)
		if err != nil {
			out = append(out, TimeGroup{Stops: half})
			continue
		}
		out = append(out, o.partitionByTime(ctx, half, res, maxMinutes, destination, departure, depth+1)...)
	}
	return out
}
