package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"googlemaps.github.io/maps"
)

var testDestination = maps.LatLng{Lat: -23.55, Lng: -46.63}

func TestOptimizeNoStops(t *testing.T) {
	o := NewOptimizer(newFakeProvider())

	result, err := o.Optimize(context.Background(), nil, testDestination, time.Now())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoStops)
}

func TestOptimizeSingleStop(t *testing.T) {
	fake := newFakeProvider()
	o := NewOptimizer(fake)

	stops := []StopPoint{stopAt(1, -23.58, -46.63, 4)}
	result, err := o.Optimize(context.Background(), stops, testDestination, time.Now())

	require.NoError(t, err)
	assert.Equal(t, []int{0}, result.WaypointOrder)
	assert.Equal(t, 1, fake.routeCalls)
	assert.Zero(t, fake.optimizeCalls)
	assert.Len(t, result.Legs, 1)
	assert.Positive(t, result.TotalDistanceKm)
}

func TestOptimizeFarthestStopIsOrigin(t *testing.T) {
	fake := newFakeProvider()
	o := NewOptimizer(fake)

	stops := []StopPoint{
		stopAt(1, -23.57, -46.63, 4),
		stopAt(2, -23.59, -46.63, 4),
		stopAt(3, -23.64, -46.63, 4), // mais distante do destino
	}

	result, err := o.Optimize(context.Background(), stops, testDestination, time.Now())

	require.NoError(t, err)
	require.Len(t, result.WaypointOrder, 3)
	assert.Equal(t, 2, result.WaypointOrder[0])
	assert.ElementsMatch(t, []int{0, 1, 2}, result.WaypointOrder)
	assert.Len(t, result.Legs, 3)
}

func TestOptimizeRemapsProviderOrder(t *testing.T) {
	fake := newFakeProvider()
	fake.waypointOrder = []int{1, 0} // provedor inverte os dois waypoints
	o := NewOptimizer(fake)

	stops := []StopPoint{
		stopAt(1, -23.57, -46.63, 4),
		stopAt(2, -23.59, -46.63, 4),
		stopAt(3, -23.64, -46.63, 4),
	}

	result, err := o.Optimize(context.Background(), stops, testDestination, time.Now())

	require.NoError(t, err)
	// origem forçada (índice 2) e depois os waypoints na ordem devolvida
	assert.Equal(t, []int{2, 1, 0}, result.WaypointOrder)
}

func TestOptimizeProviderError(t *testing.T) {
	fake := newFakeProvider()
	fake.optimizeErr = errors.New("OVER_QUERY_LIMIT")
	o := NewOptimizer(fake)

	stops := []StopPoint{
		stopAt(1, -23.57, -46.63, 4),
		stopAt(2, -23.59, -46.63, 4),
	}

	result, err := o.Optimize(context.Background(), stops, testDestination, time.Now())

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestOptimizeChunksAboveWaypointLimit(t *testing.T) {
	fake := newFakeProvider()
	o := NewOptimizer(fake)

	var stops []StopPoint
	for i := 0; i < 30; i++ {
		stops = append(stops, stopAt(int64(i+1), -23.56-0.002*float64(i), -46.63, 2))
	}

	result, err := o.Optimize(context.Background(), stops, testDestination, time.Now())

	require.NoError(t, err)
	// 30 paradas com limite 23: exatamente 2 blocos (23 + 7)
	assert.Equal(t, 2, fake.optimizeCalls)
	assert.Zero(t, fake.routeCalls)

	require.Len(t, result.WaypointOrder, 30)
	seen := make(map[int]bool, 30)
	for _, idx := range result.WaypointOrder {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 30)
		assert.False(t, seen[idx], "índice %d duplicado na ordem final", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, 30)

	// uma leg por parada em cada bloco, polyline do primeiro bloco
	assert.Len(t, result.Legs, 30)
	assert.NotEmpty(t, result.Polyline)
	assert.Positive(t, result.TotalDistanceKm)
	assert.Positive(t, result.TotalDurationMin)
}

func TestOptimizeReturnFarthestStopIsLast(t *testing.T) {
	fake := newFakeProvider()
	o := NewOptimizer(fake)

	origin := testDestination
	stops := []StopPoint{
		stopAt(1, -23.57, -46.63, 4),
		stopAt(2, -23.64, -46.63, 4), // desembarca por último
		stopAt(3, -23.59, -46.63, 4),
	}

	result, err := o.OptimizeReturn(context.Background(), stops, origin, time.Now())

	require.NoError(t, err)
	require.Len(t, result.WaypointOrder, 3)
	assert.Equal(t, 1, result.WaypointOrder[len(result.WaypointOrder)-1])
	assert.ElementsMatch(t, []int{0, 1, 2}, result.WaypointOrder)
}

func TestOptimizeReturnSingleStop(t *testing.T) {
	fake := newFakeProvider()
	o := NewOptimizer(fake)

	result, err := o.OptimizeReturn(context.Background(),
		[]StopPoint{stopAt(1, -23.60, -46.63, 4)}, testDestination, time.Now())

	require.NoError(t, err)
	assert.Equal(t, []int{0}, result.WaypointOrder)
	assert.Equal(t, 1, fake.routeCalls)
}
