package planner

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"googlemaps.github.io/maps"

	"roteirizador/internal/geomath"
)

func TestClusterEmpty(t *testing.T) {
	c := NewClusterer(newFakeProvider())

	dest := maps.LatLng{Lat: -23.55, Lng: -46.63}
	clusters := c.Cluster(context.Background(), nil, 300, &dest)

	assert.Empty(t, clusters)
}

func TestClusterWithoutDestination(t *testing.T) {
	c := NewClusterer(newFakeProvider())

	passengers := []Passenger{
		{ID: 1, Lat: -23.560, Lng: -46.640},
		{ID: 2, Lat: -23.570, Lng: -46.650},
	}

	clusters := c.Cluster(context.Background(), passengers, 300, nil)

	require.Len(t, clusters, 2)
	for i, cl := range clusters {
		assert.Equal(t, passengers[i].Lat, cl.CentroidLat)
		assert.Equal(t, passengers[i].Lng, cl.CentroidLng)
		assert.Equal(t, []int64{passengers[i].ID}, cl.PassengerIDs)
		assert.Zero(t, cl.Distances[passengers[i].ID])
	}
}

func TestTrunkRouteProviderFailure(t *testing.T) {
	fake := newFakeProvider()
	fake.routeErr = errors.New("boom")
	c := NewClusterer(fake)

	trunk := c.TrunkRoute(context.Background(),
		[]Passenger{{ID: 1, Lat: -23.60, Lng: -46.63}},
		maps.LatLng{Lat: -23.55, Lng: -46.63})

	assert.Nil(t, trunk)
}

func TestTrunkRouteUsesFarthestPassenger(t *testing.T) {
	fake := newFakeProvider()
	c := NewClusterer(fake)

	dest := maps.LatLng{Lat: -23.55, Lng: -46.63}
	passengers := []Passenger{
		{ID: 1, Lat: -23.560, Lng: -46.63},
		{ID: 2, Lat: -23.600, Lng: -46.63}, // mais distante
		{ID: 3, Lat: -23.570, Lng: -46.63},
	}

	trunk := c.TrunkRoute(context.Background(), passengers, dest)

	require.NotNil(t, trunk)
	assert.Equal(t, 1, fake.routeCalls)
	assert.InDelta(t, -23.600, trunk[0].Lat, 1e-4)
	assert.InDelta(t, dest.Lat, trunk[len(trunk)-1].Lat, 1e-4)
}

func TestClusterProjectsOntoTrunkAndMerges(t *testing.T) {
	fake := newFakeProvider()
	// tronco reto ao longo do meridiano -46.63
	fake.trunkPolyline = geomath.EncodePolyline([]maps.LatLng{
		{Lat: -23.600, Lng: -46.63},
		{Lat: -23.550, Lng: -46.63},
	})
	c := NewClusterer(fake)

	dest := maps.LatLng{Lat: -23.55, Lng: -46.63}
	passengers := []Passenger{
		{ID: 1, Lat: -23.5800, Lng: -46.6315}, // ~150m do tronco
		{ID: 2, Lat: -23.5805, Lng: -46.6312}, // ~120m, projeção vizinha da de cima
		{ID: 3, Lat: -23.5600, Lng: -46.6400}, // ~1km, puxado pelo raio
	}

	clusters := c.Cluster(context.Background(), passengers, 300, &dest)

	require.Len(t, clusters, 2)

	var merged, pulled *Cluster
	for i := range clusters {
		if len(clusters[i].PassengerIDs) == 2 {
			merged = &clusters[i]
		} else {
			pulled = &clusters[i]
		}
	}
	require.NotNil(t, merged)
	require.NotNil(t, pulled)

	assert.ElementsMatch(t, []int64{1, 2}, merged.PassengerIDs)
	// centróide fundido fica sobre o tronco
	assert.InDelta(t, -46.63, merged.CentroidLng, 2e-4)

	assert.Equal(t, []int64{3}, pulled.PassengerIDs)
	assert.InDelta(t, 300, pulled.Distances[3], 2)
}

func TestClusterDeterministicForSameOrder(t *testing.T) {
	fake := newFakeProvider()
	c := NewClusterer(fake)

	dest := maps.LatLng{Lat: -23.55, Lng: -46.63}
	passengers := scatterPassengers(20)

	first := c.Cluster(context.Background(), passengers, 300, &dest)
	second := c.Cluster(context.Background(), passengers, 300, &dest)

	assert.Equal(t, first, second)
}

// Cenário cheio: 50 passageiros num raio de ~5km, raio de caminhada 300m.
// Todo passageiro atribuído precisa ficar dentro do raio do centróide da sua
// parada, e a partição por capacidade 20 preserva o total.
func TestClusterRadiusInvariantAndCapacityPartition(t *testing.T) {
	fake := newFakeProvider()
	c := NewClusterer(fake)

	dest := maps.LatLng{Lat: -23.55, Lng: -46.63}
	passengers := scatterPassengers(50)

	clusters := c.Cluster(context.Background(), passengers, 300, &dest)
	require.NotEmpty(t, clusters)

	byID := make(map[int64]Passenger, len(passengers))
	for _, p := range passengers {
		byID[p.ID] = p
	}

	seen := make(map[int64]bool)
	for _, cl := range clusters {
		for _, pid := range cl.PassengerIDs {
			assert.False(t, seen[pid], "passageiro %d em mais de uma parada", pid)
			seen[pid] = true

			p := byID[pid]
			d := geomath.Haversine(p.Lat, p.Lng, cl.CentroidLat, cl.CentroidLng)
			assert.LessOrEqualf(t, d, 302.0, "passageiro %d a %.1fm do centróide", pid, d)
			assert.InDelta(t, d, cl.Distances[pid], 1)
		}
	}
	assert.Len(t, seen, 50)

	stops := make([]StopPoint, 0, len(clusters))
	for i, cl := range clusters {
		stops = append(stops, StopPoint{
			ID:           int64(i + 1),
			Lat:          cl.CentroidLat,
			Lng:          cl.CentroidLng,
			PassengerIDs: cl.PassengerIDs,
		})
	}

	groups := PartitionByCapacity(stops, 20)
	require.GreaterOrEqual(t, len(groups), 3) // ceil(50/20)

	var total int
	for _, g := range groups {
		count := totalPassengers(g)
		assert.LessOrEqual(t, count, 20)
		total += count
	}
	assert.Equal(t, 50, total)
}

// scatterPassengers espalha n passageiros deterministicamente em espiral ao
// redor do destino, até ~4.6km.
func scatterPassengers(n int) []Passenger {
	passengers := make([]Passenger, 0, n)
	for i := 0; i < n; i++ {
		ang := float64(i) * 2.399963
		r := 0.005 + 0.036*float64(i%10)/10
		passengers = append(passengers, Passenger{
			ID:  int64(i + 1),
			Lat: -23.55 + r*math.Sin(ang),
			Lng: -46.63 + r*math.Cos(ang),
		})
	}
	return passengers
}
