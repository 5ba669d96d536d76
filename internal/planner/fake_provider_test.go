package planner

import (
	"context"
	"errors"
	"math"
	"time"

	"googlemaps.github.io/maps"

	"roteirizador/internal/geomath"
	"roteirizador/internal/provider"
)

// fakeProvider responde direções sinteticamente: mantém a ordem dos
// waypoints recebidos e deriva legs da distância em linha reta com uma
// velocidade fixa, o suficiente para exercitar remapeamento e divisão.
type fakeProvider struct {
	trunkPolyline  string
	routeErr       error
	optimizeErr    error
	reverseAddress string
	speedMS        float64
	// ordem devolvida relativa aos waypoints; nil mantém a ordem recebida
	waypointOrder []int

	routeCalls    int
	optimizeCalls int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{speedMS: 8.33, reverseAddress: "Rua de Referência, 100"}
}

func (f *fakeProvider) Geocode(_ context.Context, address string) (provider.GeocodeResult, error) {
	if address == "" {
		return provider.GeocodeResult{}, provider.ErrZeroResults
	}
	return provider.GeocodeResult{Lat: -23.55, Lng: -46.63, FormattedAddress: address}, nil
}

func (f *fakeProvider) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	if f.reverseAddress == "" {
		return "", provider.ErrZeroResults
	}
	return f.reverseAddress, nil
}

func (f *fakeProvider) Route(_ context.Context, origin, destination maps.LatLng) (*provider.RouteResult, error) {
	f.routeCalls++
	if f.routeErr != nil {
		return nil, f.routeErr
	}
	polyline := f.trunkPolyline
	if polyline == "" {
		polyline = geomath.EncodePolyline([]maps.LatLng{origin, destination})
	}
	return &provider.RouteResult{
		Legs:     []provider.Leg{f.leg(origin, destination)},
		Polyline: polyline,
	}, nil
}

func (f *fakeProvider) OptimizeRoute(_ context.Context, origin, destination maps.LatLng, waypoints []maps.LatLng, _ time.Time) (*provider.RouteResult, error) {
	f.optimizeCalls++
	if f.optimizeErr != nil {
		return nil, f.optimizeErr
	}
	if len(waypoints) > provider.MaxWaypoints {
		return nil, errors.New("too many waypoints")
	}

	order := f.waypointOrder
	if order == nil {
		order = make([]int, len(waypoints))
		for i := range order {
			order[i] = i
		}
	}

	path := []maps.LatLng{origin}
	for _, idx := range order {
		path = append(path, waypoints[idx])
	}
	path = append(path, destination)

	result := &provider.RouteResult{
		WaypointOrder: order,
		Polyline:      geomath.EncodePolyline(path),
	}
	for i := 0; i < len(path)-1; i++ {
		result.Legs = append(result.Legs, f.leg(path[i], path[i+1]))
	}
	return result, nil
}

func (f *fakeProvider) leg(a, b maps.LatLng) provider.Leg {
	dist := geomath.Haversine(a.Lat, a.Lng, b.Lat, b.Lng)
	return provider.Leg{
		DistanceMeters:  int(math.Round(dist)),
		DurationSeconds: int(math.Round(dist / f.speedMS)),
	}
}
