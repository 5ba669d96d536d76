package provider

import (
	"context"
	"errors"
	"time"

	"googlemaps.github.io/maps"
)

// MaxWaypoints é o limite de paradas otimizáveis por requisição do
// provedor: 25 pontos por rota, reservando origem e destino.
const MaxWaypoints = 23

var (
	// ErrZeroResults indica que o provedor respondeu mas não encontrou
	// rota ou endereço (distinto de falha de transporte/autenticação).
	ErrZeroResults = errors.New("provider: zero results")
	// ErrProvider indica falha de transporte, autenticação ou resposta
	// malformada do provedor externo.
	ErrProvider = errors.New("provider: request failed")
)

type GeocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

type Leg struct {
	DistanceMeters  int    `json:"distance_m"`
	DurationSeconds int    `json:"duration_s"`
	StartAddress    string `json:"start_address,omitempty"`
	EndAddress      string `json:"end_address,omitempty"`
}

// RouteResult é o resultado bruto de uma requisição de direções:
// a ordem devolvida é relativa aos waypoints enviados.
type RouteResult struct {
	WaypointOrder []int  `json:"waypoint_order"`
	Legs          []Leg  `json:"legs"`
	Polyline      string `json:"polyline"`
}

func (r *RouteResult) TotalDistanceMeters() int {
	var total int
	for _, l := range r.Legs {
		total += l.DistanceMeters
	}
	return total
}

func (r *RouteResult) TotalDurationSeconds() int {
	var total int
	for _, l := range r.Legs {
		total += l.DurationSeconds
	}
	return total
}

// RoutingProvider abstrai o serviço externo de geocodificação e direções.
type RoutingProvider interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
	// Route calcula a rota de condução origem -> destino sem waypoints.
	Route(ctx context.Context, origin, destination maps.LatLng) (*RouteResult, error)
	// OptimizeRoute calcula origem -> destino passando pelos waypoints na
	// melhor ordem encontrada pelo provedor (no máximo MaxWaypoints).
	OptimizeRoute(ctx context.Context, origin, destination maps.LatLng, waypoints []maps.LatLng, departure time.Time) (*RouteResult, error)
}
