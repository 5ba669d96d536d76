package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"googlemaps.github.io/maps"
)

// Config carrega a chave e os hints regionais do provedor. Substitui o
// estado global de chave de API: cada cliente recebe a sua explicitamente.
type Config struct {
	APIKey            string
	Region            string
	Language          string
	DirectionsTimeout time.Duration
	GeocodeTimeout    time.Duration
}

type GoogleProvider struct {
	client *maps.Client
	config Config
}

func NewGoogleProvider(config Config) (*GoogleProvider, error) {
	if config.Region == "" {
		config.Region = "br"
	}
	if config.Language == "" {
		config.Language = "pt-BR"
	}
	if config.DirectionsTimeout == 0 {
		config.DirectionsTimeout = 30 * time.Second
	}
	if config.GeocodeTimeout == 0 {
		config.GeocodeTimeout = 10 * time.Second
	}

	client, err := maps.NewClient(maps.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	return &GoogleProvider{client: client, config: config}, nil
}

func (g *GoogleProvider) Geocode(ctx context.Context, address string) (GeocodeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.GeocodeTimeout)
	defer cancel()

	req := &maps.GeocodingRequest{
		Address:  address,
		Region:   g.config.Region,
		Language: g.config.Language,
	}
	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		return GeocodeResult{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if len(results) == 0 {
		return GeocodeResult{}, ErrZeroResults
	}

	loc := results[0].Geometry.Location
	return GeocodeResult{
		Lat:              loc.Lat,
		Lng:              loc.Lng,
		FormattedAddress: results[0].FormattedAddress,
	}, nil
}

func (g *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.GeocodeTimeout)
	defer cancel()

	req := &maps.GeocodingRequest{
		LatLng:     &maps.LatLng{Lat: lat, Lng: lng},
		Language:   g.config.Language,
		ResultType: []string{"street_address", "route"},
	}
	results, err := g.client.ReverseGeocode(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if len(results) == 0 {
		return "", ErrZeroResults
	}
	return results[0].FormattedAddress, nil
}

func (g *GoogleProvider) Route(ctx context.Context, origin, destination maps.LatLng) (*RouteResult, error) {
	return g.directions(ctx, origin, destination, nil, time.Time{})
}

func (g *GoogleProvider) OptimizeRoute(ctx context.Context, origin, destination maps.LatLng, waypoints []maps.LatLng, departure time.Time) (*RouteResult, error) {
	if len(waypoints) > MaxWaypoints {
		return nil, fmt.Errorf("%w: %d waypoints exceed limit of %d", ErrProvider, len(waypoints), MaxWaypoints)
	}
	return g.directions(ctx, origin, destination, waypoints, departure)
}

func (g *GoogleProvider) directions(ctx context.Context, origin, destination maps.LatLng, waypoints []maps.LatLng, departure time.Time) (*RouteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.DirectionsTimeout)
	defer cancel()

	req := &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: destination.String(),
		Mode:        maps.TravelModeDriving,
		Region:      g.config.Region,
		Language:    g.config.Language,
	}
	if len(waypoints) > 0 {
		req.Optimize = true
		for _, wp := range waypoints {
			req.Waypoints = append(req.Waypoints, wp.String())
		}
	}
	if !departure.IsZero() {
		req.DepartureTime = strconv.FormatInt(departure.Unix(), 10)
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if len(routes) == 0 {
		return nil, ErrZeroResults
	}

	route := routes[0]
	result := &RouteResult{
		WaypointOrder: route.WaypointOrder,
		Polyline:      route.OverviewPolyline.Points,
	}
	for _, leg := range route.Legs {
		result.Legs = append(result.Legs, Leg{
			DistanceMeters:  leg.Distance.Meters,
			DurationSeconds: int(leg.Duration.Seconds()),
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
		})
	}
	return result, nil
}
