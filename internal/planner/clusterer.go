package planner

import (
	"context"
	"math"

	"googlemaps.github.io/maps"

	"roteirizador/internal/geomath"
	"roteirizador/internal/provider"
)

// mergeDistanceMeters é a distância máxima entre uma parada candidata e o
// centróide de um cluster existente para tentativa de fusão.
const mergeDistanceMeters = 200

// Clusterer posiciona paradas ao longo da rota-tronco em vez do endereço
// de cada passageiro, respeitando o raio máximo de caminhada.
type Clusterer struct {
	provider provider.RoutingProvider
}

func NewClusterer(p provider.RoutingProvider) *Clusterer {
	return &Clusterer{provider: p}
}

// TrunkRoute busca a rota-tronco: passageiro mais distante do destino até o
// destino, via direções do provedor. Devolve nil quando o provedor falha ou
// a polyline tem menos de 2 pontos.
func (c *Clusterer) TrunkRoute(ctx context.Context, passengers []Passenger, destination maps.LatLng) []maps.LatLng {
	if c.provider == nil || len(passengers) == 0 {
		return nil
	}

	farthest := passengers[0]
	farthestDist := geomath.Haversine(farthest.Lat, farthest.Lng, destination.Lat, destination.Lng)
	for _, p := range passengers[1:] {
		if d := geomath.Haversine(p.Lat, p.Lng, destination.Lat, destination.Lng); d > farthestDist {
			farthest = p
			farthestDist = d
		}
	}

	result, err := c.provider.Route(ctx, maps.LatLng{Lat: farthest.Lat, Lng: farthest.Lng}, destination)
	if err != nil || result.Polyline == "" {
		return nil
	}

	points := geomath.DecodePolyline(result.Polyline)
	if len(points) < 2 {
		return nil
	}
	return points
}

// Cluster agrupa passageiros em paradas. Sem destino, cada passageiro vira
// uma parada no próprio endereço. O resultado depende da ordem de entrada:
// a fusão é gulosa por inserção, o que evita a clusterização ótima de todos
// os pares mantendo o invariante de raio.
func (c *Clusterer) Cluster(ctx context.Context, passengers []Passenger, walkRadiusMeters float64, destination *maps.LatLng) []Cluster {
	if len(passengers) == 0 {
		return []Cluster{}
	}

	if destination == nil {
		clusters := make([]Cluster, 0, len(passengers))
		for _, p := range passengers {
			clusters = append(clusters, Cluster{
				CentroidLat:  p.Lat,
				CentroidLng:  p.Lng,
				PassengerIDs: []int64{p.ID},
				Distances:    map[int64]float64{p.ID: 0},
			})
		}
		return clusters
	}

	trunk := c.TrunkRoute(ctx, passengers, *destination)
	refLat := passengers[0].Lat

	raw := c.rawStops(passengers, trunk, walkRadiusMeters, *destination, refLat)
	clusters := mergeRawStops(raw, passengers, walkRadiusMeters)

	// Distância final de cada passageiro é contra o centróide fundido, não
	// contra a posição intermediária usada durante a simulação de fusão.
	byID := make(map[int64]Passenger, len(passengers))
	for _, p := range passengers {
		byID[p.ID] = p
	}
	for i := range clusters {
		for _, pid := range clusters[i].PassengerIDs {
			p := byID[pid]
			clusters[i].Distances[pid] = round1(
				geomath.Haversine(clusters[i].CentroidLat, clusters[i].CentroidLng, p.Lat, p.Lng))
		}
	}

	return clusters
}

type rawStop struct {
	lat, lng    float64
	passengerID int64
	walkDist    float64
}

func (c *Clusterer) rawStops(passengers []Passenger, trunk []maps.LatLng, walkRadius float64, destination maps.LatLng, refLat float64) []rawStop {
	raw := make([]rawStop, 0, len(passengers))
	for _, p := range passengers {
		if trunk != nil {
			projLat, projLng, dist := geomath.ProjectPointOnPolyline(p.Lat, p.Lng, trunk, refLat)

			if dist <= walkRadius {
				// Passageiro caminha até a rota principal.
				raw = append(raw, rawStop{
					lat:         projLat,
					lng:         projLng,
					passengerID: p.ID,
					walkDist:    round1(dist),
				})
			} else {
				// Parada movida na direção da rota pelo máximo do raio.
				var frac float64
				if dist > 0 {
					frac = walkRadius / dist
				}
				raw = append(raw, rawStop{
					lat:         p.Lat + (projLat-p.Lat)*frac,
					lng:         p.Lng + (projLng-p.Lng)*frac,
					passengerID: p.ID,
					walkDist:    round1(walkRadius),
				})
			}
			continue
		}

		// Sem rota-tronco: mover na direção do destino, limitado a 50% da
		// distância para não aproximar demais passageiros já próximos.
		distToDest := geomath.Haversine(p.Lat, p.Lng, destination.Lat, destination.Lng)
		if distToDest > 0 {
			frac := math.Min(walkRadius/distToDest, 0.5)
			stopLat := p.Lat + (destination.Lat-p.Lat)*frac
			stopLng := p.Lng + (destination.Lng-p.Lng)*frac
			raw = append(raw, rawStop{
				lat:         stopLat,
				lng:         stopLng,
				passengerID: p.ID,
				walkDist:    round1(geomath.Haversine(p.Lat, p.Lng, stopLat, stopLng)),
			})
		} else {
			raw = append(raw, rawStop{lat: p.Lat, lng: p.Lng, passengerID: p.ID})
		}
	}
	return raw
}

// mergeRawStops funde paradas candidatas próximas. Uma fusão só é aceita se
// TODOS os membros (e o novo) permanecem dentro do raio de caminhada em
// relação ao novo centróide, calculado como média corrente das posições.
func mergeRawStops(raw []rawStop, passengers []Passenger, walkRadius float64) []Cluster {
	byID := make(map[int64]Passenger, len(passengers))
	for _, p := range passengers {
		byID[p.ID] = p
	}

	var clusters []Cluster
	for _, rs := range raw {
		merged := false
		for i := range clusters {
			cl := &clusters[i]
			if geomath.Haversine(rs.lat, rs.lng, cl.CentroidLat, cl.CentroidLng) > mergeDistanceMeters {
				continue
			}

			n := float64(len(cl.PassengerIDs) + 1)
			newLat := (cl.CentroidLat*(n-1) + rs.lat) / n
			newLng := (cl.CentroidLng*(n-1) + rs.lng) / n

			allOK := true
			for _, pid := range cl.PassengerIDs {
				ep := byID[pid]
				if geomath.Haversine(ep.Lat, ep.Lng, newLat, newLng) > walkRadius {
					allOK = false
					break
				}
			}
			if allOK {
				np := byID[rs.passengerID]
				if geomath.Haversine(np.Lat, np.Lng, newLat, newLng) > walkRadius {
					allOK = false
				}
			}
			if !allOK {
				continue
			}

			cl.PassengerIDs = append(cl.PassengerIDs, rs.passengerID)
			cl.CentroidLat = newLat
			cl.CentroidLng = newLng
			cl.Distances[rs.passengerID] = rs.walkDist
			merged = true
			break
		}

		if !merged {
			clusters = append(clusters, Cluster{
				CentroidLat:  rs.lat,
				CentroidLng:  rs.lng,
				PassengerIDs: []int64{rs.passengerID},
				Distances:    map[int64]float64{rs.passengerID: rs.walkDist},
			})
		}
	}
	return clusters
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
