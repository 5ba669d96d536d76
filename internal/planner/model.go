package planner

import (
	"time"

	"roteirizador/internal/provider"
)

// Passenger é um passageiro já geocodificado, pronto para clusterização.
type Passenger struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Cluster é uma parada candidata: centróide posicionado na rota-tronco e
// passageiros atribuídos com a distância de caminhada de cada um.
type Cluster struct {
	CentroidLat  float64           `json:"centroid_lat"`
	CentroidLng  float64           `json:"centroid_lng"`
	PassengerIDs []int64           `json:"passageiro_ids"`
	Distances    map[int64]float64 `json:"distancias"`
}

// StopPoint é uma parada persistida usada na partição e otimização.
type StopPoint struct {
	ID           int64   `json:"id"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	PassengerIDs []int64 `json:"passageiro_ids"`
}

func totalPassengers(stops []StopPoint) int {
	var total int
	for _, s := range stops {
		total += len(s.PassengerIDs)
	}
	return total
}

// OptimizeResult é uma rota sequenciada pelo provedor. WaypointOrder traz
// os índices das paradas de entrada na ordem de visita.
type OptimizeResult struct {
	WaypointOrder    []int          `json:"waypoint_order"`
	Legs             []provider.Leg `json:"legs"`
	TotalDistanceKm  float64        `json:"total_distance_km"`
	TotalDurationMin int            `json:"total_duration_min"`
	Polyline         string         `json:"polyline"`
}

// TimeGroup é o resultado da divisão por tempo: um subconjunto ordenável de
// paradas com o resultado da sua re-otimização. Result nulo indica falha do
// provedor para o grupo; OverBudget marca grupos que continuam acima do
// tempo máximo após o limite de recursão.
type TimeGroup struct {
	Stops      []StopPoint
	Result     *OptimizeResult
	OverBudget bool
}

// ScheduleEntry é o horário calculado de uma parada na ordem da rota.
type ScheduleEntry struct {
	Order     int       `json:"ordem"`
	Arrival   time.Time `json:"chegada"`
	Departure time.Time `json:"partida"`
}

// Params são os parâmetros escalares de uma roteirização.
type Params struct {
	WalkRadiusMeters float64   `json:"distancia_maxima_caminhada"`
	MaxTripMinutes   int       `json:"tempo_maximo_viagem"`
	VehicleCapacity  int       `json:"capacidade_veiculo"`
	ArrivalTime      time.Time `json:"horario_chegada"`
	DwellSeconds     int       `json:"dwell_seconds"`
}
