package planner

import (
	"math"
	"time"

	"roteirizador/internal/provider"
)

// atReferenceDate normaliza para uma data de referência fixa: só
// hora/minuto/segundo importam, a componente de data é descartada.
func atReferenceDate(t time.Time) time.Time {
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// CalcOutboundSchedule calcula os horários de cada parada retroativamente a
// partir do horário fixo de chegada ao destino: percorre as legs de trás
// para frente, a partida de cada parada recua a duração da leg e a chegada
// do veículo recua o dwell. O desembarque no destino também consome um
// dwell antes da âncora.
func CalcOutboundSchedule(legs []provider.Leg, arrivalTime time.Time, dwellSeconds int) []ScheduleEntry {
	dwell := time.Duration(dwellSeconds) * time.Second
	current := atReferenceDate(arrivalTime).Add(-dwell)

	schedule := make([]ScheduleEntry, len(legs))
	for i := len(legs) - 1; i >= 0; i-- {
		legDuration := time.Duration(legs[i].DurationSeconds) * time.Second
		departure := current.Add(-legDuration)
		arrival := departure.Add(-dwell)

		schedule[i] = ScheduleEntry{Order: i, Arrival: arrival, Departure: departure}
		current = arrival
	}
	return schedule
}

// CalcReturnSchedule calcula os horários progressivamente a partir do
// horário de saída do destino. A primeira leg é destino -> primeira parada.
func CalcReturnSchedule(legs []provider.Leg, departureTime time.Time, dwellSeconds int) []ScheduleEntry {
	current := atReferenceDate(departureTime)
	dwell := time.Duration(dwellSeconds) * time.Second

	schedule := make([]ScheduleEntry, len(legs))
	for i := range legs {
		legDuration := time.Duration(legs[i].DurationSeconds) * time.Second
		arrival := current.Add(legDuration)
		departure := arrival.Add(dwell)

		schedule[i] = ScheduleEntry{Order: i, Arrival: arrival, Departure: departure}
		current = departure
	}
	return schedule
}

// InVehicleMinutes é o tempo que o passageiro fica dentro do veículo: da
// partida da sua parada até a chegada ao destino, nunca negativo.
func InVehicleMinutes(stopDeparture, destinationArrival time.Time) int {
	diff := atReferenceDate(destinationArrival).Sub(atReferenceDate(stopDeparture)).Minutes()
	if diff < 0 {
		return 0
	}
	return int(math.Round(diff))
}
