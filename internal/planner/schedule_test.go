package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roteirizador/internal/provider"
)

func clock(hour, min, sec int) time.Time {
	return time.Date(2000, time.January, 1, hour, min, sec, 0, time.UTC)
}

func TestCalcOutboundScheduleSingleLeg(t *testing.T) {
	legs := []provider.Leg{{DurationSeconds: 600}}

	schedule := CalcOutboundSchedule(legs, clock(7, 0, 0), 60)

	assert.Len(t, schedule, 1)
	assert.Equal(t, clock(6, 49, 0), schedule[0].Departure)
	assert.Equal(t, clock(6, 48, 0), schedule[0].Arrival)
}

func TestCalcOutboundScheduleMultiLeg(t *testing.T) {
	legs := []provider.Leg{
		{DurationSeconds: 300},
		{DurationSeconds: 420},
		{DurationSeconds: 600},
	}

	schedule := CalcOutboundSchedule(legs, clock(7, 0, 0), 60)

	assert.Len(t, schedule, 3)
	// última parada: 06:59 menos a leg de 10min
	assert.Equal(t, clock(6, 49, 0), schedule[2].Departure)
	assert.Equal(t, clock(6, 48, 0), schedule[2].Arrival)
	assert.Equal(t, clock(6, 41, 0), schedule[1].Departure)
	assert.Equal(t, clock(6, 40, 0), schedule[1].Arrival)
	assert.Equal(t, clock(6, 35, 0), schedule[0].Departure)
	assert.Equal(t, clock(6, 34, 0), schedule[0].Arrival)

	for i := 0; i < len(schedule)-1; i++ {
		assert.True(t, schedule[i].Departure.Before(schedule[i+1].Departure))
		assert.True(t, schedule[i].Arrival.Before(schedule[i].Departure))
	}
}

func TestCalcOutboundScheduleDiscardsDate(t *testing.T) {
	anchor := time.Date(2026, time.March, 15, 7, 0, 0, 0, time.UTC)

	schedule := CalcOutboundSchedule([]provider.Leg{{DurationSeconds: 600}}, anchor, 60)

	assert.Equal(t, 2000, schedule[0].Departure.Year())
	assert.Equal(t, clock(6, 49, 0), schedule[0].Departure)
}

func TestCalcReturnScheduleForward(t *testing.T) {
	legs := []provider.Leg{
		{DurationSeconds: 600},
		{DurationSeconds: 300},
	}

	schedule := CalcReturnSchedule(legs, clock(18, 0, 0), 60)

	assert.Len(t, schedule, 2)
	assert.Equal(t, clock(18, 10, 0), schedule[0].Arrival)
	assert.Equal(t, clock(18, 11, 0), schedule[0].Departure)
	assert.Equal(t, clock(18, 16, 0), schedule[1].Arrival)
	assert.Equal(t, clock(18, 17, 0), schedule[1].Departure)
}

func TestInVehicleMinutes(t *testing.T) {
	assert.Equal(t, 11, InVehicleMinutes(clock(6, 49, 0), clock(7, 0, 0)))
	assert.Equal(t, 0, InVehicleMinutes(clock(7, 30, 0), clock(7, 0, 0)))
	assert.Equal(t, 0, InVehicleMinutes(clock(7, 0, 0), clock(7, 0, 0)))
}
