package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigOrcamentosPadrao(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	config := NewConfig()

	assert.Equal(t, 30*time.Second, config.DirectionsTimeout)
	assert.Equal(t, 10*time.Second, config.GeocodeTimeout)
	assert.Equal(t, 240*time.Second, config.ProcessBudget)
	assert.Equal(t, int32(30), config.TempoEmbarquePadrao)
}

func TestNewConfigOrcamentosDoAmbiente(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("PROCESS_BUDGET_SECONDS", "60")
	t.Setenv("DIRECTIONS_TIMEOUT_SECONDS", "5")
	t.Setenv("TEMPO_EMBARQUE_PADRAO", "45")

	// Valor inválido cai no padrão em vez de derrubar o boot.
	t.Setenv("GEOCODE_TIMEOUT_SECONDS", "abc")

	config := NewConfig()

	assert.Equal(t, 60*time.Second, config.ProcessBudget)
	assert.Equal(t, 5*time.Second, config.DirectionsTimeout)
	assert.Equal(t, 10*time.Second, config.GeocodeTimeout)
	assert.Equal(t, int32(45), config.TempoEmbarquePadrao)
}
