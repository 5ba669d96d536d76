package roteirizacao

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var processamentosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "roteirizador_processamentos_total",
	Help: "Processamentos de roteirização por resultado.",
}, []string{"status"})

var processamentoDuracao = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "roteirizador_processamento_duracao_segundos",
	Help:    "Duração do pipeline completo de roteirização.",
	Buckets: []float64{5, 15, 30, 60, 120, 180, 240},
})
