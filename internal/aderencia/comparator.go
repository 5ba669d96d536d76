package aderencia

import (
	"math"

	"googlemaps.github.io/maps"

	"roteirizador/internal/geomath"
)

// ToleranciaPadraoMetros é a distância máxima para considerar um ponto
// executado dentro da rota planejada.
const ToleranciaPadraoMetros = 100

// Resultado traz as métricas da comparação planejado x executado. Campos
// nulos significam "sem dado para calcular", nunca um valor assumido:
// sem rota planejada a aderência fica indefinida em vez de 100%.
type Resultado struct {
	KmPlanejado         *float64 `json:"km_planejado"`
	KmPercorrido        *float64 `json:"km_percorrido"`
	DesvioMaximoMetros  *float64 `json:"desvio_maximo_metros"`
	AderenciaPercentual *float64 `json:"aderencia_percentual"`
	PontosForaRota      *int     `json:"pontos_fora_rota"`
}

// Comparar avalia a aderência bidirecional entre a rota planejada e a
// executada. Direção 1 mede a fração de pontos executados dentro da
// tolerância da rota planejada; direção 2 mede a fração de pontos
// planejados cobertos por algum ponto executado. O resultado final é o
// menor das duas frações, penalizando tanto sair da rota quanto não
// cobri-la inteira (um atalho reduz a direção 2 mesmo sem desvio).
func Comparar(planejado, executado []maps.LatLng, toleranciaMetros float64) Resultado {
	resultado := Resultado{}
	if len(executado) == 0 {
		return resultado
	}
	resultado.KmPercorrido = floatPtr(round2(geomath.DistanceTotalKm(executado)))

	if len(planejado) == 0 {
		return resultado
	}
	resultado.KmPlanejado = floatPtr(round2(geomath.DistanceTotalKm(planejado)))

	var pontosFora int
	var desvioMaximo float64
	for _, ponto := range executado {
		dist := geomath.MinDistanceToLine(ponto.Lat, ponto.Lng, planejado)
		if dist > toleranciaMetros {
			pontosFora++
		}
		if dist > desvioMaximo {
			desvioMaximo = dist
		}
	}
	resultado.DesvioMaximoMetros = floatPtr(round2(desvioMaximo))
	resultado.PontosForaRota = &pontosFora

	direcao1 := float64(len(executado)-pontosFora) / float64(len(executado))

	var cobertos int
	for _, ponto := range planejado {
		if geomath.MinDistanceToLine(ponto.Lat, ponto.Lng, executado) <= toleranciaMetros {
			cobertos++
		}
	}
	direcao2 := float64(cobertos) / float64(len(planejado))

	resultado.AderenciaPercentual = floatPtr(round2(math.Min(direcao1, direcao2) * 100))
	return resultado
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floatPtr(v float64) *float64 {
	return &v
}
