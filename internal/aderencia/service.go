package aderencia

import (
	"context"
	"errors"

	"roteirizador/internal/geomath"
)

var ErrSemCoordenadas = errors.New("arquivo executado não contém coordenadas válidas")

type InterfaceService interface {
	CompararService(ctx context.Context, planejado, executado []byte, toleranciaMetros float64) (ComparacaoResponse, error)
	AnalisarService(ctx context.Context, arquivo []byte) (AnaliseResponse, error)
}

type Service struct{}

func NewAderenciaService() *Service {
	return &Service{}
}

// CompararService extrai as coordenadas dos dois arquivos e calcula as
// métricas de aderência. O executado é obrigatório; sem planejado o
// resultado sai com aderência indefinida.
func (s *Service) CompararService(_ context.Context, planejado, executado []byte, toleranciaMetros float64) (ComparacaoResponse, error) {
	coordsExecutado := ExtrairCoordenadas(executado)
	if len(coordsExecutado) == 0 {
		return ComparacaoResponse{}, ErrSemCoordenadas
	}

	if toleranciaMetros <= 0 {
		toleranciaMetros = ToleranciaPadraoMetros
	}

	coordsPlanejado := ExtrairCoordenadas(planejado)
	response := ComparacaoResponse{
		Resultado: Comparar(coordsPlanejado, coordsExecutado, toleranciaMetros),
	}

	if minutos, ok := TempoTrajetoMinutos(planejado); ok {
		response.TempoPlanejadoMin = &minutos
	}
	if minutos, ok := TempoTrajetoMinutos(executado); ok {
		response.TempoExecutadoMin = &minutos
	}
	return response, nil
}

// AnalisarService resume um arquivo isolado: quantidade de pontos,
// quilometragem e duração quando os timestamps existem.
func (s *Service) AnalisarService(_ context.Context, arquivo []byte) (AnaliseResponse, error) {
	response := AnaliseResponse{}

	coords := ExtrairCoordenadas(arquivo)
	if len(coords) == 0 {
		return response, ErrSemCoordenadas
	}
	response.Coordenadas = len(coords)
	response.Km = floatPtr(round2(geomath.DistanceTotalKm(coords)))

	if minutos, ok := TempoTrajetoMinutos(arquivo); ok {
		response.TempoMin = &minutos
	}
	return response, nil
}
