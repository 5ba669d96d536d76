package combustivel

import (
	"context"
	"errors"
	"time"
)

var ErrSemRegistros = errors.New("arquivo não contém registros de abastecimento")

type InterfaceService interface {
	AnalisarService(ctx context.Context, arquivo []byte) (AnaliseResponse, error)
}

// AnaliseResponse junta o cabeçalho do relatório com a análise.
type AnaliseResponse struct {
	Empresa       string     `json:"empresa"`
	PeriodoInicio *time.Time `json:"periodo_inicio"`
	PeriodoFim    *time.Time `json:"periodo_fim"`
	Analise
}

type Service struct{}

func NewCombustivelService() *Service {
	return &Service{}
}

func (s *Service) AnalisarService(_ context.Context, arquivo []byte) (AnaliseResponse, error) {
	parsed := ParseArquivo(arquivo)
	if len(parsed.Registros) == 0 {
		return AnaliseResponse{}, ErrSemRegistros
	}

	return AnaliseResponse{
		Empresa:       parsed.Empresa,
		PeriodoInicio: parsed.PeriodoInicio,
		PeriodoFim:    parsed.PeriodoFim,
		Analise:       Analisar(parsed.Registros),
	}, nil
}
