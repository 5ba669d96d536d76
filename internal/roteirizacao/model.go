package roteirizacao

import (
	db "roteirizador/db/sqlc"
	"roteirizador/validation"
)

const (
	StatusRascunho    = "rascunho"
	StatusProcessando = "processando"
	StatusConcluida   = "concluida"
	StatusFinalizada  = "finalizada"

	DirecaoIda   = "ida"
	DirecaoVolta = "volta"
)

type PassageiroRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Endereco string `json:"endereco" validate:"required"`
	Bairro   string `json:"bairro"`
	Cidade   string `json:"cidade"`
	Uf       string `json:"uf"`
}

type CreateRoteirizacaoRequest struct {
	Nome                     string              `json:"nome" validate:"required"`
	EnderecoDestino          string              `json:"endereco_destino" validate:"required"`
	DistanciaMaximaCaminhada float64             `json:"distancia_maxima_caminhada" validate:"gte=0"`
	TempoMaximoViagem        int32               `json:"tempo_maximo_viagem" validate:"gte=0"`
	CapacidadeVeiculo        int32               `json:"capacidade_veiculo" validate:"gte=0"`
	HorarioChegada           string              `json:"horario_chegada"`
	HorarioSaidaVolta        string              `json:"horario_saida_volta"`
	TempoEmbarqueSegundos    int32               `json:"tempo_embarque_segundos" validate:"gte=0"`
	Passageiros              []PassageiroRequest `json:"passageiros" validate:"dive"`
}

type ParametrosRequest struct {
	DistanciaMaximaCaminhada float64 `json:"distancia_maxima_caminhada" validate:"gte=0"`
	TempoMaximoViagem        int32   `json:"tempo_maximo_viagem" validate:"gte=0"`
	CapacidadeVeiculo        int32   `json:"capacidade_veiculo" validate:"gte=0"`
	HorarioChegada           string  `json:"horario_chegada"`
	HorarioSaidaVolta        string  `json:"horario_saida_volta"`
	TempoEmbarqueSegundos    int32   `json:"tempo_embarque_segundos" validate:"gte=0"`
}

type RotaEditadaRequest struct {
	RoteiroID int64   `json:"roteiro_id" validate:"required"`
	ParadaIDs []int64 `json:"parada_ids" validate:"required,min=1"`
}

type RoteirizacaoResponse struct {
	ID                       int64    `json:"id"`
	Nome                     string   `json:"nome"`
	EnderecoDestino          string   `json:"endereco_destino"`
	DestinoLat               *float64 `json:"destino_lat,omitempty"`
	DestinoLng               *float64 `json:"destino_lng,omitempty"`
	DistanciaMaximaCaminhada float64  `json:"distancia_maxima_caminhada"`
	TempoMaximoViagem        int32    `json:"tempo_maximo_viagem"`
	CapacidadeVeiculo        int32    `json:"capacidade_veiculo"`
	HorarioChegada           string   `json:"horario_chegada"`
	HorarioSaidaVolta        string   `json:"horario_saida_volta,omitempty"`
	TempoEmbarqueSegundos    int32    `json:"tempo_embarque_segundos"`
	DistanciaTotalKm         *float64 `json:"distancia_total_km,omitempty"`
	DuracaoTotalMin          *int32   `json:"duracao_total_min,omitempty"`
	TotalRoteiros            *int32   `json:"total_roteiros,omitempty"`
	Status                   string   `json:"status"`
	TotalPassageiros         int      `json:"total_passageiros,omitempty"`
}

func (r *RoteirizacaoResponse) ParseFromObject(obj db.Roteirizacao) {
	r.ID = obj.ID
	r.Nome = obj.Nome
	r.EnderecoDestino = obj.EnderecoDestino
	if obj.DestinoLat.Valid && obj.DestinoLng.Valid {
		lat, lng := obj.DestinoLat.Float64, obj.DestinoLng.Float64
		r.DestinoLat = &lat
		r.DestinoLng = &lng
	}
	r.DistanciaMaximaCaminhada = obj.DistanciaMaximaCaminhada
	r.TempoMaximoViagem = obj.TempoMaximoViagem
	r.CapacidadeVeiculo = obj.CapacidadeVeiculo
	r.HorarioChegada = obj.HorarioChegada
	r.HorarioSaidaVolta = validation.GetStringFromNull(obj.HorarioSaidaVolta)
	r.TempoEmbarqueSegundos = obj.TempoEmbarqueSegundos
	if obj.DistanciaTotalKm.Valid {
		km := obj.DistanciaTotalKm.Float64
		r.DistanciaTotalKm = &km
	}
	if obj.DuracaoTotalMin.Valid {
		min := obj.DuracaoTotalMin.Int32
		r.DuracaoTotalMin = &min
	}
	if obj.TotalRoteiros.Valid {
		n := obj.TotalRoteiros.Int32
		r.TotalRoteiros = &n
	}
	r.Status = obj.Status
}

type ParadaResponse struct {
	ID             int64   `json:"id"`
	Nome           string  `json:"nome,omitempty"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	Ordem          int32   `json:"ordem,omitempty"`
	HorarioChegada string  `json:"horario_chegada,omitempty"`
	HorarioPartida string  `json:"horario_partida,omitempty"`
	PassageiroIDs  []int64 `json:"passageiro_ids"`
}

type RoteiroResponse struct {
	ID               int64            `json:"id"`
	Nome             string           `json:"nome,omitempty"`
	Direcao          string           `json:"direcao"`
	Polyline         string           `json:"polyline,omitempty"`
	DistanciaTotalKm float64          `json:"distancia_total_km"`
	DuracaoTotalMin  int32            `json:"duracao_total_min"`
	AcimaOrcamento   bool             `json:"acima_orcamento"`
	EditadoManual    bool             `json:"editado_manualmente"`
	Paradas          []ParadaResponse `json:"paradas"`
}

func (r *RoteiroResponse) ParseFromObject(obj db.Roteiro) {
	r.ID = obj.ID
	r.Nome = validation.GetStringFromNull(obj.Nome)
	r.Direcao = obj.Direcao
	r.Polyline = validation.GetStringFromNull(obj.Polyline)
	if obj.DistanciaTotalKm.Valid {
		r.DistanciaTotalKm = obj.DistanciaTotalKm.Float64
	}
	if obj.DuracaoTotalMin.Valid {
		r.DuracaoTotalMin = obj.DuracaoTotalMin.Int32
	}
	r.AcimaOrcamento = obj.AcimaOrcamento
	r.EditadoManual = obj.EditadoManualmente
}

type ProcessamentoResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// ProcessamentoResultado resume a execução do pipeline: rotas persistidas e
// grupos deixados de fora quando o orçamento de tempo estoura.
type ProcessamentoResultado struct {
	RoteirizacaoID       int64 `json:"roteirizacao_id"`
	RoteirosGerados      int   `json:"roteiros_gerados"`
	GruposNaoProcessados int   `json:"grupos_nao_processados,omitempty"`
}

type ResultadoResponse struct {
	Roteirizacao         RoteirizacaoResponse `json:"roteirizacao"`
	Roteiros             []RoteiroResponse    `json:"roteiros"`
	RoteirosGerados      int                  `json:"roteiros_gerados,omitempty"`
	GruposNaoProcessados int                  `json:"grupos_nao_processados,omitempty"`
}
