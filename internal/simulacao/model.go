package simulacao

import (
	"time"

	db "roteirizador/db/sqlc"
)

type CreateSimulacaoRequest struct {
	Nome string `json:"nome" validate:"required"`
}

type SimulacaoResponse struct {
	ID             int64     `json:"id"`
	RoteirizacaoID int64     `json:"roteirizacao_id"`
	Nome           string    `json:"nome"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *SimulacaoResponse) ParseFromObject(obj db.Simulacao) {
	r.ID = obj.ID
	r.RoteirizacaoID = obj.RoteirizacaoID
	r.Nome = obj.Nome
	r.CreatedAt = obj.CreatedAt
}

// Snapshot é o estado completo congelado de uma roteirização: parâmetros,
// roteiros e paradas com os vínculos de passageiros. Aplicar um snapshot
// restaura exatamente esse estado.
type Snapshot struct {
	Parametros ParametrosSnapshot `json:"parametros"`
	Roteiros   []RoteiroSnapshot  `json:"roteiros"`
	Paradas    []ParadaSnapshot   `json:"paradas"`
}

type ParametrosSnapshot struct {
	DistanciaMaximaCaminhada float64 `json:"distancia_maxima_caminhada"`
	TempoMaximoViagem        int32   `json:"tempo_maximo_viagem"`
	CapacidadeVeiculo        int32   `json:"capacidade_veiculo"`
	HorarioChegada           string  `json:"horario_chegada"`
	HorarioSaidaVolta        string  `json:"horario_saida_volta,omitempty"`
	TempoEmbarqueSegundos    int32   `json:"tempo_embarque_segundos"`
}

type RoteiroSnapshot struct {
	Nome             string  `json:"nome,omitempty"`
	Direcao          string  `json:"direcao"`
	Polyline         string  `json:"polyline,omitempty"`
	DistanciaTotalKm float64 `json:"distancia_total_km"`
	DuracaoTotalMin  int32   `json:"duracao_total_min"`
	AcimaOrcamento   bool    `json:"acima_orcamento"`
	Editado          bool    `json:"editado_manualmente"`
}

type ParadaSnapshot struct {
	// O vínculo com o roteiro é pelo nome; RoteiroIdx (posição em Roteiros,
	// -1 quando não sequenciada) cobre snapshots sem nome de roteiro.
	RoteiroNome    string              `json:"roteiro_nome,omitempty"`
	RoteiroIdx     int                 `json:"roteiro_idx"`
	Nome           string              `json:"nome,omitempty"`
	Lat            float64             `json:"lat"`
	Lng            float64             `json:"lng"`
	Ordem          int32               `json:"ordem,omitempty"`
	HorarioChegada string              `json:"horario_chegada,omitempty"`
	HorarioPartida string              `json:"horario_partida,omitempty"`
	Passageiros    []PassageiroVinculo `json:"passageiros"`
}

type PassageiroVinculo struct {
	ID                 int64   `json:"id"`
	DistanciaCaminhada float64 `json:"distancia_caminhada"`
	TempoVeiculoMin    int32   `json:"tempo_veiculo_min,omitempty"`
}
