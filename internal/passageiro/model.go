package passageiro

import (
	db "roteirizador/db/sqlc"
	"roteirizador/validation"
)

const (
	StatusPendente = "pendente"
	StatusOk       = "ok"
	StatusFalha    = "falha"
	StatusManual   = "manual"
)

type AtualizarCoordenadasRequest struct {
	Lat float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

type PassageiroResponse struct {
	ID                   int64    `json:"id"`
	Nome                 string   `json:"nome"`
	Endereco             string   `json:"endereco"`
	Bairro               string   `json:"bairro,omitempty"`
	Cidade               string   `json:"cidade,omitempty"`
	Uf                   string   `json:"uf,omitempty"`
	Lat                  *float64 `json:"lat,omitempty"`
	Lng                  *float64 `json:"lng,omitempty"`
	EnderecoFormatado    string   `json:"endereco_formatado,omitempty"`
	StatusGeocodificacao string   `json:"status_geocodificacao"`
	ParadaID             *int64   `json:"parada_id,omitempty"`
	DistanciaCaminhada   *float64 `json:"distancia_caminhada,omitempty"`
	TempoVeiculoMin      *int32   `json:"tempo_veiculo_min,omitempty"`
}

func (r *PassageiroResponse) ParseFromObject(obj db.Passageiro) {
	r.ID = obj.ID
	r.Nome = obj.Nome
	r.Endereco = obj.Endereco
	r.Bairro = validation.GetStringFromNull(obj.Bairro)
	r.Cidade = validation.GetStringFromNull(obj.Cidade)
	r.Uf = validation.GetStringFromNull(obj.Uf)
	if obj.Lat.Valid && obj.Lng.Valid {
		lat, lng := obj.Lat.Float64, obj.Lng.Float64
		r.Lat = &lat
		r.Lng = &lng
	}
	r.EnderecoFormatado = validation.GetStringFromNull(obj.EnderecoFormatado)
	r.StatusGeocodificacao = obj.StatusGeocodificacao
	if obj.ParadaID.Valid {
		pid := obj.ParadaID.Int64
		r.ParadaID = &pid
	}
	if obj.DistanciaCaminhada.Valid {
		d := obj.DistanciaCaminhada.Float64
		r.DistanciaCaminhada = &d
	}
	if obj.TempoVeiculoMin.Valid {
		m := obj.TempoVeiculoMin.Int32
		r.TempoVeiculoMin = &m
	}
}

type GeocodificacaoResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

type GeocodificacaoResultado struct {
	Total    int `json:"total"`
	Sucessos int `json:"sucessos"`
	Falhas   int `json:"falhas"`
	DoCache  int `json:"do_cache"`
}
