package combustivel

import (
	"fmt"
	"math"
	"sort"
)

const (
	SeveridadeAlta  = "alta"
	SeveridadeMedia = "media"
	SeveridadeBaixa = "baixa"
)

const (
	ProblemaKmInvalido             = "KM_INVALIDO"
	ProblemaHodometroDecrescente   = "HODOMETRO_DECRESCENTE"
	ProblemaHodometroInconsistente = "HODOMETRO_INCONSISTENTE"
	ProblemaKmLMuitoBaixo          = "KML_MUITO_BAIXO"
	ProblemaKmLBaixo               = "KML_BAIXO"
	ProblemaKmLMuitoAlto           = "KML_MUITO_ALTO"
	ProblemaKmLAlto                = "KML_ALTO"
	ProblemaFlagSistema            = "FLAG_SISTEMA"
)

const modeloDesconhecido = "DESCONHECIDO"

type Problema struct {
	Tipo       string `json:"tipo"`
	Descricao  string `json:"descricao"`
	Severidade string `json:"severidade"`
}

type Alerta struct {
	Indice        int        `json:"indice"`
	Registro      Registro   `json:"registro"`
	Problemas     []Problema `json:"problemas"`
	SeveridadeMax string     `json:"severidade_max"`
}

// Estatisticas resume o km/l de um modelo de veículo. Só registros com
// km e km/l positivos entram no cálculo da mediana de referência.
type Estatisticas struct {
	MediaKmL       float64 `json:"media_kml"`
	MedianaKmL     float64 `json:"mediana_kml"`
	MinKmL         float64 `json:"min_kml"`
	MaxKmL         float64 `json:"max_kml"`
	TotalLitros    float64 `json:"total_litros"`
	TotalKm        float64 `json:"total_km"`
	TotalRegistros int     `json:"total_registros"`
	TotalVeiculos  int     `json:"total_veiculos"`
	KmLGeral       float64 `json:"kml_geral"`
}

type Resumo struct {
	TotalRegistros int     `json:"total_registros"`
	TotalVeiculos  int     `json:"total_veiculos"`
	TotalModelos   int     `json:"total_modelos"`
	TotalLitros    float64 `json:"total_litros"`
	TotalKm        float64 `json:"total_km"`
	MediaKmL       float64 `json:"media_kml"`
	TotalAlertas   int     `json:"total_alertas"`
	AlertasAlta    int     `json:"alertas_alta"`
	AlertasMedia   int     `json:"alertas_media"`
	AlertasBaixa   int     `json:"alertas_baixa"`
}

type Analise struct {
	Resumo  Resumo                  `json:"resumo"`
	Modelos map[string]Estatisticas `json:"modelos"`
	Alertas []Alerta                `json:"alertas"`
}

// Analisar compara cada registro com a mediana de km/l do seu modelo e
// acumula os alertas. A flag do PRAXIO só vira alerta quando nenhum
// problema mais específico foi achado para o registro.
func Analisar(registros []Registro) Analise {
	analise := Analise{Modelos: map[string]Estatisticas{}}
	if len(registros) == 0 {
		return analise
	}

	porModelo := map[string][]Registro{}
	for _, r := range registros {
		modelo := nomeModelo(r)
		porModelo[modelo] = append(porModelo[modelo], r)
	}
	for modelo, regs := range porModelo {
		analise.Modelos[modelo] = estatisticas(regs)
	}

	anteriorPorPrefixo := map[string]Registro{}
	for idx, r := range registros {
		stats := analise.Modelos[nomeModelo(r)]
		refKmL := stats.MedianaKmL

		var problemas []Problema

		if r.Km <= 0 {
			problemas = append(problemas, Problema{
				Tipo:       ProblemaKmInvalido,
				Descricao:  fmt.Sprintf("Km %.1f (zero ou negativo)", r.Km),
				Severidade: SeveridadeAlta,
			})
		}

		if r.HodometroFim < r.HodometroInicio {
			problemas = append(problemas, Problema{
				Tipo:       ProblemaHodometroDecrescente,
				Descricao:  fmt.Sprintf("Hodômetro final (%.0f) menor que inicial (%.0f)", r.HodometroFim, r.HodometroInicio),
				Severidade: SeveridadeAlta,
			})
		}

		if refKmL > 0 && r.KmL > 0 && r.Km > 0 {
			percentual := r.KmL / refKmL * 100

			if percentual < 60 {
				problemas = append(problemas, problemaPercentual(ProblemaKmLMuitoBaixo, SeveridadeAlta, r.KmL, refKmL, percentual))
			} else if percentual < 75 {
				problemas = append(problemas, problemaPercentual(ProblemaKmLBaixo, SeveridadeMedia, r.KmL, refKmL, percentual))
			}

			if percentual > 200 {
				problemas = append(problemas, problemaPercentual(ProblemaKmLMuitoAlto, SeveridadeAlta, r.KmL, refKmL, percentual))
			} else if percentual > 150 {
				problemas = append(problemas, problemaPercentual(ProblemaKmLAlto, SeveridadeMedia, r.KmL, refKmL, percentual))
			}
		}

		if anterior, ok := anteriorPorPrefixo[r.Prefixo]; ok && r.HodometroInicio < anterior.HodometroFim {
			problemas = append(problemas, Problema{
				Tipo:       ProblemaHodometroInconsistente,
				Descricao:  fmt.Sprintf("Hodômetro inicial (%.0f) menor que o final do abast. anterior (%.0f)", r.HodometroInicio, anterior.HodometroFim),
				Severidade: SeveridadeAlta,
			})
		}
		anteriorPorPrefixo[r.Prefixo] = r

		if r.FlagSistema && len(problemas) == 0 {
			problemas = append(problemas, Problema{
				Tipo:       ProblemaFlagSistema,
				Descricao:  "Marcado pelo sistema PRAXIO (*)",
				Severidade: SeveridadeBaixa,
			})
		}

		if len(problemas) > 0 {
			analise.Alertas = append(analise.Alertas, Alerta{
				Indice:        idx,
				Registro:      r,
				Problemas:     problemas,
				SeveridadeMax: severidadeMaxima(problemas),
			})
		}
	}

	analise.Resumo = resumo(registros, porModelo, analise.Alertas)
	return analise
}

func nomeModelo(r Registro) string {
	if r.Modelo == "" {
		return modeloDesconhecido
	}
	return r.Modelo
}

func problemaPercentual(tipo, severidade string, kml, ref, percentual float64) Problema {
	var descricao string
	if percentual < 100 {
		descricao = fmt.Sprintf("Km/L %.2f está %.0f%% abaixo da mediana do modelo (%.2f Km/L)", kml, 100-percentual, ref)
	} else {
		descricao = fmt.Sprintf("Km/L %.2f está %.0f%% acima da mediana do modelo (%.2f Km/L)", kml, percentual-100, ref)
	}
	return Problema{Tipo: tipo, Descricao: descricao, Severidade: severidade}
}

func severidadeMaxima(problemas []Problema) string {
	max := SeveridadeBaixa
	for _, p := range problemas {
		switch p.Severidade {
		case SeveridadeAlta:
			return SeveridadeAlta
		case SeveridadeMedia:
			max = SeveridadeMedia
		}
	}
	return max
}

func estatisticas(regs []Registro) Estatisticas {
	var validos []float64
	var totalLitros, totalKm float64
	prefixos := map[string]bool{}

	for _, r := range regs {
		if r.KmL > 0 && r.Km > 0 {
			validos = append(validos, r.KmL)
		}
		totalLitros += r.Litros
		if r.Km > 0 {
			totalKm += r.Km
		}
		prefixos[r.Prefixo] = true
	}

	stats := Estatisticas{
		TotalLitros:    round2(totalLitros),
		TotalKm:        round2(totalKm),
		TotalRegistros: len(regs),
		TotalVeiculos:  len(prefixos),
	}
	if totalLitros > 0 {
		stats.KmLGeral = round2(totalKm / totalLitros)
	}
	if len(validos) == 0 {
		return stats
	}

	var soma float64
	min, max := validos[0], validos[0]
	for _, v := range validos {
		soma += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	stats.MediaKmL = round2(soma / float64(len(validos)))
	stats.MedianaKmL = round2(mediana(validos))
	stats.MinKmL = round2(min)
	stats.MaxKmL = round2(max)
	return stats
}

func mediana(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func resumo(registros []Registro, porModelo map[string][]Registro, alertas []Alerta) Resumo {
	var totalLitros, totalKm float64
	prefixos := map[string]bool{}
	for _, r := range registros {
		totalLitros += r.Litros
		if r.Km > 0 {
			totalKm += r.Km
		}
		prefixos[r.Prefixo] = true
	}

	result := Resumo{
		TotalRegistros: len(registros),
		TotalVeiculos:  len(prefixos),
		TotalModelos:   len(porModelo),
		TotalLitros:    round2(totalLitros),
		TotalKm:        round2(totalKm),
		TotalAlertas:   len(alertas),
	}
	if totalLitros > 0 {
		result.MediaKmL = round2(totalKm / totalLitros)
	}
	for _, a := range alertas {
		switch a.SeveridadeMax {
		case SeveridadeAlta:
			result.AlertasAlta++
		case SeveridadeMedia:
			result.AlertasMedia++
		default:
			result.AlertasBaixa++
		}
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
