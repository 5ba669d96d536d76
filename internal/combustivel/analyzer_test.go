package combustivel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registro(prefixo string, km, kml float64) Registro {
	return Registro{
		Prefixo:         prefixo,
		Modelo:          "101-MB O500",
		Litros:          40,
		HodometroInicio: 1000,
		HodometroFim:    1000 + km,
		Km:              km,
		KmL:             kml,
	}
}

func problemaDoTipo(t *testing.T, alertas []Alerta, indice int, tipo string) (Problema, bool) {
	t.Helper()
	for _, a := range alertas {
		if a.Indice != indice {
			continue
		}
		for _, p := range a.Problemas {
			if p.Tipo == tipo {
				return p, true
			}
		}
	}
	return Problema{}, false
}

func TestAnalisarVazio(t *testing.T) {
	analise := Analisar(nil)

	assert.Empty(t, analise.Alertas)
	assert.Empty(t, analise.Modelos)
	assert.Zero(t, analise.Resumo.TotalRegistros)
}

func TestAnalisarKmLMuitoBaixo(t *testing.T) {
	registros := []Registro{
		registro("0000001", 400, 10),
		registro("0000002", 400, 10),
		registro("0000003", 400, 10),
		registro("0000004", 400, 10),
		registro("0000005", 400, 5),
	}

	analise := Analisar(registros)

	assert.Equal(t, 10.0, analise.Modelos["101-MB O500"].MedianaKmL)

	problema, ok := problemaDoTipo(t, analise.Alertas, 4, ProblemaKmLMuitoBaixo)
	require.True(t, ok)
	assert.Equal(t, SeveridadeAlta, problema.Severidade)
	assert.Contains(t, problema.Descricao, "50% abaixo")
}

func TestAnalisarDentroDaFaixaNaoAlerta(t *testing.T) {
	registros := []Registro{
		registro("0000001", 400, 10),
		registro("0000002", 400, 10),
		registro("0000003", 400, 10),
		registro("0000004", 400, 9),
	}

	analise := Analisar(registros)

	// 9.0 contra mediana 10.0 fica em 90%: dentro da faixa aceitável.
	assert.Empty(t, analise.Alertas)
}

func TestAnalisarKmLBaixoEAlto(t *testing.T) {
	registros := []Registro{
		registro("0000001", 400, 10),
		registro("0000002", 400, 10),
		registro("0000003", 400, 10),
		registro("0000004", 400, 7),  // 70% -> baixo, média severidade
		registro("0000005", 400, 16), // 160% -> alto, média severidade
		registro("0000006", 400, 25), // 250% -> muito alto, alta severidade
	}

	analise := Analisar(registros)

	baixo, ok := problemaDoTipo(t, analise.Alertas, 3, ProblemaKmLBaixo)
	require.True(t, ok)
	assert.Equal(t, SeveridadeMedia, baixo.Severidade)

	alto, ok := problemaDoTipo(t, analise.Alertas, 4, ProblemaKmLAlto)
	require.True(t, ok)
	assert.Equal(t, SeveridadeMedia, alto.Severidade)

	muitoAlto, ok := problemaDoTipo(t, analise.Alertas, 5, ProblemaKmLMuitoAlto)
	require.True(t, ok)
	assert.Equal(t, SeveridadeAlta, muitoAlto.Severidade)
}

func TestAnalisarKmInvalidoEHodometro(t *testing.T) {
	invalido := registro("0000001", 0, 0)
	decrescente := registro("0000002", 400, 10)
	decrescente.HodometroFim = 900

	analise := Analisar([]Registro{invalido, decrescente})

	_, ok := problemaDoTipo(t, analise.Alertas, 0, ProblemaKmInvalido)
	assert.True(t, ok)
	_, ok = problemaDoTipo(t, analise.Alertas, 1, ProblemaHodometroDecrescente)
	assert.True(t, ok)
}

func TestAnalisarHodometroInconsistenteEntreAbastecimentos(t *testing.T) {
	primeiro := registro("0000001", 400, 10)
	primeiro.HodometroFim = 2000

	segundo := registro("0000001", 400, 10)
	segundo.HodometroInicio = 1500
	segundo.HodometroFim = 1900

	outroVeiculo := registro("0000002", 400, 10)
	outroVeiculo.HodometroInicio = 100
	outroVeiculo.HodometroFim = 500

	analise := Analisar([]Registro{primeiro, segundo, outroVeiculo})

	_, ok := problemaDoTipo(t, analise.Alertas, 1, ProblemaHodometroInconsistente)
	assert.True(t, ok)
	// A checagem é por veículo: o hodômetro baixo do outro prefixo não
	// se compara com o anterior.
	_, ok = problemaDoTipo(t, analise.Alertas, 2, ProblemaHodometroInconsistente)
	assert.False(t, ok)
}

func TestAnalisarFlagSistemaDeduplicada(t *testing.T) {
	soFlag := registro("0000001", 400, 10)
	soFlag.FlagSistema = true

	flagComProblema := registro("0000002", 0, 0)
	flagComProblema.FlagSistema = true

	analise := Analisar([]Registro{
		registro("0000003", 400, 10),
		registro("0000004", 400, 10),
		soFlag,
		flagComProblema,
	})

	problema, ok := problemaDoTipo(t, analise.Alertas, 2, ProblemaFlagSistema)
	require.True(t, ok)
	assert.Equal(t, SeveridadeBaixa, problema.Severidade)

	// Com problema mais específico presente, a flag do sistema não gera
	// alerta redundante.
	_, ok = problemaDoTipo(t, analise.Alertas, 3, ProblemaFlagSistema)
	assert.False(t, ok)
	_, ok = problemaDoTipo(t, analise.Alertas, 3, ProblemaKmInvalido)
	assert.True(t, ok)
}

func TestAnalisarResumo(t *testing.T) {
	registros := []Registro{
		registro("0000001", 400, 10),
		registro("0000001", 400, 10),
		registro("0000002", 400, 10),
		registro("0000003", 0, 0),
	}

	analise := Analisar(registros)

	assert.Equal(t, 4, analise.Resumo.TotalRegistros)
	assert.Equal(t, 3, analise.Resumo.TotalVeiculos)
	assert.Equal(t, 1, analise.Resumo.TotalModelos)
	assert.Equal(t, 160.0, analise.Resumo.TotalLitros)
	assert.Equal(t, 1200.0, analise.Resumo.TotalKm)
	assert.Equal(t, 7.5, analise.Resumo.MediaKmL)
	assert.Equal(t, 1, analise.Resumo.TotalAlertas)
	assert.Equal(t, 1, analise.Resumo.AlertasAlta)
}
