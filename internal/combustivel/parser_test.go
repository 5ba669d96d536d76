package combustivel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arquivoABA = `GLOBUS - Abastecimento / Quilometragem
Empresa inicial: 001  VIACAO EXEMPLO LTDA
Datas: 01/03/2026 a 31/03/2026

Prefixo Data       Hora  T Tq Bb Litros    Hod.Inicial  Hod.Final    Km       Km Acum.   Km/L
1020304 10/03/2026 06:45 A 1  2  250,50    123.456,0    123.856,0    400,0    1.200,0    1,60    101 101-MB O500
1020304 11/03/2026 07:10 A 1  2  180,00    123.856,0    124.156,0    300,0    1.500,0    1,67  * 101 101-MB O500
9990001 11/03/2026 08:00 A 2  1  100,00    50.000,0     50.000,0     0,0      0,0        0,00    102 102-VW 17.230
`

func TestParseFloatBR(t *testing.T) {
	assert.Equal(t, 1234.56, ParseFloatBR("1.234,56"))
	assert.Equal(t, -1.5, ParseFloatBR("-1,5"))
	assert.Equal(t, 0.0, ParseFloatBR(""))
	assert.Equal(t, 0.0, ParseFloatBR("  "))
	assert.Equal(t, 0.0, ParseFloatBR("abc"))
}

func TestParseArquivo(t *testing.T) {
	arquivo := ParseArquivo([]byte(arquivoABA))

	assert.Equal(t, "VIACAO EXEMPLO LTDA", arquivo.Empresa)
	require.NotNil(t, arquivo.PeriodoInicio)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *arquivo.PeriodoInicio)
	require.NotNil(t, arquivo.PeriodoFim)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *arquivo.PeriodoFim)

	require.Len(t, arquivo.Registros, 3)

	primeiro := arquivo.Registros[0]
	assert.Equal(t, "1020304", primeiro.Prefixo)
	assert.Equal(t, "06:45", primeiro.Hora)
	assert.Equal(t, "A", primeiro.Tipo)
	assert.Equal(t, 1, primeiro.Tanque)
	assert.Equal(t, 2, primeiro.Bomba)
	assert.Equal(t, 250.5, primeiro.Litros)
	assert.Equal(t, 123456.0, primeiro.HodometroInicio)
	assert.Equal(t, 123856.0, primeiro.HodometroFim)
	assert.Equal(t, 400.0, primeiro.Km)
	assert.Equal(t, 1200.0, primeiro.KmAcumulado)
	assert.Equal(t, 1.6, primeiro.KmL)
	assert.False(t, primeiro.FlagSistema)
	assert.Equal(t, "101", primeiro.Garagem)
	assert.Equal(t, "101-MB O500", primeiro.Modelo)

	segundo := arquivo.Registros[1]
	assert.True(t, segundo.FlagSistema)

	terceiro := arquivo.Registros[2]
	assert.Equal(t, "102-VW 17.230", terceiro.Modelo)
	assert.Equal(t, 0.0, terceiro.Km)
}

func TestParseArquivoLatin1(t *testing.T) {
	// "VIAÇÃO" em latin-1: bytes 0xC7 e 0xC3 não formam UTF-8 válido.
	header := append([]byte("Empresa inicial: 001  VIA"), 0xC7, 0xC3)
	header = append(header, []byte("O SUL\n")...)
	linha := []byte("1020304 10/03/2026 06:45 A 1  2  250,50    123.456,0    123.856,0    400,0    1.200,0    1,60    101 101-MB O500\n")

	arquivo := ParseArquivo(append(header, linha...))

	assert.Equal(t, "VIAÇÃO SUL", arquivo.Empresa)
	require.Len(t, arquivo.Registros, 1)
}

func TestParseArquivoSemRegistros(t *testing.T) {
	arquivo := ParseArquivo([]byte("relatório vazio\nsem linhas de dados\n"))
	assert.Empty(t, arquivo.Registros)
}
