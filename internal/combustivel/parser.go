package combustivel

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Formato ABA do sistema PRAXIO: linhas de dados começam com o prefixo de
// 7 dígitos do veículo, seguido de data, hora, tipo, tanque, bomba,
// litros, hodômetros, km, km acumulado e km/l.
var (
	dataLineRe = regexp.MustCompile(`^(\d{7})\s+(\d{2}/\d{2}/\d{4})\s+(\d{2}:\d{2})\s+(\w)\s+(\d+)\s+(\d+)\s+([\d.,]+)\s+([\d.,]+)\s+([\d.,]+)\s+(-?[\d.,]+)\s+([\d.,]+)\s+(-?[\d.,]+)`)
	modeloRe   = regexp.MustCompile(`(\d{3})\s+(\d{3}-.+?)\s*$`)
	empresaRe  = regexp.MustCompile(`Empresa inicial:\s*\d+\s+(.+?)(?:\s{2,}|$)`)
	datasRe    = regexp.MustCompile(`Datas:\s*(\d{2}/\d{2}/\d{4}).*?a\s+(\d{2}/\d{2}/\d{4})`)
)

// Registro é uma linha de abastecimento do relatório.
type Registro struct {
	Prefixo         string    `json:"prefixo"`
	Data            time.Time `json:"data"`
	Hora            string    `json:"hora"`
	Tipo            string    `json:"tipo"`
	Tanque          int       `json:"tanque"`
	Bomba           int       `json:"bomba"`
	Litros          float64   `json:"litros"`
	HodometroInicio float64   `json:"hodometro_inicio"`
	HodometroFim    float64   `json:"hodometro_fim"`
	Km              float64   `json:"km"`
	KmAcumulado     float64   `json:"km_acumulado"`
	KmL             float64   `json:"kml"`
	FlagSistema     bool      `json:"flag_sistema"`
	Garagem         string    `json:"garagem"`
	Modelo          string    `json:"modelo"`
}

// Arquivo é o relatório completo: cabeçalho mais registros na ordem de
// importação. A ordem importa para a checagem de hodômetro entre
// abastecimentos consecutivos do mesmo veículo.
type Arquivo struct {
	Empresa       string     `json:"empresa"`
	PeriodoInicio *time.Time `json:"periodo_inicio"`
	PeriodoFim    *time.Time `json:"periodo_fim"`
	Registros     []Registro `json:"registros"`
}

// ParseFloatBR converte números no formato brasileiro (1.234,56). Valor
// vazio ou inválido vira 0, nunca erro; o relatório traz campos em branco.
func ParseFloatBR(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	value = strings.ReplaceAll(value, ".", "")
	value = strings.ReplaceAll(value, ",", ".")
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// ParseArquivo lê o relatório TXT exportado pelo PRAXIO. Os arquivos
// chegam em latin-1; conteúdo que não for UTF-8 válido é decodificado
// antes do parse linha a linha.
func ParseArquivo(data []byte) Arquivo {
	if !utf8.Valid(data) {
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
			data = decoded
		}
	}

	arquivo := Arquivo{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")

		if strings.Contains(line, "Empresa inicial:") {
			if m := empresaRe.FindStringSubmatch(line); m != nil {
				arquivo.Empresa = strings.TrimSpace(m[1])
			}
		}
		if strings.Contains(line, "Datas:") {
			if m := datasRe.FindStringSubmatch(line); m != nil {
				if inicio, err := time.Parse("02/01/2006", m[1]); err == nil {
					arquivo.PeriodoInicio = &inicio
				}
				if fim, err := time.Parse("02/01/2006", m[2]); err == nil {
					arquivo.PeriodoFim = &fim
				}
			}
		}

		dm := dataLineRe.FindStringSubmatchIndex(line)
		if dm == nil {
			continue
		}
		groups := dataLineRe.FindStringSubmatch(line)

		registro := Registro{
			Prefixo:         groups[1],
			Hora:            groups[3],
			Tipo:            groups[4],
			Litros:          ParseFloatBR(groups[7]),
			HodometroInicio: ParseFloatBR(groups[8]),
			HodometroFim:    ParseFloatBR(groups[9]),
			Km:              ParseFloatBR(groups[10]),
			KmAcumulado:     ParseFloatBR(groups[11]),
			KmL:             ParseFloatBR(groups[12]),
		}
		registro.Data, _ = time.Parse("02/01/2006", groups[2])
		registro.Tanque, _ = strconv.Atoi(groups[5])
		registro.Bomba, _ = strconv.Atoi(groups[6])

		// Garagem e modelo ficam no fim da linha; a flag * do sistema
		// aparece entre o km/l e a garagem.
		resto := line[dm[1]:]
		if mm := modeloRe.FindStringSubmatchIndex(line); mm != nil {
			registro.Garagem = line[mm[2]:mm[3]]
			registro.Modelo = strings.TrimSpace(line[mm[4]:mm[5]])
			if mm[0] > dm[1] {
				resto = line[dm[1]:mm[0]]
			}
		}
		registro.FlagSistema = strings.Contains(resto, "*")

		arquivo.Registros = append(arquivo.Registros, registro)
	}

	return arquivo
}
