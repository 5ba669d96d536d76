package aderencia

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

var (
	coordinatesRe = regexp.MustCompile(`(?is)<coordinates[^>]*>(.*?)</coordinates>`)
	whenRe        = regexp.MustCompile(`(?is)<when[^>]*>(.*?)</when>`)
	tzOffsetRe    = regexp.MustCompile(`[+-]\d{2}:\d{2}$`)
)

var timestampFormats = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// ExtrairCoordenadas extrai os pontos de um arquivo KML ou KMZ. KMZ é
// detectado pela assinatura zip; dentro dele vale o primeiro .kml com
// coordenadas. Conteúdo irreconhecível devolve lista vazia, nunca erro.
func ExtrairCoordenadas(data []byte) []maps.LatLng {
	if len(data) == 0 {
		return nil
	}
	if isKMZ(data) {
		return extrairDeKMZ(data)
	}
	return parseKML(data)
}

func isKMZ(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

func extrairDeKMZ(data []byte) []maps.LatLng {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	for _, file := range reader.File {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".kml") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		if coords := parseKML(content); len(coords) > 0 {
			return coords
		}
	}
	return nil
}

// parseKML tenta primeiro regex direto sobre o texto, que sobrevive a
// namespaces malformados; só cai para o parser XML quando nada é achado.
func parseKML(content []byte) []maps.LatLng {
	var coords []maps.LatLng
	for _, match := range coordinatesRe.FindAllSubmatch(content, -1) {
		coords = append(coords, parseCoordenadas(string(match[1]))...)
	}
	if len(coords) == 0 {
		coords = parseKMLXML(content)
	}
	return coords
}

func parseKMLXML(content []byte) []maps.LatLng {
	var coords []maps.LatLng
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.Strict = false
	inCoordinates := false
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			inCoordinates = strings.EqualFold(t.Name.Local, "coordinates")
		case xml.EndElement:
			inCoordinates = false
		case xml.CharData:
			if inCoordinates {
				coords = append(coords, parseCoordenadas(string(t))...)
			}
		}
	}
	return coords
}

// parseCoordenadas interpreta o bloco "lon,lat[,alt]" separado por qualquer
// whitespace. Pares fora dos limites geográficos são descartados.
func parseCoordenadas(text string) []maps.LatLng {
	var coords []maps.LatLng
	for _, pair := range strings.Fields(text) {
		parts := strings.Split(pair, ",")
		if len(parts) < 2 {
			continue
		}
		lng, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
			continue
		}
		coords = append(coords, maps.LatLng{Lat: lat, Lng: lng})
	}
	return coords
}

// TempoTrajetoMinutos calcula a duração do trajeto pela diferença entre o
// primeiro e o último timestamp <when> do arquivo (gx:Track e Placemarks
// usam a mesma tag). Sem pelo menos dois timestamps não há duração.
func TempoTrajetoMinutos(data []byte) (int, bool) {
	if len(data) == 0 {
		return 0, false
	}
	content := data
	if isKMZ(data) {
		reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return 0, false
		}
		content = nil
		for _, file := range reader.File {
			if !strings.HasSuffix(strings.ToLower(file.Name), ".kml") {
				continue
			}
			rc, err := file.Open()
			if err != nil {
				continue
			}
			content, _ = io.ReadAll(rc)
			rc.Close()
			break
		}
		if content == nil {
			return 0, false
		}
	}

	var timestamps []time.Time
	for _, match := range whenRe.FindAllSubmatch(content, -1) {
		if ts, ok := parseTimestamp(strings.TrimSpace(string(match[1]))); ok {
			timestamps = append(timestamps, ts)
		}
	}
	if len(timestamps) < 2 {
		return 0, false
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	minutos := timestamps[len(timestamps)-1].Sub(timestamps[0]).Minutes()
	return int(minutos + 0.5), true
}

func parseTimestamp(value string) (time.Time, bool) {
	value = tzOffsetRe.ReplaceAllString(value, "")
	for _, format := range timestampFormats {
		if ts, err := time.Parse(format, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
