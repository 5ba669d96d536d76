package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"googlemaps.github.io/maps"

	"roteirizador/internal/geomath"
)

func TestGenerateKML(t *testing.T) {
	polyline := geomath.EncodePolyline([]maps.LatLng{
		{Lat: -23.60, Lng: -46.63},
		{Lat: -23.55, Lng: -46.63},
	})

	kml := GenerateKML("Rota Manhã <Turno 1>",
		[]KMLStop{
			{Name: "Parada 1 & Mercado", Lat: -23.58, Lng: -46.63, Order: 1, ArrivalTime: "06:48", Passengers: 4},
		},
		KMLDestination{Address: "Av. Paulista, 1000", Lat: -23.55, Lng: -46.63},
		polyline)

	assert.True(t, strings.HasPrefix(kml, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>"))
	assert.Contains(t, kml, "xmlns=\"http://www.opengis.net/kml/2.2\"")
	assert.Contains(t, kml, "<LineString>")
	assert.Contains(t, kml, "<tessellate>1</tessellate>")

	// texto livre escapado
	assert.Contains(t, kml, "Rota Manhã &lt;Turno 1&gt;")
	assert.Contains(t, kml, "Parada 1 &amp; Mercado")
	assert.NotContains(t, kml, "<Turno 1>")

	assert.Contains(t, kml, "Destino: Av. Paulista, 1000")
	assert.Contains(t, kml, "#parada_style")
	assert.Contains(t, kml, "#destino_style")
}

func TestGenerateKMLWithoutPolyline(t *testing.T) {
	kml := GenerateKML("Rota", nil, KMLDestination{Address: "Destino", Lat: -23.55, Lng: -46.63}, "")

	assert.NotContains(t, kml, "<LineString>")
	assert.Contains(t, kml, "<Folder>")
}

func TestGenerateCSV(t *testing.T) {
	data := GenerateCSV([]CSVRow{
		{
			PassengerName:    "Maria; da Silva",
			Address:          "Rua A, 10",
			Neighborhood:     "Centro",
			City:             "São Paulo",
			State:            "SP",
			StopName:         "Parada 1",
			StopAddress:      "Rua B, 20",
			StopOrder:        "1",
			StopTime:         "06:48",
			WalkDistanceM:    "153.2",
			InVehicleMinutes: "11",
		},
	})

	content := string(data)
	require.True(t, strings.HasPrefix(content, "\uFEFF"), "CSV precisa abrir com BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\uFEFF")), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"Passageiro;Endereço;Bairro;Cidade;UF;Parada;Endereço Parada;Ordem;Horário Parada;Distância Caminhada (m);Tempo no Veículo (min)",
		strings.TrimRight(lines[0], "\r"))

	// campo com o delimitador dentro sai entre aspas
	assert.Contains(t, lines[1], "\"Maria; da Silva\"")
	assert.Contains(t, lines[1], "São Paulo")
}
