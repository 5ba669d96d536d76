package aderencia

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kmlSample = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <LineString>
        <coordinates>
          -46.63,-23.55,0
          -46.64,-23.56,0
          -46.65,-23.57,0
        </coordinates>
      </LineString>
    </Placemark>
  </Document>
</kml>`

func TestExtrairCoordenadas(t *testing.T) {
	coords := ExtrairCoordenadas([]byte(kmlSample))

	require.Len(t, coords, 3)
	assert.Equal(t, -23.55, coords[0].Lat)
	assert.Equal(t, -46.63, coords[0].Lng)
	assert.Equal(t, -23.57, coords[2].Lat)
}

func TestExtrairCoordenadasKMZ(t *testing.T) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	file, err := writer.Create("doc.kml")
	require.NoError(t, err)
	_, err = file.Write([]byte(kmlSample))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	coords := ExtrairCoordenadas(buf.Bytes())

	require.Len(t, coords, 3)
	assert.Equal(t, -23.55, coords[0].Lat)
}

func TestExtrairCoordenadasDescartaForaDosLimites(t *testing.T) {
	kml := `<coordinates>-46.63,-23.55 200.0,-23.55 -46.64,95.0 abc,def</coordinates>`

	coords := ExtrairCoordenadas([]byte(kml))

	require.Len(t, coords, 1)
	assert.Equal(t, -46.63, coords[0].Lng)
}

func TestExtrairCoordenadasConteudoInvalido(t *testing.T) {
	assert.Empty(t, ExtrairCoordenadas([]byte("não é kml")))
	assert.Empty(t, ExtrairCoordenadas(nil))
}

func TestExtrairCoordenadasFallbackXML(t *testing.T) {
	// Sem a tag literal <coordinates> no regex (prefixo de namespace), o
	// parser XML ainda deve achar o elemento pelo nome local.
	kml := `<?xml version="1.0"?>
<k:kml xmlns:k="http://www.opengis.net/kml/2.2">
  <k:Placemark><k:LineString><k:coordinates>-46.63,-23.55,0 -46.64,-23.56,0</k:coordinates></k:LineString></k:Placemark>
</k:kml>`

	coords := ExtrairCoordenadas([]byte(kml))

	require.Len(t, coords, 2)
	assert.Equal(t, -23.56, coords[1].Lat)
}

func TestTempoTrajetoMinutos(t *testing.T) {
	kml := `<kml><Document>
	  <when>2026-03-10T10:00:00Z</when>
	  <when>2026-03-10T10:15:00Z</when>
	  <when>2026-03-10T10:32:00Z</when>
	</Document></kml>`

	minutos, ok := TempoTrajetoMinutos([]byte(kml))

	require.True(t, ok)
	assert.Equal(t, 32, minutos)
}

func TestTempoTrajetoComOffset(t *testing.T) {
	kml := `<kml>
	  <when>2026-03-10T10:00:00-03:00</when>
	  <when>2026-03-10T11:30:00-03:00</when>
	</kml>`

	minutos, ok := TempoTrajetoMinutos([]byte(kml))

	require.True(t, ok)
	assert.Equal(t, 90, minutos)
}

func TestTempoTrajetoSemTimestamps(t *testing.T) {
	_, ok := TempoTrajetoMinutos([]byte(kmlSample))
	assert.False(t, ok)
}
