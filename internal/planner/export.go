package planner

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"roteirizador/internal/geomath"
)

// KMLStop é uma parada na exportação KML.
type KMLStop struct {
	Name        string
	Lat         float64
	Lng         float64
	Order       int
	ArrivalTime string
	Passengers  int
}

// KMLDestination é o destino da rota na exportação KML.
type KMLDestination struct {
	Address string
	Lat     float64
	Lng     float64
}

// GenerateKML monta um documento KML 2.2 com a polyline da rota, um
// Placemark por parada e o Placemark do destino. Todo texto livre é
// escapado para XML.
func GenerateKML(routeName string, stops []KMLStop, destination KMLDestination, encodedPolyline string) string {
	var sb strings.Builder

	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<kml xmlns=\"http://www.opengis.net/kml/2.2\">\n")
	sb.WriteString("<Document>\n")
	fmt.Fprintf(&sb, "  <name>%s</name>\n", xmlEscape(routeName))
	sb.WriteString("  <Style id=\"rota_style\">\n")
	sb.WriteString("    <LineStyle><color>ffE82000</color><width>4</width></LineStyle>\n")
	sb.WriteString("  </Style>\n")
	sb.WriteString("  <Style id=\"parada_style\">\n")
	sb.WriteString("    <IconStyle><scale>1.2</scale>\n")
	sb.WriteString("      <Icon><href>http://maps.google.com/mapfiles/kml/paddle/blu-circle.png</href></Icon>\n")
	sb.WriteString("    </IconStyle>\n")
	sb.WriteString("  </Style>\n")
	sb.WriteString("  <Style id=\"destino_style\">\n")
	sb.WriteString("    <IconStyle><scale>1.4</scale>\n")
	sb.WriteString("      <Icon><href>http://maps.google.com/mapfiles/kml/paddle/red-stars.png</href></Icon>\n")
	sb.WriteString("    </IconStyle>\n")
	sb.WriteString("  </Style>\n")

	if encodedPolyline != "" {
		coords := geomath.DecodePolyline(encodedPolyline)
		var coordsSb strings.Builder
		for i, c := range coords {
			if i > 0 {
				coordsSb.WriteByte(' ')
			}
			fmt.Fprintf(&coordsSb, "%f,%f,0", c.Lng, c.Lat)
		}
		sb.WriteString("  <Placemark>\n")
		fmt.Fprintf(&sb, "    <name>Rota: %s</name>\n", xmlEscape(routeName))
		sb.WriteString("    <styleUrl>#rota_style</styleUrl>\n")
		sb.WriteString("    <LineString>\n")
		sb.WriteString("      <tessellate>1</tessellate>\n")
		fmt.Fprintf(&sb, "      <coordinates>%s</coordinates>\n", coordsSb.String())
		sb.WriteString("    </LineString>\n")
		sb.WriteString("  </Placemark>\n")
	}

	sb.WriteString("  <Folder>\n")
	sb.WriteString("    <name>Paradas</name>\n")
	for _, p := range stops {
		desc := fmt.Sprintf("Parada %d\nHorário: %s\nPassageiros: %d", p.Order, p.ArrivalTime, p.Passengers)
		sb.WriteString("    <Placemark>\n")
		fmt.Fprintf(&sb, "      <name>%s</name>\n", xmlEscape(p.Name))
		fmt.Fprintf(&sb, "      <description>%s</description>\n", xmlEscape(desc))
		sb.WriteString("      <styleUrl>#parada_style</styleUrl>\n")
		fmt.Fprintf(&sb, "      <Point><coordinates>%f,%f,0</coordinates></Point>\n", p.Lng, p.Lat)
		sb.WriteString("    </Placemark>\n")
	}
	sb.WriteString("  </Folder>\n")

	sb.WriteString("  <Placemark>\n")
	fmt.Fprintf(&sb, "    <name>Destino: %s</name>\n", xmlEscape(destination.Address))
	sb.WriteString("    <styleUrl>#destino_style</styleUrl>\n")
	fmt.Fprintf(&sb, "    <Point><coordinates>%f,%f,0</coordinates></Point>\n", destination.Lng, destination.Lat)
	sb.WriteString("  </Placemark>\n")

	sb.WriteString("</Document>\n")
	sb.WriteString("</kml>")
	return sb.String()
}

func xmlEscape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, "\"", "&quot;")
	return text
}

// CSVRow é uma linha do relatório por passageiro.
type CSVRow struct {
	PassengerName    string
	Address          string
	Neighborhood     string
	City             string
	State            string
	StopName         string
	StopAddress      string
	StopOrder        string
	StopTime         string
	WalkDistanceM    string
	InVehicleMinutes string
}

// GenerateCSV gera o relatório por passageiro: delimitado por ponto e
// vírgula, UTF-8 com BOM para abrir direto no Excel.
func GenerateCSV(rows []CSVRow) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	_ = w.Write([]string{
		"Passageiro", "Endereço", "Bairro", "Cidade", "UF",
		"Parada", "Endereço Parada", "Ordem",
		"Horário Parada", "Distância Caminhada (m)", "Tempo no Veículo (min)",
	})

	for _, r := range rows {
		_ = w.Write([]string{
			r.PassengerName, r.Address, r.Neighborhood, r.City, r.State,
			r.StopName, r.StopAddress, r.StopOrder,
			r.StopTime, r.WalkDistanceM, r.InVehicleMinutes,
		})
	}
	w.Flush()

	return buf.Bytes()
}
