package roteirizacao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/planner"
	"roteirizador/validation"
)

// ExportarKMLService monta o KML de um roteiro com a polyline persistida,
// as paradas na ordem de visita e o destino.
func (s *Service) ExportarKMLService(ctx context.Context, id, roteiroID int64) ([]byte, string, error) {
	rot, roteiro, paradas, err := s.loadExport(ctx, id, roteiroID)
	if err != nil {
		return nil, "", err
	}

	passageiros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, id)
	if err != nil {
		return nil, "", err
	}
	porParada := make(map[int64]int)
	for _, p := range passageiros {
		if p.ParadaID.Valid {
			porParada[p.ParadaID.Int64]++
		}
	}

	stops := make([]planner.KMLStop, 0, len(paradas))
	for _, parada := range paradas {
		stop := planner.KMLStop{
			Name:        validation.GetStringFromNull(parada.Nome),
			Lat:         parada.Lat,
			Lng:         parada.Lng,
			ArrivalTime: validation.GetStringFromNull(parada.HorarioChegada),
			Passengers:  porParada[parada.ID],
		}
		if parada.Ordem.Valid {
			stop.Order = int(parada.Ordem.Int32)
		}
		stops = append(stops, stop)
	}

	destino := planner.KMLDestination{Address: rot.EnderecoDestino}
	if rot.DestinoLat.Valid && rot.DestinoLng.Valid {
		destino.Lat = rot.DestinoLat.Float64
		destino.Lng = rot.DestinoLng.Float64
	}

	nomeRoteiro := validation.GetStringFromNull(roteiro.Nome)
	if nomeRoteiro == "" {
		nomeRoteiro = fmt.Sprintf("roteiro %d (%s)", roteiro.ID, roteiro.Direcao)
	}
	nome := fmt.Sprintf("%s - %s", rot.Nome, nomeRoteiro)
	kml := planner.GenerateKML(nome, stops, destino, validation.GetStringFromNull(roteiro.Polyline))

	filename := fmt.Sprintf("roteiro_%d_%s.kml", roteiro.ID, roteiro.Direcao)
	return []byte(kml), filename, nil
}

// ExportarCSVService gera o relatório por passageiro do roteiro.
func (s *Service) ExportarCSVService(ctx context.Context, id, roteiroID int64) ([]byte, string, error) {
	_, roteiro, paradas, err := s.loadExport(ctx, id, roteiroID)
	if err != nil {
		return nil, "", err
	}

	passageiros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, id)
	if err != nil {
		return nil, "", err
	}

	paradaByID := make(map[int64]db.Parada, len(paradas))
	for _, p := range paradas {
		paradaByID[p.ID] = p
	}

	var rows []planner.CSVRow
	for _, p := range passageiros {
		if !p.ParadaID.Valid {
			continue
		}
		parada, ok := paradaByID[p.ParadaID.Int64]
		if !ok {
			continue
		}

		row := planner.CSVRow{
			PassengerName: p.Nome,
			Address:       p.Endereco,
			Neighborhood:  validation.GetStringFromNull(p.Bairro),
			City:          validation.GetStringFromNull(p.Cidade),
			State:         validation.GetStringFromNull(p.Uf),
			StopName:      validation.GetStringFromNull(parada.Nome),
			StopAddress:   validation.GetStringFromNull(parada.Nome),
			StopTime:      validation.GetStringFromNull(parada.HorarioChegada),
		}
		if parada.Ordem.Valid {
			row.StopOrder = strconv.Itoa(int(parada.Ordem.Int32))
		}
		if p.DistanciaCaminhada.Valid {
			row.WalkDistanceM = strconv.FormatFloat(p.DistanciaCaminhada.Float64, 'f', 1, 64)
		}
		if p.TempoVeiculoMin.Valid {
			row.InVehicleMinutes = strconv.Itoa(int(p.TempoVeiculoMin.Int32))
		}
		rows = append(rows, row)
	}

	filename := fmt.Sprintf("roteiro_%d_%s.csv", roteiro.ID, roteiro.Direcao)
	return planner.GenerateCSV(rows), filename, nil
}

func (s *Service) loadExport(ctx context.Context, id, roteiroID int64) (db.Roteirizacao, db.Roteiro, []db.Parada, error) {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Roteirizacao{}, db.Roteiro{}, nil, ErrNaoEncontrada
	}
	if err != nil {
		return db.Roteirizacao{}, db.Roteiro{}, nil, err
	}

	roteiro, err := s.InterfaceService.GetRoteiroById(ctx, roteiroID)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Roteirizacao{}, db.Roteiro{}, nil, errors.New("roteiro não encontrado")
	}
	if err != nil {
		return db.Roteirizacao{}, db.Roteiro{}, nil, err
	}
	if roteiro.RoteirizacaoID != id {
		return db.Roteirizacao{}, db.Roteiro{}, nil, errors.New("roteiro não pertence à roteirização")
	}

	paradas, err := s.InterfaceService.ListParadasByRoteiro(ctx, validation.NullInt64From(roteiro.ID, true))
	if err != nil {
		return db.Roteirizacao{}, db.Roteiro{}, nil, err
	}
	return rot, roteiro, paradas, nil
}
