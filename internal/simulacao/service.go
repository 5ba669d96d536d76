package simulacao

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	db "roteirizador/db/sqlc"
	"roteirizador/validation"
)

var (
	ErrNaoEncontrada     = errors.New("simulação não encontrada")
	ErrOutraRoteirizacao = errors.New("simulação não pertence à roteirização")
)

type InterfaceService interface {
	SalvarService(ctx context.Context, roteirizacaoID int64, data CreateSimulacaoRequest) (SimulacaoResponse, error)
	ListarService(ctx context.Context, roteirizacaoID int64) ([]SimulacaoResponse, error)
	AplicarService(ctx context.Context, roteirizacaoID, simulacaoID int64) error
	DeleteService(ctx context.Context, roteirizacaoID, simulacaoID int64) error
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewSimulacaoService(repo InterfaceRepository) *Service {
	return &Service{InterfaceService: repo}
}

// SalvarService congela o estado atual da roteirização num snapshot. O log
// de simulações é só-acréscimo; nada é sobrescrito.
func (s *Service) SalvarService(ctx context.Context, roteirizacaoID int64, data CreateSimulacaoRequest) (SimulacaoResponse, error) {
	snapshot, err := s.capturar(ctx, roteirizacaoID)
	if err != nil {
		return SimulacaoResponse{}, err
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return SimulacaoResponse{}, err
	}

	result, err := s.InterfaceService.CreateSimulacao(ctx, db.CreateSimulacaoParams{
		RoteirizacaoID: roteirizacaoID,
		Nome:           data.Nome,
		Snapshot:       raw,
	})
	if err != nil {
		return SimulacaoResponse{}, err
	}

	response := SimulacaoResponse{}
	response.ParseFromObject(result)
	return response, nil
}

func (s *Service) ListarService(ctx context.Context, roteirizacaoID int64) ([]SimulacaoResponse, error) {
	result, err := s.InterfaceService.ListSimulacoesByRoteirizacao(ctx, roteirizacaoID)
	if err != nil {
		return nil, err
	}

	var list []SimulacaoResponse
	for _, sim := range result {
		item := SimulacaoResponse{}
		item.ParseFromObject(sim)
		list = append(list, item)
	}
	return list, nil
}

// AplicarService restaura o estado salvo: parâmetros, roteiros, paradas e
// vínculos de passageiros voltam a ser exatamente os do snapshot, numa
// única transação. O estado vigente é congelado num backup antes, para a
// aplicação também ser reversível.
func (s *Service) AplicarService(ctx context.Context, roteirizacaoID, simulacaoID int64) error {
	sim, err := s.carregar(ctx, roteirizacaoID, simulacaoID)
	if err != nil {
		return err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(sim.Snapshot, &snapshot); err != nil {
		return err
	}

	if _, err := s.SalvarService(ctx, roteirizacaoID, CreateSimulacaoRequest{
		Nome: "Backup antes de aplicar " + sim.Nome,
	}); err != nil {
		return err
	}

	return s.InterfaceService.ExecTx(ctx, func(q *db.Queries) error {
		if _, err := q.UpdateRoteirizacaoParametros(ctx, db.UpdateRoteirizacaoParametrosParams{
			ID:                       roteirizacaoID,
			DistanciaMaximaCaminhada: snapshot.Parametros.DistanciaMaximaCaminhada,
			TempoMaximoViagem:        snapshot.Parametros.TempoMaximoViagem,
			CapacidadeVeiculo:        snapshot.Parametros.CapacidadeVeiculo,
			HorarioChegada:           snapshot.Parametros.HorarioChegada,
			HorarioSaidaVolta:        validation.NullStringFrom(snapshot.Parametros.HorarioSaidaVolta),
			TempoEmbarqueSegundos:    snapshot.Parametros.TempoEmbarqueSegundos,
		}); err != nil {
			return err
		}

		if err := q.ClearParadasDosPassageiros(ctx, roteirizacaoID); err != nil {
			return err
		}
		if err := q.DeleteParadasByRoteirizacao(ctx, roteirizacaoID); err != nil {
			return err
		}
		for _, direcao := range []string{"ida", "volta"} {
			if err := q.DeleteRoteirosByDirecao(ctx, db.DeleteRoteirosByDirecaoParams{
				RoteirizacaoID: roteirizacaoID, Direcao: direcao,
			}); err != nil {
				return err
			}
		}

		roteiroIDs := make([]int64, len(snapshot.Roteiros))
		idPorNome := make(map[string]int64, len(snapshot.Roteiros))
		for i, r := range snapshot.Roteiros {
			created, err := q.CreateRoteiro(ctx, db.CreateRoteiroParams{
				RoteirizacaoID:   roteirizacaoID,
				Nome:             validation.NullStringFrom(r.Nome),
				Direcao:          r.Direcao,
				Polyline:         validation.NullStringFrom(r.Polyline),
				DistanciaTotalKm: validation.NullFloatFrom(r.DistanciaTotalKm, r.DistanciaTotalKm > 0),
				DuracaoTotalMin:  validation.NullInt32From(r.DuracaoTotalMin, r.DuracaoTotalMin > 0),
				AcimaOrcamento:   r.AcimaOrcamento,
			})
			if err != nil {
				return err
			}
			roteiroIDs[i] = created.ID
			if r.Nome != "" {
				idPorNome[r.Nome] = created.ID
			}
		}

		for _, p := range snapshot.Paradas {
			parada, err := q.CreateParada(ctx, db.CreateParadaParams{
				RoteirizacaoID: roteirizacaoID,
				Nome:           validation.NullStringFrom(p.Nome),
				Lat:            p.Lat,
				Lng:            p.Lng,
			})
			if err != nil {
				return err
			}

			if roteiroID, ok := resolverRoteiro(idPorNome, roteiroIDs, p); ok {
				if err := q.UpdateParadaRoteiro(ctx, db.UpdateParadaRoteiroParams{
					ID:             parada.ID,
					RoteiroID:      validation.NullInt64From(roteiroID, true),
					Ordem:          validation.NullInt32From(p.Ordem, p.Ordem > 0),
					HorarioChegada: validation.NullStringFrom(p.HorarioChegada),
					HorarioPartida: validation.NullStringFrom(p.HorarioPartida),
				}); err != nil {
					return err
				}
			}

			for _, v := range p.Passageiros {
				if err := q.UpdatePassageiroParada(ctx, db.UpdatePassageiroParadaParams{
					ID:                 v.ID,
					ParadaID:           validation.NullInt64From(parada.ID, true),
					DistanciaCaminhada: validation.NullFloatFrom(v.DistanciaCaminhada, true),
				}); err != nil {
					return err
				}
				if v.TempoVeiculoMin > 0 {
					if err := q.UpdatePassageiroTempoVeiculo(ctx, db.UpdatePassageiroTempoVeiculoParams{
						ID:              v.ID,
						TempoVeiculoMin: validation.NullInt32From(v.TempoVeiculoMin, true),
					}); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

func (s *Service) DeleteService(ctx context.Context, roteirizacaoID, simulacaoID int64) error {
	if _, err := s.carregar(ctx, roteirizacaoID, simulacaoID); err != nil {
		return err
	}
	return s.InterfaceService.DeleteSimulacao(ctx, simulacaoID)
}

func (s *Service) carregar(ctx context.Context, roteirizacaoID, simulacaoID int64) (db.Simulacao, error) {
	sim, err := s.InterfaceService.GetSimulacaoById(ctx, simulacaoID)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Simulacao{}, ErrNaoEncontrada
	}
	if err != nil {
		return db.Simulacao{}, err
	}
	if sim.RoteirizacaoID != roteirizacaoID {
		return db.Simulacao{}, ErrOutraRoteirizacao
	}
	return sim, nil
}

func (s *Service) capturar(ctx context.Context, roteirizacaoID int64) (Snapshot, error) {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, roteirizacaoID)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, errors.New("roteirização não encontrada")
	}
	if err != nil {
		return Snapshot{}, err
	}

	roteiros, err := s.InterfaceService.ListRoteirosByRoteirizacao(ctx, roteirizacaoID)
	if err != nil {
		return Snapshot{}, err
	}
	paradas, err := s.InterfaceService.ListParadasByRoteirizacao(ctx, roteirizacaoID)
	if err != nil {
		return Snapshot{}, err
	}
	passageiros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, roteirizacaoID)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Parametros: ParametrosSnapshot{
			DistanciaMaximaCaminhada: rot.DistanciaMaximaCaminhada,
			TempoMaximoViagem:        rot.TempoMaximoViagem,
			CapacidadeVeiculo:        rot.CapacidadeVeiculo,
			HorarioChegada:           rot.HorarioChegada,
			HorarioSaidaVolta:        validation.GetStringFromNull(rot.HorarioSaidaVolta),
			TempoEmbarqueSegundos:    rot.TempoEmbarqueSegundos,
		},
	}

	idxPorRoteiro := make(map[int64]int, len(roteiros))
	nomePorRoteiro := make(map[int64]string, len(roteiros))
	for i, r := range roteiros {
		idxPorRoteiro[r.ID] = i
		nomePorRoteiro[r.ID] = validation.GetStringFromNull(r.Nome)
		snapshot.Roteiros = append(snapshot.Roteiros, RoteiroSnapshot{
			Nome:             validation.GetStringFromNull(r.Nome),
			Direcao:          r.Direcao,
			Polyline:         validation.GetStringFromNull(r.Polyline),
			DistanciaTotalKm: nullFloat(r.DistanciaTotalKm),
			DuracaoTotalMin:  nullInt32(r.DuracaoTotalMin),
			AcimaOrcamento:   r.AcimaOrcamento,
			Editado:          r.EditadoManualmente,
		})
	}

	porParada := make(map[int64][]PassageiroVinculo)
	for _, p := range passageiros {
		if !p.ParadaID.Valid {
			continue
		}
		porParada[p.ParadaID.Int64] = append(porParada[p.ParadaID.Int64], PassageiroVinculo{
			ID:                 p.ID,
			DistanciaCaminhada: nullFloat(p.DistanciaCaminhada),
			TempoVeiculoMin:    nullInt32(p.TempoVeiculoMin),
		})
	}

	for _, p := range paradas {
		item := ParadaSnapshot{
			RoteiroIdx:     -1,
			Nome:           validation.GetStringFromNull(p.Nome),
			Lat:            p.Lat,
			Lng:            p.Lng,
			Ordem:          nullInt32(p.Ordem),
			HorarioChegada: validation.GetStringFromNull(p.HorarioChegada),
			HorarioPartida: validation.GetStringFromNull(p.HorarioPartida),
			Passageiros:    porParada[p.ID],
		}
		if p.RoteiroID.Valid {
			if idx, ok := idxPorRoteiro[p.RoteiroID.Int64]; ok {
				item.RoteiroIdx = idx
			}
			item.RoteiroNome = nomePorRoteiro[p.RoteiroID.Int64]
		}
		snapshot.Paradas = append(snapshot.Paradas, item)
	}

	return snapshot, nil
}

// resolverRoteiro encontra o roteiro recriado de uma parada: primeiro pelo
// nome, depois pela posição no snapshot.
func resolverRoteiro(idPorNome map[string]int64, roteiroIDs []int64, p ParadaSnapshot) (int64, bool) {
	if p.RoteiroNome != "" {
		if id, ok := idPorNome[p.RoteiroNome]; ok {
			return id, true
		}
	}
	if p.RoteiroIdx >= 0 && p.RoteiroIdx < len(roteiroIDs) {
		return roteiroIDs[p.RoteiroIdx], true
	}
	return 0, false
}

func nullFloat(v sql.NullFloat64) float64 {
	if v.Valid {
		return v.Float64
	}
	return 0
}

func nullInt32(v sql.NullInt32) int32 {
	if v.Valid {
		return v.Int32
	}
	return 0
}
