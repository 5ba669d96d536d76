package roteirizacao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"googlemaps.github.io/maps"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/geomath"
	"roteirizador/internal/planner"
	"roteirizador/internal/provider"
	"roteirizador/internal/simulacao"
	"roteirizador/internal/ws"
	"roteirizador/pkg/tasks"
	"roteirizador/validation"
)

var (
	ErrNaoEncontrada     = errors.New("roteirização não encontrada")
	ErrFinalizada        = errors.New("roteirização finalizada não aceita alterações")
	ErrSemDestino        = errors.New("destino ainda não geocodificado")
	ErrSemParadas        = errors.New("nenhuma parada clusterizada")
	ErrSemGeocodificados = errors.New("nenhum passageiro geocodificado")
)

// processBudget limita o processamento completo de uma roteirização. Ao
// estourar, o que já foi persistido permanece e a execução conclui com
// avisos, contando os grupos que ficaram de fora.
const processBudget = 240 * time.Second

// dwellPadrao é o tempo de embarque assumido quando a requisição não traz um.
const dwellPadrao = int32(30)

// SnapshotSaver congela o estado atual numa simulação antes de um
// recálculo destrutivo.
type SnapshotSaver interface {
	SalvarService(ctx context.Context, roteirizacaoID int64, data simulacao.CreateSimulacaoRequest) (simulacao.SimulacaoResponse, error)
}

type InterfaceService interface {
	CreateRoteirizacaoService(ctx context.Context, data CreateRoteirizacaoRequest) (RoteirizacaoResponse, error)
	GetRoteirizacaoService(ctx context.Context, id int64) (ResultadoResponse, error)
	ListRoteirizacoesService(ctx context.Context) ([]RoteirizacaoResponse, error)
	ProcessarService(ctx context.Context, id int64) (ProcessamentoResponse, error)
	ClusterizarService(ctx context.Context, id int64) ([]ParadaResponse, error)
	OtimizarService(ctx context.Context, id int64) (ResultadoResponse, error)
	OtimizarVoltaService(ctx context.Context, id int64) (ResultadoResponse, error)
	RecalcularService(ctx context.Context, id int64, params ParametrosRequest) (ProcessamentoResponse, error)
	FinalizarService(ctx context.Context, id int64) error
	ReabrirService(ctx context.Context, id int64) error
	RotaEditadaService(ctx context.Context, id int64, data RotaEditadaRequest) (RoteiroResponse, error)
	ExportarKMLService(ctx context.Context, id, roteiroID int64) ([]byte, string, error)
	ExportarCSVService(ctx context.Context, id, roteiroID int64) ([]byte, string, error)
	GetTaskService(id string) (tasks.Task, error)
	CancelarTaskService(id string) error
}

type Service struct {
	InterfaceService InterfaceRepository
	Provider         provider.RoutingProvider
	Registry         *tasks.Registry
	Hub              *ws.Hub
	Snapshots        SnapshotSaver

	// Budget substitui processBudget quando configurado via ambiente.
	Budget time.Duration
	// DwellPadrao substitui dwellPadrao quando configurado via ambiente.
	DwellPadrao int32
}

func NewRoteirizacaoService(repo InterfaceRepository, p provider.RoutingProvider, registry *tasks.Registry, hub *ws.Hub, snapshots SnapshotSaver) *Service {
	return &Service{
		InterfaceService: repo,
		Provider:         p,
		Registry:         registry,
		Hub:              hub,
		Snapshots:        snapshots,
	}
}

func (s *Service) budget() time.Duration {
	if s.Budget > 0 {
		return s.Budget
	}
	return processBudget
}

func (s *Service) dwellPadrao() int32 {
	if s.DwellPadrao > 0 {
		return s.DwellPadrao
	}
	return dwellPadrao
}

func (s *Service) CreateRoteirizacaoService(ctx context.Context, data CreateRoteirizacaoRequest) (RoteirizacaoResponse, error) {
	if data.HorarioChegada == "" {
		data.HorarioChegada = "07:00"
	}
	if data.DistanciaMaximaCaminhada == 0 {
		data.DistanciaMaximaCaminhada = 300
	}
	if data.TempoMaximoViagem == 0 {
		data.TempoMaximoViagem = 90
	}
	if data.CapacidadeVeiculo == 0 {
		data.CapacidadeVeiculo = 44
	}
	if data.TempoEmbarqueSegundos == 0 {
		data.TempoEmbarqueSegundos = s.dwellPadrao()
	}

	rot, err := s.InterfaceService.CreateRoteirizacao(ctx, db.CreateRoteirizacaoParams{
		Nome:                     data.Nome,
		EnderecoDestino:          data.EnderecoDestino,
		DistanciaMaximaCaminhada: data.DistanciaMaximaCaminhada,
		TempoMaximoViagem:        data.TempoMaximoViagem,
		CapacidadeVeiculo:        data.CapacidadeVeiculo,
		HorarioChegada:           data.HorarioChegada,
		HorarioSaidaVolta:        validation.NullStringFrom(data.HorarioSaidaVolta),
		TempoEmbarqueSegundos:    data.TempoEmbarqueSegundos,
	})
	if err != nil {
		return RoteirizacaoResponse{}, err
	}

	for _, p := range data.Passageiros {
		if _, err := s.InterfaceService.CreatePassageiro(ctx, db.CreatePassageiroParams{
			RoteirizacaoID: rot.ID,
			Nome:           p.Nome,
			Endereco:       p.Endereco,
			Bairro:         validation.NullStringFrom(p.Bairro),
			Cidade:         validation.NullStringFrom(p.Cidade),
			Uf:             validation.NullStringFrom(p.Uf),
		}); err != nil {
			return RoteirizacaoResponse{}, err
		}
	}

	response := RoteirizacaoResponse{}
	response.ParseFromObject(rot)
	response.TotalPassageiros = len(data.Passageiros)
	return response, nil
}

func (s *Service) GetRoteirizacaoService(ctx context.Context, id int64) (ResultadoResponse, error) {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ResultadoResponse{}, ErrNaoEncontrada
	}
	if err != nil {
		return ResultadoResponse{}, err
	}

	response := ResultadoResponse{}
	response.Roteirizacao.ParseFromObject(rot)

	passageiros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, id)
	if err != nil {
		return ResultadoResponse{}, err
	}
	response.Roteirizacao.TotalPassageiros = len(passageiros)

	roteiros, err := s.InterfaceService.ListRoteirosByRoteirizacao(ctx, id)
	if err != nil {
		return ResultadoResponse{}, err
	}
	for _, roteiro := range roteiros {
		item, err := s.roteiroResponse(ctx, roteiro, passageiros)
		if err != nil {
			return ResultadoResponse{}, err
		}
		response.Roteiros = append(response.Roteiros, item)
	}
	return response, nil
}

func (s *Service) ListRoteirizacoesService(ctx context.Context) ([]RoteirizacaoResponse, error) {
	result, err := s.InterfaceService.ListRoteirizacoes(ctx)
	if err != nil {
		return nil, err
	}

	var list []RoteirizacaoResponse
	for _, rot := range result {
		item := RoteirizacaoResponse{}
		item.ParseFromObject(rot)
		list = append(list, item)
	}
	return list, nil
}

// ProcessarService dispara o pipeline completo em segundo plano: geocodifica
// o destino, clusteriza, particiona, otimiza e calcula horários. O progresso
// sai pelo websocket e pelo registro de tarefas.
func (s *Service) ProcessarService(ctx context.Context, id int64) (ProcessamentoResponse, error) {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ProcessamentoResponse{}, ErrNaoEncontrada
	}
	if err != nil {
		return ProcessamentoResponse{}, err
	}
	if rot.Status == StatusFinalizada {
		return ProcessamentoResponse{}, ErrFinalizada
	}

	if err := s.InterfaceService.UpdateRoteirizacaoStatus(ctx, db.UpdateRoteirizacaoStatusParams{
		ID: id, Status: StatusProcessando,
	}); err != nil {
		return ProcessamentoResponse{}, err
	}

	task, taskCtx := s.Registry.Start(context.Background(), s.budget())

	go s.processar(taskCtx, task.ID, id)

	return ProcessamentoResponse{TaskID: task.ID, Status: tasks.StatusRodando}, nil
}

func (s *Service) processar(ctx context.Context, taskID string, id int64) {
	started := time.Now()
	total := ProcessamentoResultado{RoteirizacaoID: id}

	fail := func(err error) {
		// Orçamento estourado com roteiros já persistidos: o resultado
		// parcial vale mais que um erro; conclui com avisos.
		if ctx.Err() != nil && total.RoteirosGerados > 0 {
			s.concluir(taskID, id, total, started)
			return
		}
		processamentosTotal.WithLabelValues("falha").Inc()
		s.Registry.Fail(taskID, err)
		s.publish(taskID, "erro", 100, "", err)
		_ = s.InterfaceService.UpdateRoteirizacaoStatus(context.Background(), db.UpdateRoteirizacaoStatusParams{
			ID: id, Status: StatusRascunho,
		})
	}

	s.progress(taskID, "geocodificando destino", 5)
	rot, err := s.ensureDestino(ctx, id)
	if err != nil {
		fail(err)
		return
	}

	s.progress(taskID, "clusterizando passageiros", 20)
	if _, err := s.clusterizar(ctx, rot); err != nil {
		fail(err)
		return
	}

	s.progress(taskID, "otimizando rotas de ida", 50)
	res, err := s.otimizar(ctx, rot, DirecaoIda)
	total.soma(res)
	if err != nil {
		fail(err)
		return
	}

	if rot.HorarioSaidaVolta.Valid {
		s.progress(taskID, "otimizando rotas de volta", 80)
		res, err = s.otimizar(ctx, rot, DirecaoVolta)
		total.soma(res)
		if err != nil {
			fail(err)
			return
		}
	}

	s.concluir(taskID, id, total, started)
}

func (s *Service) concluir(taskID string, id int64, total ProcessamentoResultado, started time.Time) {
	if err := s.InterfaceService.UpdateRoteirizacaoStatus(context.Background(), db.UpdateRoteirizacaoStatusParams{
		ID: id, Status: StatusConcluida,
	}); err != nil {
		processamentosTotal.WithLabelValues("falha").Inc()
		s.Registry.Fail(taskID, err)
		s.publish(taskID, "erro", 100, "", err)
		return
	}

	resultado, msg := "sucesso", "roteirização concluída"
	if total.GruposNaoProcessados > 0 {
		resultado = "parcial"
		msg = fmt.Sprintf("roteirização concluída com avisos: %d rotas geradas, %d grupos não processados",
			total.RoteirosGerados, total.GruposNaoProcessados)
	}
	processamentosTotal.WithLabelValues(resultado).Inc()
	processamentoDuracao.Observe(time.Since(started).Seconds())
	s.Registry.Finish(taskID, total)
	s.publish(taskID, "concluido", 100, msg, nil)
}

func (s *Service) ClusterizarService(ctx context.Context, id int64) ([]ParadaResponse, error) {
	rot, err := s.loadEditavel(ctx, id)
	if err != nil {
		return nil, err
	}
	rot, err = s.ensureDestino(ctx, rot.ID)
	if err != nil {
		return nil, err
	}
	return s.clusterizar(ctx, rot)
}

func (s *Service) OtimizarService(ctx context.Context, id int64) (ResultadoResponse, error) {
	rot, err := s.loadEditavel(ctx, id)
	if err != nil {
		return ResultadoResponse{}, err
	}
	res, err := s.otimizar(ctx, rot, DirecaoIda)
	if err != nil {
		return ResultadoResponse{}, err
	}
	return s.resultadoComContagem(ctx, id, res)
}

func (s *Service) OtimizarVoltaService(ctx context.Context, id int64) (ResultadoResponse, error) {
	rot, err := s.loadEditavel(ctx, id)
	if err != nil {
		return ResultadoResponse{}, err
	}
	res, err := s.otimizar(ctx, rot, DirecaoVolta)
	if err != nil {
		return ResultadoResponse{}, err
	}
	return s.resultadoComContagem(ctx, id, res)
}

func (s *Service) resultadoComContagem(ctx context.Context, id int64, res otimizacaoResultado) (ResultadoResponse, error) {
	out, err := s.GetRoteirizacaoService(ctx, id)
	if err != nil {
		return ResultadoResponse{}, err
	}
	out.RoteirosGerados = res.RoteirosGerados
	out.GruposNaoProcessados = res.GruposNaoProcessados
	return out, nil
}

// RecalcularService persiste novos parâmetros e reprocessa do zero,
// congelando o estado atual numa simulação antes de sobrescrever.
func (s *Service) RecalcularService(ctx context.Context, id int64, params ParametrosRequest) (ProcessamentoResponse, error) {
	if _, err := s.loadEditavel(ctx, id); err != nil {
		return ProcessamentoResponse{}, err
	}

	if s.Snapshots != nil {
		nome := fmt.Sprintf("Backup antes do recálculo %s", time.Now().Format("02/01/2006 15:04"))
		if _, err := s.Snapshots.SalvarService(ctx, id, simulacao.CreateSimulacaoRequest{Nome: nome}); err != nil {
			return ProcessamentoResponse{}, err
		}
	}

	if _, err := s.InterfaceService.UpdateRoteirizacaoParametros(ctx, db.UpdateRoteirizacaoParametrosParams{
		ID:                       id,
		DistanciaMaximaCaminhada: params.DistanciaMaximaCaminhada,
		TempoMaximoViagem:        params.TempoMaximoViagem,
		CapacidadeVeiculo:        params.CapacidadeVeiculo,
		HorarioChegada:           params.HorarioChegada,
		HorarioSaidaVolta:        validation.NullStringFrom(params.HorarioSaidaVolta),
		TempoEmbarqueSegundos:    params.TempoEmbarqueSegundos,
	}); err != nil {
		return ProcessamentoResponse{}, err
	}

	return s.ProcessarService(ctx, id)
}

func (s *Service) FinalizarService(ctx context.Context, id int64) error {
	if _, err := s.loadEditavel(ctx, id); err != nil {
		return err
	}
	return s.InterfaceService.UpdateRoteirizacaoStatus(ctx, db.UpdateRoteirizacaoStatusParams{
		ID: id, Status: StatusFinalizada,
	})
}

func (s *Service) ReabrirService(ctx context.Context, id int64) error {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNaoEncontrada
	}
	if err != nil {
		return err
	}
	if rot.Status != StatusFinalizada {
		return nil
	}
	return s.InterfaceService.UpdateRoteirizacaoStatus(ctx, db.UpdateRoteirizacaoStatusParams{
		ID: id, Status: StatusConcluida,
	})
}

// RotaEditadaService aplica uma ordem manual de paradas a um roteiro:
// recalcula legs e horários na ordem dada e grava tudo numa transação.
func (s *Service) RotaEditadaService(ctx context.Context, id int64, data RotaEditadaRequest) (RoteiroResponse, error) {
	rot, err := s.loadEditavel(ctx, id)
	if err != nil {
		return RoteiroResponse{}, err
	}
	if !rot.DestinoLat.Valid || !rot.DestinoLng.Valid {
		return RoteiroResponse{}, ErrSemDestino
	}

	roteiro, err := s.InterfaceService.GetRoteiroById(ctx, data.RoteiroID)
	if errors.Is(err, sql.ErrNoRows) {
		return RoteiroResponse{}, errors.New("roteiro não encontrado")
	}
	if err != nil {
		return RoteiroResponse{}, err
	}
	if roteiro.RoteirizacaoID != id {
		return RoteiroResponse{}, errors.New("roteiro não pertence à roteirização")
	}

	atuais, err := s.InterfaceService.ListParadasByRoteiro(ctx, validation.NullInt64From(roteiro.ID, true))
	if err != nil {
		return RoteiroResponse{}, err
	}
	byID := make(map[int64]db.Parada, len(atuais))
	for _, p := range atuais {
		byID[p.ID] = p
	}
	if len(data.ParadaIDs) != len(atuais) {
		return RoteiroResponse{}, errors.New("a ordem editada precisa conter todas as paradas do roteiro")
	}
	ordered := make([]db.Parada, 0, len(data.ParadaIDs))
	for _, pid := range data.ParadaIDs {
		p, ok := byID[pid]
		if !ok {
			return RoteiroResponse{}, fmt.Errorf("parada %d não pertence ao roteiro", pid)
		}
		ordered = append(ordered, p)
	}

	destino := maps.LatLng{Lat: rot.DestinoLat.Float64, Lng: rot.DestinoLng.Float64}
	result, err := s.rotaFixa(ctx, ordered, destino, roteiro.Direcao, rot)
	if err != nil {
		return RoteiroResponse{}, err
	}

	schedule := s.calcularHorarios(rot, roteiro.Direcao, result.Legs)

	err = s.InterfaceService.ExecTx(ctx, func(q *db.Queries) error {
		for i, p := range ordered {
			arg := db.UpdateParadaRoteiroParams{
				ID:        p.ID,
				RoteiroID: validation.NullInt64From(roteiro.ID, true),
				Ordem:     validation.NullInt32From(int32(i+1), true),
			}
			if i < len(schedule) {
				arg.HorarioChegada = validation.NullStringFrom(schedule[i].Arrival.Format("15:04:05"))
				arg.HorarioPartida = validation.NullStringFrom(schedule[i].Departure.Format("15:04:05"))
			}
			if err := q.UpdateParadaRoteiro(ctx, arg); err != nil {
				return err
			}
		}
		return q.UpdateRoteiroResultado(ctx, db.UpdateRoteiroResultadoParams{
			ID:                 roteiro.ID,
			Polyline:           validation.NullStringFrom(result.Polyline),
			DistanciaTotalKm:   validation.NullFloatFrom(result.TotalDistanceKm, true),
			DuracaoTotalMin:    validation.NullInt32From(int32(result.TotalDurationMin), true),
			EditadoManualmente: true,
		})
	})
	if err != nil {
		return RoteiroResponse{}, err
	}

	atualizado, err := s.InterfaceService.GetRoteiroById(ctx, roteiro.ID)
	if err != nil {
		return RoteiroResponse{}, err
	}
	passageiros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, id)
	if err != nil {
		return RoteiroResponse{}, err
	}
	return s.roteiroResponse(ctx, atualizado, passageiros)
}

func (s *Service) GetTaskService(id string) (tasks.Task, error) {
	return s.Registry.Get(id)
}

func (s *Service) CancelarTaskService(id string) error {
	return s.Registry.Cancel(id)
}

// ----- pipeline interno -----

func (s *Service) loadEditavel(ctx context.Context, id int64) (db.Roteirizacao, error) {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Roteirizacao{}, ErrNaoEncontrada
	}
	if err != nil {
		return db.Roteirizacao{}, err
	}
	if rot.Status == StatusFinalizada {
		return db.Roteirizacao{}, ErrFinalizada
	}
	return rot, nil
}

func (s *Service) ensureDestino(ctx context.Context, id int64) (db.Roteirizacao, error) {
	rot, err := s.InterfaceService.GetRoteirizacaoById(ctx, id)
	if err != nil {
		return db.Roteirizacao{}, err
	}
	if rot.DestinoLat.Valid && rot.DestinoLng.Valid {
		return rot, nil
	}

	geo, err := s.Provider.Geocode(ctx, rot.EnderecoDestino)
	if err != nil {
		return db.Roteirizacao{}, fmt.Errorf("geocodificação do destino: %w", err)
	}
	return s.InterfaceService.UpdateRoteirizacaoDestino(ctx, db.UpdateRoteirizacaoDestinoParams{
		ID:         id,
		DestinoLat: validation.NullFloatFrom(geo.Lat, true),
		DestinoLng: validation.NullFloatFrom(geo.Lng, true),
	})
}

// clusterizar refaz as paradas do zero: roteiros e vínculos anteriores são
// descartados antes de materializar os clusters novos.
func (s *Service) clusterizar(ctx context.Context, rot db.Roteirizacao) ([]ParadaResponse, error) {
	if !rot.DestinoLat.Valid || !rot.DestinoLng.Valid {
		return nil, ErrSemDestino
	}

	registros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, rot.ID)
	if err != nil {
		return nil, err
	}

	var passageiros []planner.Passenger
	for _, p := range registros {
		if p.Lat.Valid && p.Lng.Valid {
			passageiros = append(passageiros, planner.Passenger{
				ID:  p.ID,
				Lat: p.Lat.Float64,
				Lng: p.Lng.Float64,
			})
		}
	}
	if len(passageiros) == 0 {
		return nil, ErrSemGeocodificados
	}

	destino := maps.LatLng{Lat: rot.DestinoLat.Float64, Lng: rot.DestinoLng.Float64}
	clusterer := planner.NewClusterer(s.Provider)
	clusters := clusterer.Cluster(ctx, passageiros, rot.DistanciaMaximaCaminhada, &destino)

	for _, direcao := range []string{DirecaoIda, DirecaoVolta} {
		if err := s.InterfaceService.DeleteRoteirosByDirecao(ctx, db.DeleteRoteirosByDirecaoParams{
			RoteirizacaoID: rot.ID, Direcao: direcao,
		}); err != nil {
			return nil, err
		}
	}
	if err := s.InterfaceService.ClearParadasDosPassageiros(ctx, rot.ID); err != nil {
		return nil, err
	}
	if err := s.InterfaceService.DeleteParadasByRoteirizacao(ctx, rot.ID); err != nil {
		return nil, err
	}

	var response []ParadaResponse
	for _, cluster := range clusters {
		nome := s.nomeDaParada(ctx, cluster.CentroidLat, cluster.CentroidLng)
		parada, err := s.InterfaceService.CreateParada(ctx, db.CreateParadaParams{
			RoteirizacaoID: rot.ID,
			Nome:           validation.NullStringFrom(nome),
			Lat:            cluster.CentroidLat,
			Lng:            cluster.CentroidLng,
		})
		if err != nil {
			return nil, err
		}

		for _, pid := range cluster.PassengerIDs {
			if err := s.InterfaceService.UpdatePassageiroParada(ctx, db.UpdatePassageiroParadaParams{
				ID:                 pid,
				ParadaID:           validation.NullInt64From(parada.ID, true),
				DistanciaCaminhada: validation.NullFloatFrom(cluster.Distances[pid], true),
			}); err != nil {
				return nil, err
			}
		}

		response = append(response, ParadaResponse{
			ID:            parada.ID,
			Nome:          nome,
			Lat:           parada.Lat,
			Lng:           parada.Lng,
			PassageiroIDs: cluster.PassengerIDs,
		})
	}
	return response, nil
}

// nomeDaParada busca o endereço de referência do ponto; falha de reverse
// geocode não derruba a clusterização.
func (s *Service) nomeDaParada(ctx context.Context, lat, lng float64) string {
	nome, err := s.Provider.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return fmt.Sprintf("%.5f, %.5f", lat, lng)
	}
	return nome
}

// otimizacaoResultado conta os roteiros gravados e os grupos deixados de
// fora quando o orçamento de tempo estoura no meio da execução.
type otimizacaoResultado struct {
	RoteirosGerados      int
	GruposNaoProcessados int
}

func (r *ProcessamentoResultado) soma(o otimizacaoResultado) {
	r.RoteirosGerados += o.RoteirosGerados
	r.GruposNaoProcessados += o.GruposNaoProcessados
}

func (s *Service) otimizar(ctx context.Context, rot db.Roteirizacao, direcao string) (otimizacaoResultado, error) {
	var res otimizacaoResultado
	if !rot.DestinoLat.Valid || !rot.DestinoLng.Valid {
		return res, ErrSemDestino
	}
	if direcao == DirecaoVolta && !rot.HorarioSaidaVolta.Valid {
		return res, errors.New("horário de saída da volta não configurado")
	}

	paradas, err := s.InterfaceService.ListParadasByRoteirizacao(ctx, rot.ID)
	if err != nil {
		return res, err
	}
	if len(paradas) == 0 {
		return res, ErrSemParadas
	}
	passageiros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, rot.ID)
	if err != nil {
		return res, err
	}

	stops := toStopPoints(paradas, passageiros)
	grupos := planner.PartitionByCapacity(stops, int(rot.CapacidadeVeiculo))

	if err := s.InterfaceService.DeleteRoteirosByDirecao(ctx, db.DeleteRoteirosByDirecaoParams{
		RoteirizacaoID: rot.ID, Direcao: direcao,
	}); err != nil {
		return res, err
	}

	destino := maps.LatLng{Lat: rot.DestinoLat.Float64, Lng: rot.DestinoLng.Float64}
	optimizer := planner.NewOptimizer(s.Provider)
	partida := departureFor(rot, direcao)

	ordemGlobal := int32(0)
	numRoteiro := 0
loop:
	for gi, grupo := range grupos {
		// Orçamento estourado: o que falta vira contagem de não
		// processados; o que já foi gravado permanece.
		if ctx.Err() != nil {
			res.GruposNaoProcessados += len(grupos) - gi
			break
		}

		var timeGroups []planner.TimeGroup

		if direcao == DirecaoVolta {
			result, err := optimizer.OptimizeReturn(ctx, grupo, destino, partida)
			if err != nil {
				timeGroups = []planner.TimeGroup{{Stops: grupo}}
			} else {
				timeGroups = []planner.TimeGroup{{Stops: grupo, Result: result}}
			}
		} else {
			result, err := optimizer.Optimize(ctx, grupo, destino, partida)
			if err != nil {
				timeGroups = []planner.TimeGroup{{Stops: grupo}}
			} else {
				timeGroups = optimizer.PartitionByTime(ctx, grupo, result, int(rot.TempoMaximoViagem), destino, partida)
			}
		}

		for _, tg := range timeGroups {
			numRoteiro++
			if err := s.persistRoteiro(ctx, rot, direcao, nomeDoRoteiro(direcao, numRoteiro), tg, &ordemGlobal); err != nil {
				if ctx.Err() != nil {
					res.GruposNaoProcessados += len(grupos) - gi
					break loop
				}
				return res, err
			}
			res.RoteirosGerados++
		}
	}

	s.atualizarTotais(context.Background(), rot.ID)
	return res, nil
}

func nomeDoRoteiro(direcao string, n int) string {
	if direcao == DirecaoVolta {
		return fmt.Sprintf("Rota Volta %d", n)
	}
	return fmt.Sprintf("Rota %d", n)
}

// atualizarTotais agrega os números da execução no registro da roteirização:
// km somado entre roteiros, duração do maior grupo e total de roteiros.
func (s *Service) atualizarTotais(ctx context.Context, id int64) {
	roteiros, err := s.InterfaceService.ListRoteirosByRoteirizacao(ctx, id)
	if err != nil {
		return
	}

	var totalKm float64
	var duracaoMax, total int32
	for _, r := range roteiros {
		total++
		if r.DistanciaTotalKm.Valid {
			totalKm += r.DistanciaTotalKm.Float64
		}
		if r.DuracaoTotalMin.Valid && r.DuracaoTotalMin.Int32 > duracaoMax {
			duracaoMax = r.DuracaoTotalMin.Int32
		}
	}

	_ = s.InterfaceService.UpdateRoteirizacaoTotais(ctx, db.UpdateRoteirizacaoTotaisParams{
		ID:               id,
		DistanciaTotalKm: validation.NullFloatFrom(totalKm, total > 0),
		DuracaoTotalMin:  validation.NullInt32From(duracaoMax, duracaoMax > 0),
		TotalRoteiros:    validation.NullInt32From(total, total > 0),
	})
}

// persistRoteiro grava um roteiro e amarra paradas, ordem global, horários
// e tempo de veículo por passageiro.
func (s *Service) persistRoteiro(ctx context.Context, rot db.Roteirizacao, direcao, nome string, tg planner.TimeGroup, ordemGlobal *int32) error {
	arg := db.CreateRoteiroParams{
		RoteirizacaoID: rot.ID,
		Nome:           validation.NullStringFrom(nome),
		Direcao:        direcao,
		AcimaOrcamento: tg.OverBudget,
	}
	if tg.Result != nil {
		arg.Polyline = validation.NullStringFrom(tg.Result.Polyline)
		arg.DistanciaTotalKm = validation.NullFloatFrom(tg.Result.TotalDistanceKm, true)
		arg.DuracaoTotalMin = validation.NullInt32From(int32(tg.Result.TotalDurationMin), true)
	}

	roteiro, err := s.InterfaceService.CreateRoteiro(ctx, arg)
	if err != nil {
		return err
	}

	ordered := tg.Stops
	var schedule []planner.ScheduleEntry
	if tg.Result != nil {
		ordered = make([]planner.StopPoint, 0, len(tg.Stops))
		for _, idx := range tg.Result.WaypointOrder {
			if idx >= 0 && idx < len(tg.Stops) {
				ordered = append(ordered, tg.Stops[idx])
			}
		}
		schedule = s.calcularHorarios(rot, direcao, tg.Result.Legs)
	}

	anchor := arrivalAnchor(rot)
	for i, stop := range ordered {
		*ordemGlobal++
		arg := db.UpdateParadaRoteiroParams{
			ID:        stop.ID,
			RoteiroID: validation.NullInt64From(roteiro.ID, true),
			Ordem:     validation.NullInt32From(*ordemGlobal, true),
		}
		if i < len(schedule) {
			arg.HorarioChegada = validation.NullStringFrom(schedule[i].Arrival.Format("15:04:05"))
			arg.HorarioPartida = validation.NullStringFrom(schedule[i].Departure.Format("15:04:05"))
		}
		if err := s.InterfaceService.UpdateParadaRoteiro(ctx, arg); err != nil {
			return err
		}

		if direcao == DirecaoIda && i < len(schedule) {
			minutos := planner.InVehicleMinutes(schedule[i].Departure, anchor)
			for _, pid := range stop.PassengerIDs {
				if err := s.InterfaceService.UpdatePassageiroTempoVeiculo(ctx, db.UpdatePassageiroTempoVeiculoParams{
					ID:              pid,
					TempoVeiculoMin: validation.NullInt32From(int32(minutos), true),
				}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// rotaFixa monta o resultado de uma ordem imposta pelo usuário: uma chamada
// de direções por trecho consecutivo, sem reordenação pelo provedor.
func (s *Service) rotaFixa(ctx context.Context, ordered []db.Parada, destino maps.LatLng, direcao string, rot db.Roteirizacao) (*planner.OptimizeResult, error) {
	points := make([]maps.LatLng, 0, len(ordered)+1)
	if direcao == DirecaoVolta {
		points = append(points, destino)
		for _, p := range ordered {
			points = append(points, maps.LatLng{Lat: p.Lat, Lng: p.Lng})
		}
	} else {
		for _, p := range ordered {
			points = append(points, maps.LatLng{Lat: p.Lat, Lng: p.Lng})
		}
		points = append(points, destino)
	}

	result := &planner.OptimizeResult{}
	var path []maps.LatLng
	var totalMeters, totalSeconds int
	for i := 0; i < len(points)-1; i++ {
		leg, err := s.Provider.Route(ctx, points[i], points[i+1])
		if err != nil {
			return nil, err
		}
		result.Legs = append(result.Legs, leg.Legs...)
		totalMeters += leg.TotalDistanceMeters()
		totalSeconds += leg.TotalDurationSeconds()
		path = append(path, geomath.DecodePolyline(leg.Polyline)...)
	}

	for i := range ordered {
		result.WaypointOrder = append(result.WaypointOrder, i)
	}
	result.TotalDistanceKm = float64(totalMeters) / 1000
	result.TotalDurationMin = (totalSeconds + 30) / 60
	result.Polyline = geomath.EncodePolyline(path)
	return result, nil
}

func (s *Service) calcularHorarios(rot db.Roteirizacao, direcao string, legs []provider.Leg) []planner.ScheduleEntry {
	dwell := int(rot.TempoEmbarqueSegundos)
	if direcao == DirecaoVolta {
		return planner.CalcReturnSchedule(legs, departureFor(rot, direcao), dwell)
	}
	return planner.CalcOutboundSchedule(legs, arrivalAnchor(rot), dwell)
}

func (s *Service) roteiroResponse(ctx context.Context, roteiro db.Roteiro, passageiros []db.Passageiro) (RoteiroResponse, error) {
	response := RoteiroResponse{}
	response.ParseFromObject(roteiro)

	paradas, err := s.InterfaceService.ListParadasByRoteiro(ctx, validation.NullInt64From(roteiro.ID, true))
	if err != nil {
		return RoteiroResponse{}, err
	}

	porParada := make(map[int64][]int64)
	for _, p := range passageiros {
		if p.ParadaID.Valid {
			porParada[p.ParadaID.Int64] = append(porParada[p.ParadaID.Int64], p.ID)
		}
	}

	for _, parada := range paradas {
		item := ParadaResponse{
			ID:             parada.ID,
			Nome:           validation.GetStringFromNull(parada.Nome),
			Lat:            parada.Lat,
			Lng:            parada.Lng,
			HorarioChegada: validation.GetStringFromNull(parada.HorarioChegada),
			HorarioPartida: validation.GetStringFromNull(parada.HorarioPartida),
			PassageiroIDs:  porParada[parada.ID],
		}
		if parada.Ordem.Valid {
			item.Ordem = parada.Ordem.Int32
		}
		response.Paradas = append(response.Paradas, item)
	}
	return response, nil
}

func (s *Service) progress(taskID, etapa string, pct int) {
	s.Registry.Progress(taskID, etapa, pct)
	s.publish(taskID, etapa, pct, "", nil)
}

func (s *Service) publish(taskID, etapa string, pct int, msg string, err error) {
	if s.Hub == nil {
		return
	}
	event := &ws.ProgressEvent{
		TaskID:     taskID,
		Etapa:      etapa,
		Percentual: pct,
		Mensagem:   msg,
		Concluido:  etapa == "concluido",
		At:         time.Now(),
	}
	if err != nil {
		event.Erro = err.Error()
	}
	s.Hub.Publish(event)
}

func toStopPoints(paradas []db.Parada, passageiros []db.Passageiro) []planner.StopPoint {
	porParada := make(map[int64][]int64)
	for _, p := range passageiros {
		if p.ParadaID.Valid {
			porParada[p.ParadaID.Int64] = append(porParada[p.ParadaID.Int64], p.ID)
		}
	}

	stops := make([]planner.StopPoint, 0, len(paradas))
	for _, parada := range paradas {
		stops = append(stops, planner.StopPoint{
			ID:           parada.ID,
			Lat:          parada.Lat,
			Lng:          parada.Lng,
			PassengerIDs: porParada[parada.ID],
		})
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].ID < stops[j].ID })
	return stops
}

func parseHorario(value string) time.Time {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
		}
	}
	return time.Date(2000, time.January, 1, 7, 0, 0, 0, time.UTC)
}

func arrivalAnchor(rot db.Roteirizacao) time.Time {
	return parseHorario(rot.HorarioChegada)
}

func departureFor(rot db.Roteirizacao, direcao string) time.Time {
	if direcao == DirecaoVolta && rot.HorarioSaidaVolta.Valid {
		return parseHorario(rot.HorarioSaidaVolta.String)
	}
	return arrivalAnchor(rot)
}
