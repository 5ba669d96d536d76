package simulacao

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "roteirizador/db/sqlc"
	"roteirizador/validation"
)

type fakeRepository struct {
	roteirizacao db.Roteirizacao
	roteiros     []db.Roteiro
	paradas      []db.Parada
	passageiros  []db.Passageiro
	simulacoes   map[int64]db.Simulacao
	criadas      []db.CreateSimulacaoParams
	deletadas    []int64
}

func newTestRepository() *fakeRepository {
	return &fakeRepository{
		roteirizacao: db.Roteirizacao{
			ID:                       1,
			Nome:                     "Turno manhã",
			DistanciaMaximaCaminhada: 300,
			TempoMaximoViagem:        90,
			CapacidadeVeiculo:        44,
			HorarioChegada:           "07:00",
			HorarioSaidaVolta:        validation.NullStringFrom("17:30"),
			TempoEmbarqueSegundos:    30,
		},
		simulacoes: map[int64]db.Simulacao{},
	}
}

func (f *fakeRepository) CreateSimulacao(_ context.Context, arg db.CreateSimulacaoParams) (db.Simulacao, error) {
	f.criadas = append(f.criadas, arg)
	sim := db.Simulacao{
		ID:             int64(len(f.criadas)),
		RoteirizacaoID: arg.RoteirizacaoID,
		Nome:           arg.Nome,
		Snapshot:       arg.Snapshot,
		CreatedAt:      time.Now(),
	}
	f.simulacoes[sim.ID] = sim
	return sim, nil
}

func (f *fakeRepository) GetSimulacaoById(_ context.Context, id int64) (db.Simulacao, error) {
	sim, ok := f.simulacoes[id]
	if !ok {
		return db.Simulacao{}, sql.ErrNoRows
	}
	return sim, nil
}

func (f *fakeRepository) ListSimulacoesByRoteirizacao(_ context.Context, roteirizacaoID int64) ([]db.Simulacao, error) {
	var list []db.Simulacao
	for _, sim := range f.simulacoes {
		if sim.RoteirizacaoID == roteirizacaoID {
			list = append(list, sim)
		}
	}
	return list, nil
}

func (f *fakeRepository) DeleteSimulacao(_ context.Context, id int64) error {
	delete(f.simulacoes, id)
	f.deletadas = append(f.deletadas, id)
	return nil
}

func (f *fakeRepository) GetRoteirizacaoById(_ context.Context, id int64) (db.Roteirizacao, error) {
	if id != f.roteirizacao.ID {
		return db.Roteirizacao{}, sql.ErrNoRows
	}
	return f.roteirizacao, nil
}

func (f *fakeRepository) ListRoteirosByRoteirizacao(_ context.Context, _ int64) ([]db.Roteiro, error) {
	return f.roteiros, nil
}

func (f *fakeRepository) ListParadasByRoteirizacao(_ context.Context, _ int64) ([]db.Parada, error) {
	return f.paradas, nil
}

func (f *fakeRepository) ListPassageirosByRoteirizacao(_ context.Context, _ int64) ([]db.Passageiro, error) {
	return f.passageiros, nil
}

func (f *fakeRepository) ExecTx(_ context.Context, _ func(q *db.Queries) error) error {
	return nil
}

func TestSalvarServiceCapturaEstado(t *testing.T) {
	repo := newTestRepository()
	repo.roteiros = []db.Roteiro{
		{ID: 10, RoteirizacaoID: 1, Nome: validation.NullStringFrom("Rota 1"), Direcao: "ida",
			Polyline:         validation.NullStringFrom("abc"),
			DistanciaTotalKm: validation.NullFloatFrom(12.4, true), DuracaoTotalMin: validation.NullInt32From(35, true)},
		{ID: 11, RoteirizacaoID: 1, Nome: validation.NullStringFrom("Rota Volta 1"), Direcao: "volta"},
	}
	repo.paradas = []db.Parada{
		{ID: 20, RoteirizacaoID: 1, RoteiroID: validation.NullInt64From(10, true), Lat: -23.55, Lng: -46.63,
			Ordem: validation.NullInt32From(1, true), HorarioChegada: validation.NullStringFrom("06:40"),
			HorarioPartida: validation.NullStringFrom("06:41")},
		{ID: 21, RoteirizacaoID: 1, Lat: -23.56, Lng: -46.64},
	}
	repo.passageiros = []db.Passageiro{
		{ID: 30, RoteirizacaoID: 1, ParadaID: validation.NullInt64From(20, true),
			DistanciaCaminhada: validation.NullFloatFrom(120, true), TempoVeiculoMin: validation.NullInt32From(18, true)},
		{ID: 31, RoteirizacaoID: 1, ParadaID: validation.NullInt64From(20, true)},
		{ID: 32, RoteirizacaoID: 1},
	}
	service := NewSimulacaoService(repo)

	response, err := service.SalvarService(context.Background(), 1, CreateSimulacaoRequest{Nome: "antes do ajuste"})
	require.NoError(t, err)
	assert.Equal(t, "antes do ajuste", response.Nome)

	require.Len(t, repo.criadas, 1)
	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(repo.criadas[0].Snapshot, &snapshot))

	assert.Equal(t, 300.0, snapshot.Parametros.DistanciaMaximaCaminhada)
	assert.Equal(t, "17:30", snapshot.Parametros.HorarioSaidaVolta)

	require.Len(t, snapshot.Roteiros, 2)
	assert.Equal(t, "Rota 1", snapshot.Roteiros[0].Nome)
	assert.Equal(t, "ida", snapshot.Roteiros[0].Direcao)
	assert.Equal(t, 12.4, snapshot.Roteiros[0].DistanciaTotalKm)

	require.Len(t, snapshot.Paradas, 2)
	assert.Equal(t, "Rota 1", snapshot.Paradas[0].RoteiroNome)
	assert.Equal(t, 0, snapshot.Paradas[0].RoteiroIdx)
	assert.Equal(t, "06:40", snapshot.Paradas[0].HorarioChegada)
	require.Len(t, snapshot.Paradas[0].Passageiros, 2)
	assert.Equal(t, 120.0, snapshot.Paradas[0].Passageiros[0].DistanciaCaminhada)

	// Parada sem roteiro fica com índice -1; passageiro sem parada não
	// entra em vínculo nenhum.
	assert.Equal(t, -1, snapshot.Paradas[1].RoteiroIdx)
	assert.Empty(t, snapshot.Paradas[1].RoteiroNome)
	assert.Empty(t, snapshot.Paradas[1].Passageiros)
}

func TestAplicarServiceSalvaBackupAntes(t *testing.T) {
	repo := newTestRepository()
	service := NewSimulacaoService(repo)

	saved, err := service.SalvarService(context.Background(), 1, CreateSimulacaoRequest{Nome: "cenário A"})
	require.NoError(t, err)
	require.Len(t, repo.criadas, 1)

	require.NoError(t, service.AplicarService(context.Background(), 1, saved.ID))

	// O estado vigente vira um backup antes do snapshot sobrescrever tudo.
	require.Len(t, repo.criadas, 2)
	assert.Equal(t, "Backup antes de aplicar cenário A", repo.criadas[1].Nome)
}

func TestResolverRoteiro(t *testing.T) {
	idPorNome := map[string]int64{"Rota 1": 100, "Rota 2": 200}
	roteiroIDs := []int64{100, 200}

	id, ok := resolverRoteiro(idPorNome, roteiroIDs, ParadaSnapshot{RoteiroNome: "Rota 2", RoteiroIdx: 0})
	require.True(t, ok)
	assert.Equal(t, int64(200), id)

	// Snapshot antigo sem nome de roteiro cai na posição.
	id, ok = resolverRoteiro(idPorNome, roteiroIDs, ParadaSnapshot{RoteiroIdx: 1})
	require.True(t, ok)
	assert.Equal(t, int64(200), id)

	_, ok = resolverRoteiro(idPorNome, roteiroIDs, ParadaSnapshot{RoteiroNome: "Rota 9", RoteiroIdx: -1})
	assert.False(t, ok)
}

func TestSalvarServiceRoteirizacaoInexistente(t *testing.T) {
	service := NewSimulacaoService(newTestRepository())

	_, err := service.SalvarService(context.Background(), 99, CreateSimulacaoRequest{Nome: "x"})
	assert.EqualError(t, err, "roteirização não encontrada")
}

func TestDeleteServiceValidaDono(t *testing.T) {
	repo := newTestRepository()
	service := NewSimulacaoService(repo)

	saved, err := service.SalvarService(context.Background(), 1, CreateSimulacaoRequest{Nome: "x"})
	require.NoError(t, err)

	err = service.DeleteService(context.Background(), 2, saved.ID)
	assert.ErrorIs(t, err, ErrOutraRoteirizacao)

	err = service.DeleteService(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrNaoEncontrada)

	require.NoError(t, service.DeleteService(context.Background(), 1, saved.ID))
	assert.Equal(t, []int64{saved.ID}, repo.deletadas)
}
