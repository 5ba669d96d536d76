package passageiro

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/provider"
	"roteirizador/pkg/tasks"
)

type fakeRepository struct {
	mu          sync.Mutex
	passageiros []db.Passageiro
	updates     map[int64]db.UpdatePassageiroGeocodificacaoParams
	semRota     bool
}

func newFakeRepository(passageiros ...db.Passageiro) *fakeRepository {
	return &fakeRepository{
		passageiros: passageiros,
		updates:     map[int64]db.UpdatePassageiroGeocodificacaoParams{},
	}
}

func (f *fakeRepository) GetPassageiroById(_ context.Context, id int64) (db.Passageiro, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.passageiros {
		if p.ID == id {
			if arg, ok := f.updates[id]; ok {
				p.Lat = arg.Lat
				p.Lng = arg.Lng
				p.EnderecoFormatado = arg.EnderecoFormatado
				p.StatusGeocodificacao = arg.StatusGeocodificacao
			}
			return p, nil
		}
	}
	return db.Passageiro{}, sql.ErrNoRows
}

func (f *fakeRepository) ListPassageirosByRoteirizacao(_ context.Context, _ int64) ([]db.Passageiro, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]db.Passageiro(nil), f.passageiros...), nil
}

func (f *fakeRepository) UpdatePassageiroGeocodificacao(_ context.Context, arg db.UpdatePassageiroGeocodificacaoParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[arg.ID] = arg
	return nil
}

func (f *fakeRepository) GetRoteirizacaoById(_ context.Context, id int64) (db.Roteirizacao, error) {
	if f.semRota {
		return db.Roteirizacao{}, sql.ErrNoRows
	}
	return db.Roteirizacao{ID: id}, nil
}

func (f *fakeRepository) update(id int64) (db.UpdatePassageiroGeocodificacaoParams, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arg, ok := f.updates[id]
	return arg, ok
}

// geoProvider devolve coordenada fixa e falha para os endereços marcados.
type geoProvider struct {
	falhas map[string]bool
}

func (g *geoProvider) Geocode(_ context.Context, address string) (provider.GeocodeResult, error) {
	if g.falhas[address] {
		return provider.GeocodeResult{}, provider.ErrZeroResults
	}
	return provider.GeocodeResult{Lat: -23.55, Lng: -46.63, FormattedAddress: address + ", Brasil"}, nil
}

func (g *geoProvider) ReverseGeocode(context.Context, float64, float64) (string, error) {
	return "Rua Teste, 1", nil
}

func (g *geoProvider) Route(context.Context, maps.LatLng, maps.LatLng) (*provider.RouteResult, error) {
	return nil, provider.ErrProvider
}

func (g *geoProvider) OptimizeRoute(context.Context, maps.LatLng, maps.LatLng, []maps.LatLng, time.Time) (*provider.RouteResult, error) {
	return nil, provider.ErrProvider
}

func pendente(id int64, endereco string) db.Passageiro {
	return db.Passageiro{
		ID:                   id,
		RoteirizacaoID:       1,
		Nome:                 "Passageiro",
		Endereco:             endereco,
		StatusGeocodificacao: StatusPendente,
	}
}

func aguardarTask(t *testing.T, registry *tasks.Registry, taskID string) tasks.Task {
	t.Helper()
	var task tasks.Task
	require.Eventually(t, func() bool {
		var err error
		task, err = registry.Get(taskID)
		return err == nil && task.Status != tasks.StatusRodando
	}, 2*time.Second, 10*time.Millisecond)
	return task
}

func TestGeocodificarServiceLote(t *testing.T) {
	geocodificado := pendente(3, "Rua C, 3")
	geocodificado.StatusGeocodificacao = StatusOk
	repo := newFakeRepository(pendente(1, "Rua A, 1"), pendente(2, "Rua B, 2"), geocodificado)
	registry := tasks.NewRegistry(time.Minute)
	service := NewPassageiroService(repo, &geoProvider{}, registry, nil)

	response, err := service.GeocodificarService(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusRodando, response.Status)

	task := aguardarTask(t, registry, response.TaskID)
	assert.Equal(t, tasks.StatusConcluida, task.Status)

	resultado, ok := task.Resultado.(GeocodificacaoResultado)
	require.True(t, ok)
	assert.Equal(t, 2, resultado.Total)
	assert.Equal(t, 2, resultado.Sucessos)
	assert.Zero(t, resultado.Falhas)

	arg, ok := repo.update(1)
	require.True(t, ok)
	assert.Equal(t, StatusOk, arg.StatusGeocodificacao)
	assert.Equal(t, -23.55, arg.Lat.Float64)
	assert.Equal(t, "Rua A, 1, Brasil", arg.EnderecoFormatado.String)

	// Quem já estava geocodificado fica fora do lote.
	_, ok = repo.update(3)
	assert.False(t, ok)
}

func TestGeocodificarServiceFalhaIndividualNaoInterrompe(t *testing.T) {
	repo := newFakeRepository(pendente(1, "Rua A, 1"), pendente(2, "Endereço Inexistente"))
	registry := tasks.NewRegistry(time.Minute)
	p := &geoProvider{falhas: map[string]bool{"Endereço Inexistente": true}}
	service := NewPassageiroService(repo, p, registry, nil)

	response, err := service.GeocodificarService(context.Background(), 1)
	require.NoError(t, err)

	task := aguardarTask(t, registry, response.TaskID)
	assert.Equal(t, tasks.StatusConcluida, task.Status)

	resultado, ok := task.Resultado.(GeocodificacaoResultado)
	require.True(t, ok)
	assert.Equal(t, 1, resultado.Sucessos)
	assert.Equal(t, 1, resultado.Falhas)

	arg, ok := repo.update(2)
	require.True(t, ok)
	assert.Equal(t, StatusFalha, arg.StatusGeocodificacao)
	assert.False(t, arg.Lat.Valid)
}

func TestGeocodificarServiceRoteirizacaoInexistente(t *testing.T) {
	repo := newFakeRepository()
	repo.semRota = true
	service := NewPassageiroService(repo, &geoProvider{}, tasks.NewRegistry(time.Minute), nil)

	_, err := service.GeocodificarService(context.Background(), 99)
	assert.EqualError(t, err, "roteirização não encontrada")
}

func TestAtualizarCoordenadasService(t *testing.T) {
	repo := newFakeRepository(pendente(1, "Rua A, 1"))
	service := NewPassageiroService(repo, &geoProvider{}, tasks.NewRegistry(time.Minute), nil)

	response, err := service.AtualizarCoordenadasService(context.Background(), 1, AtualizarCoordenadasRequest{
		Lat: -23.5,
		Lng: -46.6,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusManual, response.StatusGeocodificacao)
	require.NotNil(t, response.Lat)
	assert.Equal(t, -23.5, *response.Lat)

	_, err = service.AtualizarCoordenadasService(context.Background(), 99, AtualizarCoordenadasRequest{Lat: 1, Lng: 1})
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestListPassageirosService(t *testing.T) {
	repo := newFakeRepository(pendente(1, "Rua A, 1"), pendente(2, "Rua B, 2"))
	service := NewPassageiroService(repo, &geoProvider{}, tasks.NewRegistry(time.Minute), nil)

	list, err := service.ListPassageirosService(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rua A, 1", list[0].Endereco)
	assert.Equal(t, StatusPendente, list[0].StatusGeocodificacao)
}
