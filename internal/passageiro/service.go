package passageiro

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	db "roteirizador/db/sqlc"
	"roteirizador/internal/provider"
	"roteirizador/internal/ws"
	"roteirizador/pkg"
	"roteirizador/pkg/tasks"
	"roteirizador/validation"
)

var ErrNaoEncontrado = errors.New("passageiro não encontrado")

// geocodeBudget limita o lote inteiro; endereços não processados dentro do
// prazo permanecem pendentes para uma nova tentativa.
const geocodeBudget = 180 * time.Second

type InterfaceService interface {
	ListPassageirosService(ctx context.Context, roteirizacaoID int64) ([]PassageiroResponse, error)
	GeocodificarService(ctx context.Context, roteirizacaoID int64) (GeocodificacaoResponse, error)
	AtualizarCoordenadasService(ctx context.Context, id int64, data AtualizarCoordenadasRequest) (PassageiroResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	Provider         provider.RoutingProvider
	Registry         *tasks.Registry
	Hub              *ws.Hub
}

func NewPassageiroService(repo InterfaceRepository, p provider.RoutingProvider, registry *tasks.Registry, hub *ws.Hub) *Service {
	return &Service{
		InterfaceService: repo,
		Provider:         p,
		Registry:         registry,
		Hub:              hub,
	}
}

func (s *Service) ListPassageirosService(ctx context.Context, roteirizacaoID int64) ([]PassageiroResponse, error) {
	result, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, roteirizacaoID)
	if err != nil {
		return nil, err
	}

	var list []PassageiroResponse
	for _, p := range result {
		item := PassageiroResponse{}
		item.ParseFromObject(p)
		list = append(list, item)
	}
	return list, nil
}

// GeocodificarService resolve em lote os endereços pendentes. Cada endereço
// passa primeiro pelo cache; só a falta vai ao provedor. Falha individual
// não interrompe o lote.
func (s *Service) GeocodificarService(ctx context.Context, roteirizacaoID int64) (GeocodificacaoResponse, error) {
	if _, err := s.InterfaceService.GetRoteirizacaoById(ctx, roteirizacaoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeocodificacaoResponse{}, errors.New("roteirização não encontrada")
		}
		return GeocodificacaoResponse{}, err
	}

	task, taskCtx := s.Registry.Start(context.Background(), geocodeBudget)
	go s.geocodificar(taskCtx, task.ID, roteirizacaoID)

	return GeocodificacaoResponse{TaskID: task.ID, Status: tasks.StatusRodando}, nil
}

func (s *Service) geocodificar(ctx context.Context, taskID string, roteirizacaoID int64) {
	registros, err := s.InterfaceService.ListPassageirosByRoteirizacao(ctx, roteirizacaoID)
	if err != nil {
		s.Registry.Fail(taskID, err)
		s.publish(taskID, "erro", 100, err)
		return
	}

	var pendentes []db.Passageiro
	for _, p := range registros {
		if p.StatusGeocodificacao == StatusPendente || p.StatusGeocodificacao == StatusFalha {
			pendentes = append(pendentes, p)
		}
	}

	resultado := GeocodificacaoResultado{Total: len(pendentes)}
	for i, p := range pendentes {
		select {
		case <-ctx.Done():
			s.Registry.Fail(taskID, ctx.Err())
			s.publish(taskID, "erro", percent(i, len(pendentes)), ctx.Err())
			return
		default:
		}

		endereco := enderecoCompleto(p)

		if cached, ok := pkg.GetCachedGeocode(ctx, endereco); ok {
			if err := s.gravar(ctx, p.ID, cached.Lat, cached.Lng, cached.EnderecoFormatado, StatusOk); err == nil {
				resultado.Sucessos++
				resultado.DoCache++
			} else {
				resultado.Falhas++
			}
			s.progresso(taskID, i+1, len(pendentes))
			continue
		}

		geo, err := s.Provider.Geocode(ctx, endereco)
		if err != nil {
			_ = s.gravar(ctx, p.ID, 0, 0, "", StatusFalha)
			resultado.Falhas++
			s.progresso(taskID, i+1, len(pendentes))
			continue
		}

		pkg.SetCachedGeocode(ctx, endereco, pkg.CachedGeocode{
			Lat:               geo.Lat,
			Lng:               geo.Lng,
			EnderecoFormatado: geo.FormattedAddress,
		})
		if err := s.gravar(ctx, p.ID, geo.Lat, geo.Lng, geo.FormattedAddress, StatusOk); err != nil {
			resultado.Falhas++
		} else {
			resultado.Sucessos++
		}
		s.progresso(taskID, i+1, len(pendentes))
	}

	s.Registry.Finish(taskID, resultado)
	s.publishDone(taskID, resultado)
}

func (s *Service) AtualizarCoordenadasService(ctx context.Context, id int64, data AtualizarCoordenadasRequest) (PassageiroResponse, error) {
	p, err := s.InterfaceService.GetPassageiroById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return PassageiroResponse{}, ErrNaoEncontrado
	}
	if err != nil {
		return PassageiroResponse{}, err
	}

	if err := s.InterfaceService.UpdatePassageiroGeocodificacao(ctx, db.UpdatePassageiroGeocodificacaoParams{
		ID:                   id,
		Lat:                  validation.NullFloatFrom(data.Lat, true),
		Lng:                  validation.NullFloatFrom(data.Lng, true),
		EnderecoFormatado:    p.EnderecoFormatado,
		StatusGeocodificacao: StatusManual,
	}); err != nil {
		return PassageiroResponse{}, err
	}

	atualizado, err := s.InterfaceService.GetPassageiroById(ctx, id)
	if err != nil {
		return PassageiroResponse{}, err
	}
	response := PassageiroResponse{}
	response.ParseFromObject(atualizado)
	return response, nil
}

func (s *Service) gravar(ctx context.Context, id int64, lat, lng float64, formatado, status string) error {
	arg := db.UpdatePassageiroGeocodificacaoParams{
		ID:                   id,
		StatusGeocodificacao: status,
	}
	if status == StatusOk {
		arg.Lat = validation.NullFloatFrom(lat, true)
		arg.Lng = validation.NullFloatFrom(lng, true)
		arg.EnderecoFormatado = validation.NullStringFrom(formatado)
	}
	return s.InterfaceService.UpdatePassageiroGeocodificacao(ctx, arg)
}

func (s *Service) progresso(taskID string, feitos, total int) {
	pct := percent(feitos, total)
	s.Registry.Progress(taskID, "geocodificando", pct)
	s.publish(taskID, "geocodificando", pct, nil)
}

func (s *Service) publish(taskID, etapa string, pct int, err error) {
	if s.Hub == nil {
		return
	}
	event := &ws.ProgressEvent{
		TaskID:     taskID,
		Etapa:      etapa,
		Percentual: pct,
		At:         time.Now(),
	}
	if err != nil {
		event.Erro = err.Error()
	}
	s.Hub.Publish(event)
}

func (s *Service) publishDone(taskID string, resultado GeocodificacaoResultado) {
	if s.Hub == nil {
		return
	}
	s.Hub.Publish(&ws.ProgressEvent{
		TaskID:     taskID,
		Etapa:      "concluido",
		Percentual: 100,
		Mensagem:   fmt.Sprintf("%d sucessos, %d falhas", resultado.Sucessos, resultado.Falhas),
		Concluido:  true,
		At:         time.Now(),
	})
}

func enderecoCompleto(p db.Passageiro) string {
	parts := []string{p.Endereco}
	for _, nullable := range []string{
		validation.GetStringFromNull(p.Bairro),
		validation.GetStringFromNull(p.Cidade),
		validation.GetStringFromNull(p.Uf),
	} {
		if nullable != "" {
			parts = append(parts, nullable)
		}
	}
	return strings.Join(parts, ", ")
}

func percent(feitos, total int) int {
	if total == 0 {
		return 100
	}
	return feitos * 100 / total
}
