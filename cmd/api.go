package cmd

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roteirizador/infra"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/roteirizacoes", container.HandlerRoteirizacao.CreateRoteirizacaoHandler)
	e.GET("/roteirizacoes", container.HandlerRoteirizacao.ListRoteirizacoesHandler)
	e.GET("/roteirizacoes/:id", container.HandlerRoteirizacao.GetRoteirizacaoHandler)
	e.POST("/roteirizacoes/:id/processar", container.HandlerRoteirizacao.ProcessarHandler)
	e.POST("/roteirizacoes/:id/clusterizar", container.HandlerRoteirizacao.ClusterizarHandler)
	e.POST("/roteirizacoes/:id/otimizar", container.HandlerRoteirizacao.OtimizarHandler)
	e.POST("/roteirizacoes/:id/otimizar-volta", container.HandlerRoteirizacao.OtimizarVoltaHandler)
	e.POST("/roteirizacoes/:id/recalcular", container.HandlerRoteirizacao.RecalcularHandler)
	e.POST("/roteirizacoes/:id/finalizar", container.HandlerRoteirizacao.FinalizarHandler)
	e.POST("/roteirizacoes/:id/reabrir", container.HandlerRoteirizacao.ReabrirHandler)
	e.PUT("/roteirizacoes/:id/rota-editada", container.HandlerRoteirizacao.RotaEditadaHandler)
	e.GET("/roteirizacoes/:id/roteiros/:roteiro_id/kml", container.HandlerRoteirizacao.ExportarKMLHandler)
	e.GET("/roteirizacoes/:id/roteiros/:roteiro_id/csv", container.HandlerRoteirizacao.ExportarCSVHandler)

	e.GET("/roteirizacoes/:id/passageiros", container.HandlerPassageiro.ListPassageirosHandler)
	e.POST("/roteirizacoes/:id/geocodificar", container.HandlerPassageiro.GeocodificarHandler)
	e.PUT("/passageiros/:id/coordenadas", container.HandlerPassageiro.AtualizarCoordenadasHandler)

	e.POST("/roteirizacoes/:id/simulacoes", container.HandlerSimulacao.SalvarSimulacaoHandler)
	e.GET("/roteirizacoes/:id/simulacoes", container.HandlerSimulacao.ListSimulacoesHandler)
	e.POST("/roteirizacoes/:id/simulacoes/:simulacao_id/aplicar", container.HandlerSimulacao.AplicarSimulacaoHandler)
	e.DELETE("/roteirizacoes/:id/simulacoes/:simulacao_id", container.HandlerSimulacao.DeleteSimulacaoHandler)

	e.GET("/tasks/:task_id", container.HandlerRoteirizacao.GetTaskHandler)
	e.DELETE("/tasks/:task_id", container.HandlerRoteirizacao.CancelarTaskHandler)
	e.GET("/ws/progress/:task_id", container.WsHandler.HandleProgress)

	e.POST("/aderencia/comparar", container.HandlerAderencia.CompararHandler)
	e.POST("/aderencia/analisar", container.HandlerAderencia.AnalisarHandler)
	e.POST("/combustivel/analisar", container.HandlerCombustivel.AnalisarHandler)

	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}
