package infra

import (
	"database/sql"
	"time"

	"roteirizador/infra/database"
	"roteirizador/infra/database/db_postgresql"
	"roteirizador/internal/aderencia"
	"roteirizador/internal/combustivel"
	"roteirizador/internal/passageiro"
	"roteirizador/internal/provider"
	"roteirizador/internal/roteirizacao"
	"roteirizador/internal/simulacao"
	"roteirizador/internal/ws"
	"roteirizador/pkg/tasks"
)

type ContainerDI struct {
	Config                 Config
	ConnDB                 *sql.DB
	Provider               provider.RoutingProvider
	Registry               *tasks.Registry
	Hub                    *ws.Hub
	RepositoryRoteirizacao *roteirizacao.Repository
	ServiceRoteirizacao    *roteirizacao.Service
	HandlerRoteirizacao    *roteirizacao.Handler
	RepositoryPassageiro   *passageiro.Repository
	ServicePassageiro      *passageiro.Service
	HandlerPassageiro      *passageiro.Handler
	RepositorySimulacao    *simulacao.Repository
	ServiceSimulacao       *simulacao.Service
	HandlerSimulacao       *simulacao.Handler
	ServiceAderencia       *aderencia.Service
	HandlerAderencia       *aderencia.Handler
	ServiceCombustivel     *combustivel.Service
	HandlerCombustivel     *combustivel.Handler
	WsHandler              *ws.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	googleProvider, err := provider.NewGoogleProvider(provider.Config{
		APIKey:            c.Config.GoogleMapsKey,
		DirectionsTimeout: c.Config.DirectionsTimeout,
		GeocodeTimeout:    c.Config.GeocodeTimeout,
	})
	if err != nil {
		panic("failed to create routing provider: " + err.Error())
	}
	c.Provider = googleProvider

	c.Registry = tasks.NewRegistry(time.Hour)
	c.Hub = ws.NewHub()
	go c.Hub.Run()
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryRoteirizacao = roteirizacao.NewRoteirizacaoRepository(c.ConnDB)
	c.RepositoryPassageiro = passageiro.NewPassageiroRepository(c.ConnDB)
	c.RepositorySimulacao = simulacao.NewSimulacaoRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceSimulacao = simulacao.NewSimulacaoService(c.RepositorySimulacao)
	c.ServiceRoteirizacao = roteirizacao.NewRoteirizacaoService(c.RepositoryRoteirizacao, c.Provider, c.Registry, c.Hub, c.ServiceSimulacao)
	c.ServiceRoteirizacao.Budget = c.Config.ProcessBudget
	c.ServiceRoteirizacao.DwellPadrao = c.Config.TempoEmbarquePadrao
	c.ServicePassageiro = passageiro.NewPassageiroService(c.RepositoryPassageiro, c.Provider, c.Registry, c.Hub)
	c.ServiceAderencia = aderencia.NewAderenciaService()
	c.ServiceCombustivel = combustivel.NewCombustivelService()
}

func (c *ContainerDI) buildHandler() {
	c.HandlerRoteirizacao = roteirizacao.NewRoteirizacaoHandler(c.ServiceRoteirizacao, c.Config.AwsBucketName)
	c.HandlerPassageiro = passageiro.NewPassageiroHandler(c.ServicePassageiro)
	c.HandlerSimulacao = simulacao.NewSimulacaoHandler(c.ServiceSimulacao)
	c.HandlerAderencia = aderencia.NewAderenciaHandler(c.ServiceAderencia)
	c.HandlerCombustivel = combustivel.NewCombustivelHandler(c.ServiceCombustivel)
	c.WsHandler = ws.NewWsHandler(c.Hub)
}
