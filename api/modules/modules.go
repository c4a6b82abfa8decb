package modules

import (
	"lolatlas/api/cache"
	"lolatlas/api/dto"
	"lolatlas/api/handlers"
	buildservice "lolatlas/api/services/build"
	catalogservice "lolatlas/api/services/catalog"
	"lolatlas/pkg/builder"
	"lolatlas/pkg/config"

	"github.com/gin-gonic/gin"
)

// ModuleDependencies are the shared resources of every handler.
type ModuleDependencies struct {
	State            *builder.AppState
	Fetcher          catalogservice.ChampionDetailsFetcher
	Details          catalogservice.ChampionDetailSource
	CDN              string
	ChampionMemCache cache.MemCache[*dto.ChampionDetail]
	BuildMemCache    cache.MemCache[*buildservice.Session]
	Builder          config.BuilderConfiguration
}

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	State           *builder.AppState
	CatalogService  *catalogservice.CatalogService
	DatasetHandler  *handlers.DatasetHandler
	ChampionHandler *handlers.ChampionHandler
	ItemHandler     *handlers.ItemHandler
	BuildHandler    *handlers.BuildHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	catalogService := initializeCatalogService(deps)

	return &Module{
		Router:          router,
		State:           deps.State,
		CatalogService:  catalogService,
		DatasetHandler:  handlers.NewDatasetHandler(&handlers.DatasetHandlerDependencies{CatalogService: catalogService}),
		ChampionHandler: handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{CatalogService: catalogService}),
		ItemHandler:     handlers.NewItemHandler(&handlers.ItemHandlerDependencies{CatalogService: catalogService}),
		BuildHandler:    initializeBuildHandler(deps),
	}
}

// Handlers returns every handler, in registration order.
func (m *Module) Handlers() []any {
	return []any{
		m.DatasetHandler,
		m.ChampionHandler,
		m.ItemHandler,
		m.BuildHandler,
	}
}
