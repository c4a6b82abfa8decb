package routes

import (
	"lolatlas/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.DatasetHandler:
			r.registerDatasetHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.ItemHandler:
			r.registerItemHandler(handler)
		case *handlers.BuildHandler:
			r.registerBuildHandler(handler)
		}
	}
}

// Register the dataset handler.
func (r *Router) registerDatasetHandler(handler *handlers.DatasetHandler) {
	r.api.GET("/dataset", handler.GetDataset)
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.GetAllChampions)
		champions.GET("/:championId", handler.GetChampionData)
		champions.GET("/:championId/skins", handler.GetChampionSkins)
	}
}

// Register the item handler.
func (r *Router) registerItemHandler(handler *handlers.ItemHandler) {
	items := r.api.Group("/items")
	{
		items.GET("", handler.SearchItems)
		items.GET("/tags", handler.GetItemTags)
		items.GET("/:itemId", handler.GetItem)
	}
}

// Register the build handler.
func (r *Router) registerBuildHandler(handler *handlers.BuildHandler) {
	builds := r.api.Group("/builds")
	{
		builds.POST("", handler.CreateBuild)
		builds.GET("/:buildId", handler.GetBuild)
		builds.PUT("/:buildId/champion", handler.SetChampion)
		builds.POST("/:buildId/items", handler.AddItem)
		builds.DELETE("/:buildId/items", handler.ClearBuild)
		builds.DELETE("/:buildId/items/:index", handler.RemoveItem)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
