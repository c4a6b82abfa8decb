package handlers

import (
	"net/http"

	"lolatlas/api/filters"
	catalogservice "lolatlas/api/services/catalog"

	"github.com/gin-gonic/gin"
)

// ChampionHandler is the handler for the champion endpoints.
type ChampionHandler struct {
	catalogService *catalogservice.CatalogService
}

type ChampionHandlerDependencies struct {
	CatalogService *catalogservice.CatalogService
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		catalogService: deps.CatalogService,
	}
}

// Helper to bind the default URI params for champions.
func (h *ChampionHandler) bindURIParams(c *gin.Context) (*filters.ChampionURIParams, error) {
	var cp filters.ChampionURIParams
	if err := c.ShouldBindUri(&cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// GetAllChampions returns the champion catalog.
func (h *ChampionHandler) GetAllChampions(c *gin.Context) {
	champions, err := h.catalogService.ListChampions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": champions})
}

// GetChampionData returns a champion with its formatted abilities.
func (h *ChampionHandler) GetChampionData(c *gin.Context) {
	cp, err := h.bindURIParams(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	championData, err := h.catalogService.GetChampion(c.Request.Context(), filters.NewGetChampionDataFilter(cp))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": championData})
}

// GetChampionSkins returns the skins of a champion.
func (h *ChampionHandler) GetChampionSkins(c *gin.Context) {
	cp, err := h.bindURIParams(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	skins, err := h.catalogService.GetChampionSkins(c.Request.Context(), filters.NewGetChampionDataFilter(cp))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": skins})
}
