package handlers

import (
	"net/http"

	"lolatlas/api/dto"
	"lolatlas/api/filters"
	buildservice "lolatlas/api/services/build"

	"github.com/gin-gonic/gin"
)

// BuildHandler is the handler for the build calculator endpoints.
type BuildHandler struct {
	buildService *buildservice.BuildService
}

type BuildHandlerDependencies struct {
	BuildService *buildservice.BuildService
}

// NewBuildHandler creates a new instance of the build handler.
func NewBuildHandler(deps *BuildHandlerDependencies) *BuildHandler {
	return &BuildHandler{
		buildService: deps.BuildService,
	}
}

// Helper to bind the build id.
func (h *BuildHandler) bindURIParams(c *gin.Context) (*filters.BuildURIParams, error) {
	var bp filters.BuildURIParams
	if err := c.ShouldBindUri(&bp); err != nil {
		return nil, err
	}
	return &bp, nil
}

// respond writes the build or the error.
func (h *BuildHandler) respond(c *gin.Context, status int, build *dto.Build, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{"result": build})
}

// CreateBuild starts an empty build.
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	build, err := h.buildService.Create()
	h.respond(c, http.StatusCreated, build, err)
}

// GetBuild returns the build with its stats.
func (h *BuildHandler) GetBuild(c *gin.Context) {
	bp, err := h.bindURIParams(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	build, err := h.buildService.Get(bp.BuildId)
	h.respond(c, http.StatusOK, build, err)
}

// SetChampion selects the champion of the build.
func (h *BuildHandler) SetChampion(c *gin.Context) {
	bp, err := h.bindURIParams(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	var body filters.SetChampionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	build, err := h.buildService.SetChampion(bp.BuildId, body.ChampionId)
	h.respond(c, http.StatusOK, build, err)
}

// AddItem appends an item to the build.
func (h *BuildHandler) AddItem(c *gin.Context) {
	bp, err := h.bindURIParams(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	var body filters.AddItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	build, err := h.buildService.AddItem(bp.BuildId, body.ItemId)
	h.respond(c, http.StatusOK, build, err)
}

// RemoveItem removes the item on a slot.
func (h *BuildHandler) RemoveItem(c *gin.Context) {
	var sp filters.BuildSlotURIParams
	if err := c.ShouldBindUri(&sp); err != nil {
		respondBindError(c, err)
		return
	}

	build, err := h.buildService.RemoveItemAt(sp.BuildId, sp.Index)
	h.respond(c, http.StatusOK, build, err)
}

// ClearBuild removes every item of the build.
func (h *BuildHandler) ClearBuild(c *gin.Context) {
	bp, err := h.bindURIParams(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	build, err := h.buildService.Clear(bp.BuildId)
	h.respond(c, http.StatusOK, build, err)
}
