package handlers

import (
	"net/http"

	catalogservice "lolatlas/api/services/catalog"

	"github.com/gin-gonic/gin"
)

// DatasetHandler describes the loaded game data.
type DatasetHandler struct {
	catalogService *catalogservice.CatalogService
}

type DatasetHandlerDependencies struct {
	CatalogService *catalogservice.CatalogService
}

// NewDatasetHandler creates a new instance of the dataset handler.
func NewDatasetHandler(deps *DatasetHandlerDependencies) *DatasetHandler {
	return &DatasetHandler{
		catalogService: deps.CatalogService,
	}
}

// GetDataset returns the version and size of the applied dataset.
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	info, err := h.catalogService.GetDataset()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": info})
}
