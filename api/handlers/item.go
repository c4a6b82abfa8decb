package handlers

import (
	"net/http"

	"lolatlas/api/filters"
	catalogservice "lolatlas/api/services/catalog"

	"github.com/gin-gonic/gin"
)

// ItemHandler is the handler for the item endpoints.
type ItemHandler struct {
	catalogService *catalogservice.CatalogService
}

type ItemHandlerDependencies struct {
	CatalogService *catalogservice.CatalogService
}

// NewItemHandler creates a new instance of the item handler.
func NewItemHandler(deps *ItemHandlerDependencies) *ItemHandler {
	return &ItemHandler{
		catalogService: deps.CatalogService,
	}
}

// SearchItems handles the item search by text and category.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	var qp filters.ItemSearchQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := h.catalogService.SearchItems(filters.NewItemSearchFilter(&qp))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": items})
}

// GetItem returns a single item.
func (h *ItemHandler) GetItem(c *gin.Context) {
	var ip filters.ItemURIParams
	if err := c.ShouldBindUri(&ip); err != nil {
		respondBindError(c, err)
		return
	}

	it, err := h.catalogService.GetItem(ip.ItemId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": it})
}

// GetItemTags lists the item categories.
func (h *ItemHandler) GetItemTags(c *gin.Context) {
	tags, err := h.catalogService.ItemTags()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": tags})
}
