package handlers

import (
	"errors"
	"net/http"

	"lolatlas/api/services"
	"lolatlas/fetcher/assets"
	"lolatlas/pkg/builder"

	"github.com/gin-gonic/gin"
)

// respondError maps the service errors to the response status.
func respondError(c *gin.Context, err error) {
	var validationErr *builder.ValidationError
	var fetchErr *assets.FetchError
	var parseErr *assets.ParseError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDatasetNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &fetchErr), errors.As(err, &parseErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Bind errors are always the client fault.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
