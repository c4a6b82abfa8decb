package routes

import (
	"net/http"
	"testing"

	"lolatlas/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(
		&handlers.DatasetHandler{},
		&handlers.ChampionHandler{},
		&handlers.ItemHandler{},
		&handlers.BuildHandler{},
		"ignored",
	)

	registered := make(map[string]bool)
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodGet + " /api/v1/dataset",
		http.MethodGet + " /api/v1/champions",
		http.MethodGet + " /api/v1/champions/:championId",
		http.MethodGet + " /api/v1/champions/:championId/skins",
		http.MethodGet + " /api/v1/items",
		http.MethodGet + " /api/v1/items/tags",
		http.MethodGet + " /api/v1/items/:itemId",
		http.MethodPost + " /api/v1/builds",
		http.MethodGet + " /api/v1/builds/:buildId",
		http.MethodPut + " /api/v1/builds/:buildId/champion",
		http.MethodPost + " /api/v1/builds/:buildId/items",
		http.MethodDelete + " /api/v1/builds/:buildId/items",
		http.MethodDelete + " /api/v1/builds/:buildId/items/:index",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}
