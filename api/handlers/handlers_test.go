package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lolatlas/api/cache"
	"lolatlas/api/dto"
	"lolatlas/api/handlers"
	"lolatlas/api/routes"
	buildservice "lolatlas/api/services/build"
	catalogservice "lolatlas/api/services/catalog"
	servicetestutil "lolatlas/api/services/testutil"
	"lolatlas/fetcher/assets"
	"lolatlas/internal/testutil"
	"lolatlas/pkg/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine  *gin.Engine
	fetcher *servicetestutil.MockChampionDetailsFetcher
	catalog *catalogservice.CatalogService
}

// Creates the router with every handler over the given state.
func setupTestServer(t *testing.T, state *builder.AppState) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	details := cache.NewMemCache[*dto.ChampionDetail]()
	sessions := cache.NewMemCache[*buildservice.Session]()
	t.Cleanup(details.Close)
	t.Cleanup(sessions.Close)

	fetcher := new(servicetestutil.MockChampionDetailsFetcher)
	catalog := catalogservice.NewCatalogService(&catalogservice.CatalogServiceDeps{
		State:    state,
		Fetcher:  fetcher,
		MemCache: details,
		CDN:      "https://cdn.test",
	})
	builds := buildservice.NewBuildService(&buildservice.BuildServiceDeps{
		State:    state,
		Sessions: sessions,
	})

	router := routes.NewRouter(gin.New())
	router.SetupRoutes(
		handlers.NewDatasetHandler(&handlers.DatasetHandlerDependencies{CatalogService: catalog}),
		handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{CatalogService: catalog}),
		handlers.NewItemHandler(&handlers.ItemHandlerDependencies{CatalogService: catalog}),
		handlers.NewBuildHandler(&handlers.BuildHandlerDependencies{BuildService: builds}),
	)

	return &testServer{engine: router.Engine, fetcher: fetcher, catalog: catalog}
}

// Performs the request and decodes the result envelope.
func (s *testServer) do(t *testing.T, method, path string, body any, result any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	if result != nil && rec.Code < 300 {
		envelope := struct {
			Result json.RawMessage `json:"result"`
		}{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.NoError(t, json.Unmarshal(envelope.Result, result))
	}
	return rec
}

func TestDatasetEndpoint(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))

	var info dto.DatasetInfo
	rec := server.do(t, http.MethodGet, "/api/v1/dataset", nil, &info)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testutil.FixtureVersion, info.Version)
	assert.Equal(t, 3, info.Items)
}

func TestEndpointsBeforeLoad(t *testing.T) {
	server := setupTestServer(t, builder.NewAppState())
	server.catalog.MarkLoadFailed(errors.New("HTTP 503"))

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/dataset"},
		{http.MethodGet, "/api/v1/champions"},
		{http.MethodGet, "/api/v1/items"},
		{http.MethodGet, "/api/v1/items/tags"},
		{http.MethodPost, "/api/v1/builds"},
	}
	for _, p := range paths {
		rec := server.do(t, p.method, p.path, nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, p.path)
	}
}

func TestChampionEndpoints(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))

	var champions []dto.ChampionSummary
	rec := server.do(t, http.MethodGet, "/api/v1/champions", nil, &champions)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, champions, 3)

	champ, _ := testutil.FixtureChampionDetail("Annie")
	server.fetcher.On("GetChampionDetails", mock.Anything, testutil.FixtureVersion, "Annie").Return(&champ, nil).Once()

	var detail dto.ChampionDetail
	rec = server.do(t, http.MethodGet, "/api/v1/champions/Annie", nil, &detail)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Annie", detail.ID)
	assert.Equal(t, "Gains a stack of Essence Theft on kills.", detail.Passive.Description)

	// Served from memory the second time.
	var skins []dto.Skin
	rec = server.do(t, http.MethodGet, "/api/v1/champions/Annie/skins", nil, &skins)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, skins, 2)

	rec = server.do(t, http.MethodGet, "/api/v1/champions/Teemo", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	servicetestutil.VerifyAllMocks(t, server.fetcher)
}

func TestChampionUpstreamFailure(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))
	server.fetcher.On("GetChampionDetails", mock.Anything, testutil.FixtureVersion, "Ahri").
		Return(nil, &assets.FetchError{URL: "https://cdn.test/Ahri.json", StatusCode: http.StatusInternalServerError})

	rec := server.do(t, http.MethodGet, "/api/v1/champions/Ahri", nil, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestItemEndpoints(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))

	var items []dto.Item
	rec := server.do(t, http.MethodGet, "/api/v1/items?q=sword", nil, &items)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, items, 1)
	assert.Equal(t, "1036", items[0].ID)

	rec = server.do(t, http.MethodGet, "/api/v1/items?limit=1", nil, &items)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, items, 1)

	rec = server.do(t, http.MethodGet, "/api/v1/items?limit=0", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = server.do(t, http.MethodGet, "/api/v1/items?limit=500", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var it dto.Item
	rec = server.do(t, http.MethodGet, "/api/v1/items/3031", nil, &it)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Infinity Edge", it.Name)

	rec = server.do(t, http.MethodGet, "/api/v1/items/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var tags []string
	rec = server.do(t, http.MethodGet, "/api/v1/items/tags", nil, &tags)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, tags, "Damage")
}

func TestBuildEndpoints(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))

	var build dto.Build
	rec := server.do(t, http.MethodPost, "/api/v1/builds", nil, &build)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/v1/builds/" + build.ID

	rec = server.do(t, http.MethodPut, base+"/champion", map[string]string{"championId": "Annie"}, &build)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Annie", build.Champion.ID)

	rec = server.do(t, http.MethodPost, base+"/items", map[string]string{"itemId": "1036"}, &build)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = server.do(t, http.MethodPost, base+"/items", map[string]string{"itemId": "3031"}, &build)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, build.Items, 2)
	assert.Equal(t, 3750, build.TotalGold)

	rec = server.do(t, http.MethodDelete, base+"/items/0", nil, &build)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, build.Items, 1)
	assert.Equal(t, "3031", build.Items[0].ID)

	rec = server.do(t, http.MethodDelete, base+"/items", nil, &build)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, build.Items)

	rec = server.do(t, http.MethodGet, base, nil, &build)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Annie", build.Champion.ID)
}

func TestBuildEndpointErrors(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))

	var build dto.Build
	server.do(t, http.MethodPost, "/api/v1/builds", nil, &build)
	base := "/api/v1/builds/" + build.ID

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		expected int
	}{
		{name: "invalidBuildId", method: http.MethodGet, path: "/api/v1/builds/not-a-uuid", expected: http.StatusBadRequest},
		{name: "unknownBuild", method: http.MethodGet, path: "/api/v1/builds/6f1c2a8e-4b1d-4f7a-9a51-0c2f3d4e5b6a", expected: http.StatusNotFound},
		{name: "missingBody", method: http.MethodPost, path: base + "/items", expected: http.StatusBadRequest},
		{name: "emptyItem", method: http.MethodPost, path: base + "/items", body: map[string]string{"itemId": ""}, expected: http.StatusBadRequest},
		{name: "unknownItem", method: http.MethodPost, path: base + "/items", body: map[string]string{"itemId": "2003"}, expected: http.StatusBadRequest},
		{name: "unknownChampion", method: http.MethodPut, path: base + "/champion", body: map[string]string{"championId": "Teemo"}, expected: http.StatusBadRequest},
		{name: "emptySlot", method: http.MethodDelete, path: base + "/items/4", expected: http.StatusBadRequest},
		{name: "negativeSlot", method: http.MethodDelete, path: base + "/items/-1", expected: http.StatusBadRequest},
		{name: "slotNotNumber", method: http.MethodDelete, path: base + "/items/first", expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := server.do(t, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestFullBuildRejectsItems(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))

	var build dto.Build
	server.do(t, http.MethodPost, "/api/v1/builds", nil, &build)
	base := "/api/v1/builds/" + build.ID

	for i := 0; i < builder.DefaultMaxItems; i++ {
		rec := server.do(t, http.MethodPost, base+"/items", map[string]string{"itemId": "1001"}, &build)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.True(t, build.Full)

	rec := server.do(t, http.MethodPost, base+"/items", map[string]string{"itemId": "1001"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "itemId", body["field"])
}

func TestRequestContextIsForwarded(t *testing.T) {
	server := setupTestServer(t, testutil.NewLoadedState(t))
	server.fetcher.On("GetChampionDetails", mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return hasDeadline
	}), testutil.FixtureVersion, "Garen").Return(nil, context.DeadlineExceeded)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/champions/Garen", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	servicetestutil.VerifyAllMocks(t, server.fetcher)
}
