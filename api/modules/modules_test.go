package modules

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lolatlas/api/cache"
	"lolatlas/api/dto"
	"lolatlas/api/filters"
	"lolatlas/api/services"
	buildservice "lolatlas/api/services/build"
	servicetestutil "lolatlas/api/services/testutil"
	"lolatlas/fetcher/assets"
	"lolatlas/internal/testutil"
	"lolatlas/pkg/builder"
	"lolatlas/pkg/config"
	"lolatlas/pkg/models/dataset"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakeLoader struct {
	ds  *dataset.Dataset
	err error
}

func (f *fakeLoader) Bootstrap(ctx context.Context) (*dataset.Dataset, error) {
	return f.ds, f.err
}

// Answers with the queued errors first, then with the dataset.
type flakyLoader struct {
	mu    sync.Mutex
	ds    *dataset.Dataset
	errs  []error
	calls int
}

func (f *flakyLoader) Bootstrap(ctx context.Context) (*dataset.Dataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return f.ds, nil
}

func (f *flakyLoader) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func setupTestModule(t *testing.T) *Module {
	t.Helper()
	gin.SetMode(gin.TestMode)

	details := cache.NewMemCache[*dto.ChampionDetail]()
	sessions := cache.NewMemCache[*buildservice.Session]()
	t.Cleanup(details.Close)
	t.Cleanup(sessions.Close)

	return NewModule(&ModuleDependencies{
		State:            builder.NewAppState(),
		Fetcher:          new(servicetestutil.MockChampionDetailsFetcher),
		CDN:              "https://cdn.test",
		ChampionMemCache: details,
		BuildMemCache:    sessions,
		Builder:          config.BuilderConfiguration{MaxItems: 6, ReferenceLevel: 18},
	})
}

func servingStatus(t *testing.T, server *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := server.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.Status
}

func TestNewModule(t *testing.T) {
	module := setupTestModule(t)

	assert.NotNil(t, module.Router)
	assert.NotNil(t, module.CatalogService)
	assert.Len(t, module.Handlers(), 4)
	for _, h := range module.Handlers() {
		assert.NotNil(t, h)
	}
}

func TestLoadDataset(t *testing.T) {
	module := setupTestModule(t)
	server := health.NewServer()

	err := module.LoadDataset(context.Background(), &fakeLoader{ds: testutil.FixtureDataset()}, server)
	require.NoError(t, err)

	assert.True(t, module.State.Loaded())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, server))

	info, err := module.CatalogService.GetDataset()
	require.NoError(t, err)
	assert.Equal(t, testutil.FixtureVersion, info.Version)
}

func TestLoadDatasetFailure(t *testing.T) {
	tests := []struct {
		name   string
		loader *fakeLoader
	}{
		{name: "bootstrapError", loader: &fakeLoader{err: errors.New("HTTP 503")}},
		{name: "emptyCatalog", loader: &fakeLoader{ds: &dataset.Dataset{Version: "14.1.1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module := setupTestModule(t)
			server := health.NewServer()

			err := module.LoadDataset(context.Background(), tt.loader, server)
			require.Error(t, err)

			assert.False(t, module.State.Loaded())
			assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, server))

			_, err = module.CatalogService.ListChampions()
			assert.ErrorIs(t, err, services.ErrDatasetNotLoaded)
		})
	}
}

func TestLoadMissingDatasetRetries(t *testing.T) {
	module := setupTestModule(t)
	server := health.NewServer()
	loader := &flakyLoader{ds: testutil.FixtureDataset(), errs: []error{errors.New("HTTP 503")}}

	module.loadMissingDataset(loader, server, time.Second)
	assert.False(t, module.State.Loaded())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, server))

	module.loadMissingDataset(loader, server, time.Second)
	assert.True(t, module.State.Loaded())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, server))

	// Loaded, the retry doesn't reach the loader anymore.
	module.loadMissingDataset(loader, server, time.Second)
	assert.Equal(t, 2, loader.Calls())

	_, err := module.CatalogService.ListChampions()
	assert.NoError(t, err)
}

func TestReloadDatasetFailureKeepsServing(t *testing.T) {
	module := setupTestModule(t)
	server := health.NewServer()

	require.NoError(t, module.LoadDataset(context.Background(), &fakeLoader{ds: testutil.FixtureDataset()}, server))

	module.reloadDataset(&fakeLoader{err: errors.New("HTTP 503")}, server, time.Second)

	assert.True(t, module.State.Loaded())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, server))

	info, err := module.CatalogService.GetDataset()
	require.NoError(t, err)
	assert.Equal(t, testutil.FixtureVersion, info.Version)
}

func TestReloadDatasetAppliesNewVersion(t *testing.T) {
	module := setupTestModule(t)
	server := health.NewServer()

	require.NoError(t, module.LoadDataset(context.Background(), &fakeLoader{ds: testutil.FixtureDataset()}, server))

	next := testutil.FixtureDataset()
	next.Version = "99.1.1"
	module.reloadDataset(&fakeLoader{ds: next}, server, time.Second)

	info, err := module.CatalogService.GetDataset()
	require.NoError(t, err)
	assert.Equal(t, "99.1.1", info.Version)
}

func TestScheduleDatasetLoads(t *testing.T) {
	module := setupTestModule(t)
	server := health.NewServer()
	loader := &flakyLoader{ds: testutil.FixtureDataset(), errs: []error{errors.New("HTTP 503")}}

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { s.Shutdown() })

	require.NoError(t, module.ScheduleDatasetLoads(s, loader, server, 20*time.Millisecond, time.Second))
	assert.Len(t, s.Jobs(), 2)

	s.Start()

	// The first attempt fails, the retry applies the dataset.
	require.Eventually(t, module.State.Loaded, 2*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, loader.Calls(), 2)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, server))
}

func TestModuleReadsStoredDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store, err := assets.NewFileStore(t.TempDir())
	require.NoError(t, err)
	details := assets.NewChampionDetailStore(store)
	champ, _ := testutil.FixtureChampionDetail("Ahri")
	require.NoError(t, details.Save(context.Background(), testutil.FixtureVersion, "Ahri", &champ))

	memCache := cache.NewMemCache[*dto.ChampionDetail]()
	sessions := cache.NewMemCache[*buildservice.Session]()
	t.Cleanup(memCache.Close)
	t.Cleanup(sessions.Close)

	// No expectations, the fetcher must not be reached.
	fetcher := new(servicetestutil.MockChampionDetailsFetcher)
	module := NewModule(&ModuleDependencies{
		State:            testutil.NewLoadedState(t),
		Fetcher:          fetcher,
		Details:          details,
		CDN:              "https://cdn.test",
		ChampionMemCache: memCache,
		BuildMemCache:    sessions,
		Builder:          config.BuilderConfiguration{MaxItems: 6, ReferenceLevel: 18},
	})

	detail, err := module.CatalogService.GetChampion(context.Background(), &filters.GetChampionDataFilter{ChampionId: "Ahri"})
	require.NoError(t, err)

	assert.Equal(t, "Ahri", detail.ID)
	assert.Len(t, detail.Spells, 2)
	fetcher.AssertNotCalled(t, "GetChampionDetails", mock.Anything, mock.Anything, mock.Anything)
}
