package buildservice

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"lolatlas/api/cache"
	"lolatlas/api/services"
	"lolatlas/internal/testutil"
	"lolatlas/pkg/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T, state *builder.AppState) *BuildService {
	t.Helper()

	sessions := cache.NewMemCacheWithInterval[*Session](time.Hour)
	t.Cleanup(sessions.Close)

	return NewBuildService(&BuildServiceDeps{
		State:    state,
		Sessions: sessions,
	})
}

func findRow(t *testing.T, rows []builder.StatRow, id string) builder.StatRow {
	t.Helper()
	for _, row := range rows {
		if row.ID == id {
			return row
		}
	}
	t.Fatalf("row %s not found", id)
	return builder.StatRow{}
}

func TestNewBuildServiceDefaults(t *testing.T) {
	service := NewBuildService(&BuildServiceDeps{State: builder.NewAppState()})

	assert.Equal(t, builder.DefaultMaxItems, service.maxItems)
	assert.Equal(t, builder.ReferenceLevel, service.level)
	assert.Equal(t, DefaultSessionDuration, service.ttl)
}

func TestCreateRequiresDataset(t *testing.T) {
	service := setupTestService(t, builder.NewAppState())

	_, err := service.Create()
	assert.ErrorIs(t, err, services.ErrDatasetNotLoaded)
}

func TestBuildLifecycle(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))

	build, err := service.Create()
	require.NoError(t, err)
	require.NotEmpty(t, build.ID)
	assert.Nil(t, build.Champion)
	assert.Empty(t, build.Items)
	assert.Equal(t, 6, build.MaxItems)
	assert.Len(t, build.Stats, len(builder.DefaultDefinitions))

	build, err = service.SetChampion(build.ID, "Annie")
	require.NoError(t, err)
	require.NotNil(t, build.Champion)
	assert.Equal(t, "Annie", build.Champion.ID)

	// Annie: hp 600 + 90 * 17.
	assert.InDelta(t, 2130, findRow(t, build.Stats, "hp").Total, 1e-9)

	build, err = service.AddItem(build.ID, "3031")
	require.NoError(t, err)
	build, err = service.AddItem(build.ID, "1036")
	require.NoError(t, err)

	assert.Len(t, build.Items, 2)
	assert.Equal(t, 3750, build.TotalGold)
	ad := findRow(t, build.Stats, "attackdamage")
	assert.InDelta(t, 75, ad.Flat, 1e-9)
	assert.InDelta(t, 50+75, ad.Total, 1e-9)
	assert.InDelta(t, 0.25, findRow(t, build.Stats, "crit").Total, 1e-9)

	build, err = service.RemoveItemAt(build.ID, 0)
	require.NoError(t, err)
	require.Len(t, build.Items, 1)
	assert.Equal(t, "1036", build.Items[0].ID)

	build, err = service.Clear(build.ID)
	require.NoError(t, err)
	assert.Empty(t, build.Items)
	assert.Equal(t, "Annie", build.Champion.ID)

	fetched, err := service.Get(build.ID)
	require.NoError(t, err)
	assert.Equal(t, build, fetched)
}

func TestBuildValidation(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))
	build, err := service.Create()
	require.NoError(t, err)

	var validationErr *builder.ValidationError

	_, err = service.SetChampion(build.ID, "Teemo")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "championId", validationErr.Field)

	_, err = service.AddItem(build.ID, "2003")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "itemId", validationErr.Field)

	_, err = service.RemoveItemAt(build.ID, 3)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "index", validationErr.Field)
}

func TestAddItemRejectsFullBuild(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))
	build, err := service.Create()
	require.NoError(t, err)

	for i := 0; i < builder.DefaultMaxItems; i++ {
		build, err = service.AddItem(build.ID, "1001")
		require.NoError(t, err)
	}
	assert.True(t, build.Full)

	_, err = service.AddItem(build.ID, "1001")
	var validationErr *builder.ValidationError
	require.ErrorAs(t, err, &validationErr)

	build, err = service.Get(build.ID)
	require.NoError(t, err)
	assert.Len(t, build.Items, builder.DefaultMaxItems)
}

func TestUnknownBuild(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))

	_, err := service.Get("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = service.AddItem("00000000-0000-0000-0000-000000000000", "1001")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBuildsAreIndependent(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))
	first, err := service.Create()
	require.NoError(t, err)
	second, err := service.Create()
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	_, err = service.AddItem(first.ID, "1001")
	require.NoError(t, err)

	second, err = service.Get(second.ID)
	require.NoError(t, err)
	assert.Empty(t, second.Items)
}

func TestConcurrentAddsRespectMax(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))
	build, err := service.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.AddItem(build.ID, "1036")
		}()
	}
	wg.Wait()

	build, err = service.Get(build.ID)
	require.NoError(t, err)
	assert.Len(t, build.Items, builder.DefaultMaxItems)
}

func TestCustomIDs(t *testing.T) {
	service := setupTestService(t, testutil.NewLoadedState(t))
	counter := 0
	service.newID = func() string {
		counter++
		return fmt.Sprintf("build-%d", counter)
	}

	build, err := service.Create()
	require.NoError(t, err)
	assert.Equal(t, "build-1", build.ID)
}
