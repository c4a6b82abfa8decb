package buildservice

import (
	"fmt"
	"sync"
	"time"

	"lolatlas/api/cache"
	"lolatlas/api/converters"
	"lolatlas/api/dto"
	"lolatlas/api/services"
	"lolatlas/pkg/builder"

	"github.com/google/uuid"
)

const DefaultSessionDuration = 2 * time.Hour

// Session is a build in progress.
// The mutex serializes the requests of the same build.
type Session struct {
	mu    sync.Mutex
	state *builder.State
}

// BuildService keeps the builds in memory and computes their stats.
type BuildService struct {
	state       *builder.AppState
	sessions    cache.MemCache[*Session]
	maxItems    int
	level       int
	ttl         time.Duration
	definitions []builder.Definition
	newID       func() string
}

// BuildServiceDeps is the dependency list for the build service.
type BuildServiceDeps struct {
	State    *builder.AppState
	Sessions cache.MemCache[*Session]
	MaxItems int
	Level    int
	TTL      time.Duration
}

// NewBuildService creates a build service.
func NewBuildService(deps *BuildServiceDeps) *BuildService {
	maxItems := deps.MaxItems
	if maxItems < 1 {
		maxItems = builder.DefaultMaxItems
	}
	level := deps.Level
	if level < 1 {
		level = builder.ReferenceLevel
	}
	ttl := deps.TTL
	if ttl <= 0 {
		ttl = DefaultSessionDuration
	}

	return &BuildService{
		state:       deps.State,
		sessions:    deps.Sessions,
		maxItems:    maxItems,
		level:       level,
		ttl:         ttl,
		definitions: builder.DefaultDefinitions,
		newID:       func() string { return uuid.NewString() },
	}
}

// Create starts an empty build.
func (bs *BuildService) Create() (*dto.Build, error) {
	if !bs.state.Loaded() {
		return nil, services.ErrDatasetNotLoaded
	}

	id := bs.newID()
	session := &Session{state: builder.NewState(bs.maxItems)}
	bs.sessions.Set(id, session, bs.ttl)

	return bs.view(id, session.state), nil
}

// Get returns the build with its stats.
func (bs *BuildService) Get(buildID string) (*dto.Build, error) {
	return bs.withSession(buildID, func(*builder.State) error { return nil })
}

// SetChampion selects the champion, the items are kept.
func (bs *BuildService) SetChampion(buildID, championID string) (*dto.Build, error) {
	if _, ok := bs.state.Champion(championID); !ok && bs.state.Loaded() {
		return nil, builder.NewValidationError("championId", "unknown champion %s", championID)
	}

	return bs.withSession(buildID, func(state *builder.State) error {
		state.SetChampion(championID)
		return nil
	})
}

// AddItem appends the item to the build.
func (bs *BuildService) AddItem(buildID, itemID string) (*dto.Build, error) {
	if _, ok := bs.state.Item(itemID); !ok && bs.state.Loaded() {
		return nil, builder.NewValidationError("itemId", "unknown item %s", itemID)
	}

	return bs.withSession(buildID, func(state *builder.State) error {
		if !state.AddItem(itemID) {
			return builder.NewValidationError("itemId", "the build already has %d items", state.Max())
		}
		return nil
	})
}

// RemoveItemAt removes the item on the slot.
func (bs *BuildService) RemoveItemAt(buildID string, index int) (*dto.Build, error) {
	return bs.withSession(buildID, func(state *builder.State) error {
		if !state.RemoveItemAt(index) {
			return builder.NewValidationError("index", "no item on slot %d", index)
		}
		return nil
	})
}

// Clear removes every item, the champion is kept.
func (bs *BuildService) Clear(buildID string) (*dto.Build, error) {
	return bs.withSession(buildID, func(state *builder.State) error {
		state.Clear()
		return nil
	})
}

// withSession runs the change under the build lock and returns the new view.
// Every access extends the build lifetime.
func (bs *BuildService) withSession(buildID string, change func(*builder.State) error) (*dto.Build, error) {
	if !bs.state.Loaded() {
		return nil, services.ErrDatasetNotLoaded
	}

	session, ok := bs.sessions.Get(buildID)
	if !ok {
		return nil, fmt.Errorf("build %s: %w", buildID, services.ErrNotFound)
	}
	bs.sessions.Set(buildID, session, bs.ttl)

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := change(session.state); err != nil {
		return nil, err
	}

	return bs.view(buildID, session.state), nil
}

// view computes the stats of the build against the applied dataset.
func (bs *BuildService) view(buildID string, state *builder.State) *dto.Build {
	ds := bs.state.Dataset()

	var imageBase, championBase string
	if ds != nil {
		imageBase, championBase = ds.ItemImageBase, ds.ChampionImageBase
	}

	champ := bs.state.SelectedChampion(state)
	items := bs.state.SelectedItems(state)

	build := &dto.Build{
		ID:        buildID,
		Items:     converters.Items(items, imageBase),
		MaxItems:  state.Max(),
		Full:      state.Full(),
		Level:     bs.level,
		Stats:     builder.ComputeStatsAt(champ, items, bs.definitions, bs.level),
		TotalGold: builder.TotalGold(items),
	}
	if champ != nil {
		summary := converters.ChampionSummary(champ, championBase)
		build.Champion = &summary
	}
	return build
}
