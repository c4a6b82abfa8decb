package catalogservice

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"lolatlas/api/cache"
	"lolatlas/api/converters"
	"lolatlas/api/dto"
	"lolatlas/api/filters"
	"lolatlas/api/services"
	"lolatlas/pkg/builder"
	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/dataset"
)

const ChampionDetailCacheDuration = 6 * time.Hour

// ChampionDetailsFetcher gets the detail document of a champion, the loader does it.
type ChampionDetailsFetcher interface {
	GetChampionDetails(ctx context.Context, version string, championID string) (*champion.Champion, error)
}

// ChampionDetailSource reads the details stored by the scheduler.
// A miss is a nil champion without error.
type ChampionDetailSource interface {
	Load(ctx context.Context, version, championID string) (*champion.Champion, error)
}

// CatalogService answers the champion and item queries over the applied dataset.
type CatalogService struct {
	state    *builder.AppState
	fetcher  ChampionDetailsFetcher
	details  ChampionDetailSource
	memCache cache.MemCache[*dto.ChampionDetail]
	cdn      string

	mu      sync.RWMutex
	loadErr error
}

// CatalogServiceDeps is the dependency list for the catalog service.
// Details is optional, without it every miss goes to the fetcher.
type CatalogServiceDeps struct {
	State    *builder.AppState
	Fetcher  ChampionDetailsFetcher
	Details  ChampionDetailSource
	MemCache cache.MemCache[*dto.ChampionDetail]
	CDN      string
}

// NewCatalogService creates a catalog service.
func NewCatalogService(deps *CatalogServiceDeps) *CatalogService {
	return &CatalogService{
		state:    deps.State,
		fetcher:  deps.Fetcher,
		details:  deps.Details,
		memCache: deps.MemCache,
		cdn:      deps.CDN,
	}
}

// MarkLoadFailed keeps the last bootstrap failure, shown while there is no dataset.
// A nil error clears it.
func (cs *CatalogService) MarkLoadFailed(err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.loadErr = err
}

// dataset returns the applied dataset or the not loaded error.
func (cs *CatalogService) dataset() (*dataset.Dataset, error) {
	if ds := cs.state.Dataset(); ds != nil {
		return ds, nil
	}

	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if cs.loadErr != nil {
		return nil, fmt.Errorf("%w (last attempt: %v)", services.ErrDatasetNotLoaded, cs.loadErr)
	}
	return nil, services.ErrDatasetNotLoaded
}

// GetDataset describes the applied dataset.
func (cs *CatalogService) GetDataset() (*dto.DatasetInfo, error) {
	ds, err := cs.dataset()
	if err != nil {
		return nil, err
	}

	return &dto.DatasetInfo{
		Version:           ds.Version,
		Source:            ds.Source,
		Champions:         len(ds.Champions),
		Items:             len(ds.Items),
		ChampionImageBase: ds.ChampionImageBase,
		ItemImageBase:     ds.ItemImageBase,
		FetchedAt:         time.UnixMilli(ds.Timestamp).UTC(),
	}, nil
}

// ListChampions returns every champion, sorted by name.
func (cs *CatalogService) ListChampions() ([]dto.ChampionSummary, error) {
	ds, err := cs.dataset()
	if err != nil {
		return nil, err
	}

	result := make([]dto.ChampionSummary, 0, len(ds.Champions))
	for i := range ds.Champions {
		result = append(result, converters.ChampionSummary(&ds.Champions[i], ds.ChampionImageBase))
	}
	return result, nil
}

// GetChampion returns the champion with the formatted abilities.
// Details come from memory, then from the stored details, then from the fetcher.
// Either way they're kept in memory per version.
func (cs *CatalogService) GetChampion(ctx context.Context, filters *filters.GetChampionDataFilter) (*dto.ChampionDetail, error) {
	ds, err := cs.dataset()
	if err != nil {
		return nil, err
	}

	if _, ok := cs.state.Champion(filters.ChampionId); !ok {
		return nil, fmt.Errorf("champion %s: %w", filters.ChampionId, services.ErrNotFound)
	}

	key := ds.Version + ":" + filters.ChampionId
	if detail, ok := cs.memCache.Get(key); ok {
		return detail, nil
	}

	champ, err := cs.championDetails(ctx, ds.Version, filters.ChampionId)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the details of %s: %w", filters.ChampionId, err)
	}

	detail := converters.ChampionDetail(champ, cs.cdn, ds.Version)
	cs.memCache.Set(key, detail, ChampionDetailCacheDuration)

	return detail, nil
}

// An unreadable stored detail is logged and fetched again.
func (cs *CatalogService) championDetails(ctx context.Context, version, championID string) (*champion.Champion, error) {
	if cs.details != nil {
		champ, err := cs.details.Load(ctx, version, championID)
		if err != nil {
			log.Printf("Stored details of %s unavailable: %v", championID, err)
		}
		if champ != nil {
			return champ, nil
		}
	}
	return cs.fetcher.GetChampionDetails(ctx, version, championID)
}

// GetChampionSkins returns the skins of the champion, without the default one.
func (cs *CatalogService) GetChampionSkins(ctx context.Context, filters *filters.GetChampionDataFilter) ([]dto.Skin, error) {
	detail, err := cs.GetChampion(ctx, filters)
	if err != nil {
		return nil, err
	}
	return detail.Skins, nil
}

// SearchItems filters the item catalog.
func (cs *CatalogService) SearchItems(filters *filters.ItemSearchFilter) ([]dto.Item, error) {
	ds, err := cs.dataset()
	if err != nil {
		return nil, err
	}

	items := cs.state.SearchItems(filters.Query, filters.Tag, filters.Limit)
	return converters.Items(items, ds.ItemImageBase), nil
}

// GetItem returns a single item.
func (cs *CatalogService) GetItem(itemID string) (*dto.Item, error) {
	ds, err := cs.dataset()
	if err != nil {
		return nil, err
	}

	it, ok := cs.state.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, services.ErrNotFound)
	}

	result := converters.Item(it, ds.ItemImageBase)
	return &result, nil
}

// ItemTags lists the item categories.
func (cs *CatalogService) ItemTags() ([]string, error) {
	if _, err := cs.dataset(); err != nil {
		return nil, err
	}
	return cs.state.ItemTags(), nil
}
