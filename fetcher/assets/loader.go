package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lolatlas/fetcher/requests"
	"lolatlas/pkg/models/dataset"
	"lolatlas/pkg/models/item"

	"golang.org/x/sync/errgroup"
)

// Loader gets the champion and item catalogs from the Data Dragon, going through the dataset cache.
type Loader struct {
	client *requests.Client
	cache  *DatasetCache
	opts   Options
	logger Logger
}

// LoaderDeps is the dependency list of the loader.
// Cache and Logger are optional.
type LoaderDeps struct {
	Client  *requests.Client
	Cache   *DatasetCache
	Options Options
	Logger  Logger
}

// NewLoader creates a loader.
func NewLoader(deps *LoaderDeps) *Loader {
	logger := deps.Logger
	if logger == nil {
		logger = stdLogger{}
	}
	return &Loader{
		client: deps.Client,
		cache:  deps.Cache,
		opts:   deps.Options.withDefaults(),
		logger: logger,
	}
}

// CDN returns the cdn root used by the loader.
func (l *Loader) CDN() string {
	return l.opts.CDN
}

// Bootstrap returns the dataset of the latest version, from the cache when possible.
// Without a latest version there is nothing to validate the cache against, so it fails.
func (l *Loader) Bootstrap(ctx context.Context) (*dataset.Dataset, error) {
	version, err := l.GetLatestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't determine the data version: %w", err)
	}
	l.logger.Infof("Latest data version: %s", version)

	if l.cache != nil {
		cached, err := l.cache.Load(ctx, version)
		if err != nil {
			l.logger.Errorf("Ignoring the dataset cache: %v", err)
		} else if cached != nil {
			l.logger.Infof("Dataset %s loaded from cache", cached.Version)
			return cached, nil
		}
	}

	return l.Download(ctx, version)
}

// Refresh always downloads the latest version and overwrites the cache.
func (l *Loader) Refresh(ctx context.Context) (*dataset.Dataset, error) {
	version, err := l.GetLatestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't determine the data version: %w", err)
	}
	return l.Download(ctx, version)
}

// Download fetches both catalogs of the version together, filters the items and saves the result.
// Both catalogs must succeed, there is no partial dataset.
func (l *Loader) Download(ctx context.Context, version string) (*dataset.Dataset, error) {
	l.logger.Infof("Downloading dataset %s", version)

	var (
		champions *championDocument
		items     []item.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		document, err := l.fetchChampions(gctx, version)
		champions = document
		return err
	})
	g.Go(func() error {
		rawItems, err := l.fetchItems(gctx, version)
		items = rawItems
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("couldn't download dataset %s: %w", version, err)
	}

	resolved := strings.TrimSpace(champions.Version)
	if resolved == "" {
		resolved = version
	}

	filtered := FilterItems(items, l.opts.MapID, l.opts.ExcludedItemTags)
	if len(filtered) == 0 {
		return nil, &ParseError{URL: l.itemsURL(version), Err: errNoItems}
	}

	ds := &dataset.Dataset{
		Version:           resolved,
		Champions:         sortChampions(champions.Data),
		Items:             filtered,
		ChampionImageBase: l.ChampionImageBase(resolved),
		ItemImageBase:     l.ItemImageBase(resolved),
		Timestamp:         time.Now().UnixMilli(),
		Source:            dataset.SourceAPIFiltered,
	}
	l.logger.Infof("Dataset %s: %d champions, %d of %d items kept", resolved, len(ds.Champions), len(filtered), len(items))

	if l.cache != nil {
		if err := l.cache.Save(ctx, ds); err != nil {
			l.logger.Errorf("Couldn't save the dataset cache: %v", err)
		}
	}

	return ds, nil
}
