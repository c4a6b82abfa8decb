package setup

import (
	"errors"
	"fmt"
	"log"
	"time"

	"lolatlas/fetcher/assets"
	"lolatlas/fetcher/repositories"
	"lolatlas/fetcher/requests"
	"lolatlas/pkg/config"
	"lolatlas/pkg/database"
	"lolatlas/pkg/redis"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrUnknownBackend is returned for a backend other than file or redis.
var ErrUnknownBackend = errors.New("unknown cache backend")

// NewStore creates the dataset cache store selected on the configuration.
// The returned function releases the connections.
//
// With the redis backend the postgres backup is chained when a database url is set,
// and the migrations are applied first.
func NewStore(cfg *config.Config) (assets.Store, func(), error) {
	switch cfg.Cache.Backend {
	case "", BackendFile:
		store, err := assets.NewFileStore(cfg.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case BackendRedis:
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		var store assets.Store = assets.NewRedisStore(client, cfg.Cache.TTL)

		if cfg.Database.URL == "" {
			return store, func() { client.Close() }, nil
		}

		db, err := database.NewConnection(cfg.Database.URL)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		if err := database.RunMigrations(cfg, sqlDB); err != nil {
			client.Close()
			sqlDB.Close()
			return nil, nil, err
		}

		store = assets.NewFallbackStore(store, repositories.NewCacheRepository(db))
		return store, func() {
			client.Close()
			sqlDB.Close()
		}, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Cache.Backend)
}

// NewLoader creates the Data Dragon loader over the store.
// A nil store disables the cache.
func NewLoader(cfg *config.Config, store assets.Store, logger assets.Logger) *assets.Loader {
	var limiter *requests.RateLimiter
	if cfg.DataDragon.RequestsPerSec > 0 {
		limiter = requests.NewRateLimiter(requests.Window{Count: cfg.DataDragon.RequestsPerSec, Interval: time.Second})
	}

	var cache *assets.DatasetCache
	if store != nil {
		cache = assets.NewDatasetCache(store, cfg.Cache.Key, cfg.Cache.TTL)
	}

	return assets.NewLoader(&assets.LoaderDeps{
		Client: requests.NewClient(cfg.DataDragon.Timeout, limiter),
		Cache:  cache,
		Options: assets.Options{
			CDN:              cfg.DataDragon.CDN,
			API:              cfg.DataDragon.API,
			Locale:           cfg.DataDragon.Locale,
			MapID:            assets.SummonersRiftID,
			ExcludedItemTags: cfg.DataDragon.ExcludedItemTags,
			Workers:          cfg.DataDragon.Workers,
		},
		Logger: logger,
	})
}

// NewDefaultLoader wires the store, the loader and the champion detail store.
// When the store is down the loader works uncached and there is no detail store.
func NewDefaultLoader(cfg *config.Config, logger assets.Logger) (*assets.Loader, *assets.ChampionDetailStore, func()) {
	store, closeStore, err := NewStore(cfg)
	if err != nil {
		log.Printf("Dataset cache unavailable, loading without cache: %v", err)
		return NewLoader(cfg, nil, logger), nil, func() {}
	}
	return NewLoader(cfg, store, logger), assets.NewChampionDetailStore(store), closeStore
}
