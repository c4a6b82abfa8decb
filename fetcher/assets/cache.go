package assets

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lolatlas/pkg/models/dataset"
)

// Defaults of the dataset cache.
const (
	DefaultCacheKey = "lolatlas-data-cache-v2"
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Store keeps the serialized cache entry.
// A missing key is an empty string without error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// DatasetCache is the single named dataset entry with a TTL.
type DatasetCache struct {
	store Store
	key   string
	ttl   time.Duration
	now   func() time.Time
}

// NewDatasetCache creates the cache over a store.
func NewDatasetCache(store Store, key string, ttl time.Duration) *DatasetCache {
	if key == "" {
		key = DefaultCacheKey
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DatasetCache{
		store: store,
		key:   key,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Load returns the cached dataset when it's complete, matches the expected version and isn't stale.
// A nil dataset without error is a plain miss, a *CacheError means the entry couldn't be used.
// An empty expected version accepts any version.
func (c *DatasetCache) Load(ctx context.Context, expectedVersion string) (*dataset.Dataset, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, &CacheError{Key: c.key, Err: err}
	}
	if raw == "" {
		return nil, nil
	}

	var entry dataset.Dataset
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, &CacheError{Key: c.key, Err: err}
	}

	if entry.Version == "" || entry.Champions == nil || entry.Items == nil {
		return nil, &CacheError{Key: c.key, Err: errors.New("incomplete entry")}
	}

	if expectedVersion != "" && entry.Version != expectedVersion {
		return nil, nil
	}

	age := c.now().Sub(time.UnixMilli(entry.Timestamp))
	if age > c.ttl {
		return nil, nil
	}

	entry.Source = dataset.SourceCache
	return &entry, nil
}

// Save stamps the dataset with the current time and overwrites the entry.
func (c *DatasetCache) Save(ctx context.Context, ds *dataset.Dataset) error {
	ds.Timestamp = c.now().UnixMilli()

	payload, err := json.Marshal(ds)
	if err != nil {
		return &CacheError{Key: c.key, Err: err}
	}

	if err := c.store.Set(ctx, c.key, string(payload)); err != nil {
		return &CacheError{Key: c.key, Err: err}
	}
	return nil
}
