package repositories

import (
	"context"
	"errors"
	"time"

	"lolatlas/pkg/database/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
// It satisfies the dataset cache store, so it can back the redis one.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// Cache repository structure.
type cacheRepository struct {
	db *gorm.DB
}

// Create a cache repository.
func NewCacheRepository(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

// Get returns the value of the key, empty when it was never set.
func (cr *cacheRepository) Get(ctx context.Context, key string) (string, error) {
	var cacheEntry models.CacheBackup

	err := cr.db.WithContext(ctx).
		Where("cache_key = ?", key).
		First(&cacheEntry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return string(cacheEntry.CacheValue), nil
}

// Set upserts the key value.
// Should be used as a Redis fallback.
func (cr *cacheRepository) Set(ctx context.Context, key string, value string) error {
	cacheEntry := &models.CacheBackup{
		CacheKey:   key,
		CacheValue: datatypes.JSON(value),
		UpdatedAt:  time.Now(),
	}

	// Upsert the cache key.
	return cr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cache_value", "updated_at"}),
	}).Create(cacheEntry).Error
}
