package models

import (
	"time"

	"gorm.io/datatypes"
)

// CacheBackupTable is created by the first migration.
const CacheBackupTable = "cache_backups"

// Database model for saving the cache keys.
// Used as fallback in case the Redis is down, it only ever holds the dataset entry.
type CacheBackup struct {
	CacheKey   string         `gorm:"primaryKey;autoIncrement:false"`
	CacheValue datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time
}

func (CacheBackup) TableName() string {
	return CacheBackupTable
}
