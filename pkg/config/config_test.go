package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "docker")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, time.Minute, cfg.Server.DatasetRetry)
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn", cfg.DataDragon.CDN)
	assert.Equal(t, "pt_BR", cfg.DataDragon.Locale)
	assert.Equal(t, []string{"Consumable", "Trinket"}, cfg.DataDragon.ExcludedItemTags)
	assert.Equal(t, 7*24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 6, cfg.Builder.MaxItems)
	assert.Equal(t, 18, cfg.Builder.ReferenceLevel)
	assert.False(t, cfg.BucketEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "docker")
	t.Setenv("DDRAGON_CDN", "http://localhost:9000/cdn/")
	t.Setenv("DDRAGON_LOCALE", "en_US")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("MAX_BUILD_ITEMS", "3")
	t.Setenv("EXCLUDED_ITEM_TAGS", "")
	t.Setenv("BUCKET_ACCESS_KEY", "key")
	t.Setenv("BUCKET_ACCESS_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/cdn", cfg.DataDragon.CDN)
	assert.Equal(t, "en_US", cfg.DataDragon.Locale)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 3, cfg.Builder.MaxItems)
	assert.Empty(t, cfg.DataDragon.ExcludedItemTags)
	assert.True(t, cfg.BucketEnabled())
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "CACHE_TTL", value: "seven days"},
		{name: "bad integer", key: "MAX_BUILD_ITEMS", value: "six"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "docker")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
