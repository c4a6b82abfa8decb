package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server configuration struct.
type ServerConfiguration struct {
	HTTPAddr string
	GRPCAddr string
	// Interval between load attempts while the API has no dataset.
	DatasetRetry time.Duration
}

// Data Dragon configuration struct.
type DataDragonConfiguration struct {
	CDN              string
	API              string
	Locale           string
	Timeout          time.Duration
	Workers          int
	ExcludedItemTags []string
	RequestsPerSec   int
}

// Dataset cache configuration struct.
type CacheConfiguration struct {
	Key     string
	TTL     time.Duration
	Dir     string
	Backend string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
// The database only keeps a backup of the cache entry.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string
}

// S3 bucket configuration struct.
type BucketConfiguration struct {
	Region        string
	Endpoint      string
	AccessKey     string
	AccessSecret  string
	LogBucket     string
	ArchiveBucket string
}

// Build calculator configuration struct.
type BuilderConfiguration struct {
	MaxItems       int
	ReferenceLevel int
	SessionTTL     time.Duration
}

// Config is the full application configuration.
type Config struct {
	Environment string
	Server      ServerConfiguration
	DataDragon  DataDragonConfiguration
	Cache       CacheConfiguration
	Redis       RedisConfiguration
	Database    DatabaseConfiguration
	Bucket      BucketConfiguration
	Builder     BuilderConfiguration
}

// Load the variables.
// Outside of docker the .env file is loaded first, a missing file is not an error.
func Load() (*Config, error) {
	environment := os.Getenv("ENVIRONMENT")
	if environment != "docker" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("couldn't load the .env file: %w", err)
		}
	}

	var err error
	cfg := &Config{Environment: environment}

	cfg.Server = ServerConfiguration{
		HTTPAddr: getEnvOrDefault("HTTP_ADDR", ":8080"),
		GRPCAddr: getEnvOrDefault("GRPC_ADDR", ":50051"),
	}
	if cfg.Server.DatasetRetry, err = getDurationOrDefault("DATASET_RETRY_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	cfg.DataDragon = DataDragonConfiguration{
		CDN:              strings.TrimRight(getEnvOrDefault("DDRAGON_CDN", "https://ddragon.leagueoflegends.com/cdn"), "/"),
		API:              strings.TrimRight(getEnvOrDefault("DDRAGON_API", "https://ddragon.leagueoflegends.com/api"), "/"),
		Locale:           getEnvOrDefault("DDRAGON_LOCALE", "pt_BR"),
		ExcludedItemTags: getListOrDefault("EXCLUDED_ITEM_TAGS", []string{"Consumable", "Trinket"}),
	}
	if cfg.DataDragon.Timeout, err = getDurationOrDefault("DDRAGON_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.DataDragon.Workers, err = getIntOrDefault("DDRAGON_WORKERS", 10); err != nil {
		return nil, err
	}
	if cfg.DataDragon.RequestsPerSec, err = getIntOrDefault("DDRAGON_REQUESTS_PER_SECOND", 20); err != nil {
		return nil, err
	}

	cfg.Cache = CacheConfiguration{
		Key:     getEnvOrDefault("CACHE_KEY", "lolatlas-data-cache-v2"),
		Dir:     getEnvOrDefault("CACHE_DIR", os.TempDir()),
		Backend: getEnvOrDefault("CACHE_BACKEND", "file"),
	}
	if cfg.Cache.TTL, err = getDurationOrDefault("CACHE_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}

	cfg.Redis = RedisConfiguration{
		Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
		Port:     getEnvOrDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.Database = DatabaseConfiguration{
		URL:            os.Getenv("DATABASE_URL"),
		Database:       getEnvOrDefault("POSTGRES_DB", "lolatlas"),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", "migrations"),
	}

	cfg.Bucket = BucketConfiguration{
		Region:        getEnvOrDefault("BUCKET_REGION", "us-east-1"),
		Endpoint:      os.Getenv("BUCKET_ENDPOINT"),
		AccessKey:     os.Getenv("BUCKET_ACCESS_KEY"),
		AccessSecret:  os.Getenv("BUCKET_ACCESS_SECRET"),
		LogBucket:     os.Getenv("BUCKET_LOG_NAME"),
		ArchiveBucket: os.Getenv("BUCKET_ARCHIVE_NAME"),
	}

	if cfg.Builder.MaxItems, err = getIntOrDefault("MAX_BUILD_ITEMS", 6); err != nil {
		return nil, err
	}
	if cfg.Builder.ReferenceLevel, err = getIntOrDefault("REFERENCE_LEVEL", 18); err != nil {
		return nil, err
	}
	if cfg.Builder.SessionTTL, err = getDurationOrDefault("BUILD_SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BucketEnabled reports whether the S3 credentials were provided.
func (c *Config) BucketEnabled() bool {
	return c.Bucket.AccessKey != "" && c.Bucket.AccessSecret != ""
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer on %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration on %s: %w", key, err)
	}
	return parsed, nil
}

// Comma separated list, blank entries are ignored.
func getListOrDefault(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	var list []string
	for _, entry := range strings.Split(value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			list = append(list, entry)
		}
	}
	return list
}
