package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps each key as a json file inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("couldn't create the cache directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeURLSegment(key)+".json")
}

// Get reads the file of the key.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set replaces the file of the key, through a rename so readers never see half an entry.
func (s *FileStore) Set(ctx context.Context, key string, value string) error {
	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

// RedisClient is the subset of the redis wrapper used by the store.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RedisStore keeps the entry on redis, expiring together with the dataset TTL.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisStore creates the store, a zero ttl keeps the key forever.
func NewRedisStore(client RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get the key from redis.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key)
}

// Set the key on redis.
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, key, value, s.ttl)
}

// FallbackStore reads from the primary store and falls back to the backup one.
// Writes go to both.
type FallbackStore struct {
	primary Store
	backup  Store
}

// NewFallbackStore chains the two stores.
func NewFallbackStore(primary, backup Store) *FallbackStore {
	return &FallbackStore{primary: primary, backup: backup}
}

// Get tries the primary first. The primary error is only returned when the backup fails too.
func (s *FallbackStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil && value != "" {
		return value, nil
	}

	backupValue, backupErr := s.backup.Get(ctx, key)
	if backupErr == nil && backupValue != "" {
		return backupValue, nil
	}

	if err != nil {
		return "", err
	}
	return "", backupErr
}

// Set writes the value on both stores.
func (s *FallbackStore) Set(ctx context.Context, key string, value string) error {
	return errors.Join(s.primary.Set(ctx, key, value), s.backup.Set(ctx, key, value))
}
