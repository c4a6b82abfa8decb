package cache

import (
	"context"
	"sync"
	"time"
)

// Default interval between the expired keys sweeps.
const DefaultCleanupInterval = 5 * time.Minute

// MemCache is an in-memory cache with a TTL per key.
type MemCache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T, ttl time.Duration)
	Delete(key string)
	Close()
}

// memCache is the sync.Map backed implementation.
type memCache[T any] struct {
	memoryCache   sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	now           func() time.Time
}

// Simple cache item.
type memCacheItem[T any] struct {
	value T
	ttl   time.Time
}

// NewMemCache creates a new memory cache with the default cleanup interval.
func NewMemCache[T any]() MemCache[T] {
	return NewMemCacheWithInterval[T](DefaultCleanupInterval)
}

// NewMemCacheWithInterval creates a new memory cache sweeping expired keys on the given interval.
func NewMemCacheWithInterval[T any](interval time.Duration) MemCache[T] {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &memCache[T]{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(interval),
		ctx:           ctx,
		now:           time.Now,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *memCache[T]) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (mc *memCache[T]) cleanup() {
	now := mc.now()
	mc.memoryCache.Range(func(key, value any) bool {
		item := value.(*memCacheItem[T])
		if now.After(item.ttl) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *memCache[T]) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns a key value of the cache.
func (mc *memCache[T]) Get(key string) (T, bool) {
	var zero T

	value, exists := mc.memoryCache.Load(key)
	if !exists {
		return zero, false
	}

	item := value.(*memCacheItem[T])

	// If the reset time was reached, remove the cache.
	if mc.now().After(item.ttl) {
		mc.memoryCache.Delete(key)
		return zero, false
	}

	return item.value, true
}

// Set a given key on the cache.
func (mc *memCache[T]) Set(key string, value T, ttl time.Duration) {
	mc.memoryCache.Store(key, &memCacheItem[T]{
		value: value,
		ttl:   mc.now().Add(ttl),
	})
}

// Delete a key from the cache.
func (mc *memCache[T]) Delete(key string) {
	mc.memoryCache.Delete(key)
}
