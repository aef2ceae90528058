package cache

import (
	"context"
	"sync"
)

// MemoryCache implements Service with a plain in-process map.
//
// There is no eviction and no TTL: the store grows for the life of the
// process, one entry per unique request key. Known resource-growth caveat;
// writes are idempotent so a racing recompute just overwrites an identical
// value.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryCache creates an empty in-memory store.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]byte)}
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	mc.mu.Lock()
	mc.data[key] = value
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	mc.mu.RLock()
	v, ok := mc.data[key]
	mc.mu.RUnlock()
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (mc *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	mc.mu.RLock()
	_, ok := mc.data[key]
	mc.mu.RUnlock()
	return ok, nil
}

// Len reports the number of stored entries.
func (mc *MemoryCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.data)
}

func (mc *MemoryCache) Close() error { return nil }
