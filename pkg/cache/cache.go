package cache

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines the memoization store used by the fetch pipeline.
// Values are stored as raw bytes; entries never expire.
type Service interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}
