package interfaces

import (
	"context"
	"time"
)

// CacheService is the document memoization boundary the repositories use,
// backed by Redis in production. A nil CacheService is valid: repositories
// treat every lookup as a miss.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}
