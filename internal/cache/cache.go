// Package cache provides a small result cache used to memoize strategy
// comparisons across API calls. The engine itself is pure; caching is
// purely a latency optimization at the serving boundary.
package cache

import (
	"context"
	"time"
)

// Cache is the interface the server depends on. Get reports a miss with
// false rather than an error; a broken cache degrades to recomputation.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
