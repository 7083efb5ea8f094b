package adapter

import (
	"context"
	"time"
)

// AnalyticsCache memoizes serialized analytics reports.
// Get returns found=false on a miss.
type AnalyticsCache interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
