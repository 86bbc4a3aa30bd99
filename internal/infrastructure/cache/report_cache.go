package cache

import (
	"context"
	"time"
)

// ReportCache stores serialized report payloads keyed by their filter
// parameters. A miss is (nil, false, nil); backend failures surface as
// errors so callers can decide to fall through to the upstream.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Close() error
}
