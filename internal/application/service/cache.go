package service

import "context"

// Cache is the rendered-response cache port, satisfied by the redis adapter.
// Get reports a miss as (nil, nil); Set and Invalidate are best effort.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, keys ...string)
	InvalidateAllPages(ctx context.Context)
}
