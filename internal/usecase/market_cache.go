package usecase

import (
	"context"
	"time"
)

// MarketCache caches responses for market-wide queries (trending skills,
// salary trends). Keys never include profile data; per-person computations
// are always recomputed. A nil cache disables caching entirely.
type MarketCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
