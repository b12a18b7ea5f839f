package redis

import (
	"context"
	"time"

	"mockapi/internal/repository"
)

// ResponseCacheInterface defines the idempotency cache contract.
type ResponseCacheInterface interface {
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, response *CachedResponse, ttl time.Duration) error
}

// Ensure concrete types implement interfaces.
var (
	_ repository.PaymentRepository = (*PaymentStore)(nil)
	_ ResponseCacheInterface       = (*ResponseCache)(nil)
)
