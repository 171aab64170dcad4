package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const checkoutTTL = 24 * time.Hour

// CheckoutDedup provides checkout idempotency checks backed by Redis.
// Key format: checkout:<idempotency_key>
type CheckoutDedup struct {
	client *redis.Client
}

// NewCheckoutDedup creates a CheckoutDedup wrapping the given Redis client.
func NewCheckoutDedup(client *redis.Client) *CheckoutDedup {
	return &CheckoutDedup{client: client}
}

// IsDuplicate reports whether a checkout with this key was already processed.
func (d *CheckoutDedup) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this checkout has been processed (expires after checkoutTTL).
func (d *CheckoutDedup) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.key(key), "1", checkoutTTL).Err()
}

func (d *CheckoutDedup) key(key string) string {
	return "checkout:" + key
}
