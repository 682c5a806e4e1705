package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker suppresses repeated restock alerts for the same product
// inside a TTL window. Key format: restock:<product_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether an alert for this product is already pending.
func (d *DedupChecker) IsDuplicate(ctx context.Context, productID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(productID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that an alert for this product has been raised (expires after
// dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, productID string) error {
	return d.client.Set(ctx, d.key(productID), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(productID string) string {
	return "restock:" + productID
}
