package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker makes notification delivery once-only backed by Redis.
// Key format: notify:<template_id>:<recipient>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this notification was already delivered.
func (d *DedupChecker) IsDuplicate(ctx context.Context, templateID, recipient string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(templateID, recipient)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records a delivered notification (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, templateID, recipient string) error {
	return d.client.Set(ctx, d.key(templateID, recipient), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(templateID, recipient string) string {
	return fmt.Sprintf("notify:%s:%s", templateID, recipient)
}
