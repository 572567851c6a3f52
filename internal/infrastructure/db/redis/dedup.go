package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// An application stays deduplicated for the longest window a posting can be
// open; repeat submissions inside it are dropped.
const dedupTTL = 60 * 24 * time.Hour

// DedupChecker provides application idempotency checks backed by Redis.
// Key format: apply:<job_id>:<applicant_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this applicant already applied to this posting.
func (d *DedupChecker) IsDuplicate(ctx context.Context, jobID, applicantID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jobID, applicantID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the application has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, jobID, applicantID string) error {
	return d.client.Set(ctx, d.key(jobID, applicantID), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(jobID, applicantID string) string {
	return fmt.Sprintf("apply:%s:%s", jobID, applicantID)
}
