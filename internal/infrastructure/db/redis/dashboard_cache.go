package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/ports"
)

const summaryTTL = time.Minute

// DashboardCache keeps per-user dashboard summaries in Redis for a short TTL.
// Key format: dashboard:<owner>
type DashboardCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewDashboardCache creates a DashboardCache wrapping the given Redis client.
func NewDashboardCache(client *redis.Client, log zerolog.Logger) *DashboardCache {
	return &DashboardCache{client: client, log: log}
}

// Get returns the cached summary for owner, or ok=false on a miss or any
// backend error. Cache failures never fail the request.
func (c *DashboardCache) Get(ctx context.Context, owner string) (*ports.DashboardSummary, bool) {
	raw, err := c.client.Get(ctx, c.key(owner)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("dashboard cache read failed")
		}
		return nil, false
	}

	var summary ports.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.log.Warn().Err(err).Msg("dashboard cache entry corrupt")
		return nil, false
	}
	return &summary, true
}

// Set stores the summary for owner, expiring after summaryTTL.
func (c *DashboardCache) Set(ctx context.Context, owner string, summary *ports.DashboardSummary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		c.log.Warn().Err(err).Msg("dashboard cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(owner), raw, summaryTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("dashboard cache write failed")
	}
}

func (c *DashboardCache) key(owner string) string {
	return fmt.Sprintf("dashboard:%s", owner)
}
