package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"VideoTube.com/cmd/model"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// channel:stats:{channelId}
const ChannelStatsKey = "channel:stats:%s"

// ChannelStatsCache caches dashboard stats per channel. Like, subscription, publish
// and view events invalidate the entry; the TTL bounds staleness when an event is lost.
// A nil client turns every call into a miss, so callers never branch on whether redis is configured.
type ChannelStatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewChannelStatsCache(client redis.Cmdable, ttl time.Duration) *ChannelStatsCache {
	return &ChannelStatsCache{client: client, ttl: ttl}
}

func channelStatsKey(channelId string) string {
	return fmt.Sprintf(ChannelStatsKey, channelId)
}

// Get returns the cached stats, or nil on a miss.
func (c *ChannelStatsCache) Get(ctx context.Context, channelId string) (*model.ChannelStats, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, channelStatsKey(channelId)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel stats: %w", err)
	}
	var stats model.ChannelStats
	if err := json.Unmarshal(data, &stats); err != nil {
		// a corrupt entry is a miss; it will be overwritten
		hlog.CtxWarnf(ctx, "drop corrupt channel stats for %s: %v", channelId, err)
		return nil, nil
	}
	return &stats, nil
}

func (c *ChannelStatsCache) Set(ctx context.Context, channelId string, stats *model.ChannelStats) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal channel stats: %w", err)
	}
	if err := c.client.Set(ctx, channelStatsKey(channelId), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set channel stats: %w", err)
	}
	return nil
}

func (c *ChannelStatsCache) Invalidate(ctx context.Context, channelId string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, channelStatsKey(channelId)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate channel stats: %w", err)
	}
	return nil
}
