package mq

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// ChannelEvent is emitted whenever something that feeds a channel's dashboard changes.
type ChannelEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"` // video_like, comment_like, tweet_like, subscription, video_*
	ActorID   string `json:"actor_id"`   // user who acted
	TargetID  string `json:"target_id"`  // liked record, channel or video
	ChannelID string `json:"channel_id"` // owner whose stats are affected
	Action    string `json:"action"`     // added / removed
	Timestamp int64  `json:"timestamp"`
}

const (
	EventExchange     = "videotube_events"
	ChannelStatsQueue = "channel_stats_queue"
)

// NewChannelEvent stamps an event with a fresh id and the current time.
func NewChannelEvent(eventType, actorId, targetId, channelId, action string) *ChannelEvent {
	return &ChannelEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ActorID:   actorId,
		TargetID:  targetId,
		ChannelID: channelId,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}
}

// Publish sends the event and only logs failures; the request that caused it has already succeeded.
func Publish(ctx context.Context, producer MessageProducer, event *ChannelEvent) {
	if producer == nil || event.ChannelID == "" {
		return
	}
	if err := producer.PublishChannelEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish %s event for channel %s failed: %v", event.EventType, event.ChannelID, err)
	}
}
