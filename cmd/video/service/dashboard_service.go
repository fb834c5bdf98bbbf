package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type SubscriberCounter interface {
	CountSubscribers(ctx context.Context, channelId string) (int64, error)
}

type VideoLikeCounter interface {
	CountVideoLikes(ctx context.Context, videoIds []string) (int64, error)
}

type StatsCache interface {
	Get(ctx context.Context, channelId string) (*model.ChannelStats, error)
	Set(ctx context.Context, channelId string, stats *model.ChannelStats) error
	Invalidate(ctx context.Context, channelId string) error
}

type DashboardService struct {
	videos      VideoStore
	subscribers SubscriberCounter
	likes       VideoLikeCounter
	cache       StatsCache
}

var _ mq.ChannelEventHandler = (*DashboardService)(nil)

func NewDashboardService(videos VideoStore, subscribers SubscriberCounter, likes VideoLikeCounter, cache StatsCache) *DashboardService {
	return &DashboardService{
		videos:      videos,
		subscribers: subscribers,
		likes:       likes,
		cache:       cache,
	}
}

// GetChannelStats sums views over the channel's videos and counts likes on them.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelId string) (*model.ChannelStats, error) {
	if channelId == "" {
		return nil, errno.RequestErr.WithMessage("Channel ID is required")
	}
	if cached, err := s.cache.Get(ctx, channelId); err != nil {
		hlog.CtxWarnf(ctx, "read channel stats cache failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	totalSubscribers, err := s.subscribers.CountSubscribers(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	videos, err := s.videos.ListVideosByOwner(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideosByOwner failed")
	}
	stats := &model.ChannelStats{
		TotalSubscribers: totalSubscribers,
		TotalVideos:      int64(len(videos)),
	}
	videoIds := make([]string, 0, len(videos))
	for _, v := range videos {
		stats.TotalViews += v.Views
		videoIds = append(videoIds, v.ID)
	}
	if stats.TotalLikes, err = s.likes.CountVideoLikes(ctx, videoIds); err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideoLikes failed")
	}

	if err := s.cache.Set(ctx, channelId, stats); err != nil {
		hlog.CtxWarnf(ctx, "write channel stats cache failed: %v", err)
	}
	return stats, nil
}

func (s *DashboardService) GetChannelVideos(ctx context.Context, channelId string) ([]*model.Video, error) {
	if channelId == "" {
		return nil, errno.RequestErr.WithMessage("Channel ID is missing")
	}
	videos, err := s.videos.ListVideosByOwner(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideosByOwner failed")
	}
	if len(videos) == 0 {
		return nil, errno.NotFoundErr.WithMessage("No videos found for this channel")
	}
	return videos, nil
}

// HandleChannelEvent drops the cached stats of the channel the event touched.
func (s *DashboardService) HandleChannelEvent(ctx context.Context, event *mq.ChannelEvent) error {
	if event.ChannelID == "" {
		return nil
	}
	if err := s.cache.Invalidate(ctx, event.ChannelID); err != nil {
		return errors.WithMessagef(err, "invalidate stats of %s", event.ChannelID)
	}
	hlog.CtxDebugf(ctx, "channel stats of %s invalidated by %s", event.ChannelID, event.EventType)
	return nil
}
