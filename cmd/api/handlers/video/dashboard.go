package video

import (
	"context"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetChannelStats reports on the caller's own channel.
func (h *DashboardHandler) GetChannelStats(ctx context.Context, c *app.RequestContext) {
	channelId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	stats, err := h.svc.GetChannelStats(ctx, channelId)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	channelId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	videos, err := h.svc.GetChannelVideos(ctx, channelId)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, videos, "Channel videos fetched successfully")
}
