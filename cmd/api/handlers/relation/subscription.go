package relation

import (
	"context"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/relation/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type Handler struct {
	svc *service.SubscriptionService
}

func NewHandler(svc *service.SubscriptionService) *Handler {
	return &Handler{svc: svc}
}

type toggleResponse struct {
	Subscribed bool `json:"subscribed"`
}

func (h *Handler) ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	subscriberId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	subscribed, err := h.svc.ToggleSubscription(ctx, subscriberId, c.Param("channelId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	message := "Channel unsubscribed successfully"
	if subscribed {
		message = "Channel subscribed successfully"
	}
	handlers.SendResponse(c, errno.SuccessCode, &toggleResponse{Subscribed: subscribed}, message)
}

func (h *Handler) GetUserChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	subs, err := h.svc.GetChannelSubscribers(ctx, channelId)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	if len(subs) == 0 {
		handlers.SendResponse(c, errno.SuccessCode, subs, "No subscribers found for this channel")
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, subs, "Subscribers fetched successfully")
}

func (h *Handler) GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subs, err := h.svc.GetSubscribedChannels(ctx, c.Param("subscriberId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	if len(subs) == 0 {
		handlers.SendResponse(c, errno.SuccessCode, subs, "No channel subscriptions found for this user")
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, subs, "Subscribed channels fetched successfully")
}
