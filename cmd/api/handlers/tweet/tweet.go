package tweet

import (
	"context"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/tweet/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type Handler struct {
	svc *service.TweetService
}

func NewHandler(svc *service.TweetService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreateTweet(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	tweet, err := h.svc.CreateTweet(ctx, actorId, c.Param("userId"), &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.CreatedCode, tweet, "Tweet created successfully")
}

func (h *Handler) GetUserTweets(ctx context.Context, c *app.RequestContext) {
	tweets, err := h.svc.GetUserTweets(ctx, c.Param("userId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, tweets, "Tweets found successfully")
}

// UpdateTweet takes the id from the path when present, otherwise from the body.
func (h *Handler) UpdateTweet(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.UpdateTweetRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	if id := c.Param("tweetId"); id != "" {
		req.TweetId = id
	}
	tweet, err := h.svc.UpdateTweet(ctx, actorId, &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, tweet, "Tweet updated successfully")
}

func (h *Handler) DeleteTweet(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	tweet, err := h.svc.DeleteTweet(ctx, actorId, c.Param("tweetId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, tweet, "Tweet deleted successfully")
}
