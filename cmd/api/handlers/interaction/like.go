package interaction

import (
	"context"
	"fmt"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

type toggleResponse struct {
	Liked bool `json:"liked"`
}

func (h *LikeHandler) toggle(ctx context.Context, c *app.RequestContext, kind, param string) {
	userId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	liked, err := h.svc.ToggleLike(ctx, userId, kind, c.Param(param))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	action := "unliked"
	if liked {
		action = "liked"
	}
	handlers.SendResponse(c, errno.SuccessCode, &toggleResponse{Liked: liked},
		fmt.Sprintf("%s %s successfully", service.TargetName(kind), action))
}

func (h *LikeHandler) ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, constants.LikeTargetVideo, "videoId")
}

func (h *LikeHandler) ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, constants.LikeTargetComment, "commentId")
}

func (h *LikeHandler) ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, constants.LikeTargetTweet, "tweetId")
}

func (h *LikeHandler) GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	likes, err := h.svc.GetLikedVideos(ctx, userId)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, likes, "Liked Videos fetched successfully")
}
