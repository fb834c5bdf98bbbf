package interaction

import (
	"context"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) GetVideoComments(ctx context.Context, c *app.RequestContext) {
	list, err := h.svc.GetVideoComments(ctx, c.Param("videoId"), handlers.Pagination(c))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, list, "got comments successfully")
}

func (h *CommentHandler) AddComment(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	comment, err := h.svc.AddComment(ctx, actorId, c.Param("videoId"), &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.CreatedCode, comment, "Comment added successfully")
}

// UpdateComment takes the id from the path when present, otherwise from the body.
func (h *CommentHandler) UpdateComment(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	if id := c.Param("commentId"); id != "" {
		req.CommentId = id
	}
	comment, err := h.svc.UpdateComment(ctx, actorId, &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, comment, "Comment updated successfully")
}

func (h *CommentHandler) DeleteComment(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	comment, err := h.svc.DeleteComment(ctx, actorId, c.Param("commentId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, comment, "Comment deleted successfully")
}
