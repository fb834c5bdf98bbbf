package video

import (
	"context"
	"os"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

func (h *VideoHandler) GetAllVideos(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.ListVideosRequest
	if err := c.BindQuery(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	list, err := h.svc.GetAllVideos(ctx, actorId, &req, handlers.Pagination(c))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, list, "Videos fetched successfully")
}

// PublishVideo accepts multipart fields videoFile and thumbnail next to title and description.
func (h *VideoHandler) PublishVideo(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	dir, err := handlers.UploadDir()
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	defer removeDir(dir)

	videoPath, err := handlers.SaveFormFile(c, "videoFile", dir)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	thumbnailPath, err := handlers.SaveFormFile(c, "thumbnail", dir)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	video, err := h.svc.PublishVideo(ctx, actorId, &service.PublishVideoRequest{
		Title:         string(c.PostForm("title")),
		Description:   string(c.PostForm("description")),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.CreatedCode, video, "Video published successfully")
}

func (h *VideoHandler) GetVideoById(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	video, err := h.svc.GetVideoById(ctx, actorId, c.Param("videoId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, video, "Video fetched successfully")
}

func (h *VideoHandler) UpdateVideo(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	dir, err := handlers.UploadDir()
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	defer removeDir(dir)

	thumbnailPath, err := handlers.SaveFormFile(c, "thumbnail", dir)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	video, err := h.svc.UpdateVideo(ctx, actorId, c.Param("videoId"), &service.UpdateVideoRequest{
		Title:         string(c.PostForm("title")),
		Description:   string(c.PostForm("description")),
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, video, "Video updated successfully")
}

func (h *VideoHandler) DeleteVideo(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	video, err := h.svc.DeleteVideo(ctx, actorId, c.Param("videoId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, video, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	video, err := h.svc.TogglePublishStatus(ctx, actorId, c.Param("videoId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	msg := "Video is now unpublished"
	if video.IsPublished {
		msg = "Video is now published"
	}
	handlers.SendResponse(c, errno.SuccessCode, video, msg)
}

func removeDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		hlog.Warnf("remove upload dir %s failed: %v", dir, err)
	}
}
