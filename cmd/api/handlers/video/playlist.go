package video

import (
	"context"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type PlaylistHandler struct {
	svc *service.PlaylistService
}

func NewPlaylistHandler(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

func (h *PlaylistHandler) CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.CreatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	playlist, err := h.svc.CreatePlaylist(ctx, actorId, &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.CreatedCode, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	playlists, err := h.svc.GetUserPlaylists(ctx, c.Param("userId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	playlist, err := h.svc.GetPlaylistById(ctx, c.Param("playlistId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	playlist, err := h.svc.AddVideoToPlaylist(ctx, actorId, c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, playlist, "Video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	playlist, err := h.svc.RemoveVideoFromPlaylist(ctx, actorId, c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, playlist, "Video removed from playlist successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	var req service.UpdatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	playlist, err := h.svc.UpdatePlaylist(ctx, actorId, c.Param("playlistId"), &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	actorId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	playlist, err := h.svc.DeletePlaylist(ctx, actorId, c.Param("playlistId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, playlist, "Playlist deleted successfully")
}
