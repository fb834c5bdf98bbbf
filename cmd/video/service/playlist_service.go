package service

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	GetPlaylistById(ctx context.Context, playlistId string) (*model.Playlist, error)
	ListPlaylistsByOwner(ctx context.Context, ownerId string) ([]*model.Playlist, error)
	AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error
	RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) error
	UpdatePlaylist(ctx context.Context, playlist *model.Playlist, name, description string) error
	DeletePlaylist(ctx context.Context, playlistId string) error
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	VideoId     string `json:"videoId" form:"videoId"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistService struct {
	store  PlaylistStore
	videos VideoStore
}

func NewPlaylistService(store PlaylistStore, videos VideoStore) *PlaylistService {
	return &PlaylistService{store: store, videos: videos}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, actorId string, req *CreatePlaylistRequest) (*model.Playlist, error) {
	if req.VideoId == "" {
		return nil, errno.RequestErr.WithMessage("Video ID is required")
	}
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return nil, errno.RequestErr.WithMessage("Name and Description are required")
	}
	if err := s.videoExists(ctx, req.VideoId); err != nil {
		return nil, err
	}
	playlist := &model.Playlist{
		Name:        name,
		Description: description,
		OwnerId:     actorId,
		Videos:      []string{req.VideoId},
	}
	if err := s.store.CreatePlaylist(ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userId string) ([]*model.Playlist, error) {
	if userId == "" {
		return nil, errno.RequestErr.WithMessage("User ID is required")
	}
	playlists, err := s.store.ListPlaylistsByOwner(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPlaylistsByOwner failed")
	}
	return playlists, nil
}

func (s *PlaylistService) GetPlaylistById(ctx context.Context, playlistId string) (*model.Playlist, error) {
	if playlistId == "" {
		return nil, errno.RequestErr.WithMessage("Playlist ID is missing")
	}
	return s.playlist(ctx, playlistId)
}

// AddVideoToPlaylist inserts videoId once; adding a member again leaves the playlist unchanged.
func (s *PlaylistService) AddVideoToPlaylist(ctx context.Context, actorId, playlistId, videoId string) (*model.Playlist, error) {
	if playlistId == "" || videoId == "" {
		return nil, errno.RequestErr.WithMessage("Playlist id and video id are missing")
	}
	if _, err := s.ownedPlaylist(ctx, actorId, playlistId); err != nil {
		return nil, err
	}
	if err := s.videoExists(ctx, videoId); err != nil {
		return nil, err
	}
	if err := s.store.AddPlaylistVideo(ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.AddPlaylistVideo failed")
	}
	return s.playlist(ctx, playlistId)
}

// RemoveVideoFromPlaylist drops every occurrence of videoId.
func (s *PlaylistService) RemoveVideoFromPlaylist(ctx context.Context, actorId, playlistId, videoId string) (*model.Playlist, error) {
	if playlistId == "" || videoId == "" {
		return nil, errno.RequestErr.WithMessage("Playlist id and video id are missing")
	}
	if _, err := s.ownedPlaylist(ctx, actorId, playlistId); err != nil {
		return nil, err
	}
	if err := s.store.RemovePlaylistVideo(ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.RemovePlaylistVideo failed")
	}
	return s.playlist(ctx, playlistId)
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, actorId, playlistId string, req *UpdatePlaylistRequest) (*model.Playlist, error) {
	if playlistId == "" {
		return nil, errno.RequestErr.WithMessage("Playlist id is missing")
	}
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return nil, errno.RequestErr.WithMessage("name and description are missing")
	}
	playlist, err := s.ownedPlaylist(ctx, actorId, playlistId)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdatePlaylist(ctx, playlist, name, description); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdatePlaylist failed")
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, actorId, playlistId string) (*model.Playlist, error) {
	if playlistId == "" {
		return nil, errno.RequestErr.WithMessage("playlist id is missing")
	}
	playlist, err := s.ownedPlaylist(ctx, actorId, playlistId)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeletePlaylist(ctx, playlistId); err != nil {
		return nil, errors.WithMessage(err, "dao.DeletePlaylist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) playlist(ctx context.Context, playlistId string) (*model.Playlist, error) {
	playlist, err := s.store.GetPlaylistById(ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPlaylistById failed")
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("Playlist not found")
	}
	return playlist, nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, actorId, playlistId string) (*model.Playlist, error) {
	playlist, err := s.playlist(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerId != actorId {
		return nil, errno.ForbiddenErr
	}
	return playlist, nil
}

func (s *PlaylistService) videoExists(ctx context.Context, videoId string) error {
	video, err := s.videos.GetVideoById(ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideoById failed")
	}
	if video == nil {
		return errno.NotFoundErr.WithMessage("Video not found")
	}
	return nil
}
