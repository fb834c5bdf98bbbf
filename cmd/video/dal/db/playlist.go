package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistDao struct {
	db *gorm.DB
}

func NewPlaylistDao(db *gorm.DB) *PlaylistDao {
	return &PlaylistDao{db: db}
}

// CreatePlaylist stores the playlist and its initial videos in one transaction.
func (d *PlaylistDao) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(playlist).Error; err != nil {
			return errors.Wrap(err, "create playlist failed")
		}
		for i, videoId := range playlist.Videos {
			member := &model.PlaylistVideo{PlaylistId: playlist.ID, VideoId: videoId, Position: int64(i + 1)}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error; err != nil {
				return errors.Wrapf(err, "add video %s to playlist failed", videoId)
			}
		}
		return nil
	})
}

// GetPlaylistById returns nil when the playlist does not exist.
func (d *PlaylistDao) GetPlaylistById(ctx context.Context, playlistId string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := d.db.WithContext(ctx).Where("id = ?", playlistId).First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get playlist %s failed", playlistId)
	}
	if err := d.loadVideos(ctx, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (d *PlaylistDao) ListPlaylistsByOwner(ctx context.Context, ownerId string) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := d.db.WithContext(ctx).Where("owner_id = ?", ownerId).Order("created_at desc").Find(&playlists).Error; err != nil {
		return nil, errors.Wrapf(err, "list playlists of %s failed", ownerId)
	}
	for _, p := range playlists {
		if err := d.loadVideos(ctx, p); err != nil {
			return nil, err
		}
	}
	return playlists, nil
}

func (d *PlaylistDao) loadVideos(ctx context.Context, playlist *model.Playlist) error {
	videos := make([]string, 0)
	err := d.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlist.ID).
		Order("position asc").
		Pluck("video_id", &videos).Error
	if err != nil {
		return errors.Wrapf(err, "load videos of playlist %s failed", playlist.ID)
	}
	playlist.Videos = videos
	return nil
}

// AddPlaylistVideo appends videoId unless it is already a member.
func (d *PlaylistDao) AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var position int64
		err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").
			Scan(&position).Error
		if err != nil {
			return errors.Wrapf(err, "read playlist %s positions failed", playlistId)
		}
		member := &model.PlaylistVideo{PlaylistId: playlistId, VideoId: videoId, Position: position + 1}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error; err != nil {
			return errors.Wrapf(err, "add video %s to playlist %s failed", videoId, playlistId)
		}
		return nil
	})
}

func (d *PlaylistDao) RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	err := d.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
	if err != nil {
		return errors.Wrapf(err, "remove video %s from playlist %s failed", videoId, playlistId)
	}
	return nil
}

func (d *PlaylistDao) UpdatePlaylist(ctx context.Context, playlist *model.Playlist, name, description string) error {
	err := d.db.WithContext(ctx).Model(playlist).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	}).Error
	if err != nil {
		return errors.Wrapf(err, "update playlist %s failed", playlist.ID)
	}
	return nil
}

// DeletePlaylist removes the playlist together with its member rows.
func (d *PlaylistDao) DeletePlaylist(ctx context.Context, playlistId string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrapf(err, "delete videos of playlist %s failed", playlistId)
		}
		if err := tx.Where("id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
			return errors.Wrapf(err, "delete playlist %s failed", playlistId)
		}
		return nil
	})
}
