package service

import (
	"context"
	"testing"

	"VideoTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistMembership(t *testing.T) {
	ctx := context.Background()
	videos := newMemVideoStore()
	v1 := videos.add("u1", 0, true)
	v2 := videos.add("u1", 0, true)
	store := newMemPlaylistStore()
	s := NewPlaylistService(store, videos)

	playlist, err := s.CreatePlaylist(ctx, "u1", &CreatePlaylistRequest{Name: "N", Description: "D", VideoId: v1.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{v1.ID}, playlist.Videos)
	assert.Equal(t, "u1", playlist.OwnerId)

	playlist, err = s.AddVideoToPlaylist(ctx, "u1", playlist.ID, v2.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{v1.ID, v2.ID}, playlist.Videos)

	playlist, err = s.AddVideoToPlaylist(ctx, "u1", playlist.ID, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{v1.ID, v2.ID}, playlist.Videos)

	playlist, err = s.RemoveVideoFromPlaylist(ctx, "u1", playlist.ID, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{v2.ID}, playlist.Videos)

	got, err := s.GetPlaylistById(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{v2.ID}, got.Videos)
}

func TestPlaylistErrors(t *testing.T) {
	ctx := context.Background()
	videos := newMemVideoStore()
	v1 := videos.add("u1", 0, true)
	store := newMemPlaylistStore()
	s := NewPlaylistService(store, videos)

	t.Run("create requires every field", func(t *testing.T) {
		_, err := s.CreatePlaylist(ctx, "u1", &CreatePlaylistRequest{Name: "N", Description: "D"})
		assert.EqualValues(t, errno.ParamErrCode, code(err))
		_, err = s.CreatePlaylist(ctx, "u1", &CreatePlaylistRequest{Description: "D", VideoId: v1.ID})
		assert.EqualValues(t, errno.ParamErrCode, code(err))
		_, err = s.CreatePlaylist(ctx, "u1", &CreatePlaylistRequest{Name: "N", VideoId: v1.ID})
		assert.EqualValues(t, errno.ParamErrCode, code(err))
		assert.Empty(t, store.playlists)
	})

	t.Run("create with unknown video", func(t *testing.T) {
		_, err := s.CreatePlaylist(ctx, "u1", &CreatePlaylistRequest{Name: "N", Description: "D", VideoId: "ghost"})
		assert.EqualValues(t, errno.NotFoundCode, code(err))
		assert.Empty(t, store.playlists)
	})

	playlist, err := s.CreatePlaylist(ctx, "u1", &CreatePlaylistRequest{Name: "N", Description: "D", VideoId: v1.ID})
	require.NoError(t, err)

	t.Run("unknown playlist", func(t *testing.T) {
		_, err := s.AddVideoToPlaylist(ctx, "u1", "missing", v1.ID)
		assert.EqualValues(t, errno.NotFoundCode, code(err))
		_, err = s.RemoveVideoFromPlaylist(ctx, "u1", "missing", v1.ID)
		assert.EqualValues(t, errno.NotFoundCode, code(err))
		_, err = s.GetPlaylistById(ctx, "missing")
		assert.EqualValues(t, errno.NotFoundCode, code(err))
		_, err = s.UpdatePlaylist(ctx, "u1", "missing", &UpdatePlaylistRequest{Name: "x", Description: "y"})
		assert.EqualValues(t, errno.NotFoundCode, code(err))
		assert.Len(t, store.playlists, 1)
	})

	t.Run("not owner", func(t *testing.T) {
		_, err := s.AddVideoToPlaylist(ctx, "u2", playlist.ID, v1.ID)
		assert.EqualValues(t, errno.ForbiddenCode, code(err))
		_, err = s.DeletePlaylist(ctx, "u2", playlist.ID)
		assert.EqualValues(t, errno.ForbiddenCode, code(err))
	})

	t.Run("update requires both fields", func(t *testing.T) {
		_, err := s.UpdatePlaylist(ctx, "u1", playlist.ID, &UpdatePlaylistRequest{Name: "x"})
		assert.EqualValues(t, errno.ParamErrCode, code(err))
	})

	t.Run("update and delete", func(t *testing.T) {
		updated, err := s.UpdatePlaylist(ctx, "u1", playlist.ID, &UpdatePlaylistRequest{Name: "x", Description: "y"})
		require.NoError(t, err)
		assert.Equal(t, "x", updated.Name)

		lists, err := s.GetUserPlaylists(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, "y", lists[0].Description)

		deleted, err := s.DeletePlaylist(ctx, "u1", playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, playlist.ID, deleted.ID)
		assert.Empty(t, store.playlists)
	})
}
