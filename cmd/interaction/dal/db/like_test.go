package db

import (
	"context"
	"testing"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/database/dbtest"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedVideo(t *testing.T, DB *gorm.DB, owner string) *model.Video {
	t.Helper()
	v := &model.Video{Title: "t", Description: "d", VideoUrl: "http://oss/v", OwnerId: owner}
	require.NoError(t, DB.Create(v).Error)
	t.Cleanup(func() { DB.Where("id = ?", v.ID).Delete(&model.Video{}) })
	return v
}

func TestVideoLikeLifecycle(t *testing.T) {
	ctx := context.Background()
	DB := dbtest.Open(t)
	dao := NewLikeDao(DB)

	owner, user := uuid.NewString(), uuid.NewString()
	video := seedVideo(t, DB, owner)
	videoId := video.ID

	first := &model.Like{LikedBy: user, VideoId: &videoId}
	require.NoError(t, dao.CreateLike(ctx, first))
	t.Cleanup(func() { _ = dao.DeleteLike(ctx, first.ID) })

	t.Run("second insert is a duplicate key", func(t *testing.T) {
		err := dao.CreateLike(ctx, &model.Like{LikedBy: user, VideoId: &videoId})
		require.Error(t, err)
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
		assert.True(t, database.IsDuplicateKey(errors.WithMessage(err, "dao.CreateLike failed")))
	})

	t.Run("get finds the like", func(t *testing.T) {
		like, err := dao.GetLike(ctx, user, constants.LikeTargetVideo, videoId)
		require.NoError(t, err)
		require.NotNil(t, like)
		assert.Equal(t, first.ID, like.ID)

		none, err := dao.GetLike(ctx, uuid.NewString(), constants.LikeTargetVideo, videoId)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("liked videos preload the video", func(t *testing.T) {
		likes, err := dao.ListLikedVideos(ctx, user)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		require.NotNil(t, likes[0].Video)
		assert.Equal(t, videoId, likes[0].Video.ID)
	})

	t.Run("count", func(t *testing.T) {
		n, err := dao.CountVideoLikes(ctx, []string{videoId, uuid.NewString()})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, dao.DeleteLike(ctx, first.ID))
		like, err := dao.GetLike(ctx, user, constants.LikeTargetVideo, videoId)
		require.NoError(t, err)
		assert.Nil(t, like)
	})
}

func TestTargetOwner(t *testing.T) {
	ctx := context.Background()
	DB := dbtest.Open(t)
	dao := NewLikeDao(DB)

	owner := uuid.NewString()
	video := seedVideo(t, DB, owner)

	got, err := dao.TargetOwner(ctx, constants.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	got, err = dao.TargetOwner(ctx, constants.LikeTargetTweet, video.ID)
	require.NoError(t, err)
	assert.Empty(t, got, "a video id is not a tweet")

	_, err = dao.TargetOwner(ctx, "playlist", video.ID)
	assert.Error(t, err)
}

func TestListVideoCommentsPaging(t *testing.T) {
	ctx := context.Background()
	DB := dbtest.Open(t)
	dao := NewCommentDao(DB)
	video := seedVideo(t, DB, uuid.NewString())

	for _, content := range []string{"one", "two", "three"} {
		c := &model.Comment{Content: content, VideoId: video.ID, OwnerId: uuid.NewString()}
		require.NoError(t, dao.CreateComment(ctx, c))
		t.Cleanup(func() { _ = dao.DeleteComment(ctx, c.ID) })
	}

	comments, total, err := dao.ListVideoComments(ctx, video.ID, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, comments, 1)

	exists, err := dao.VideoExists(ctx, video.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = dao.VideoExists(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, exists)
}
