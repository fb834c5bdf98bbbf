package interaction

import (
	"context"
	"encoding/json"
	"testing"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/app"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likeKey struct{ user, kind, target string }

type memLikeStore struct {
	owners map[string]string
	likes  map[likeKey]*model.Like
}

func (m *memLikeStore) GetLike(ctx context.Context, userId, kind, targetId string) (*model.Like, error) {
	return m.likes[likeKey{userId, kind, targetId}], nil
}

func (m *memLikeStore) CreateLike(ctx context.Context, like *model.Like) error {
	k := likeKey{user: like.LikedBy}
	switch {
	case like.VideoId != nil:
		k.kind, k.target = constants.LikeTargetVideo, *like.VideoId
	case like.CommentId != nil:
		k.kind, k.target = constants.LikeTargetComment, *like.CommentId
	case like.TweetId != nil:
		k.kind, k.target = constants.LikeTargetTweet, *like.TweetId
	}
	like.ID = k.kind + ":" + k.target
	m.likes[k] = like
	return nil
}

func (m *memLikeStore) DeleteLike(ctx context.Context, likeId string) error {
	for k, l := range m.likes {
		if l.ID == likeId {
			delete(m.likes, k)
		}
	}
	return nil
}

func (m *memLikeStore) ListLikedVideos(ctx context.Context, userId string) ([]*model.Like, error) {
	var res []*model.Like
	for k, l := range m.likes {
		if k.user == userId && k.kind == constants.LikeTargetVideo {
			res = append(res, l)
		}
	}
	return res, nil
}

func (m *memLikeStore) TargetOwner(ctx context.Context, kind, targetId string) (string, error) {
	return m.owners[kind+":"+targetId], nil
}

func newLikeEngine() *route.Engine {
	config.Default()
	store := &memLikeStore{
		owners: map[string]string{"video:v1": "owner", "comment:c1": "owner", "tweet:t1": "owner"},
		likes:  map[likeKey]*model.Like{},
	}
	h := NewLikeHandler(service.NewLikeService(store, mq.NopProducer{}))
	r := route.NewEngine(hzconfig.NewOptions([]hzconfig.Option{}))
	g := r.Group("/api/v1", func(ctx context.Context, c *app.RequestContext) {
		c.Set(constants.IdentityKey, "u1")
		c.Next(ctx)
	})
	g.POST("/videos/:videoId/like", h.ToggleVideoLike)
	g.POST("/comments/:commentId/like", h.ToggleCommentLike)
	g.POST("/tweets/:tweetId/like", h.ToggleTweetLike)
	g.GET("/likes/videos", h.GetLikedVideos)
	return r
}

type likeEnvelope struct {
	StatusCode int64 `json:"statusCode"`
	Data       struct {
		Liked bool `json:"liked"`
	} `json:"data"`
	Message string `json:"message"`
}

func toggle(t *testing.T, r *route.Engine, path string) likeEnvelope {
	t.Helper()
	w := ut.PerformRequest(r, consts.MethodPost, path, nil)
	var env likeEnvelope
	require.NoError(t, json.Unmarshal(w.Result().Body(), &env))
	return env
}

func TestToggleLikeHandlers(t *testing.T) {
	r := newLikeEngine()

	cases := []struct {
		path string
		name string
	}{
		{"/api/v1/videos/v1/like", "Video"},
		{"/api/v1/comments/c1/like", "Comment"},
		{"/api/v1/tweets/t1/like", "Tweet"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := toggle(t, r, tc.path)
			assert.Equal(t, int64(200), env.StatusCode)
			assert.True(t, env.Data.Liked)
			assert.Equal(t, tc.name+" liked successfully", env.Message)

			env = toggle(t, r, tc.path)
			assert.False(t, env.Data.Liked)
			assert.Equal(t, tc.name+" unliked successfully", env.Message)
		})
	}

	t.Run("unknown target", func(t *testing.T) {
		env := toggle(t, r, "/api/v1/videos/nope/like")
		assert.Equal(t, int64(404), env.StatusCode)
		assert.Equal(t, "Video not found", env.Message)
	})
}

func TestGetLikedVideosHandler(t *testing.T) {
	r := newLikeEngine()

	w := ut.PerformRequest(r, consts.MethodGet, "/api/v1/likes/videos", nil)
	assert.Equal(t, consts.StatusNotFound, w.Result().StatusCode())

	toggle(t, r, "/api/v1/videos/v1/like")
	w = ut.PerformRequest(r, consts.MethodGet, "/api/v1/likes/videos", nil)
	assert.Equal(t, consts.StatusOK, w.Result().StatusCode())
}
