package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTweetStore struct {
	tweets map[string]*model.Tweet
	seq    int
}

func newMemTweetStore() *memTweetStore {
	return &memTweetStore{tweets: map[string]*model.Tweet{}}
}

func (m *memTweetStore) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	m.seq++
	tweet.ID = fmt.Sprintf("t%d", m.seq)
	tweet.CreatedAt = time.Unix(int64(m.seq), 0)
	cp := *tweet
	m.tweets[tweet.ID] = &cp
	return nil
}

func (m *memTweetStore) GetTweetById(ctx context.Context, tweetId string) (*model.Tweet, error) {
	t, ok := m.tweets[tweetId]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTweetStore) ListTweetsByOwner(ctx context.Context, ownerId string) ([]*model.Tweet, error) {
	res := make([]*model.Tweet, 0)
	for i := m.seq; i > 0; i-- {
		if t, ok := m.tweets[fmt.Sprintf("t%d", i)]; ok && t.OwnerId == ownerId {
			res = append(res, t)
		}
	}
	return res, nil
}

func (m *memTweetStore) UpdateTweetContent(ctx context.Context, tweet *model.Tweet, content string) error {
	m.tweets[tweet.ID].Content = content
	return nil
}

func (m *memTweetStore) DeleteTweet(ctx context.Context, tweetId string) error {
	delete(m.tweets, tweetId)
	return nil
}

func code(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

func TestCreateTweet(t *testing.T) {
	ctx := context.Background()
	store := newMemTweetStore()
	s := NewTweetService(store)

	t.Run("ok", func(t *testing.T) {
		tweet, err := s.CreateTweet(ctx, "u1", "u1", &CreateTweetRequest{Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "u1", tweet.OwnerId)
		assert.Equal(t, "hello", tweet.Content)
	})

	t.Run("missing content persists nothing", func(t *testing.T) {
		_, err := s.CreateTweet(ctx, "u1", "u1", &CreateTweetRequest{Content: "  "})
		assert.EqualValues(t, errno.ParamErrCode, code(err))
		assert.Len(t, store.tweets, 1)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := s.CreateTweet(ctx, "u1", "u2", &CreateTweetRequest{Content: "hi"})
		assert.EqualValues(t, errno.ForbiddenCode, code(err))
	})
}

func TestGetUserTweets(t *testing.T) {
	ctx := context.Background()
	s := NewTweetService(newMemTweetStore())

	_, err := s.GetUserTweets(ctx, "u1")
	assert.EqualValues(t, errno.NotFoundCode, code(err))

	_, _ = s.CreateTweet(ctx, "u1", "u1", &CreateTweetRequest{Content: "first"})
	_, _ = s.CreateTweet(ctx, "u1", "u1", &CreateTweetRequest{Content: "second"})
	tweets, err := s.GetUserTweets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "second", tweets[0].Content)
}

func TestUpdateAndDeleteTweet(t *testing.T) {
	ctx := context.Background()
	store := newMemTweetStore()
	s := NewTweetService(store)
	tweet, err := s.CreateTweet(ctx, "u1", "u1", &CreateTweetRequest{Content: "draft"})
	require.NoError(t, err)

	t.Run("update", func(t *testing.T) {
		updated, err := s.UpdateTweet(ctx, "u1", &UpdateTweetRequest{TweetId: tweet.ID, Content: "final"})
		require.NoError(t, err)
		assert.Equal(t, "final", updated.Content)
		assert.Equal(t, "final", store.tweets[tweet.ID].Content)
	})

	t.Run("update unknown id creates nothing", func(t *testing.T) {
		_, err := s.UpdateTweet(ctx, "u1", &UpdateTweetRequest{TweetId: "nope", Content: "x"})
		assert.EqualValues(t, errno.NotFoundCode, code(err))
		assert.Len(t, store.tweets, 1)
	})

	t.Run("update by stranger", func(t *testing.T) {
		_, err := s.UpdateTweet(ctx, "u2", &UpdateTweetRequest{TweetId: tweet.ID, Content: "x"})
		assert.EqualValues(t, errno.ForbiddenCode, code(err))
	})

	t.Run("update missing content", func(t *testing.T) {
		_, err := s.UpdateTweet(ctx, "u1", &UpdateTweetRequest{TweetId: tweet.ID})
		assert.EqualValues(t, errno.ParamErrCode, code(err))
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := s.DeleteTweet(ctx, "u1", tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, tweet.ID, deleted.ID)
		assert.Empty(t, store.tweets)

		_, err = s.DeleteTweet(ctx, "u1", tweet.ID)
		assert.EqualValues(t, errno.NotFoundCode, code(err))
	})
}
