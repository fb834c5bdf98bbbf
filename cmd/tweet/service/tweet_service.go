package service

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweetById(ctx context.Context, tweetId string) (*model.Tweet, error)
	ListTweetsByOwner(ctx context.Context, ownerId string) ([]*model.Tweet, error)
	UpdateTweetContent(ctx context.Context, tweet *model.Tweet, content string) error
	DeleteTweet(ctx context.Context, tweetId string) error
}

type CreateTweetRequest struct {
	Content string `json:"content" form:"content"`
}

type UpdateTweetRequest struct {
	TweetId string `json:"tweetId" form:"tweetId"`
	Content string `json:"content" form:"content"`
}

type TweetService struct {
	store TweetStore
}

func NewTweetService(store TweetStore) *TweetService {
	return &TweetService{store: store}
}

// CreateTweet posts as userId, which has to be the caller.
func (s *TweetService) CreateTweet(ctx context.Context, actorId, userId string, req *CreateTweetRequest) (*model.Tweet, error) {
	if userId == "" {
		return nil, errno.RequestErr.WithMessage("User ID is required")
	}
	if userId != actorId {
		return nil, errno.ForbiddenErr.WithMessage("You can only tweet as yourself")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("please write something")
	}
	tweet := &model.Tweet{Content: content, OwnerId: userId}
	if err := s.store.CreateTweet(ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateTweet failed")
	}
	return tweet, nil
}

func (s *TweetService) GetUserTweets(ctx context.Context, userId string) ([]*model.Tweet, error) {
	if userId == "" {
		return nil, errno.RequestErr.WithMessage("User ID is required")
	}
	tweets, err := s.store.ListTweetsByOwner(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListTweetsByOwner failed")
	}
	if len(tweets) == 0 {
		return nil, errno.NotFoundErr.WithMessage("Tweet not found")
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, actorId string, req *UpdateTweetRequest) (*model.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if req.TweetId == "" || content == "" {
		return nil, errno.RequestErr.WithMessage("Tweet ID and new content are required")
	}
	tweet, err := s.ownedTweet(ctx, actorId, req.TweetId)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateTweetContent(ctx, tweet, content); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateTweetContent failed")
	}
	tweet.Content = content
	return tweet, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, actorId, tweetId string) (*model.Tweet, error) {
	if tweetId == "" {
		return nil, errno.RequestErr.WithMessage("Tweet ID is required")
	}
	tweet, err := s.ownedTweet(ctx, actorId, tweetId)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteTweet(ctx, tweetId); err != nil {
		return nil, errors.WithMessage(err, "dao.DeleteTweet failed")
	}
	return tweet, nil
}

func (s *TweetService) ownedTweet(ctx context.Context, actorId, tweetId string) (*model.Tweet, error) {
	tweet, err := s.store.GetTweetById(ctx, tweetId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetTweetById failed")
	}
	if tweet == nil {
		return nil, errno.NotFoundErr.WithMessage("Tweet not found")
	}
	if tweet.OwnerId != actorId {
		return nil, errno.ForbiddenErr
	}
	return tweet, nil
}
