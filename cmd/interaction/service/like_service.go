package service

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type LikeStore interface {
	GetLike(ctx context.Context, userId, kind, targetId string) (*model.Like, error)
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, likeId string) error
	ListLikedVideos(ctx context.Context, userId string) ([]*model.Like, error)
	TargetOwner(ctx context.Context, kind, targetId string) (string, error)
}

var likeEvents = map[string]string{
	constants.LikeTargetVideo:   constants.EventVideoLike,
	constants.LikeTargetComment: constants.EventCommentLike,
	constants.LikeTargetTweet:   constants.EventTweetLike,
}

type LikeService struct {
	store    LikeStore
	producer mq.MessageProducer
}

func NewLikeService(store LikeStore, producer mq.MessageProducer) *LikeService {
	return &LikeService{store: store, producer: producer}
}

// TargetName is the capitalized kind used in messages, e.g. "Video".
func TargetName(kind string) string {
	if kind == "" {
		return ""
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

// ToggleLike flips whether userId likes the target and reports the new state.
func (s *LikeService) ToggleLike(ctx context.Context, userId, kind, targetId string) (bool, error) {
	eventType, ok := likeEvents[kind]
	if !ok {
		return false, errno.RequestErr.WithMessage("Unknown like target")
	}
	if userId == "" || targetId == "" {
		return false, errno.RequestErr.WithMessage(TargetName(kind) + " ID or User ID is missing")
	}
	owner, err := s.store.TargetOwner(ctx, kind, targetId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.TargetOwner failed")
	}
	if owner == "" {
		return false, errno.NotFoundErr.WithMessage(TargetName(kind) + " not found")
	}

	existing, err := s.store.GetLike(ctx, userId, kind, targetId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetLike failed")
	}

	liked := existing == nil
	if existing != nil {
		if err := s.store.DeleteLike(ctx, existing.ID); err != nil {
			return false, errors.WithMessage(err, "dao.DeleteLike failed")
		}
	} else {
		err := s.store.CreateLike(ctx, newLike(userId, kind, targetId))
		if err != nil && !database.IsDuplicateKey(err) {
			return false, errors.WithMessage(err, "dao.CreateLike failed")
		}
		if err != nil {
			hlog.CtxInfof(ctx, "%s like by %s on %s already exists", kind, userId, targetId)
			return true, nil
		}
	}

	action := constants.ActionRemoved
	if liked {
		action = constants.ActionAdded
	}
	mq.Publish(ctx, s.producer, mq.NewChannelEvent(eventType, userId, targetId, owner, action))
	return liked, nil
}

func newLike(userId, kind, targetId string) *model.Like {
	like := &model.Like{LikedBy: userId}
	id := targetId
	switch kind {
	case constants.LikeTargetVideo:
		like.VideoId = &id
	case constants.LikeTargetComment:
		like.CommentId = &id
	case constants.LikeTargetTweet:
		like.TweetId = &id
	}
	return like
}

func (s *LikeService) GetLikedVideos(ctx context.Context, userId string) ([]*model.Like, error) {
	if userId == "" {
		return nil, errno.RequestErr.WithMessage("User ID is missing")
	}
	likes, err := s.store.ListLikedVideos(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListLikedVideos failed")
	}
	if len(likes) == 0 {
		return nil, errno.NotFoundErr.WithMessage("No liked videos found")
	}
	return likes, nil
}
