package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LikeDao struct {
	db *gorm.DB
}

func NewLikeDao(db *gorm.DB) *LikeDao {
	return &LikeDao{db: db}
}

func targetColumn(kind string) (string, error) {
	switch kind {
	case constants.LikeTargetVideo:
		return "video_id", nil
	case constants.LikeTargetComment:
		return "comment_id", nil
	case constants.LikeTargetTweet:
		return "tweet_id", nil
	}
	return "", errors.Errorf("unknown like target %q", kind)
}

// GetLike returns nil when userId has not liked the target.
func (d *LikeDao) GetLike(ctx context.Context, userId, kind, targetId string) (*model.Like, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return nil, err
	}
	var like model.Like
	err = d.db.WithContext(ctx).Where("liked_by = ? AND "+column+" = ?", userId, targetId).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s like failed", kind)
	}
	return &like, nil
}

func (d *LikeDao) CreateLike(ctx context.Context, like *model.Like) error {
	if err := d.db.WithContext(ctx).Create(like).Error; err != nil {
		return errors.Wrap(err, "create like failed")
	}
	return nil
}

func (d *LikeDao) DeleteLike(ctx context.Context, likeId string) error {
	if err := d.db.WithContext(ctx).Where("id = ?", likeId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "delete like %s failed", likeId)
	}
	return nil
}

// ListLikedVideos returns the user's video likes with the video loaded.
func (d *LikeDao) ListLikedVideos(ctx context.Context, userId string) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	err := d.db.WithContext(ctx).
		Preload("Video").
		Where("liked_by = ? AND video_id IS NOT NULL", userId).
		Order("created_at desc").
		Find(&likes).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list liked videos of %s failed", userId)
	}
	return likes, nil
}

// CountVideoLikes counts likes on any of videoIds.
func (d *LikeDao) CountVideoLikes(ctx context.Context, videoIds []string) (int64, error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.Like{}).Where("video_id IN ?", videoIds).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count video likes failed")
	}
	return count, nil
}

// TargetOwner returns the owner of the liked record, or "" when it does not exist.
func (d *LikeDao) TargetOwner(ctx context.Context, kind, targetId string) (string, error) {
	var record interface{}
	switch kind {
	case constants.LikeTargetVideo:
		record = &model.Video{}
	case constants.LikeTargetComment:
		record = &model.Comment{}
	case constants.LikeTargetTweet:
		record = &model.Tweet{}
	default:
		return "", errors.Errorf("unknown like target %q", kind)
	}
	owners := make([]string, 0, 1)
	if err := d.db.WithContext(ctx).Model(record).Where("id = ?", targetId).Limit(1).Pluck("owner_id", &owners).Error; err != nil {
		return "", errors.Wrapf(err, "get %s %s owner failed", kind, targetId)
	}
	if len(owners) == 0 {
		return "", nil
	}
	return owners[0], nil
}
