package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentDao struct {
	db *gorm.DB
}

func NewCommentDao(db *gorm.DB) *CommentDao {
	return &CommentDao{db: db}
}

func (d *CommentDao) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := d.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "create comment failed")
	}
	return nil
}

// GetCommentById returns nil when the comment does not exist.
func (d *CommentDao) GetCommentById(ctx context.Context, commentId string) (*model.Comment, error) {
	var comment model.Comment
	err := d.db.WithContext(ctx).Where("id = ?", commentId).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get comment %s failed", commentId)
	}
	return &comment, nil
}

// ListVideoComments returns one page of a video's comments, newest first, and the total count.
func (d *CommentDao) ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error) {
	var total int64
	query := func() *gorm.DB {
		return d.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId)
	}
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "count comments of %s failed", videoId)
	}
	comments := make([]*model.Comment, 0, limit)
	if err := query().Order("created_at desc").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "list comments of %s failed", videoId)
	}
	return comments, total, nil
}

func (d *CommentDao) UpdateCommentContent(ctx context.Context, comment *model.Comment, content string) error {
	if err := d.db.WithContext(ctx).Model(comment).Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "update comment %s failed", comment.ID)
	}
	return nil
}

func (d *CommentDao) DeleteComment(ctx context.Context, commentId string) error {
	if err := d.db.WithContext(ctx).Where("id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "delete comment %s failed", commentId)
	}
	return nil
}

// VideoExists reports whether a video with videoId is stored.
func (d *CommentDao) VideoExists(ctx context.Context, videoId string) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "check video %s failed", videoId)
	}
	return count > 0, nil
}
