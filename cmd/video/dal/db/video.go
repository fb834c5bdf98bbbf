package db

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoQuery filters and orders a page of videos. SortColumn must already be a vetted column name.
type VideoQuery struct {
	Keyword       string
	OwnerId       string
	PublishedOnly bool
	SortColumn    string
	Desc          bool
	Offset        int
	Limit         int
}

type VideoDao struct {
	db *gorm.DB
}

func NewVideoDao(db *gorm.DB) *VideoDao {
	return &VideoDao{db: db}
}

func (d *VideoDao) CreateVideo(ctx context.Context, video *model.Video) error {
	if err := d.db.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrap(err, "create video failed")
	}
	return nil
}

// GetVideoById returns nil when the video does not exist.
func (d *VideoDao) GetVideoById(ctx context.Context, videoId string) (*model.Video, error) {
	var video model.Video
	err := d.db.WithContext(ctx).Where("id = ?", videoId).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get video %s failed", videoId)
	}
	return &video, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (d *VideoDao) filter(ctx context.Context, q *VideoQuery) *gorm.DB {
	tx := d.db.WithContext(ctx).Model(&model.Video{})
	if q.Keyword != "" {
		pattern := "%" + likeEscaper.Replace(q.Keyword) + "%"
		tx = tx.Where("(title LIKE ? OR description LIKE ?)", pattern, pattern)
	}
	if q.OwnerId != "" {
		tx = tx.Where("owner_id = ?", q.OwnerId)
	}
	if q.PublishedOnly {
		tx = tx.Where("is_published = ?", true)
	}
	return tx
}

// ListVideos returns one page matching q and the total number of matches.
func (d *VideoDao) ListVideos(ctx context.Context, q *VideoQuery) ([]*model.Video, int64, error) {
	var total int64
	if err := d.filter(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count videos failed")
	}
	videos := make([]*model.Video, 0, q.Limit)
	err := d.filter(ctx, q).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortColumn}, Desc: q.Desc}).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list videos failed")
	}
	return videos, total, nil
}

func (d *VideoDao) ListVideosByOwner(ctx context.Context, ownerId string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := d.db.WithContext(ctx).Where("owner_id = ?", ownerId).Order("created_at desc").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "list videos of %s failed", ownerId)
	}
	return videos, nil
}

// UpdateVideo writes fields onto the stored video.
func (d *VideoDao) UpdateVideo(ctx context.Context, video *model.Video, fields map[string]interface{}) error {
	if err := d.db.WithContext(ctx).Model(video).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "update video %s failed", video.ID)
	}
	return nil
}

func (d *VideoDao) IncrementViews(ctx context.Context, videoId string) error {
	err := d.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return errors.Wrapf(err, "increment views of %s failed", videoId)
	}
	return nil
}

func (d *VideoDao) DeleteVideo(ctx context.Context, videoId string) error {
	if err := d.db.WithContext(ctx).Where("id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "delete video %s failed", videoId)
	}
	return nil
}
