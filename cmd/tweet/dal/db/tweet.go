package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TweetDao struct {
	db *gorm.DB
}

func NewTweetDao(db *gorm.DB) *TweetDao {
	return &TweetDao{db: db}
}

func (d *TweetDao) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := d.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrap(err, "create tweet failed")
	}
	return nil
}

// GetTweetById returns nil when the tweet does not exist.
func (d *TweetDao) GetTweetById(ctx context.Context, tweetId string) (*model.Tweet, error) {
	var tweet model.Tweet
	err := d.db.WithContext(ctx).Where("id = ?", tweetId).First(&tweet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get tweet %s failed", tweetId)
	}
	return &tweet, nil
}

func (d *TweetDao) ListTweetsByOwner(ctx context.Context, ownerId string) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := d.db.WithContext(ctx).Where("owner_id = ?", ownerId).Order("created_at desc").Find(&tweets).Error; err != nil {
		return nil, errors.Wrapf(err, "list tweets of %s failed", ownerId)
	}
	return tweets, nil
}

func (d *TweetDao) UpdateTweetContent(ctx context.Context, tweet *model.Tweet, content string) error {
	if err := d.db.WithContext(ctx).Model(tweet).Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "update tweet %s failed", tweet.ID)
	}
	return nil
}

func (d *TweetDao) DeleteTweet(ctx context.Context, tweetId string) error {
	if err := d.db.WithContext(ctx).Where("id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "delete tweet %s failed", tweetId)
	}
	return nil
}
