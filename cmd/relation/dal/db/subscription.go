package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubscriptionDao struct {
	db *gorm.DB
}

func NewSubscriptionDao(db *gorm.DB) *SubscriptionDao {
	return &SubscriptionDao{db: db}
}

// Only the public profile fields are loaded into subscriber/channel.
func publicUserFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "fullname", "username", "avatar", "email")
}

// GetSubscription returns nil when subscriberId does not follow channelId.
func (d *SubscriptionDao) GetSubscription(ctx context.Context, subscriberId, channelId string) (*model.Subscription, error) {
	var sub model.Subscription
	err := d.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get subscription failed")
	}
	return &sub, nil
}

func (d *SubscriptionDao) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := d.db.WithContext(ctx).Create(sub).Error; err != nil {
		return errors.Wrap(err, "create subscription failed")
	}
	return nil
}

func (d *SubscriptionDao) DeleteSubscription(ctx context.Context, subscriptionId string) error {
	if err := d.db.WithContext(ctx).Where("id = ?", subscriptionId).Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "delete subscription %s failed", subscriptionId)
	}
	return nil
}

func (d *SubscriptionDao) ListSubscribers(ctx context.Context, channelId string) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	err := d.db.WithContext(ctx).
		Preload("Subscriber", publicUserFields).
		Where("channel_id = ?", channelId).
		Order("created_at desc").
		Find(&subs).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list subscribers of %s failed", channelId)
	}
	return subs, nil
}

func (d *SubscriptionDao) ListSubscribedChannels(ctx context.Context, subscriberId string) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	err := d.db.WithContext(ctx).
		Preload("Channel", publicUserFields).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at desc").
		Find(&subs).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list channels of %s failed", subscriberId)
	}
	return subs, nil
}

func (d *SubscriptionDao) CountSubscribers(ctx context.Context, channelId string) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "count subscribers of %s failed", channelId)
	}
	return count, nil
}

func (d *SubscriptionDao) UserExists(ctx context.Context, userId string) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "check user %s failed", userId)
	}
	return count > 0, nil
}
