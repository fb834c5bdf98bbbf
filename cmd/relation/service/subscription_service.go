package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type SubscriptionStore interface {
	GetSubscription(ctx context.Context, subscriberId, channelId string) (*model.Subscription, error)
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriptionId string) error
	ListSubscribers(ctx context.Context, channelId string) ([]*model.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberId string) ([]*model.Subscription, error)
	UserExists(ctx context.Context, userId string) (bool, error)
}

type SubscriptionService struct {
	store    SubscriptionStore
	producer mq.MessageProducer
}

func NewSubscriptionService(store SubscriptionStore, producer mq.MessageProducer) *SubscriptionService {
	return &SubscriptionService{store: store, producer: producer}
}

// ToggleSubscription flips whether subscriberId follows channelId and reports the new state.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberId, channelId string) (bool, error) {
	if subscriberId == "" || channelId == "" {
		return false, errno.RequestErr.WithMessage("Channel ID or Subscriber ID is missing")
	}
	if subscriberId == channelId {
		return false, errno.RequestErr.WithMessage("You cannot subscribe to your own channel")
	}
	exists, err := s.store.UserExists(ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.UserExists failed")
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("Channel not found")
	}

	existing, err := s.store.GetSubscription(ctx, subscriberId, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetSubscription failed")
	}

	subscribed := existing == nil
	if existing != nil {
		if err := s.store.DeleteSubscription(ctx, existing.ID); err != nil {
			return false, errors.WithMessage(err, "dao.DeleteSubscription failed")
		}
	} else {
		err := s.store.CreateSubscription(ctx, &model.Subscription{SubscriberId: subscriberId, ChannelId: channelId})
		if err != nil && !database.IsDuplicateKey(err) {
			return false, errors.WithMessage(err, "dao.CreateSubscription failed")
		}
		if err != nil {
			// a concurrent identical request won the insert
			hlog.CtxInfof(ctx, "subscription %s -> %s already exists", subscriberId, channelId)
			return true, nil
		}
	}

	action := constants.ActionRemoved
	if subscribed {
		action = constants.ActionAdded
	}
	mq.Publish(ctx, s.producer, mq.NewChannelEvent(constants.EventSubscription, subscriberId, channelId, channelId, action))
	return subscribed, nil
}

func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelId string) ([]*model.Subscription, error) {
	if channelId == "" {
		return nil, errno.RequestErr.WithMessage("Channel ID is required")
	}
	subs, err := s.store.ListSubscribers(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscribers failed")
	}
	return subs, nil
}

func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberId string) ([]*model.Subscription, error) {
	if subscriberId == "" {
		return nil, errno.RequestErr.WithMessage("Subscriber ID is required")
	}
	subs, err := s.store.ListSubscribedChannels(ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscribedChannels failed")
	}
	return subs, nil
}
