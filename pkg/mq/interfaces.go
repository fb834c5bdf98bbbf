package mq

import "context"

// MessageProducer 消息生产者接口
type MessageProducer interface {
	PublishChannelEvent(ctx context.Context, event *ChannelEvent) error
}

type ChannelEventHandler interface {
	HandleChannelEvent(ctx context.Context, event *ChannelEvent) error
}

// NopProducer drops every event. Used when rabbitmq is not configured.
type NopProducer struct{}

func (NopProducer) PublishChannelEvent(context.Context, *ChannelEvent) error { return nil }

var (
	_ MessageProducer = (*Producer)(nil)
	_ MessageProducer = NopProducer{}
)
