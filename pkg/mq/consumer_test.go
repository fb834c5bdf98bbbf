package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcker struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcker) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcker) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcker) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

type handlerFunc func(ctx context.Context, event *ChannelEvent) error

func (f handlerFunc) HandleChannelEvent(ctx context.Context, event *ChannelEvent) error {
	return f(ctx, event)
}

func TestHandleDelivery(t *testing.T) {
	body, err := json.Marshal(&ChannelEvent{EventID: "e1", EventType: "video_like", ChannelID: "c1", Action: "added"})
	require.NoError(t, err)

	t.Run("ack on success", func(t *testing.T) {
		acker := &fakeAcker{}
		var got *ChannelEvent
		handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: body}, handlerFunc(func(_ context.Context, e *ChannelEvent) error {
			got = e
			return nil
		}))
		assert.True(t, acker.acked)
		require.NotNil(t, got)
		assert.Equal(t, "c1", got.ChannelID)
		assert.Equal(t, "added", got.Action)
	})

	t.Run("requeue on handler error", func(t *testing.T) {
		acker := &fakeAcker{}
		handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: body}, handlerFunc(func(context.Context, *ChannelEvent) error {
			return errors.New("redis down")
		}))
		assert.False(t, acker.acked)
		assert.True(t, acker.nacked)
		assert.True(t, acker.requeue)
	})

	t.Run("drop malformed body", func(t *testing.T) {
		acker := &fakeAcker{}
		called := false
		handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: []byte("{")}, handlerFunc(func(context.Context, *ChannelEvent) error {
			called = true
			return nil
		}))
		assert.False(t, called)
		assert.True(t, acker.nacked)
		assert.False(t, acker.requeue)
	})
}

func TestChannelEventJSON(t *testing.T) {
	body, err := json.Marshal(&ChannelEvent{EventID: "e1", EventType: "subscription", ActorID: "u1", TargetID: "c1", ChannelID: "c1", Action: "removed", Timestamp: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event_id":"e1","event_type":"subscription","actor_id":"u1","target_id":"c1","channel_id":"c1","action":"removed","timestamp":42}`, string(body))

	assert.NoError(t, NopProducer{}.PublishChannelEvent(context.Background(), &ChannelEvent{}))
}

type recordingProducer struct {
	events []*ChannelEvent
	err    error
}

func (p *recordingProducer) PublishChannelEvent(_ context.Context, e *ChannelEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps id and time", func(t *testing.T) {
		p := &recordingProducer{}
		Publish(ctx, p, NewChannelEvent("video_like", "u1", "v1", "c1", "added"))
		require.Len(t, p.events, 1)
		assert.NotEmpty(t, p.events[0].EventID)
		assert.NotZero(t, p.events[0].Timestamp)
	})

	t.Run("skips events without channel", func(t *testing.T) {
		p := &recordingProducer{}
		Publish(ctx, p, NewChannelEvent("video_like", "u1", "v1", "", "added"))
		assert.Empty(t, p.events)
	})

	t.Run("swallows publish errors", func(t *testing.T) {
		p := &recordingProducer{err: errors.New("closed")}
		assert.NotPanics(t, func() {
			Publish(ctx, p, NewChannelEvent("subscription", "u1", "c1", "c1", "removed"))
		})
		Publish(ctx, nil, NewChannelEvent("subscription", "u1", "c1", "c1", "removed"))
	})
}
