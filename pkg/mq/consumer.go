package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// limit unacked deliveries
	err = ch.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
	}, nil
}

func (c *Consumer) ConsumeChannelEvents(ctx context.Context, handler ChannelEventHandler) error {
	msgs, err := c.channel.Consume(
		ChannelStatsQueue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("Channel event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("Channel event consumer channel closed")
					return
				}
				handleDelivery(ctx, d, handler)
			}
		}
	}()

	return nil
}

func handleDelivery(ctx context.Context, d amqp091.Delivery, handler ChannelEventHandler) {
	var event ChannelEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		hlog.Errorf("Failed to unmarshal channel event: %v", err)
		d.Nack(false, false) // malformed, drop it
		return
	}

	if err := handler.HandleChannelEvent(ctx, &event); err != nil {
		hlog.Errorf("Failed to handle channel event: %v", err)
		d.Nack(false, true) // requeue
		return
	}

	d.Ack(false)
	hlog.CtxDebugf(ctx, "Successfully processed channel event: %+v", event)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
