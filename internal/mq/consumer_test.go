package mq

import (
	"context"
	"testing"
	"time"

	"lariat/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	c := &Consumer{
		started: true,
	}

	err := c.Subscribe()
	assert.NoError(t, err)
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestClickHandler(t *testing.T) {
	t.Run("handler processes message", func(t *testing.T) {
		processed := false
		handler := ClickHandler(func(ctx context.Context, msg *ClickMessage) error {
			processed = true
			assert.Equal(t, model.TargetLink, msg.TargetKind)
			assert.Equal(t, "l-1", msg.TargetID)
			return nil
		})

		msg := &ClickMessage{
			TargetKind: model.TargetLink,
			TargetID:   "l-1",
			IPAddress:  "203.0.113.1",
			UserAgent:  "test-agent",
			AccessTime: time.Now(),
		}

		err := handler(context.Background(), msg)
		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler returns error", func(t *testing.T) {
		handler := ClickHandler(func(ctx context.Context, msg *ClickMessage) error {
			return assert.AnError
		})

		err := handler(context.Background(), &ClickMessage{TargetID: "l-1"})
		assert.Error(t, err)
	})
}

func TestConsumer_Structure(t *testing.T) {
	c := &Consumer{
		topic:   "click_events",
		group:   "lariat_click_consumer_group",
		handler: func(ctx context.Context, msg *ClickMessage) error { return nil },
	}

	assert.Equal(t, "click_events", c.topic)
	assert.Equal(t, "lariat_click_consumer_group", c.group)
	assert.NotNil(t, c.handler)
}
