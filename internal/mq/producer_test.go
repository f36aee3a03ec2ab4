package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lariat/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProducer_SendClick_NilProducer(t *testing.T) {
	var p *Producer
	msg := &ClickMessage{
		TargetKind: model.TargetLink,
		TargetID:   "l-1",
		IPAddress:  "203.0.113.1",
		UserAgent:  "test-agent",
		Referrer:   "https://example.com",
		AccessTime: time.Now(),
	}

	err := p.SendClick(context.Background(), msg)
	assert.NoError(t, err)
}

func TestProducer_Close(t *testing.T) {
	t.Run("nil producer close returns nil", func(t *testing.T) {
		var p *Producer
		err := p.Close()
		assert.NoError(t, err)
	})

	t.Run("producer with nil client close returns nil", func(t *testing.T) {
		p := &Producer{}
		err := p.Close()
		assert.NoError(t, err)
	})
}

func TestClickMessage(t *testing.T) {
	t.Run("marshal and unmarshal", func(t *testing.T) {
		now := time.Now()
		msg := &ClickMessage{
			TargetKind: model.TargetQRCode,
			TargetID:   "q-1",
			IPAddress:  "203.0.113.1",
			UserAgent:  "test-agent",
			Referrer:   "https://example.com",
			AccessTime: now,
		}

		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		var unmarshaled ClickMessage
		err = json.Unmarshal(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, msg.TargetKind, unmarshaled.TargetKind)
		assert.Equal(t, msg.TargetID, unmarshaled.TargetID)
		assert.Equal(t, msg.IPAddress, unmarshaled.IPAddress)
		assert.Equal(t, msg.UserAgent, unmarshaled.UserAgent)
		assert.Equal(t, msg.Referrer, unmarshaled.Referrer)
	})

	t.Run("empty message", func(t *testing.T) {
		msg := &ClickMessage{}
		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
