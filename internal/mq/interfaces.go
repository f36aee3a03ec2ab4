package mq

import (
	"context"
)

// ProducerInterface defines the interface for click message production
type ProducerInterface interface {
	SendClick(ctx context.Context, msg *ClickMessage) error
	Close() error
}

// ConsumerInterface defines the interface for click message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
