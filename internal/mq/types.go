package mq

import (
	"time"

	"lariat/internal/model"
)

// ClickMessage carries one visit's metadata through RocketMQ from the
// redirect path to the recording consumer.
type ClickMessage struct {
	TargetKind model.TargetKind `json:"target_kind"`
	TargetID   string           `json:"target_id"`
	IPAddress  string           `json:"ip_address"`
	UserAgent  string           `json:"user_agent"`
	Referrer   string           `json:"referrer"`
	AccessTime time.Time        `json:"access_time"`
}
