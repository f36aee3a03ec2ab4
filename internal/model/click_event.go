package model

import (
	"time"
)

// TargetKind discriminates which entity a click event belongs to.
type TargetKind string

const (
	// TargetLink marks events recorded against a shortened link
	TargetLink TargetKind = "link"
	// TargetQRCode marks events recorded against a QR code
	TargetQRCode TargetKind = "qr"
)

// ClickEvent is one recorded visit against a target. Events are append-only:
// they are never updated and are removed only when their target is deleted.
type ClickEvent struct {
	ID         string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	TargetKind TargetKind `json:"target_kind" gorm:"type:varchar(8);index:idx_click_events_target,priority:1;not null"`
	TargetID   string     `json:"target_id" gorm:"type:varchar(36);index:idx_click_events_target,priority:2;not null"`
	Timestamp  time.Time  `json:"timestamp" gorm:"index;not null"`
	IPAddress  string     `json:"ip_address" gorm:"type:varchar(64);not null"`
	UserAgent  string     `json:"user_agent" gorm:"type:varchar(512)"`
	Device     string     `json:"device" gorm:"type:varchar(32)"`
	Browser    string     `json:"browser" gorm:"type:varchar(32)"`
	OS         string     `json:"os" gorm:"type:varchar(32)"`
	Referrer   string     `json:"referrer,omitempty" gorm:"type:varchar(512)"`
	Country    string     `json:"country,omitempty" gorm:"type:varchar(64)"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// RequestMeta carries the visit metadata extracted from request headers by
// the transport layer.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
	// VisitedAt is when the visit hit the redirect path. Zero means the
	// recorder stamps its own clock; the MQ route sets it so retried
	// deliveries keep the original visit time.
	VisitedAt time.Time
}
