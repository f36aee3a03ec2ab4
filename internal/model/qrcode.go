package model

import (
	"time"
)

// QRCode represents a standalone QR code target. It is scanned via its own
// identifier rather than a generated short code.
type QRCode struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	URL          string    `json:"url" gorm:"type:varchar(2048);not null"`
	Title        string    `json:"title,omitempty" gorm:"type:varchar(255)"`
	QRCodeURL    string    `json:"qr_code_url" gorm:"type:varchar(512);not null"`
	Clicks       int64     `json:"clicks" gorm:"not null;default:0"`
	UniqueClicks int64     `json:"unique_clicks" gorm:"not null;default:0"`
	UserID       string    `json:"user_id" gorm:"type:varchar(36);index;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for QRCode
func (QRCode) TableName() string {
	return "qr_codes"
}

// CreateQRCodeRequest represents the request to create a QR code
type CreateQRCodeRequest struct {
	URL   string `json:"url" binding:"required,url"`
	Title string `json:"title"`
}

// QRCodeListResponse is the list of a user's QR codes
type QRCodeListResponse struct {
	QRCodes []QRCode `json:"qr_codes"`
}
