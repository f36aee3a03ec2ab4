package model

import (
	"fmt"
	"time"
)

// Link represents one shortened destination owned by a user.
type Link struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ShortCode    string    `json:"short_code" gorm:"type:varchar(6);uniqueIndex;not null"`
	OriginalURL  string    `json:"original_url" gorm:"type:varchar(2048);not null"`
	Title        string    `json:"title,omitempty" gorm:"type:varchar(255)"`
	CustomDomain string    `json:"custom_domain,omitempty" gorm:"type:varchar(255)"`
	QRCodeURL    string    `json:"qr_code_url,omitempty" gorm:"type:varchar(512)"`
	Clicks       int64     `json:"clicks" gorm:"not null;default:0"`
	UniqueClicks int64     `json:"unique_clicks" gorm:"not null;default:0"`
	UserID       string    `json:"user_id" gorm:"type:varchar(36);index;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// ShortURL builds the public short URL for the link. A custom domain, when
// set, takes precedence over the service base URL.
func (l *Link) ShortURL(baseURL string) string {
	if l.CustomDomain != "" {
		return fmt.Sprintf("https://%s/%s", l.CustomDomain, l.ShortCode)
	}
	return fmt.Sprintf("%s/%s", baseURL, l.ShortCode)
}

// CreateLinkRequest represents the request to create a link
type CreateLinkRequest struct {
	OriginalURL  string `json:"original_url" binding:"required,url"`
	Title        string `json:"title"`
	CustomDomain string `json:"custom_domain"`
	EnableQR     bool   `json:"enable_qr"`
}

// UpdateLinkRequest represents a partial update of a link
type UpdateLinkRequest struct {
	Title       *string `json:"title"`
	OriginalURL *string `json:"original_url" binding:"omitempty,url"`
}

// LinkResponse is a link plus its computed short URL
type LinkResponse struct {
	Link
	ShortURL string `json:"short_url"`
}

// Pagination describes a page of a list response
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// LinkListResponse is a page of links
type LinkListResponse struct {
	Links      []LinkResponse `json:"links"`
	Pagination Pagination     `json:"pagination"`
}

// CachedTarget is the compact form of a resolved target kept in Redis.
type CachedTarget struct {
	ID          string `json:"id"`
	OriginalURL string `json:"original_url"`
}
