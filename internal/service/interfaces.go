package service

import (
	"context"
	"time"

	"lariat/internal/model"

	"github.com/redis/go-redis/v9"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	SaveLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id, userID string) (*model.Link, error)
	ListLinks(ctx context.Context, userID string, offset, limit int) ([]model.Link, error)
	CountLinks(ctx context.Context, userID string) (int64, error)
	UpdateLink(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteLink(ctx context.Context, id string) error
	CheckShortCodeExists(ctx context.Context, shortCode string) (bool, error)
	SaveQRCode(ctx context.Context, qr *model.QRCode) error
	GetQRCodeByID(ctx context.Context, id string) (*model.QRCode, error)
	GetUserQRCode(ctx context.Context, id, userID string) (*model.QRCode, error)
	ListQRCodes(ctx context.Context, userID string) ([]model.QRCode, error)
	DeleteQRCode(ctx context.Context, id string) error
	RecordClick(ctx context.Context, ev *model.ClickEvent) error
	GetClickEvents(ctx context.Context, kind model.TargetKind, targetID string, since *time.Time) ([]model.ClickEvent, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	SaveTargetCache(ctx context.Context, kind model.TargetKind, key string, target *model.CachedTarget, ttl time.Duration) error
	GetTargetCache(ctx context.Context, kind model.TargetKind, key string) (*model.CachedTarget, error)
	DeleteTargetCache(ctx context.Context, kind model.TargetKind, key string) error
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, shortCode string) error
	Exists(ctx context.Context, shortCode string) (bool, error)
}

// LinkServiceInterface defines the interface for link management operations
type LinkServiceInterface interface {
	Create(ctx context.Context, userID string, req *model.CreateLinkRequest) (*model.LinkResponse, error)
	List(ctx context.Context, userID string, page, limit int) (*model.LinkListResponse, error)
	Get(ctx context.Context, userID, id string) (*model.LinkResponse, error)
	Update(ctx context.Context, userID, id string, req *model.UpdateLinkRequest) (*model.LinkResponse, error)
	Delete(ctx context.Context, userID, id string) error
	Resolve(ctx context.Context, shortCode string) (*model.CachedTarget, error)
}

// QRCodeServiceInterface defines the interface for QR code management operations
type QRCodeServiceInterface interface {
	Create(ctx context.Context, userID string, req *model.CreateQRCodeRequest) (*model.QRCode, error)
	List(ctx context.Context, userID string) (*model.QRCodeListResponse, error)
	Get(ctx context.Context, userID, id string) (*model.QRCode, error)
	Delete(ctx context.Context, userID, id string) error
	Resolve(ctx context.Context, id string) (*model.CachedTarget, error)
}

// RecorderInterface defines the interface for click recording
type RecorderInterface interface {
	Record(ctx context.Context, kind model.TargetKind, targetID string, meta *model.RequestMeta) error
}

// AnalyticsServiceInterface defines the interface for analytics aggregation
type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, kind model.TargetKind, targetID string, rng model.TimeRange) (*model.AnalyticsSummary, error)
}
