package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"lariat/internal/model"
	"lariat/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrQRCodeNotFound is returned when no QR code matches the identifier
var ErrQRCodeNotFound = errors.New("qr code not found")

// qrImageEndpoint is the external rendering service QR image URLs point at
const qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// QRCodeService handles standalone QR code management
type QRCodeService struct {
	repo  MySQLRepositoryInterface
	cache RedisRepositoryInterface
}

// NewQRCodeService creates a new QRCode Service
func NewQRCodeService(repo MySQLRepositoryInterface, cache RedisRepositoryInterface) *QRCodeService {
	return &QRCodeService{
		repo:  repo,
		cache: cache,
	}
}

// Create validates the destination and stores a QR code pointing at the
// external image renderer.
func (s *QRCodeService) Create(ctx context.Context, userID string, req *model.CreateQRCodeRequest) (*model.QRCode, error) {
	if !validDestination(req.URL) {
		return nil, ErrInvalidURL
	}

	qr := &model.QRCode{
		ID:        uuid.NewString(),
		URL:       req.URL,
		Title:     req.Title,
		QRCodeURL: qrImageURL(req.URL, 300),
		UserID:    userID,
	}

	if err := s.repo.SaveQRCode(ctx, qr); err != nil {
		return nil, fmt.Errorf("failed to save qr code: %w", err)
	}
	return qr, nil
}

// List returns all of the user's QR codes, newest first
func (s *QRCodeService) List(ctx context.Context, userID string) (*model.QRCodeListResponse, error) {
	qrs, err := s.repo.ListQRCodes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list qr codes: %w", err)
	}
	if qrs == nil {
		qrs = []model.QRCode{}
	}
	return &model.QRCodeListResponse{QRCodes: qrs}, nil
}

// Get returns one of the user's QR codes
func (s *QRCodeService) Get(ctx context.Context, userID, id string) (*model.QRCode, error) {
	qr, err := s.repo.GetUserQRCode(ctx, id, userID)
	if err != nil {
		return nil, ErrQRCodeNotFound
	}
	return qr, nil
}

// Delete removes a QR code, its click events and its cache entry
func (s *QRCodeService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.GetUserQRCode(ctx, id, userID); err != nil {
		return ErrQRCodeNotFound
	}

	if err := s.repo.DeleteQRCode(ctx, id); err != nil {
		return fmt.Errorf("failed to delete qr code: %w", err)
	}

	if err := s.cache.DeleteTargetCache(ctx, model.TargetQRCode, id); err != nil {
		log.Warn().Err(err).Str("qr_id", id).Msg("Failed to invalidate qr cache")
	}
	return nil
}

// Resolve looks up the scan target for a QR code identifier, cache first
func (s *QRCodeService) Resolve(ctx context.Context, id string) (*model.CachedTarget, error) {
	if target, err := s.cache.GetTargetCache(ctx, model.TargetQRCode, id); err == nil {
		return target, nil
	}

	qr, err := s.repo.GetQRCodeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve qr code: %w", err)
	}

	target := &model.CachedTarget{ID: qr.ID, OriginalURL: qr.URL}
	if err := s.cache.SaveTargetCache(ctx, model.TargetQRCode, id, target, repository.TargetCacheTTL); err != nil {
		log.Warn().Err(err).Str("qr_id", id).Msg("Failed to cache resolved qr code")
	}
	return target, nil
}

// qrImageURL builds the external image reference for a destination
func qrImageURL(data string, size int) string {
	return fmt.Sprintf("%s?size=%dx%d&data=%s", qrImageEndpoint, size, size, url.QueryEscape(data))
}
