package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"lariat/internal/model"
	"lariat/internal/repository"
	"lariat/internal/shortcode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidURL is returned when the destination URL is malformed
	ErrInvalidURL = errors.New("invalid destination URL")
	// ErrLinkNotFound is returned when no link matches the identifier
	ErrLinkNotFound = errors.New("link not found")
	// ErrAllocationExhausted is returned when no free short code was found
	// within the attempt budget
	ErrAllocationExhausted = errors.New("short code allocation exhausted")
)

// LinkService handles link management and short code allocation
type LinkService struct {
	repo    MySQLRepositoryInterface
	cache   RedisRepositoryInterface
	bloom   BloomServiceInterface
	baseURL string
}

// NewLinkService creates a new Link Service
func NewLinkService(
	repo MySQLRepositoryInterface,
	cache RedisRepositoryInterface,
	bloom BloomServiceInterface,
	baseURL string,
) *LinkService {
	return &LinkService{
		repo:    repo,
		cache:   cache,
		bloom:   bloom,
		baseURL: baseURL,
	}
}

// Create validates the destination, allocates a unique short code and stores
// the link. Creation never silently produces a duplicate code: the store's
// unique index is the final authority and a duplicate insert is consumed as
// one more allocation attempt.
func (s *LinkService) Create(ctx context.Context, userID string, req *model.CreateLinkRequest) (*model.LinkResponse, error) {
	if !validDestination(req.OriginalURL) {
		return nil, ErrInvalidURL
	}

	var link *model.Link
	for attempt := 0; attempt < shortcode.MaxAttempts; attempt++ {
		code, free, err := s.candidate(ctx)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}

		link = &model.Link{
			ID:           uuid.NewString(),
			ShortCode:    code,
			OriginalURL:  req.OriginalURL,
			Title:        req.Title,
			CustomDomain: req.CustomDomain,
			UserID:       userID,
		}
		if req.EnableQR {
			link.QRCodeURL = qrImageURL(link.ShortURL(s.baseURL), 200)
		}

		err = s.repo.SaveLink(ctx, link)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race for this code; burn the attempt and retry.
			link = nil
			continue
		}
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	if link == nil {
		return nil, ErrAllocationExhausted
	}

	if err := s.bloom.Add(ctx, link.ShortCode); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to add to Bloom Filter")
	}

	return s.buildResponse(link), nil
}

// candidate generates one short code and runs the advisory existence checks
func (s *LinkService) candidate(ctx context.Context) (string, bool, error) {
	code := shortcode.Generate()

	maybe, err := s.bloom.Exists(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("short_code", code).Msg("Bloom Filter check failed")
	} else if !maybe {
		// Negative Bloom answers are authoritative.
		return code, true, nil
	}

	taken, err := s.repo.CheckShortCodeExists(ctx, code)
	if err != nil {
		return "", false, fmt.Errorf("failed to check short code: %w", err)
	}
	return code, !taken, nil
}

// List returns a page of the user's links, newest first
func (s *LinkService) List(ctx context.Context, userID string, page, limit int) (*model.LinkListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	links, err := s.repo.ListLinks(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	total, err := s.repo.CountLinks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}

	resp := &model.LinkListResponse{
		Links: make([]model.LinkResponse, 0, len(links)),
		Pagination: model.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + int64(limit) - 1) / int64(limit),
		},
	}
	for i := range links {
		resp.Links = append(resp.Links, *s.buildResponse(&links[i]))
	}
	return resp, nil
}

// Get returns one of the user's links
func (s *LinkService) Get(ctx context.Context, userID, id string) (*model.LinkResponse, error) {
	link, err := s.repo.GetLinkByID(ctx, id, userID)
	if err != nil {
		return nil, ErrLinkNotFound
	}
	return s.buildResponse(link), nil
}

// Update applies a partial update and invalidates the resolve cache
func (s *LinkService) Update(ctx context.Context, userID, id string, req *model.UpdateLinkRequest) (*model.LinkResponse, error) {
	link, err := s.repo.GetLinkByID(ctx, id, userID)
	if err != nil {
		return nil, ErrLinkNotFound
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
		link.Title = *req.Title
	}
	if req.OriginalURL != nil {
		if !validDestination(*req.OriginalURL) {
			return nil, ErrInvalidURL
		}
		updates["original_url"] = *req.OriginalURL
		link.OriginalURL = *req.OriginalURL
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateLink(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update link: %w", err)
		}
		if err := s.cache.DeleteTargetCache(ctx, model.TargetLink, link.ShortCode); err != nil {
			log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to invalidate link cache")
		}
	}

	return s.buildResponse(link), nil
}

// Delete removes a link, its click events and its cache entry
func (s *LinkService) Delete(ctx context.Context, userID, id string) error {
	link, err := s.repo.GetLinkByID(ctx, id, userID)
	if err != nil {
		return ErrLinkNotFound
	}

	if err := s.repo.DeleteLink(ctx, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if err := s.cache.DeleteTargetCache(ctx, model.TargetLink, link.ShortCode); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to invalidate link cache")
	}
	return nil
}

// Resolve looks up the redirect target for a short code, cache first
func (s *LinkService) Resolve(ctx context.Context, shortCode string) (*model.CachedTarget, error) {
	if target, err := s.cache.GetTargetCache(ctx, model.TargetLink, shortCode); err == nil {
		return target, nil
	}

	link, err := s.repo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to resolve short code: %w", err)
	}

	target := &model.CachedTarget{ID: link.ID, OriginalURL: link.OriginalURL}
	if err := s.cache.SaveTargetCache(ctx, model.TargetLink, shortCode, target, repository.TargetCacheTTL); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to cache resolved link")
	}
	return target, nil
}

func (s *LinkService) buildResponse(link *model.Link) *model.LinkResponse {
	return &model.LinkResponse{
		Link:     *link,
		ShortURL: link.ShortURL(s.baseURL),
	}
}

// validDestination accepts absolute http(s) URLs only
func validDestination(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
