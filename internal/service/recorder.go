package service

import (
	"context"
	"fmt"
	"time"

	"lariat/internal/model"
	"lariat/internal/ua"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GeoResolver enriches a click event with a country derived from the visitor
// address. No resolver ships with the service; the field stays empty unless
// one is plugged in.
type GeoResolver interface {
	Country(ip string) string
}

// ClickRecorder persists one click event per visit and keeps the target's
// aggregate counters in step. Recording is best-effort: callers on the
// redirect path dispatch it without waiting and a failure loses exactly one
// click, never the redirect.
type ClickRecorder struct {
	repo MySQLRepositoryInterface
	geo  GeoResolver
}

// NewClickRecorder creates a new Click Recorder
func NewClickRecorder(repo MySQLRepositoryInterface) *ClickRecorder {
	return &ClickRecorder{repo: repo}
}

// WithGeoResolver attaches an optional country enrichment hook
func (r *ClickRecorder) WithGeoResolver(geo GeoResolver) *ClickRecorder {
	r.geo = geo
	return r
}

// Record classifies the visit metadata, appends a click event and updates the
// target's counters. The returned error is for logging only; it never reaches
// a visitor.
func (r *ClickRecorder) Record(ctx context.Context, kind model.TargetKind, targetID string, meta *model.RequestMeta) error {
	info := ua.Classify(meta.UserAgent)

	visitedAt := meta.VisitedAt
	if visitedAt.IsZero() {
		visitedAt = time.Now()
	}

	ev := &model.ClickEvent{
		ID:         uuid.NewString(),
		TargetKind: kind,
		TargetID:   targetID,
		Timestamp:  visitedAt,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Device:     info.Device,
		Browser:    info.Browser,
		OS:         info.OS,
		Referrer:   meta.Referrer,
	}
	if r.geo != nil {
		ev.Country = r.geo.Country(meta.IPAddress)
	}

	if err := r.repo.RecordClick(ctx, ev); err != nil {
		log.Error().Err(err).
			Str("target_kind", string(kind)).
			Str("target_id", targetID).
			Msg("Failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}
