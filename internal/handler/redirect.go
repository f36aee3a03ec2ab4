package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lariat/internal/model"
	"lariat/internal/mq"
	"lariat/internal/service"
	"lariat/internal/shortcode"
	"lariat/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// Fallback destinations for the visitor path. Every reachable outcome
	// of a visitor request is a redirect, never a bare error page.
	fallbackNotFound    = "/?error=not-found"
	fallbackServerError = "/?error=server-error"

	// recordTimeout bounds detached click recording
	recordTimeout = 5 * time.Second
)

// RedirectHandler serves the visitor-facing resolve→record→redirect path
type RedirectHandler struct {
	links    service.LinkServiceInterface
	qrcodes  service.QRCodeServiceInterface
	recorder service.RecorderInterface
	producer mq.ProducerInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	links service.LinkServiceInterface,
	qrcodes service.QRCodeServiceInterface,
	recorder service.RecorderInterface,
	producer mq.ProducerInterface,
) *RedirectHandler {
	return &RedirectHandler{
		links:    links,
		qrcodes:  qrcodes,
		recorder: recorder,
		producer: producer,
	}
}

// RedirectLink handles GET /:shortCode
// @Summary Redirect to the link destination
// @Description Resolves a short code, records the visit and redirects
// @Tags redirect
// @Param shortCode path string true "Short code"
// @Success 302
// @Router /{shortCode} [get]
func (h *RedirectHandler) RedirectLink(c *gin.Context) {
	defer h.guardRedirect(c)

	code := c.Param("shortCode")
	if !shortcode.Valid(code) {
		c.Redirect(http.StatusFound, fallbackNotFound)
		return
	}

	target, err := h.links.Resolve(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.Redirect(http.StatusFound, fallbackNotFound)
		} else {
			log.Error().Err(err).Str("short_code", code).Msg("Failed to resolve link")
			c.Redirect(http.StatusFound, fallbackServerError)
		}
		return
	}

	h.dispatchClick(model.TargetLink, target.ID, c)

	// Destination verbatim, query string and fragment included.
	c.Redirect(http.StatusFound, target.OriginalURL)
}

// RedirectQR handles GET /qr/:id
// @Summary Redirect a QR code scan to its destination
// @Description Resolves a QR code, records the scan and redirects
// @Tags redirect
// @Param id path string true "QR code ID"
// @Success 302
// @Router /qr/{id} [get]
func (h *RedirectHandler) RedirectQR(c *gin.Context) {
	defer h.guardRedirect(c)

	id := c.Param("id")

	target, err := h.qrcodes.Resolve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			c.Redirect(http.StatusFound, fallbackNotFound)
		} else {
			log.Error().Err(err).Str("qr_id", id).Msg("Failed to resolve qr code")
			c.Redirect(http.StatusFound, fallbackServerError)
		}
		return
	}

	h.dispatchClick(model.TargetQRCode, target.ID, c)

	c.Redirect(http.StatusFound, target.OriginalURL)
}

// dispatchClick hands the visit off for recording without the response path
// waiting on it. With a producer configured the message takes the MQ route;
// otherwise a detached task records directly.
func (h *RedirectHandler) dispatchClick(kind model.TargetKind, targetID string, c *gin.Context) {
	meta := &model.RequestMeta{
		IPAddress: util.ClientIP(c.Request),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
		VisitedAt: time.Now(),
	}

	if h.producer != nil {
		msg := &mq.ClickMessage{
			TargetKind: kind,
			TargetID:   targetID,
			IPAddress:  meta.IPAddress,
			UserAgent:  meta.UserAgent,
			Referrer:   meta.Referrer,
			AccessTime: meta.VisitedAt,
		}
		go func() {
			defer guardRecording(targetID)
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := h.producer.SendClick(ctx, msg); err != nil {
				log.Error().Err(err).Str("target_id", targetID).Msg("Failed to send click to MQ")
			}
		}()
		return
	}

	go func() {
		defer guardRecording(targetID)
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		// Errors are logged inside the recorder; a lost click must not
		// propagate anywhere.
		_ = h.recorder.Record(ctx, kind, targetID, meta)
	}()
}

// guardRedirect converts any panic on the visitor path into the fallback
// redirect
func (h *RedirectHandler) guardRedirect(c *gin.Context) {
	if rec := recover(); rec != nil {
		log.Error().Interface("panic", rec).Str("path", c.Request.URL.Path).Msg("Redirect handler panicked")
		if !c.Writer.Written() {
			c.Redirect(http.StatusFound, fallbackServerError)
		}
	}
}

func guardRecording(targetID string) {
	if rec := recover(); rec != nil {
		log.Error().Interface("panic", rec).Str("target_id", targetID).Msg("Click recording panicked")
	}
}
