package handler

import (
	"errors"
	"net/http"

	"lariat/internal/model"
	"lariat/internal/service"
	"lariat/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// QRCodeHandler serves the authenticated QR code management API
type QRCodeHandler struct {
	qrcodes   service.QRCodeServiceInterface
	analytics service.AnalyticsServiceInterface
}

// NewQRCodeHandler creates a new QRCodeHandler
func NewQRCodeHandler(qrcodes service.QRCodeServiceInterface, analytics service.AnalyticsServiceInterface) *QRCodeHandler {
	return &QRCodeHandler{
		qrcodes:   qrcodes,
		analytics: analytics,
	}
}

// Create handles POST /api/v1/qrcodes
// @Summary Create a QR code
// @Tags qrcodes
// @Accept json
// @Produce json
// @Param request body model.CreateQRCodeRequest true "Create request"
// @Success 200 {object} Response{data=model.QRCode}
// @Router /api/v1/qrcodes [post]
func (h *QRCodeHandler) Create(c *gin.Context) {
	var req model.CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	qr, err := h.qrcodes.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid destination URL",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create qr code",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: qr})
}

// List handles GET /api/v1/qrcodes
// @Summary List the caller's QR codes
// @Tags qrcodes
// @Produce json
// @Success 200 {object} Response{data=model.QRCodeListResponse}
// @Router /api/v1/qrcodes [get]
func (h *QRCodeHandler) List(c *gin.Context) {
	resp, err := h.qrcodes.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list qr codes",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: resp})
}

// Get handles GET /api/v1/qrcodes/:id
// @Summary Get one QR code
// @Tags qrcodes
// @Produce json
// @Param id path string true "QR code ID"
// @Success 200 {object} Response{data=model.QRCode}
// @Router /api/v1/qrcodes/{id} [get]
func (h *QRCodeHandler) Get(c *gin.Context) {
	qr, err := h.qrcodes.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "QR code not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: qr})
}

// Delete handles DELETE /api/v1/qrcodes/:id
// @Summary Delete a QR code and its scan history
// @Tags qrcodes
// @Produce json
// @Param id path string true "QR code ID"
// @Success 200 {object} Response
// @Router /api/v1/qrcodes/{id} [delete]
func (h *QRCodeHandler) Delete(c *gin.Context) {
	err := h.qrcodes.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "QR code not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete qr code",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

// GetAnalytics handles GET /api/v1/qrcodes/:id/analytics
// @Summary Aggregated scan analytics for a QR code
// @Tags qrcodes
// @Produce json
// @Param id path string true "QR code ID"
// @Param range query string false "Time range: 7d, 30d, 90d or all" default(30d)
// @Success 200 {object} Response{data=model.AnalyticsSummary}
// @Router /api/v1/qrcodes/{id}/analytics [get]
func (h *QRCodeHandler) GetAnalytics(c *gin.Context) {
	rng, err := model.ParseTimeRange(c.DefaultQuery("range", string(model.Range30Days)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	qr, err := h.qrcodes.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "QR code not found",
		})
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context(), model.TargetQRCode, qr.ID, rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to aggregate analytics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: summary})
}
