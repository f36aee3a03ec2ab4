package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lariat/internal/model"
	"lariat/internal/service"
	"lariat/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// LinkHandler serves the authenticated link management API
type LinkHandler struct {
	links     service.LinkServiceInterface
	analytics service.AnalyticsServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(links service.LinkServiceInterface, analytics service.AnalyticsServiceInterface) *LinkHandler {
	return &LinkHandler{
		links:     links,
		analytics: analytics,
	}
}

// Create handles POST /api/v1/links
// @Summary Create a shortened link
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} Response{data=model.LinkResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.links.Create(c.Request.Context(), middleware.UserID(c), &req)
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
			Message: "Failed to create link: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: resp})
}

// List handles GET /api/v1/links
// @Summary List the caller's links
// @Tags links
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} Response{data=model.LinkListResponse}
// @Router /api/v1/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.links.List(c.Request.Context(), middleware.UserID(c), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list links",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: resp})
}

// Get handles GET /api/v1/links/:id
// @Summary Get one link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} Response{data=model.LinkResponse}
// @Router /api/v1/links/{id} [get]
func (h *LinkHandler) Get(c *gin.Context) {
	resp, err := h.links.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Link not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: resp})
}

// Update handles PUT /api/v1/links/:id
// @Summary Update a link's title or destination
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body model.UpdateLinkRequest true "Update request"
// @Success 200 {object} Response{data=model.LinkResponse}
// @Router /api/v1/links/{id} [put]
func (h *LinkHandler) Update(c *gin.Context) {
	var req model.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	resp, err := h.links.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
		case errors.Is(err, service.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid destination URL",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to update link",
			})
		}
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: resp})
}

// Delete handles DELETE /api/v1/links/:id
// @Summary Delete a link and its click history
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} Response
// @Router /api/v1/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	err := h.links.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete link",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

// GetAnalytics handles GET /api/v1/links/:id/analytics
// @Summary Aggregated click analytics for a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Param range query string false "Time range: 7d, 30d, 90d or all" default(30d)
// @Success 200 {object} Response{data=model.AnalyticsSummary}
// @Router /api/v1/links/{id}/analytics [get]
func (h *LinkHandler) GetAnalytics(c *gin.Context) {
	rng, err := model.ParseTimeRange(c.DefaultQuery("range", string(model.Range30Days)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	// Ownership check before touching the event history.
	link, err := h.links.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Link not found",
		})
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context(), model.TargetLink, link.ID, rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to aggregate analytics",
		})
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: summary})
}
