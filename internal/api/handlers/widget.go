package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const maxSettingsPatchSize = 64 << 10

// WidgetHandler handles HTTP requests for widgets
type WidgetHandler struct {
	service service.WidgetServiceInterface
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(service service.WidgetServiceInterface) *WidgetHandler {
	return &WidgetHandler{service: service}
}

// CreateWidget handles POST /api/v1/organizations/:id/widgets
// @Summary Create a widget
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param widget body service.CreateWidgetRequest true "Widget data"
// @Success 201 {object} service.WidgetResponse
// @Failure 400 {object} ErrorResponse "Invalid settings or origins"
// @Security BearerAuth
// @Router /organizations/{id}/widgets [post]
func (h *WidgetHandler) CreateWidget(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.CreateWidgetRequest
	if !bindJSON(c, &req) {
		return
	}

	widget, err := h.service.Create(actorFrom(c), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create widget")
		return
	}

	c.JSON(http.StatusCreated, widget)
}

// ListWidgets handles GET /api/v1/organizations/:id/widgets
// @Summary List widgets
// @Tags widgets
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.WidgetListResponse
// @Security BearerAuth
// @Router /organizations/{id}/widgets [get]
func (h *WidgetHandler) ListWidgets(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.List(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list widgets")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWidget handles GET /api/v1/organizations/:id/widgets/:widgetId
// @Summary Get a widget
// @Tags widgets
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param widgetId path string true "Widget ID (UUID)"
// @Success 200 {object} service.WidgetResponse
// @Failure 404 {object} ErrorResponse "Widget not found"
// @Security BearerAuth
// @Router /organizations/{id}/widgets/{widgetId} [get]
func (h *WidgetHandler) GetWidget(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "widgetId", "widget")
	if !ok {
		return
	}

	widget, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get widget")
		return
	}

	c.JSON(http.StatusOK, widget)
}

// UpdateWidget handles PUT /api/v1/organizations/:id/widgets/:widgetId
// @Summary Update a widget
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param widgetId path string true "Widget ID (UUID)"
// @Param widget body service.UpdateWidgetRequest true "Fields to update"
// @Success 200 {object} service.WidgetResponse
// @Security BearerAuth
// @Router /organizations/{id}/widgets/{widgetId} [put]
func (h *WidgetHandler) UpdateWidget(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "widgetId", "widget")
	if !ok {
		return
	}
	var req service.UpdateWidgetRequest
	if !bindJSON(c, &req) {
		return
	}

	widget, err := h.service.Update(actorFrom(c), orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update widget")
		return
	}

	c.JSON(http.StatusOK, widget)
}

// PatchSettings handles PATCH /api/v1/organizations/:id/widgets/:widgetId/settings
// @Summary Merge-patch widget settings
// @Description Applies an RFC 7386 JSON merge patch; null removes a key. The merged settings are validated.
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param widgetId path string true "Widget ID (UUID)"
// @Param patch body object true "JSON merge patch"
// @Success 200 {object} service.WidgetResponse
// @Failure 400 {object} ErrorResponse "Invalid patch or settings"
// @Security BearerAuth
// @Router /organizations/{id}/widgets/{widgetId}/settings [patch]
func (h *WidgetHandler) PatchSettings(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "widgetId", "widget")
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSettingsPatchSize+1))
	if err != nil || len(body) > maxSettingsPatchSize || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": "expected a JSON object"})
		return
	}

	widget, err := h.service.PatchSettings(actorFrom(c), orgID, id, json.RawMessage(body))
	if err != nil {
		respondError(c, err, "Failed to update widget settings")
		return
	}

	c.JSON(http.StatusOK, widget)
}

// RotateKey handles POST /api/v1/organizations/:id/widgets/:widgetId/rotate-key
// @Summary Rotate the widget public key
// @Description The previous key stops working immediately
// @Tags widgets
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param widgetId path string true "Widget ID (UUID)"
// @Success 200 {object} service.WidgetResponse
// @Security BearerAuth
// @Router /organizations/{id}/widgets/{widgetId}/rotate-key [post]
func (h *WidgetHandler) RotateKey(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "widgetId", "widget")
	if !ok {
		return
	}

	widget, err := h.service.RotateKey(actorFrom(c), orgID, id)
	if err != nil {
		respondError(c, err, "Failed to rotate widget key")
		return
	}

	c.JSON(http.StatusOK, widget)
}

// DeleteWidget handles DELETE /api/v1/organizations/:id/widgets/:widgetId
// @Summary Delete a widget
// @Tags widgets
// @Param id path string true "Organization ID (UUID)"
// @Param widgetId path string true "Widget ID (UUID)"
// @Success 204 "Widget deleted"
// @Security BearerAuth
// @Router /organizations/{id}/widgets/{widgetId} [delete]
func (h *WidgetHandler) DeleteWidget(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "widgetId", "widget")
	if !ok {
		return
	}

	if err := h.service.Delete(actorFrom(c), orgID, id); err != nil {
		respondError(c, err, "Failed to delete widget")
		return
	}

	c.Status(http.StatusNoContent)
}
