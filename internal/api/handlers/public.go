package handlers

import (
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicWidgetHandler serves the unauthenticated endpoints called by embedded widgets
type PublicWidgetHandler struct {
	widgets   service.WidgetServiceInterface
	linkRules service.LinkRuleServiceInterface
}

// NewPublicWidgetHandler creates a new public widget handler
func NewPublicWidgetHandler(widgets service.WidgetServiceInterface, linkRules service.LinkRuleServiceInterface) *PublicWidgetHandler {
	return &PublicWidgetHandler{widgets: widgets, linkRules: linkRules}
}

// GetConfig handles GET /public/widgets/:publicKey/config
// @Summary Widget runtime configuration
// @Description Settings of an active widget. The request Origin must be in the widget's allowed origins.
// @Tags public
// @Produce json
// @Param publicKey path string true "Widget public key"
// @Success 200 {object} service.PublicWidgetConfig
// @Failure 403 {object} ErrorResponse "Origin is not allowed"
// @Failure 404 {object} ErrorResponse "Unknown or inactive widget"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Router /public/widgets/{publicKey}/config [get]
func (h *PublicWidgetHandler) GetConfig(c *gin.Context) {
	cfg, err := h.widgets.PublicConfig(c.Request.Context(), c.Param("publicKey"), c.GetHeader("Origin"))
	if err != nil {
		respondError(c, err, "Failed to load widget configuration")
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	c.JSON(http.StatusOK, cfg)
}

// ScanMessage handles POST /public/widgets/:publicKey/messages/scan
// @Summary Link cards for a visitor message
// @Description Evaluates the organization's link rules against the message
// @Tags public
// @Accept json
// @Produce json
// @Param publicKey path string true "Widget public key"
// @Param message body service.ScanRequest true "Visitor message"
// @Success 200 {object} service.ScanResponse
// @Failure 403 {object} ErrorResponse "Origin is not allowed"
// @Failure 404 {object} ErrorResponse "Unknown or inactive widget"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Router /public/widgets/{publicKey}/messages/scan [post]
func (h *PublicWidgetHandler) ScanMessage(c *gin.Context) {
	var req service.ScanRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.linkRules.Scan(c.Request.Context(), c.Param("publicKey"), c.GetHeader("Origin"), req.Message)
	if err != nil {
		respondError(c, err, "Failed to scan message")
		return
	}

	c.JSON(http.StatusOK, resp)
}
